package store

import (
	"context"
	"fmt"

	"shoplite/internal/database"
	"shoplite/internal/model"
)

func ListProducts(ctx context.Context, db database.DB) ([]model.Product, error) {
	rows, err := db.Query(ctx,
		`SELECT id, name, description, price, stock, created_at, updated_at
		 FROM products ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("ListProducts: %w", err)
	}
	defer rows.Close()

	products := []model.Product{}
	for rows.Next() {
		var p model.Product
		if err := rows.Scan(
			&p.ID,
			&p.Name,
			&p.Description,
			&p.Price,
			&p.Stock,
			&p.CreatedAt,
			&p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("ListProducts: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListProducts: %w", err)
	}
	return products, nil
}

func GetProductByID(ctx context.Context, db database.DB, productID int) (*model.Product, error) {
	row := db.QueryRow(ctx,
		`SELECT id, name, description, price, stock, created_at, updated_at
		 FROM products WHERE id = $1`,
		productID,
	)
	p := &model.Product{}
	if err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Description,
		&p.Price,
		&p.Stock,
		&p.CreatedAt,
		&p.UpdatedAt,
	); err != nil {
		return nil, fmt.Errorf("GetProductByID: %w", classify(err))
	}
	return p, nil
}

func CreateProduct(ctx context.Context, db database.DB, p *model.Product) (*model.Product, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO products (name, description, price, stock)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at, updated_at`,
		p.Name,
		p.Description,
		p.Price,
		p.Stock,
	)
	if err := row.Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, fmt.Errorf("CreateProduct: %w", classify(err))
	}
	return p, nil
}

// UpdateProduct applies a partial update in one statement; nil fields keep
// their current value via COALESCE, so the row is never half-updated.
func UpdateProduct(ctx context.Context, db database.DB, productID int, name, description *string, price *float64, stock *int) (*model.Product, error) {
	row := db.QueryRow(ctx,
		`UPDATE products
		 SET name        = COALESCE($2, name),
		     description = COALESCE($3, description),
		     price       = COALESCE($4, price),
		     stock       = COALESCE($5, stock),
		     updated_at  = now()
		 WHERE id = $1
		 RETURNING id, name, description, price, stock, created_at, updated_at`,
		productID,
		name,
		description,
		price,
		stock,
	)
	p := &model.Product{}
	if err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Description,
		&p.Price,
		&p.Stock,
		&p.CreatedAt,
		&p.UpdatedAt,
	); err != nil {
		return nil, fmt.Errorf("UpdateProduct: %w", classify(err))
	}
	return p, nil
}

func DeleteProduct(ctx context.Context, db database.DB, productID int) error {
	tag, err := db.Exec(ctx,
		`DELETE FROM products WHERE id = $1`,
		productID,
	)
	if err != nil {
		return fmt.Errorf("DeleteProduct: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("DeleteProduct: %w", ErrNotFound)
	}
	return nil
}

func CountProducts(ctx context.Context, db database.DB) (int, error) {
	var n int
	if err := db.QueryRow(ctx, `SELECT COUNT(*) FROM products`).Scan(&n); err != nil {
		return 0, fmt.Errorf("CountProducts: %w", err)
	}
	return n, nil
}

// seedProducts 為展示用的預設商品資料
var seedProducts = []model.Product{
	{Name: "Laptop", Description: "15-inch developer laptop", Price: 1299.99, Stock: 10},
	{Name: "Phone", Description: "Flagship smartphone", Price: 799.00, Stock: 25},
	{Name: "Headphones", Description: "Noise-cancelling over-ear", Price: 199.50, Stock: 40},
}

// SeedProducts inserts the demo rows once, only when the table is empty.
func SeedProducts(ctx context.Context, db database.DB) error {
	n, err := CountProducts(ctx, db)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	for i := range seedProducts {
		p := seedProducts[i]
		if _, err := CreateProduct(ctx, db, &p); err != nil {
			return fmt.Errorf("SeedProducts: %w", err)
		}
	}
	return nil
}
