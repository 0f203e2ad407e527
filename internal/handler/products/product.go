package products

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"shoplite/internal/api"
	"shoplite/internal/cache"
	"shoplite/internal/database"
	"shoplite/internal/handler"
	"shoplite/internal/model"
	"shoplite/internal/store"

	"github.com/labstack/echo/v4"
)

var (
	listProducts   = store.ListProducts
	getProductByID = store.GetProductByID
	createProduct  = store.CreateProduct
	updateProduct  = store.UpdateProduct
	deleteProduct  = store.DeleteProduct
)

const (
	listCacheKey = "products:list"
	listCacheTTL = 30 * time.Second
)

// invalidateList drops the cached list after any mutation. Best-effort:
// a failed Del only delays freshness until the TTL expires.
func invalidateList(c echo.Context, cch cache.Cache) {
	if cch != nil {
		cch.Del(c.Request().Context(), listCacheKey)
	}
}

// @Summary     List all products
// @Tags        products
// @Produce     json
// @Success     200 {array}  api.ProductResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /products [get]
func ListProductsHandler(db database.DB, cch cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		if cch != nil {
			if cached, err := cch.Get(ctx, listCacheKey).Result(); err == nil {
				return c.JSONBlob(http.StatusOK, []byte(cached))
			}
		}

		products, err := listProducts(ctx, db)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: err.Error()})
		}

		resp := api.NewProductListResponse(products)
		if cch != nil {
			if body, err := json.Marshal(resp); err == nil {
				cch.Set(ctx, listCacheKey, body, listCacheTTL)
			}
		}
		return c.JSON(http.StatusOK, resp)
	}
}

// @Summary     Get a product by ID
// @Tags        products
// @Produce     json
// @Param       id   path      int  true  "商品 ID"
// @Success     200 {object} api.ProductResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /products/{id} [get]
func GetProductHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid product ID"})
		}
		product, err := getProductByID(c.Request().Context(), db, id)
		if err != nil {
			return c.JSON(handler.StatusFromError(err), api.ErrorResponse{Error: "product not found"})
		}
		return c.JSON(http.StatusOK, api.NewProductResponse(product))
	}
}

// @Summary     Create a new product
// @Tags        products
// @Accept      json
// @Produce     json
// @Param       product body api.CreateProductRequest true "商品資料"
// @Success     201 {object} api.ProductMutationResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /products [post]
func CreateProductHandler(db database.DB, cch cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.CreateProductRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid JSON body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "name and price are required"})
		}

		product, err := createProduct(c.Request().Context(), db, &model.Product{
			Name:        *req.Name,
			Description: req.Description,
			Price:       *req.Price,
			Stock:       req.Stock,
		})
		if err != nil {
			return c.JSON(handler.StatusFromError(err), api.ErrorResponse{Error: err.Error()})
		}

		invalidateList(c, cch)
		return c.JSON(http.StatusCreated, api.ProductMutationResponse{
			Message: "Product created",
			Product: api.NewProductResponse(product),
		})
	}
}

// @Summary     Update a product by ID
// @Description 局部更新：僅變更請求中出現的欄位
// @Tags        products
// @Accept      json
// @Produce     json
// @Param       id      path int                      true "商品 ID"
// @Param       product body api.UpdateProductRequest true "欲更新的欄位"
// @Success     200 {object} api.ProductMutationResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /products/{id} [put]
func UpdateProductHandler(db database.DB, cch cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid product ID"})
		}

		var req api.UpdateProductRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid JSON body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		}

		product, err := updateProduct(c.Request().Context(), db, id, req.Name, req.Description, req.Price, req.Stock)
		if err != nil {
			return c.JSON(handler.StatusFromError(err), api.ErrorResponse{Error: err.Error()})
		}

		invalidateList(c, cch)
		return c.JSON(http.StatusOK, api.ProductMutationResponse{
			Message: "Product updated",
			Product: api.NewProductResponse(product),
		})
	}
}

// @Summary     Delete a product by ID
// @Tags        products
// @Produce     json
// @Param       id   path      int  true  "商品 ID"
// @Success     200 {object} api.MessageResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /products/{id} [delete]
func DeleteProductHandler(db database.DB, cch cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid product ID"})
		}
		if err := deleteProduct(c.Request().Context(), db, id); err != nil {
			return c.JSON(handler.StatusFromError(err), api.ErrorResponse{Error: err.Error()})
		}
		invalidateList(c, cch)
		return c.JSON(http.StatusOK, api.MessageResponse{Message: "Product deleted"})
	}
}
