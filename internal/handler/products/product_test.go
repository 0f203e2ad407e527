package products

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"shoplite/internal/cache"
	"shoplite/internal/database"
	"shoplite/internal/model"
	"shoplite/internal/store"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

type stubValidator struct{ err error }

func (s *stubValidator) Validate(i interface{}) error { return s.err }

func newJSONCtx(e *echo.Echo, method, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func newParamCtx(e *echo.Echo, method, val, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, "/products/"+val, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/products/:id")
	c.SetParamNames("id")
	c.SetParamValues(val)
	return c, rec
}

func restore() {
	listProducts = store.ListProducts
	getProductByID = store.GetProductByID
	createProduct = store.CreateProduct
	updateProduct = store.UpdateProduct
	deleteProduct = store.DeleteProduct
}

func sampleProduct() *model.Product {
	now := time.Now().UTC()
	return &model.Product{
		ID:          1,
		Name:        "Widget",
		Description: "a widget",
		Price:       9.99,
		Stock:       5,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func TestListProductsHandler(t *testing.T) {
	e := echo.New()

	t.Run("success", func(t *testing.T) {
		t.Cleanup(restore)
		listProducts = func(context.Context, database.DB) ([]model.Product, error) {
			return []model.Product{*sampleProduct()}, nil
		}
		ctx, rec := newJSONCtx(e, http.MethodGet, "")
		require.NoError(t, ListProductsHandler(nil, nil)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), `"name":"Widget"`)
	})

	t.Run("empty list is an array", func(t *testing.T) {
		t.Cleanup(restore)
		listProducts = func(context.Context, database.DB) ([]model.Product, error) {
			return []model.Product{}, nil
		}
		ctx, rec := newJSONCtx(e, http.MethodGet, "")
		require.NoError(t, ListProductsHandler(nil, nil)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, "[]\n", rec.Body.String())
	})

	t.Run("store error", func(t *testing.T) {
		t.Cleanup(restore)
		listProducts = func(context.Context, database.DB) ([]model.Product, error) {
			return nil, errors.New("query")
		}
		ctx, rec := newJSONCtx(e, http.MethodGet, "")
		require.NoError(t, ListProductsHandler(nil, nil)(ctx))
		require.Equal(t, http.StatusInternalServerError, rec.Code)
		require.Contains(t, rec.Body.String(), `"error"`)
	})

	t.Run("cache hit skips store", func(t *testing.T) {
		t.Cleanup(restore)
		listProducts = func(context.Context, database.DB) ([]model.Product, error) {
			t.Fatal("store must not be queried on cache hit")
			return nil, nil
		}
		cch := &cache.FakeCache{GetFn: func(ctx context.Context, key string) *redis.StringCmd {
			require.Equal(t, listCacheKey, key)
			return redis.NewStringResult(`[{"id":1}]`, nil)
		}}
		ctx, rec := newJSONCtx(e, http.MethodGet, "")
		require.NoError(t, ListProductsHandler(nil, cch)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), `[{"id":1}]`)
	})

	t.Run("cache miss fills cache", func(t *testing.T) {
		t.Cleanup(restore)
		listProducts = func(context.Context, database.DB) ([]model.Product, error) {
			return []model.Product{*sampleProduct()}, nil
		}
		setCalled := false
		cch := &cache.FakeCache{
			GetFn: func(ctx context.Context, key string) *redis.StringCmd {
				return redis.NewStringResult("", redis.Nil)
			},
			SetFn: func(ctx context.Context, key string, val any, ttl time.Duration) *redis.StatusCmd {
				setCalled = true
				require.Equal(t, listCacheKey, key)
				require.Equal(t, listCacheTTL, ttl)
				return redis.NewStatusResult("OK", nil)
			},
		}
		ctx, rec := newJSONCtx(e, http.MethodGet, "")
		require.NoError(t, ListProductsHandler(nil, cch)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.True(t, setCalled)
	})
}

func TestGetProductHandler(t *testing.T) {
	e := echo.New()

	t.Run("bad id", func(t *testing.T) {
		ctx, rec := newParamCtx(e, http.MethodGet, "abc", "")
		require.NoError(t, GetProductHandler(nil)(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Contains(t, rec.Body.String(), "invalid product ID")
	})

	t.Run("not found", func(t *testing.T) {
		t.Cleanup(restore)
		getProductByID = func(context.Context, database.DB, int) (*model.Product, error) {
			return nil, fmt.Errorf("GetProductByID: %w", store.ErrNotFound)
		}
		ctx, rec := newParamCtx(e, http.MethodGet, "999999", "")
		require.NoError(t, GetProductHandler(nil)(ctx))
		require.Equal(t, http.StatusNotFound, rec.Code)
		require.Contains(t, rec.Body.String(), "product not found")
	})

	t.Run("success", func(t *testing.T) {
		t.Cleanup(restore)
		getProductByID = func(_ context.Context, _ database.DB, id int) (*model.Product, error) {
			require.Equal(t, 1, id)
			return sampleProduct(), nil
		}
		ctx, rec := newParamCtx(e, http.MethodGet, "1", "")
		require.NoError(t, GetProductHandler(nil)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), `"price":9.99`)
	})
}

func TestCreateProductHandler(t *testing.T) {
	e := echo.New()

	t.Run("bind error", func(t *testing.T) {
		e.Validator = &stubValidator{}
		ctx, rec := newJSONCtx(e, http.MethodPost, "{not json")
		require.NoError(t, CreateProductHandler(nil, nil)(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Contains(t, rec.Body.String(), "invalid JSON body")
	})

	t.Run("missing required fields", func(t *testing.T) {
		e.Validator = &stubValidator{err: errors.New("Price is required")}
		ctx, rec := newJSONCtx(e, http.MethodPost, `{"name":"Widget"}`)
		require.NoError(t, CreateProductHandler(nil, nil)(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Contains(t, rec.Body.String(), "name and price are required")
	})

	t.Run("store error", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		createProduct = func(context.Context, database.DB, *model.Product) (*model.Product, error) {
			return nil, errors.New("insert")
		}
		ctx, rec := newJSONCtx(e, http.MethodPost, `{"name":"Widget","price":9.99}`)
		require.NoError(t, CreateProductHandler(nil, nil)(ctx))
		require.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("success", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		createProduct = func(_ context.Context, _ database.DB, p *model.Product) (*model.Product, error) {
			require.Equal(t, "Widget", p.Name)
			require.Equal(t, 9.99, p.Price)
			out := *sampleProduct()
			out.Name = p.Name
			out.Price = p.Price
			return &out, nil
		}
		delCalled := false
		cch := &cache.FakeCache{DelFn: func(ctx context.Context, keys ...string) *redis.IntCmd {
			delCalled = true
			require.Equal(t, []string{listCacheKey}, keys)
			return redis.NewIntResult(1, nil)
		}}
		ctx, rec := newJSONCtx(e, http.MethodPost, `{"name":"Widget","price":9.99}`)
		require.NoError(t, CreateProductHandler(nil, cch)(ctx))
		require.Equal(t, http.StatusCreated, rec.Code)
		require.Contains(t, rec.Body.String(), "Product created")
		require.Contains(t, rec.Body.String(), `"name":"Widget"`)
		require.Contains(t, rec.Body.String(), `"id":1`)
		require.True(t, delCalled)
	})
}

func TestUpdateProductHandler(t *testing.T) {
	e := echo.New()

	t.Run("bad id", func(t *testing.T) {
		ctx, rec := newParamCtx(e, http.MethodPut, "abc", "{}")
		require.NoError(t, UpdateProductHandler(nil, nil)(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("not found", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		updateProduct = func(context.Context, database.DB, int, *string, *string, *float64, *int) (*model.Product, error) {
			return nil, fmt.Errorf("UpdateProduct: %w", store.ErrNotFound)
		}
		ctx, rec := newParamCtx(e, http.MethodPut, "42", `{"price":19.99}`)
		require.NoError(t, UpdateProductHandler(nil, nil)(ctx))
		require.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("partial update keeps other fields", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		updateProduct = func(_ context.Context, _ database.DB, id int, name, desc *string, price *float64, stock *int) (*model.Product, error) {
			require.Equal(t, 1, id)
			require.Nil(t, name)
			require.Nil(t, desc)
			require.Nil(t, stock)
			require.NotNil(t, price)
			require.Equal(t, 19.99, *price)
			out := *sampleProduct()
			out.Price = *price
			out.UpdatedAt = out.CreatedAt.Add(time.Minute)
			return &out, nil
		}
		cch := &cache.FakeCache{DelFn: func(ctx context.Context, keys ...string) *redis.IntCmd {
			return redis.NewIntResult(1, nil)
		}}
		ctx, rec := newParamCtx(e, http.MethodPut, "1", `{"price":19.99}`)
		require.NoError(t, UpdateProductHandler(nil, cch)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), "Product updated")
		require.Contains(t, rec.Body.String(), `"name":"Widget"`)
		require.Contains(t, rec.Body.String(), `"price":19.99`)
	})
}

func TestDeleteProductHandler(t *testing.T) {
	e := echo.New()

	t.Run("bad id", func(t *testing.T) {
		ctx, rec := newParamCtx(e, http.MethodDelete, "abc", "")
		require.NoError(t, DeleteProductHandler(nil, nil)(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("not found", func(t *testing.T) {
		t.Cleanup(restore)
		deleteProduct = func(context.Context, database.DB, int) error {
			return fmt.Errorf("DeleteProduct: %w", store.ErrNotFound)
		}
		ctx, rec := newParamCtx(e, http.MethodDelete, "999999", "")
		require.NoError(t, DeleteProductHandler(nil, nil)(ctx))
		require.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("success", func(t *testing.T) {
		t.Cleanup(restore)
		deleteProduct = func(_ context.Context, _ database.DB, id int) error {
			require.Equal(t, 1, id)
			return nil
		}
		ctx, rec := newParamCtx(e, http.MethodDelete, "1", "")
		require.NoError(t, DeleteProductHandler(nil, nil)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), "Product deleted")
	})
}
