package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func TestRootHandler(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)

	info := ServiceInfo{
		Service:   "product-service",
		Version:   "1.0",
		Endpoints: []string{"/products", "/products/{id}", "/health"},
	}
	require.NoError(t, RootHandler(info)(ctx))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"service":"product-service"`)
	require.Contains(t, rec.Body.String(), `"version":"1.0"`)
	require.Contains(t, rec.Body.String(), "/products/{id}")
}
