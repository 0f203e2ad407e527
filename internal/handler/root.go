// File: internal/handler/root.go
package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ServiceInfo 服務中繼資料
// swagger:model handler.ServiceInfo
type ServiceInfo struct {
	Service   string   `json:"service" example:"product-service"`
	Version   string   `json:"version" example:"1.0"`
	Endpoints []string `json:"endpoints"`
}

// RootHandler 回傳服務名稱、版本與端點清單
// @Summary     Service metadata
// @Tags        meta
// @Produce     json
// @Success     200 {object} handler.ServiceInfo
// @Router      / [get]
func RootHandler(info ServiceInfo) echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, info)
	}
}
