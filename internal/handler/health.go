// File: internal/handler/health.go
package handler

import (
	"net/http"

	"shoplite/internal/cache"
	"shoplite/internal/database"

	"github.com/labstack/echo/v4"
)

// HealthResponse 健康檢查回應模型
// swagger:model handler.HealthResponse
type HealthResponse struct {
	Status   string `json:"status" example:"healthy"`
	Service  string `json:"service" example:"product-service"`
	Database string `json:"database,omitempty" example:"connected"`
	Cache    string `json:"cache,omitempty" example:"connected"`
}

// probe runs one best-effort dependency check. No retries here; the
// bootstrap sequencer owns retry policy, health checks fail fast.
func probe(c echo.Context, service string, db database.DB, cch cache.Cache) (HealthResponse, bool) {
	ctx := c.Request().Context()
	resp := HealthResponse{Status: "healthy", Service: service, Database: "connected"}
	healthy := true

	if err := db.Ping(ctx); err != nil {
		resp.Status = "unhealthy"
		resp.Database = "disconnected"
		healthy = false
	}
	if cch != nil {
		resp.Cache = "connected"
		if err := cch.Ping(ctx).Err(); err != nil {
			resp.Status = "unhealthy"
			resp.Cache = "disconnected"
			healthy = false
		}
	}
	return resp, healthy
}

// LivenessHandler 回報行程存活，不碰任何相依服務
// @Summary     Liveness check
// @Tags        health
// @Produce     json
// @Success     200 {object} handler.HealthResponse
// @Router      /health [get]
func LivenessHandler(service string) echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, HealthResponse{Status: "ok", Service: service})
	}
}

// ReadinessHandler checks the database (and cache when enabled) and
// fails with 500 so direct API pollers see the outage.
// @Summary     Readiness check (500 on failure)
// @Tags        health
// @Produce     json
// @Success     200 {object} handler.HealthResponse
// @Failure     500 {object} handler.HealthResponse
// @Router      /health/ready [get]
func ReadinessHandler(service string, db database.DB, cch cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		resp, healthy := probe(c, service, db, cch)
		if !healthy {
			return c.JSON(http.StatusInternalServerError, resp)
		}
		return c.JSON(http.StatusOK, resp)
	}
}

// ALBHealthHandler runs the same probe but always answers 200; ALB
// target groups mark targets unhealthy on non-200, which would tear the
// service out of rotation while the database is merely still starting.
// The status field carries the real result.
// @Summary     Readiness check (always 200)
// @Tags        health
// @Produce     json
// @Success     200 {object} handler.HealthResponse
// @Router      /health/alb [get]
func ALBHealthHandler(service string, db database.DB, cch cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		resp, _ := probe(c, service, db, cch)
		return c.JSON(http.StatusOK, resp)
	}
}
