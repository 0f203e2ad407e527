// File: internal/handler/fallback.go
package handler

import (
	"net/http"
	"strconv"
	"strings"

	"shoplite/internal/api"

	"github.com/labstack/echo/v4"
)

// Resource bundles the handlers the fallback can re-dispatch to.
type Resource struct {
	// Entity is the path prefix an upstream gateway may have stripped
	// ("products" or "users").
	Entity string

	List   echo.HandlerFunc
	Create echo.HandlerFunc
	Get    echo.HandlerFunc
	Update echo.HandlerFunc
	Delete echo.HandlerFunc
	Health echo.HandlerFunc
}

// Fallback recovers requests whose path prefix was stripped or altered
// by an upstream gateway. It re-derives the intended operation from the
// remaining path and method: "" → list/create, "<int>" → by-id ops,
// "health" → health. Pure dispatch, no persistence.
func Fallback(r Resource) echo.HandlerFunc {
	return func(c echo.Context) error {
		rest := strings.Trim(c.Request().URL.Path, "/")

		// Tolerate both the stripped and the original form.
		if rest == r.Entity {
			rest = ""
		} else if strings.HasPrefix(rest, r.Entity+"/") {
			rest = rest[len(r.Entity)+1:]
		}

		method := c.Request().Method
		switch {
		case rest == "":
			switch method {
			case http.MethodGet:
				return r.List(c)
			case http.MethodPost:
				return r.Create(c)
			}
		case rest == "health":
			if method == http.MethodGet {
				return r.Health(c)
			}
		default:
			if _, err := strconv.Atoi(rest); err == nil {
				c.SetParamNames("id")
				c.SetParamValues(rest)
				switch method {
				case http.MethodGet:
					return r.Get(c)
				case http.MethodPut:
					return r.Update(c)
				case http.MethodDelete:
					return r.Delete(c)
				}
			}
		}

		return c.JSON(http.StatusNotFound, api.ErrorResponse{
			Error: "endpoint not found: " + c.Request().URL.Path,
		})
	}
}
