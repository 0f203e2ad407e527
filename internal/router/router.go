// File: internal/router/router.go
package router

import (
	"shoplite/internal/cache"
	"shoplite/internal/database"
	"shoplite/internal/handler"
	"shoplite/internal/handler/products"
	"shoplite/internal/handler/users"

	"github.com/labstack/echo/v4"
)

const version = "1.0"

// SetupProducts 註冊 product-service 的所有路由
func SetupProducts(e *echo.Echo, db database.DB, cch cache.Cache) {
	svc := "product-service"

	list := products.ListProductsHandler(db, cch)
	create := products.CreateProductHandler(db, cch)
	get := products.GetProductHandler(db)
	update := products.UpdateProductHandler(db, cch)
	del := products.DeleteProductHandler(db, cch)
	albHealth := handler.ALBHealthHandler(svc, db, cch)

	e.GET("/", handler.RootHandler(handler.ServiceInfo{
		Service: svc,
		Version: version,
		Endpoints: []string{
			"/products", "/products/{id}", "/products/health",
			"/health", "/health/ready", "/health/alb",
		},
	}))

	// 健康檢查
	e.GET("/health", handler.LivenessHandler(svc))
	e.GET("/health/ready", handler.ReadinessHandler(svc, db, cch))
	e.GET("/health/alb", albHealth)

	// Products CRUD
	g := e.Group("/products")
	g.GET("", list)
	g.POST("", create)
	g.GET("/health", albHealth)
	g.GET("/:id", get)
	g.PUT("/:id", update)
	g.DELETE("/:id", del)

	// 閘道剝除路徑前綴時的補救路由
	e.RouteNotFound("/*", handler.Fallback(handler.Resource{
		Entity: "products",
		List:   list,
		Create: create,
		Get:    get,
		Update: update,
		Delete: del,
		Health: albHealth,
	}))
}

// SetupUsers 註冊 user-service 的所有路由
func SetupUsers(e *echo.Echo, db database.DB, cch cache.Cache) {
	svc := "user-service"

	list := users.ListUsersHandler(db, cch)
	create := users.CreateUserHandler(db, cch)
	get := users.GetUserHandler(db)
	update := users.UpdateUserHandler(db, cch)
	del := users.DeleteUserHandler(db, cch)
	albHealth := handler.ALBHealthHandler(svc, db, cch)

	e.GET("/", handler.RootHandler(handler.ServiceInfo{
		Service: svc,
		Version: version,
		Endpoints: []string{
			"/users", "/users/{id}", "/users/health",
			"/health", "/health/ready", "/health/alb",
		},
	}))

	// 健康檢查
	e.GET("/health", handler.LivenessHandler(svc))
	e.GET("/health/ready", handler.ReadinessHandler(svc, db, cch))
	e.GET("/health/alb", albHealth)

	// Users CRUD
	g := e.Group("/users")
	g.GET("", list)
	g.POST("", create)
	g.GET("/health", albHealth)
	g.GET("/:id", get)
	g.PUT("/:id", update)
	g.DELETE("/:id", del)

	// 閘道剝除路徑前綴時的補救路由
	e.RouteNotFound("/*", handler.Fallback(handler.Resource{
		Entity: "users",
		List:   list,
		Create: create,
		Get:    get,
		Update: update,
		Delete: del,
		Health: albHealth,
	}))
}
