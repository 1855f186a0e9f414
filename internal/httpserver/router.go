package httpserver

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	ecM "github.com/labstack/echo/v4/middleware"

	"shop-backend/internal/middleware"
)

type Deps struct {
	Logger    *slog.Logger
	JWTSecret []byte
	Origin    string

	Auth     *AuthHTTP
	Category *CategoryHTTP
	Product  *ProductHTTP
	Image    *ImageHTTP
}

func Register(e *echo.Echo, d *Deps) {
	e.Use(ecM.Recover())
	e.Use(ecM.RequestID())
	e.Use(ecM.CORSWithConfig(ecM.CORSConfig{
		AllowOrigins:     []string{d.Origin},
		AllowCredentials: true,
	}))
	e.Use(middleware.RequestLogger(d.Logger))

	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	gate := middleware.NewGate(d.JWTSecret)

	auth := e.Group("/api/auth")
	auth.POST("/signup", d.Auth.Signup)
	auth.POST("/login", d.Auth.Login)
	auth.GET("/all", d.Auth.GetUsers, gate.RequireAuth)
	auth.GET("/:userId", d.Auth.GetUser, gate.RequireAuth)
	auth.PATCH("/:userId", d.Auth.UpdateUser, gate.RequireAuth)
	auth.DELETE("/:userId", d.Auth.DeleteUser, gate.RequireAuth)

	category := e.Group("/api/category", gate.RequireAuth)
	category.POST("", d.Category.Create)
	category.GET("/all", d.Category.List)
	category.GET("/:categoryId", d.Category.Get)
	category.PATCH("/:categoryId", d.Category.Update)
	category.DELETE("/:categoryId", d.Category.Delete)

	product := e.Group("/api/product", gate.RequireAuth)
	product.POST("", d.Product.Create)
	product.GET("/all", d.Product.List)
	product.GET("/download/:filetype", d.Product.Download)
	product.POST("/bulk-upload", d.Product.BulkUpload)
	product.GET("/:productId", d.Product.Get)
	product.PATCH("/:productId", d.Product.Update)
	product.DELETE("/:productId", d.Product.Delete)

	image := e.Group("/api/image")
	image.POST("/upload", d.Image.Upload, gate.RequireAuth)
	image.GET("/:filename", d.Image.Get)
	image.DELETE("/:filename", d.Image.Delete, gate.RequireAuth)
}
