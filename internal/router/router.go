package router

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/deblinanandy/stockmanagement/internal/catalog"
	"github.com/deblinanandy/stockmanagement/internal/handlers"
	"github.com/deblinanandy/stockmanagement/internal/middleware"
)

// Initialize wires the catalog services into a gin engine with the full
// route surface.
func Initialize(services *catalog.Services) *gin.Engine {
	categoryHandler := handlers.NewCategoryHandler(services.Categories)
	variationHandler := handlers.NewVariationHandler(services.Variations)
	productHandler := handlers.NewProductHandler(services.Products)
	stockHandler := handlers.NewStockHandler(services.Stocks)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(cors.Default())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	api := r.Group("/api")
	{
		api.POST("/categories/create", categoryHandler.Create)
		api.GET("/categories", categoryHandler.List)
		api.GET("/categories/:categoryId", categoryHandler.GetByID)
		api.PUT("/categories/:categoryId", categoryHandler.Update)
		api.DELETE("/categories/:categoryId", categoryHandler.Delete)

		api.POST("/variations/create", variationHandler.Create)
		api.GET("/variations", variationHandler.List)
		api.GET("/variations/:variationId", variationHandler.GetByID)
		api.PUT("/variations/:variationId", variationHandler.Update)
		api.DELETE("/variations/:variationId", variationHandler.Delete)

		api.POST("/products/create", productHandler.Create)
		api.GET("/products", productHandler.List)
		api.GET("/products/:productId", productHandler.GetByID)
		api.PUT("/products/:productId", productHandler.Update)
		api.DELETE("/products/:productId", productHandler.Delete)

		api.POST("/stocks/create", stockHandler.Create)
		api.GET("/stocks/:productId/:variationId", stockHandler.GetByPair)
		api.PUT("/stocks/:stockId", stockHandler.Update)
		api.DELETE("/stocks/:stockId", stockHandler.Delete)
	}

	return r
}
