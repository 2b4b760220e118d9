package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bookleaf-royalty/internal/shared/middleware"
	"bookleaf-royalty/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	// Health check
	router.GET("/", healthCheckHandler)

	// Royalty endpoints, mounted at root
	router.GET("/authors", c.AuthorHandler.GetAll)
	router.GET("/authors/:author_id", c.AuthorHandler.GetByID)
	router.GET("/authors/:author_id/sales", c.AuthorHandler.GetSales)
	router.GET("/authors/:author_id/withdrawals", c.WithdrawalHandler.GetByAuthor)
	router.POST("/withdrawals", c.WithdrawalHandler.Create)

	return router
}

func healthCheckHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "OK",
		"message": "BookLeaf Royalty API is running",
	})
}
