package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bookshelf-backend/internal/shared/middleware"
	"bookshelf-backend/pkg/container"
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

	router.GET("/health", healthCheckHandler(c))

	setupAuthorRoutes(router, c)
	setupBookRoutes(router, c)

	return router
}

// Read endpoints are wrapped in the response cache; write endpoints never
// are. The key prefixes match per endpoint; single-resource routes append
// the path id after a ":" delimiter.
func setupAuthorRoutes(router *gin.Engine, c *container.Container) {
	ttl := c.Config.Cache.TTL

	authors := router.Group("/authors")
	{
		authors.GET("",
			middleware.Cached(c.Cache, ttl, middleware.StaticKey("getauthors")),
			c.AuthorHandler.List)
		authors.POST("", c.AuthorHandler.Create)
		authors.GET("/:id",
			middleware.Cached(c.Cache, ttl, middleware.ParamKey("getauthor", "id")),
			c.AuthorHandler.GetByID)
		authors.PUT("/:id", c.AuthorHandler.Update)
		authors.DELETE("/:id", c.AuthorHandler.Delete)
		authors.GET("/:id/books",
			middleware.Cached(c.Cache, ttl, middleware.ParamKey("books", "id")),
			c.BookHandler.ListByAuthor)
	}
}

func setupBookRoutes(router *gin.Engine, c *container.Container) {
	ttl := c.Config.Cache.TTL

	books := router.Group("/books")
	{
		books.GET("",
			middleware.Cached(c.Cache, ttl, middleware.StaticKey("getbooks")),
			c.BookHandler.List)
		books.POST("", c.BookHandler.Create)
		books.GET("/:id",
			middleware.Cached(c.Cache, ttl, middleware.ParamKey("getbook", "id")),
			c.BookHandler.GetByID)
		books.PUT("/:id", c.BookHandler.Update)
		books.DELETE("/:id", c.BookHandler.Delete)
	}
}

func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		dbStatus := "ok"
		if err := c.DB.HealthCheck(ctx.Request.Context()); err != nil {
			dbStatus = err.Error()
		}

		cacheStatus := "ok"
		if err := c.Cache.Ping(ctx.Request.Context()); err != nil {
			cacheStatus = err.Error()
		}

		status := http.StatusOK
		if dbStatus != "ok" {
			status = http.StatusServiceUnavailable
		}

		ctx.JSON(status, gin.H{
			"status": dbStatus,
			"cache":  cacheStatus,
			"app":    c.Config.App.Name,
			"env":    c.Config.App.Environment,
		})
	}
}
