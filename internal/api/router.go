// Package api exposes the cinegoose records over a JSON REST API.
package api

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

// NewRouter wires the routes and middleware onto a new gin engine.
func NewRouter(repo Repository, logger *slog.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestID())
	router.Use(RequestLogger(logger))

	h := NewHandler(repo, logger)

	router.GET("/", h.Root)
	router.GET("/openapi.json", func(c *gin.Context) {
		c.JSON(http.StatusOK, OpenAPIDocument())
	})

	v := router.Group("/api")
	{
		v.GET("/movies", h.ListMovies)
		v.GET("/movies/:id", h.GetMovie)
		v.POST("/movie", h.CreateMovie)

		v.GET("/geese", h.ListFamousGeese)
		v.GET("/geese/:id", h.GetFamousGoose)
		v.POST("/geese", h.CreateFamousGoose)

		v.GET("/quotes", h.ListGooseQuotes)
		v.GET("/quotes/:id", h.GetGooseQuote)
		v.POST("/quotes", h.CreateGooseQuote)
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	})

	return router
}
