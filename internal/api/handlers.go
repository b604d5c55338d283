package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mies/cinegoose/internal/models"
	"github.com/mies/cinegoose/internal/store"
)

const rootMessage = "International Goose Movie Database 🪿 🎬"

// Repository is the data access the handlers need. *store.Store implements it.
type Repository interface {
	ListMovies(ctx context.Context) ([]models.Movie, error)
	GetMovie(ctx context.Context, id int64) (*models.Movie, error)
	CreateMovie(ctx context.Context, movie models.NewMovie) (*models.Movie, error)
	ListFamousGeese(ctx context.Context) ([]models.FamousGoose, error)
	GetFamousGoose(ctx context.Context, id int64) (*models.FamousGoose, error)
	CreateFamousGoose(ctx context.Context, goose models.NewFamousGoose) (*models.FamousGoose, error)
	ListGooseQuotes(ctx context.Context) ([]models.GooseQuote, error)
	GetGooseQuote(ctx context.Context, id int64) (*models.GooseQuote, error)
	CreateGooseQuote(ctx context.Context, quote models.NewGooseQuote) (*models.GooseQuote, error)
}

// Handler serves the movie, goose and quote endpoints.
type Handler struct {
	repo   Repository
	logger *slog.Logger
}

// NewHandler creates a new Handler
func NewHandler(repo Repository, logger *slog.Logger) *Handler {
	return &Handler{repo: repo, logger: logger}
}

// Root returns the service greeting
func (h *Handler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": rootMessage})
}

// ListMovies lists every movie
func (h *Handler) ListMovies(c *gin.Context) {
	movies, err := h.repo.ListMovies(c.Request.Context())
	if err != nil {
		h.internalError(c, err)
		return
	}

	c.JSON(http.StatusOK, movies)
}

// GetMovie retrieves a movie by ID
func (h *Handler) GetMovie(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	movie, err := h.repo.GetMovie(c.Request.Context(), id)
	if err != nil {
		h.lookupError(c, err, "movie not found")
		return
	}

	c.JSON(http.StatusOK, movie)
}

// CreateMovie creates a new movie
func (h *Handler) CreateMovie(c *gin.Context) {
	var req models.NewMovie
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	movie, err := h.repo.CreateMovie(c.Request.Context(), req)
	if err != nil {
		h.internalError(c, err)
		return
	}

	c.JSON(http.StatusCreated, movie)
}

// ListFamousGeese lists every famous goose
func (h *Handler) ListFamousGeese(c *gin.Context) {
	geese, err := h.repo.ListFamousGeese(c.Request.Context())
	if err != nil {
		h.internalError(c, err)
		return
	}

	c.JSON(http.StatusOK, geese)
}

// GetFamousGoose retrieves a famous goose by ID
func (h *Handler) GetFamousGoose(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	goose, err := h.repo.GetFamousGoose(c.Request.Context(), id)
	if err != nil {
		h.lookupError(c, err, "goose not found")
		return
	}

	c.JSON(http.StatusOK, goose)
}

// CreateFamousGoose creates a new famous goose
func (h *Handler) CreateFamousGoose(c *gin.Context) {
	var req models.NewFamousGoose
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	goose, err := h.repo.CreateFamousGoose(c.Request.Context(), req)
	if err != nil {
		h.internalError(c, err)
		return
	}

	c.JSON(http.StatusCreated, goose)
}

// ListGooseQuotes lists every goose quote
func (h *Handler) ListGooseQuotes(c *gin.Context) {
	quotes, err := h.repo.ListGooseQuotes(c.Request.Context())
	if err != nil {
		h.internalError(c, err)
		return
	}

	c.JSON(http.StatusOK, quotes)
}

// GetGooseQuote retrieves a goose quote by ID
func (h *Handler) GetGooseQuote(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	quote, err := h.repo.GetGooseQuote(c.Request.Context(), id)
	if err != nil {
		h.lookupError(c, err, "quote not found")
		return
	}

	c.JSON(http.StatusOK, quote)
}

// CreateGooseQuote creates a new goose quote
func (h *Handler) CreateGooseQuote(c *gin.Context) {
	var req models.NewGooseQuote
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	quote, err := h.repo.CreateGooseQuote(c.Request.Context(), req)
	if err != nil {
		h.internalError(c, err)
		return
	}

	c.JSON(http.StatusCreated, quote)
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be a number"})
		return 0, false
	}

	return id, true
}

func (h *Handler) lookupError(c *gin.Context, err error, notFound string) {
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": notFound})
		return
	}

	h.internalError(c, err)
}

func (h *Handler) internalError(c *gin.Context, err error) {
	h.logger.Error("request failed",
		"method", c.Request.Method,
		"path", c.FullPath(),
		"request_id", c.GetString(requestIDKey),
		"error", err,
	)

	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}
