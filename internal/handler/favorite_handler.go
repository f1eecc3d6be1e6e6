package handler

import (
	"context"
	"net/http"
	"time"

	"moviehub/internal/dto"
	"moviehub/internal/middleware"
	"moviehub/internal/service"

	"github.com/gin-gonic/gin"
)

// FavoriteHandler works on the caller's own list only; the user comes from
// the access token, never from the path.
type FavoriteHandler struct {
	svc service.FavoriteService
}

func NewFavoriteHandler(svc service.FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{svc: svc}
}

func (h *FavoriteHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/", h.List)
	rg.POST("/items", h.Add)
	rg.DELETE("/items/:movie_id", h.Remove)
}

func (h *FavoriteHandler) List(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	favorite, err := h.svc.List(ctx, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromFavoriteToResponse(*favorite))
}

func (h *FavoriteHandler) Add(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}
	var in dto.AddFavoriteRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	item, err := h.svc.Add(ctx, userID, in.MovieID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.FromFavoriteItemToResponse(*item))
}

// Remove reports 404 when the movie was never on the list.
func (h *FavoriteHandler) Remove(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}
	movieID, ok := parseIDParam(c, "movie_id")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := h.svc.Remove(ctx, userID, movieID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
