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

type ReviewHandler struct {
	svc service.ReviewService
}

func NewReviewHandler(svc service.ReviewService) *ReviewHandler {
	return &ReviewHandler{svc: svc}
}

func (h *ReviewHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/:review_id", h.Get)
	rg.POST("/", h.Create)
	rg.PUT("/:review_id", h.Update)
	rg.DELETE("/:review_id", h.Delete)
}

// RegisterMovieRoutes hangs the movie-scoped listing off the movie group so
// the :movie_id parameter stays owned by one route tree.
func (h *ReviewHandler) RegisterMovieRoutes(rg *gin.RouterGroup) {
	rg.GET("/:movie_id/reviews", h.ListByMovie)
}

func (h *ReviewHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "review_id")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	review, err := h.svc.GetByID(ctx, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromReviewToResponse(*review))
}

func (h *ReviewHandler) ListByMovie(c *gin.Context) {
	movieID, ok := parseIDParam(c, "movie_id")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	reviews, err := h.svc.GetByMovie(ctx, movieID)
	if err != nil {
		respondError(c, err)
		return
	}
	resp := make([]dto.ReviewResponse, 0, len(reviews))
	for _, r := range reviews {
		resp = append(resp, dto.FromReviewToResponse(r))
	}
	c.JSON(http.StatusOK, gin.H{"data": resp, "total": len(resp)})
}

func (h *ReviewHandler) Create(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}
	var in dto.ReviewRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	review := in.ToModel(userID)
	if err := h.svc.Create(ctx, &review); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.FromReviewToResponse(review))
}

func (h *ReviewHandler) Update(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}
	id, ok := parseIDParam(c, "review_id")
	if !ok {
		return
	}
	var in dto.ReviewRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	existing, err := h.svc.GetByID(ctx, id)
	if err != nil {
		respondError(c, err)
		return
	}
	if existing.UserID != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "not the author of this review"})
		return
	}

	review := in.ToModel(userID)
	if err := h.svc.Update(ctx, id, &review); err != nil {
		respondError(c, err)
		return
	}
	review.ID = id
	c.JSON(http.StatusOK, dto.FromReviewToResponse(review))
}

// Delete removes the review and its whole reply subtree.
func (h *ReviewHandler) Delete(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}
	id, ok := parseIDParam(c, "review_id")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	existing, err := h.svc.GetByID(ctx, id)
	if err != nil {
		respondError(c, err)
		return
	}
	if existing.UserID != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "not the author of this review"})
		return
	}

	deleted, err := h.svc.Delete(ctx, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": deleted})
}
