package handler

import (
	"context"
	"net/http"
	"time"

	"moviehub/internal/dto"
	"moviehub/internal/service"

	"github.com/gin-gonic/gin"
)

type MovieHandler struct {
	svc service.MovieService
}

func NewMovieHandler(svc service.MovieService) *MovieHandler {
	return &MovieHandler{svc: svc}
}

func (h *MovieHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/", h.List)
	rg.GET("/:movie_id", h.Get)
	rg.POST("/", h.Create)
	rg.PUT("/:movie_id", h.Update)
	rg.DELETE("/:movie_id", h.Delete)
}

func (h *MovieHandler) List(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	list, err := h.svc.GetAll(ctx)
	if err != nil {
		respondError(c, err)
		return
	}
	resp := make([]dto.MovieResponse, 0, len(list))
	for _, m := range list {
		resp = append(resp, dto.FromMovieToResponse(m))
	}
	c.JSON(http.StatusOK, gin.H{"data": resp, "total": len(resp)})
}

func (h *MovieHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "movie_id")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	m, err := h.svc.GetByID(ctx, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromMovieToResponse(*m))
}

func (h *MovieHandler) Create(c *gin.Context) {
	var in dto.MovieRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	m := in.ToModel()
	if err := h.svc.Create(ctx, &m, in.ActorIDs, in.GenreIDs); err != nil {
		respondError(c, err)
		return
	}

	// re-fetch so the response carries actors and genres
	created, err := h.svc.GetByID(ctx, m.ID)
	if err != nil {
		c.JSON(http.StatusCreated, dto.FromMovieToResponse(m))
		return
	}
	c.JSON(http.StatusCreated, dto.FromMovieToResponse(*created))
}

// Update replaces the stored movie with the full incoming field set,
// including the actor and genre link sets.
func (h *MovieHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "movie_id")
	if !ok {
		return
	}
	var in dto.MovieRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	m := in.ToModel()
	if err := h.svc.Update(ctx, id, &m, in.ActorIDs, in.GenreIDs); err != nil {
		respondError(c, err)
		return
	}

	updated, err := h.svc.GetByID(ctx, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromMovieToResponse(*updated))
}

// Delete removes the movie and everything hanging off it: moments, reviews,
// cast/genre links and favorite entries.
func (h *MovieHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "movie_id")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := h.svc.Delete(ctx, id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
