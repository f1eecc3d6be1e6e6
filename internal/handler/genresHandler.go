package handler

import (
	"context"
	"net/http"
	"time"

	"moviehub/internal/dto"
	"moviehub/internal/service"

	"github.com/gin-gonic/gin"
)

type GenreHandler struct {
	svc service.GenreService
}

func NewGenreHandler(svc service.GenreService) *GenreHandler {
	return &GenreHandler{svc: svc}
}

func (h *GenreHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/", h.List)
	rg.GET("/:genre_id", h.Get)
	rg.GET("/:genre_id/movies", h.Movies)
	rg.POST("/", h.Create)
	rg.PUT("/:genre_id", h.Update)
	rg.DELETE("/:genre_id", h.Delete)
}

func (h *GenreHandler) List(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	list, err := h.svc.GetAll(ctx)
	if err != nil {
		respondError(c, err)
		return
	}
	resp := make([]dto.GenreResponse, 0, len(list))
	for _, g := range list {
		resp = append(resp, dto.FromGenreToResponse(g))
	}
	c.JSON(http.StatusOK, gin.H{"data": resp, "total": len(resp)})
}

func (h *GenreHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "genre_id")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	g, err := h.svc.GetByID(ctx, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromGenreToResponse(*g))
}

// Movies lists every movie carrying the genre.
func (h *GenreHandler) Movies(c *gin.Context) {
	id, ok := parseIDParam(c, "genre_id")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	movies, err := h.svc.GetMoviesByGenre(ctx, id)
	if err != nil {
		respondError(c, err)
		return
	}
	resp := make([]dto.MovieResponse, 0, len(movies))
	for _, m := range movies {
		resp = append(resp, dto.FromMovieToResponse(m))
	}
	c.JSON(http.StatusOK, gin.H{"data": resp, "total": len(resp)})
}

func (h *GenreHandler) Create(c *gin.Context) {
	var in dto.GenreRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	g := in.ToModel()
	if err := h.svc.Create(ctx, &g); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.FromGenreToResponse(g))
}

func (h *GenreHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "genre_id")
	if !ok {
		return
	}
	var in dto.GenreRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	g := in.ToModel()
	if err := h.svc.Update(ctx, id, &g); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromGenreToResponse(g))
}

func (h *GenreHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "genre_id")
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
