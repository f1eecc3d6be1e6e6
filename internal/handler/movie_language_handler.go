package handler

import (
	"context"
	"net/http"
	"time"

	"moviehub/internal/dto"
	"moviehub/internal/service"

	"github.com/gin-gonic/gin"
)

type MovieLanguageHandler struct {
	svc service.MovieLanguageService
}

func NewMovieLanguageHandler(svc service.MovieLanguageService) *MovieLanguageHandler {
	return &MovieLanguageHandler{svc: svc}
}

func (h *MovieLanguageHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/", h.List)
	rg.GET("/:language_id", h.Get)
	rg.POST("/", h.Create)
	rg.PUT("/:language_id", h.Update)
	rg.DELETE("/:language_id", h.Delete)
}

func (h *MovieLanguageHandler) List(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	list, err := h.svc.GetAll(ctx)
	if err != nil {
		respondError(c, err)
		return
	}
	resp := make([]dto.MovieLanguageResponse, 0, len(list))
	for _, ml := range list {
		resp = append(resp, dto.FromMovieLanguageToResponse(ml))
	}
	c.JSON(http.StatusOK, gin.H{"data": resp, "total": len(resp)})
}

func (h *MovieLanguageHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "language_id")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	ml, err := h.svc.GetByID(ctx, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromMovieLanguageToResponse(*ml))
}

func (h *MovieLanguageHandler) Create(c *gin.Context) {
	var in dto.MovieLanguageRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	ml := in.ToModel()
	if err := h.svc.Create(ctx, &ml); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.FromMovieLanguageToResponse(ml))
}

func (h *MovieLanguageHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "language_id")
	if !ok {
		return
	}
	var in dto.MovieLanguageRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	ml := in.ToModel()
	if err := h.svc.Update(ctx, id, &ml); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromMovieLanguageToResponse(ml))
}

func (h *MovieLanguageHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "language_id")
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
