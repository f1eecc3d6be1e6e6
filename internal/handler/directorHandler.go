package handler

import (
	"context"
	"net/http"
	"time"

	"moviehub/internal/dto"
	"moviehub/internal/service"

	"github.com/gin-gonic/gin"
)

type DirectorHandler struct {
	svc service.DirectorService
}

func NewDirectorHandler(svc service.DirectorService) *DirectorHandler {
	return &DirectorHandler{svc: svc}
}

func (h *DirectorHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/", h.List)
	rg.GET("/:director_id", h.Get)
	rg.POST("/", h.Create)
	rg.PUT("/:director_id", h.Update)
	rg.DELETE("/:director_id", h.Delete)
}

func (h *DirectorHandler) List(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	list, err := h.svc.GetAll(ctx)
	if err != nil {
		respondError(c, err)
		return
	}
	resp := make([]dto.PersonResponse, 0, len(list))
	for _, d := range list {
		resp = append(resp, dto.FromDirectorToResponse(d))
	}
	c.JSON(http.StatusOK, gin.H{"data": resp, "total": len(resp)})
}

func (h *DirectorHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "director_id")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	d, err := h.svc.GetByID(ctx, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromDirectorToResponse(*d))
}

func (h *DirectorHandler) Create(c *gin.Context) {
	var in dto.PersonRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	d := in.ToDirector()
	if err := h.svc.Create(ctx, &d); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.FromDirectorToResponse(d))
}

func (h *DirectorHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "director_id")
	if !ok {
		return
	}
	var in dto.PersonRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	d := in.ToDirector()
	if err := h.svc.Update(ctx, id, &d); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromDirectorToResponse(d))
}

// Delete detaches the director from any movie before removing the row, so
// movies survive with a null director.
func (h *DirectorHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "director_id")
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
