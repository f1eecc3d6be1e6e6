package handler

import (
	"context"
	"net/http"
	"time"

	"moviehub/internal/dto"
	"moviehub/internal/service"

	"github.com/gin-gonic/gin"
)

type MomentHandler struct {
	svc service.MomentService
}

func NewMomentHandler(svc service.MomentService) *MomentHandler {
	return &MomentHandler{svc: svc}
}

func (h *MomentHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/", h.List)
	rg.GET("/:moment_id", h.Get)
	rg.POST("/", h.Create)
	rg.PUT("/:moment_id", h.Update)
	rg.DELETE("/:moment_id", h.Delete)
}

func (h *MomentHandler) List(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	list, err := h.svc.GetAll(ctx)
	if err != nil {
		respondError(c, err)
		return
	}
	resp := make([]dto.MomentResponse, 0, len(list))
	for _, m := range list {
		resp = append(resp, dto.FromMomentToResponse(m))
	}
	c.JSON(http.StatusOK, gin.H{"data": resp, "total": len(resp)})
}

func (h *MomentHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "moment_id")
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
	c.JSON(http.StatusOK, dto.FromMomentToResponse(*m))
}

func (h *MomentHandler) Create(c *gin.Context) {
	var in dto.MomentRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	m := in.ToModel()
	if err := h.svc.Create(ctx, &m); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.FromMomentToResponse(m))
}

func (h *MomentHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "moment_id")
	if !ok {
		return
	}
	var in dto.MomentRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	m := in.ToModel()
	if err := h.svc.Update(ctx, id, &m); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromMomentToResponse(m))
}

func (h *MomentHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "moment_id")
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
