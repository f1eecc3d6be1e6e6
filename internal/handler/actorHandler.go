package handler

import (
	"context"
	"net/http"
	"time"

	"moviehub/internal/dto"
	"moviehub/internal/service"

	"github.com/gin-gonic/gin"
)

type ActorHandler struct {
	svc service.ActorService
}

func NewActorHandler(svc service.ActorService) *ActorHandler {
	return &ActorHandler{svc: svc}
}

func (h *ActorHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/", h.List)
	rg.GET("/:actor_id", h.Get)
	rg.POST("/", h.Create)
	rg.PUT("/:actor_id", h.Update)
	rg.DELETE("/:actor_id", h.Delete)
}

func (h *ActorHandler) List(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	list, err := h.svc.GetAll(ctx)
	if err != nil {
		respondError(c, err)
		return
	}
	resp := make([]dto.PersonResponse, 0, len(list))
	for _, a := range list {
		resp = append(resp, dto.FromActorToResponse(a))
	}
	c.JSON(http.StatusOK, gin.H{"data": resp, "total": len(resp)})
}

func (h *ActorHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "actor_id")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	a, err := h.svc.GetByID(ctx, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromActorToResponse(*a))
}

func (h *ActorHandler) Create(c *gin.Context) {
	var in dto.PersonRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	a := in.ToActor()
	if err := h.svc.Create(ctx, &a); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.FromActorToResponse(a))
}

func (h *ActorHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "actor_id")
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

	a := in.ToActor()
	if err := h.svc.Update(ctx, id, &a); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromActorToResponse(a))
}

func (h *ActorHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "actor_id")
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
