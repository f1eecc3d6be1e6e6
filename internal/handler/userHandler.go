package handler

import (
	"context"
	"net/http"
	"time"

	"moviehub/internal/dto"
	"moviehub/internal/service"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	svc service.UserService
}

func NewUserHandler(svc service.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

func (h *UserHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/", h.List)
	rg.GET("/:user_id", h.Get)
	rg.PUT("/:user_id", h.Update)
	rg.DELETE("/:user_id", h.Delete)
}

func (h *UserHandler) List(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	list, err := h.svc.GetAll(ctx)
	if err != nil {
		respondError(c, err)
		return
	}
	resp := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		resp = append(resp, dto.FromUserToResponse(u))
	}
	c.JSON(http.StatusOK, gin.H{"data": resp, "total": len(resp)})
}

func (h *UserHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "user_id")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	u, err := h.svc.GetByID(ctx, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromUserToResponse(*u))
}

func (h *UserHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "user_id")
	if !ok {
		return
	}
	var in dto.UserRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	u := in.ToModel()
	if err := h.svc.Update(ctx, id, &u, in.Password); err != nil {
		respondError(c, err)
		return
	}
	u.ID = id
	c.JSON(http.StatusOK, dto.FromUserToResponse(u))
}

// Delete refuses while the profile still has authored reviews.
func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "user_id")
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
