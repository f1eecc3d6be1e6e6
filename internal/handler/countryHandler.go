package handler

import (
	"context"
	"net/http"
	"time"

	"moviehub/internal/dto"
	"moviehub/internal/service"

	"github.com/gin-gonic/gin"
)

type CountryHandler struct {
	svc service.CountryService
}

func NewCountryHandler(svc service.CountryService) *CountryHandler {
	return &CountryHandler{svc: svc}
}

func (h *CountryHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/", h.List)
	rg.GET("/:country_id", h.Get)
	rg.POST("/", h.Create)
	rg.PUT("/:country_id", h.Update)
	rg.DELETE("/:country_id", h.Delete)
}

func (h *CountryHandler) List(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	list, err := h.svc.GetAll(ctx)
	if err != nil {
		respondError(c, err)
		return
	}
	resp := make([]dto.CountryResponse, 0, len(list))
	for _, country := range list {
		resp = append(resp, dto.FromCountryToResponse(country))
	}
	c.JSON(http.StatusOK, gin.H{"data": resp, "total": len(resp)})
}

func (h *CountryHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "country_id")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	country, err := h.svc.GetByID(ctx, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromCountryToResponse(*country))
}

func (h *CountryHandler) Create(c *gin.Context) {
	var in dto.CountryRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	country := in.ToModel()
	if err := h.svc.Create(ctx, &country); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.FromCountryToResponse(country))
}

func (h *CountryHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "country_id")
	if !ok {
		return
	}
	var in dto.CountryRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	country := in.ToModel()
	if err := h.svc.Update(ctx, id, &country); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromCountryToResponse(country))
}

// Delete removes the country together with all of its movies.
func (h *CountryHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "country_id")
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
