// Package handler exposes ad spend operations over HTTP.
package handler

import (
	"net/http"

	"maxclaim_backend/internal/adspend/service"
	"maxclaim_backend/internal/adspend/transport"
	"maxclaim_backend/platform/httpkit"
	"maxclaim_backend/platform/validator"

	"github.com/gin-gonic/gin"
)

const (
	msgInvalidRequest   = "invalid request"
	msgValidationFailed = "validation failed"
)

// Handler handles HTTP requests for ad spend.
type Handler struct {
	svc *service.Service
	val *validator.Validator
}

// New creates a new ad spend handler.
func New(svc *service.Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

// RegisterRoutes registers ad spend routes.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/regions/:state", h.RegionCosts)
	rg.POST("/allocate", h.Allocate)
	rg.POST("/plan", h.RecommendPlan)
}

func (h *Handler) RegionCosts(c *gin.Context) {
	var req transport.RegionCostsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	result, err := h.svc.RegionCosts(c.Request.Context(), c.Param("state"), req)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, result)
}

func (h *Handler) Allocate(c *gin.Context) {
	var req transport.AllocateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	result, err := h.svc.Allocate(c.Request.Context(), req)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, result)
}

func (h *Handler) RecommendPlan(c *gin.Context) {
	var req transport.PlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	result, err := h.svc.RecommendPlan(c.Request.Context(), req)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, result)
}
