package api

import (
	"errors"
	"net/http"

	"github.com/Domenick1991/fastflight/internal/service/alerts"
	"github.com/Domenick1991/fastflight/internal/store"
	"github.com/gin-gonic/gin"
)

type AlertHandler struct {
	service alerts.AlertUseCase
}

func NewAlertHandler(service alerts.AlertUseCase) *AlertHandler {
	return &AlertHandler{service: service}
}

func (h *AlertHandler) Register(router *gin.RouterGroup) {
	router.POST("/", h.create)
	router.GET("/", h.list)
	router.DELETE("/:id", h.remove)
}

func (h *AlertHandler) create(c *gin.Context) {
	var req alerts.CreateAlertInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	alert, err := h.service.CreateAlert(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, alert)
}

func (h *AlertHandler) list(c *gin.Context) {
	list, err := h.service.Alerts(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *AlertHandler) remove(c *gin.Context) {
	if err := h.service.RemoveAlert(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
