package api

import (
	"errors"
	"net/http"

	"github.com/Domenick1991/fastflight/internal/ai"
	"github.com/Domenick1991/fastflight/internal/filter"
	"github.com/Domenick1991/fastflight/internal/service/search"
	"github.com/gin-gonic/gin"
)

type SearchHandler struct {
	service search.SearchUseCase
}

type searchRequest struct {
	Origin        string             `json:"origin"`
	Destination   string             `json:"destination"`
	TripType      string             `json:"trip_type"`
	DepartureDate string             `json:"departure_date"`
	ReturnDate    string             `json:"return_date"`
	Travelers     int                `json:"travelers"`
	Filters       *filter.Selections `json:"filters"`
}

type chatRequest struct {
	Messages []ai.ChatMessage `json:"messages"`
}

func NewSearchHandler(service search.SearchUseCase) *SearchHandler {
	return &SearchHandler{service: service}
}

func (h *SearchHandler) Register(router *gin.RouterGroup) {
	router.POST("/search", h.search)
	router.POST("/chat", h.chat)
	router.POST("/compare/:id", h.toggleCompare)
	router.GET("/compare", h.compareList)
	router.DELETE("/compare", h.clearCompare)
}

func (h *SearchHandler) search(c *gin.Context) {
	var req searchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tripType := req.TripType
	if tripType == "" {
		tripType = ai.TripTypeOneWay
	}
	travelers := req.Travelers
	if travelers == 0 {
		travelers = 1
	}

	result, err := h.service.Search(c.Request.Context(), ai.SearchCriteria{
		Origin:        req.Origin,
		Destination:   req.Destination,
		TripType:      tripType,
		DepartureDate: req.DepartureDate,
		ReturnDate:    req.ReturnDate,
		Travelers:     travelers,
	})
	if err != nil {
		var pe *ai.ProviderError
		if errors.As(err, &pe) {
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Filters narrow the response only. Alerts and the compare selection
	// already saw the full result set inside the service.
	if req.Filters != nil {
		result.Flights = filter.Apply(result.Flights, req.Filters)
		result.ReturnFlights = filter.Apply(result.ReturnFlights, req.Filters)
	}

	c.JSON(http.StatusOK, result)
}

func (h *SearchHandler) chat(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reply, err := h.service.Chat(c.Request.Context(), req.Messages)
	if err != nil {
		var pe *ai.ProviderError
		if errors.As(err, &pe) {
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, reply)
}

func (h *SearchHandler) toggleCompare(c *gin.Context) {
	selection, err := h.service.ToggleCompare(c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, search.ErrUnknownFlight):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, filter.ErrSelectionFull):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"selection": selection})
}

func (h *SearchHandler) compareList(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"selection": h.service.CompareList()})
}

func (h *SearchHandler) clearCompare(c *gin.Context) {
	h.service.ClearCompare()
	c.Status(http.StatusNoContent)
}
