package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// NewRouter assembles the REST surface under /api/v1.
func NewRouter(searchHandler *SearchHandler, bookingHandler *BookingHandler, alertHandler *AlertHandler) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")
	searchHandler.Register(v1)
	bookingHandler.Register(v1.Group("/bookings"))
	alertHandler.Register(v1.Group("/alerts"))

	return router
}
