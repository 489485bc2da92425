package handler

import (
	"context"
	"errors"
	"net/http"

	"geotag-api/internal/geocoder"
	"geotag-api/internal/geotoken"

	"github.com/gin-gonic/gin"
)

// PlaceHandler handles place description requests
type PlaceHandler struct {
	service DescribeService
}

// Service interface for dependency injection
type DescribeService interface {
	Describe(ctx context.Context, token string) (*geocoder.Place, error)
}

// NewPlaceHandler creates a new place handler
func NewPlaceHandler(svc DescribeService) *PlaceHandler {
	return &PlaceHandler{service: svc}
}

// Place handles GET /locations/:token/place requests
func (h *PlaceHandler) Place(c *gin.Context) {
	place, err := h.service.Describe(c.Request.Context(), tokenParam(c))
	if err != nil {
		if errors.Is(err, geotoken.ErrInvalidToken) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid geo token"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	if place == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no description available"})
		return
	}

	c.JSON(http.StatusOK, place)
}
