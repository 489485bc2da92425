package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"geotag-api/internal/geotoken"

	"github.com/gin-gonic/gin"
)

// LocationHandler handles privacy location requests
type LocationHandler struct {
	service LocationService
}

// Service interface for dependency injection
type LocationService interface {
	Tag(lat, lng float64, label string) (geotoken.PrivacyLocation, error)
	ResolveArea(token string) (geotoken.Area, error)
	Nearby(token string) ([]string, error)
	ExtractTokens(text string) []string
	Contains(token string, lat, lng float64) (bool, error)
}

// NewLocationHandler creates a new location handler
func NewLocationHandler(svc LocationService) *LocationHandler {
	return &LocationHandler{service: svc}
}

type tagRequest struct {
	Lat   *float64 `json:"lat" binding:"required"`
	Lng   *float64 `json:"lng" binding:"required"`
	Label string   `json:"label"`
}

// Tag handles POST /locations requests
func (h *LocationHandler) Tag(c *gin.Context) {
	var req tagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "lat and lng are required"})
		return
	}

	loc, err := h.service.Tag(*req.Lat, *req.Lng, req.Label)
	if err != nil {
		if errors.Is(err, geotoken.ErrInvalidCoordinate) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "coordinates out of range"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusCreated, loc)
}

// Area handles GET /locations/:token/area requests
func (h *LocationHandler) Area(c *gin.Context) {
	area, err := h.service.ResolveArea(tokenParam(c))
	if err != nil {
		if errors.Is(err, geotoken.ErrInvalidToken) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid geo token"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, area)
}

// Neighbors handles GET /locations/:token/neighbors requests
func (h *LocationHandler) Neighbors(c *gin.Context) {
	neighbors, err := h.service.Nearby(tokenParam(c))
	if err != nil {
		if errors.Is(err, geotoken.ErrInvalidToken) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid geo token"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"tokens": neighbors})
}

// Contains handles GET /locations/:token/contains requests
func (h *LocationHandler) Contains(c *gin.Context) {
	latStr := c.Query("lat")
	lngStr := c.Query("lng")

	if latStr == "" || lngStr == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required query parameters 'lat' and 'lng'"})
		return
	}

	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid latitude format"})
		return
	}

	lng, err := strconv.ParseFloat(lngStr, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid longitude format"})
		return
	}

	inside, err := h.service.Contains(tokenParam(c), lat, lng)
	if err != nil {
		if errors.Is(err, geotoken.ErrInvalidToken) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid geo token"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"contains": inside})
}

type extractRequest struct {
	Text string `json:"text"`
}

// Extract handles POST /locations/extract requests
func (h *LocationHandler) Extract(c *gin.Context) {
	var req extractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	tokens := h.service.ExtractTokens(req.Text)
	if tokens == nil {
		tokens = []string{}
	}

	c.JSON(http.StatusOK, gin.H{"tokens": tokens})
}

// tokenParam returns the :token path parameter with the leading hash
// restored. A literal '#' starts the URL fragment, so clients send tokens
// with the hash percent-encoded or dropped entirely.
func tokenParam(c *gin.Context) string {
	token := c.Param("token")
	if !strings.HasPrefix(token, "#") {
		token = "#" + token
	}
	return token
}
