package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"geotag-api/internal/geotoken"
	"geotag-api/internal/models"
	"geotag-api/internal/service"

	"github.com/gin-gonic/gin"
)

// ReportHandler handles issue report requests
type ReportHandler struct {
	service ReportService
}

// Service interface for dependency injection
type ReportService interface {
	CreateReport(ctx context.Context, in service.CreateReportInput) (models.Report, error)
	SearchByToken(ctx context.Context, token string, nearby bool, limit int) ([]service.SearchResult, error)
}

// NewReportHandler creates a new report handler
func NewReportHandler(svc ReportService) *ReportHandler {
	return &ReportHandler{service: svc}
}

type createReportRequest struct {
	Category    string   `json:"category" binding:"required"`
	Description string   `json:"description"`
	Label       string   `json:"label"`
	Lat         *float64 `json:"lat" binding:"required"`
	Lng         *float64 `json:"lng" binding:"required"`
}

// Create handles POST /reports requests
func (h *ReportHandler) Create(c *gin.Context) {
	var req createReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "category, lat and lng are required"})
		return
	}

	report, err := h.service.CreateReport(c.Request.Context(), service.CreateReportInput{
		Category:    req.Category,
		Description: req.Description,
		Label:       req.Label,
		Lat:         *req.Lat,
		Lng:         *req.Lng,
	})
	if err != nil {
		if errors.Is(err, geotoken.ErrInvalidCoordinate) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "coordinates out of range"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusCreated, report)
}

// Search handles GET /reports requests
func (h *ReportHandler) Search(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required query parameter 'token'"})
		return
	}

	nearby := c.Query("nearby") == "true"

	limit := 0
	if limitStr := c.Query("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit format"})
			return
		}
		limit = parsed
	}

	results, err := h.service.SearchByToken(c.Request.Context(), token, nearby, limit)
	if err != nil {
		if errors.Is(err, geotoken.ErrInvalidToken) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid geo token"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"reports": results})
}
