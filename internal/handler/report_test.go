package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"geotag-api/internal/geotoken"
	"geotag-api/internal/models"
	"geotag-api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockReportService is a mock implementation of the ReportService interface
type MockReportService struct {
	mock.Mock
}

func (m *MockReportService) CreateReport(ctx context.Context, in service.CreateReportInput) (models.Report, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(models.Report), args.Error(1)
}

func (m *MockReportService) SearchByToken(ctx context.Context, token string, nearby bool, limit int) ([]service.SearchResult, error) {
	args := m.Called(ctx, token, nearby, limit)
	return args.Get(0).([]service.SearchResult), args.Error(1)
}

func TestReportHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)

	created := models.Report{
		ID:        uuid.MustParse("3e0c9f1a-6c2f-4a4f-9f6e-0d6a7b1f2c3d"),
		Category:  "pothole",
		GeoToken:  "#geo9c3xgv",
		CenterLat: 51.525,
		CenterLng: -0.125,
	}

	tests := []struct {
		name           string
		body           string
		mockReport     models.Report
		mockError      error
		mockExpected   bool
		expectedStatus int
	}{
		{
			name:           "successful creation",
			body:           `{"category": "pothole", "description": "deep one", "lat": 51.5074, "lng": -0.1278}`,
			mockReport:     created,
			mockExpected:   true,
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "missing category",
			body:           `{"lat": 51.5074, "lng": -0.1278}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "missing coordinates",
			body:           `{"category": "pothole"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "coordinates out of range",
			body:           `{"category": "pothole", "lat": 123, "lng": 0}`,
			mockError:      geotoken.ErrInvalidCoordinate,
			mockExpected:   true,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "service error",
			body:           `{"category": "pothole", "lat": 51.5074, "lng": -0.1278}`,
			mockError:      assert.AnError,
			mockExpected:   true,
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := new(MockReportService)
			handler := NewReportHandler(mockSvc)

			if tt.mockExpected {
				mockSvc.On("CreateReport", mock.Anything, mock.AnythingOfType("service.CreateReportInput")).Return(tt.mockReport, tt.mockError)
			}

			req := httptest.NewRequest(http.MethodPost, "/reports", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			c, _ := gin.CreateTestContext(w)
			c.Request = req

			handler.Create(c)

			assert.Equal(t, tt.expectedStatus, w.Code)

			if tt.expectedStatus == http.StatusCreated {
				var got models.Report
				assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
				assert.Equal(t, tt.mockReport.ID, got.ID)
				assert.Equal(t, tt.mockReport.GeoToken, got.GeoToken)
			}

			if tt.mockExpected {
				mockSvc.AssertExpectations(t)
			}
		})
	}
}

func TestReportHandler_Search(t *testing.T) {
	gin.SetMode(gin.TestMode)

	results := []service.SearchResult{
		{
			Report: models.Report{
				ID:       uuid.MustParse("6a1b2c3d-4e5f-4a4f-9f6e-0d6a7b1f2c3d"),
				Category: "pothole",
				GeoToken: "#geo9c3xgv",
			},
			DistanceMeters: 0,
		},
	}

	tests := []struct {
		name           string
		query          string
		mockToken      string
		mockNearby     bool
		mockLimit      int
		mockResults    []service.SearchResult
		mockError      error
		mockExpected   bool
		expectedStatus int
	}{
		{
			name:           "search by token",
			query:          "token=%23geo9c3xgv",
			mockToken:      "#geo9c3xgv",
			mockResults:    results,
			mockExpected:   true,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "nearby search with limit",
			query:          "token=%23geo9c3xgv&nearby=true&limit=5",
			mockToken:      "#geo9c3xgv",
			mockNearby:     true,
			mockLimit:      5,
			mockResults:    []service.SearchResult{},
			mockExpected:   true,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "missing token",
			query:          "",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "bad limit",
			query:          "token=%23geo9c3xgv&limit=abc",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "invalid token",
			query:          "token=%23geo9c3xg1",
			mockToken:      "#geo9c3xg1",
			mockError:      geotoken.ErrInvalidToken,
			mockExpected:   true,
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := new(MockReportService)
			handler := NewReportHandler(mockSvc)

			if tt.mockExpected {
				mockSvc.On("SearchByToken", mock.Anything, tt.mockToken, tt.mockNearby, tt.mockLimit).Return(tt.mockResults, tt.mockError)
			}

			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/reports?"+tt.query, nil)

			handler.Search(c)

			assert.Equal(t, tt.expectedStatus, w.Code)

			if tt.expectedStatus == http.StatusOK {
				var body struct {
					Reports []service.SearchResult `json:"reports"`
				}
				assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
				assert.Len(t, body.Reports, len(tt.mockResults))
			}

			if tt.mockExpected {
				mockSvc.AssertExpectations(t)
			}
		})
	}
}
