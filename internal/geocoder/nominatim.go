// Package geocoder resolves geo tokens to human-readable place names. It is
// an optional collaborator: the token codec never depends on it, and callers
// are expected to tolerate it being absent or failing.
package geocoder

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"geotag-api/internal/geotoken"

	"github.com/rs/zerolog"
)

// Place is the human-readable description of a token's area.
type Place struct {
	Neighborhood string `json:"neighborhood,omitempty"`
	City         string `json:"city,omitempty"`
	State        string `json:"state,omitempty"`
	Country      string `json:"country,omitempty"`
	Formatted    string `json:"formatted"`
}

// Describer resolves a token to a place description. A nil Place with a nil
// error means the area could not be described.
type Describer interface {
	Describe(ctx context.Context, token string) (*Place, error)
}

// Client implements Describer against the Nominatim reverse geocoding API,
// looking up the center of the token's cell.
type Client struct {
	codec      *geotoken.Codec
	httpClient *http.Client
	baseURL    string
	logger     zerolog.Logger
}

// NewClient creates a Nominatim geocoding client.
func NewClient(codec *geotoken.Codec, baseURL string, timeout time.Duration, logger zerolog.Logger) *Client {
	return &Client{
		codec: codec,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL: baseURL,
		logger:  logger,
	}
}

// Describe resolves the token's cell center to a place description.
func (c *Client) Describe(ctx context.Context, token string) (*Place, error) {
	area, err := c.codec.ParseArea(token)
	if err != nil {
		return nil, err
	}

	params := url.Values{
		"lat":    {strconv.FormatFloat(area.Center.Lat, 'f', 6, 64)},
		"lon":    {strconv.FormatFloat(area.Center.Lng, 'f', 6, 64)},
		"format": {"jsonv2"},
		// Zoom 14 resolves to suburb level, matching the ~1 km cell size.
		"zoom": {"14"},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/reverse?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", "geotag-api/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("reverse geocode request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("nominatim API error: status %d: %s", resp.StatusCode, body)
	}

	var nr response
	if err := json.NewDecoder(resp.Body).Decode(&nr); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	if nr.DisplayName == "" {
		return nil, nil
	}

	place := &Place{
		Neighborhood: firstNonEmpty(nr.Address.Neighbourhood, nr.Address.Suburb),
		City:         firstNonEmpty(nr.Address.City, nr.Address.Town, nr.Address.Village),
		State:        nr.Address.State,
		Country:      nr.Address.Country,
		Formatted:    nr.DisplayName,
	}
	return place, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// Nominatim API response types.

type response struct {
	DisplayName string  `json:"display_name"`
	Address     address `json:"address"`
}

type address struct {
	Neighbourhood string `json:"neighbourhood"`
	Suburb        string `json:"suburb"`
	City          string `json:"city"`
	Town          string `json:"town"`
	Village       string `json:"village"`
	State         string `json:"state"`
	Country       string `json:"country"`
}
