package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/shenikar/outage_reporting_system/internal/models"
	"github.com/sirupsen/logrus"
)

const defaultBaseURL = "https://api.mapbox.com/geocoding/v5/mapbox.places"

// MapboxClient переводит адрес отчета в координаты через Mapbox Geocoding API
type MapboxClient struct {
	token      string
	httpClient *http.Client
	baseURL    string
	logger     *logrus.Logger
}

func NewMapboxClient(token string, timeout time.Duration, logger *logrus.Logger) *MapboxClient {
	return &MapboxClient{
		token: token,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL: defaultBaseURL,
		logger:  logger,
	}
}

// ForwardGeocode возвращает координаты первого найденного объекта.
// found=false, если Mapbox ничего не нашел.
func (c *MapboxClient) ForwardGeocode(ctx context.Context, query string) (models.GeoPoint, bool, error) {
	log := c.logger.WithFields(logrus.Fields{
		"component": "mapbox",
		"method":    "ForwardGeocode",
	})

	u := fmt.Sprintf("%s/%s.json", c.baseURL, url.PathEscape(query))
	params := url.Values{
		"access_token": {c.token},
		"limit":        {"1"},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u+"?"+params.Encode(), nil)
	if err != nil {
		return models.GeoPoint{}, false, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return models.GeoPoint{}, false, fmt.Errorf("forward geocode request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return models.GeoPoint{}, false, fmt.Errorf("mapbox API error: status %d: %s", resp.StatusCode, body)
	}

	var mapboxResp response
	if err := json.NewDecoder(resp.Body).Decode(&mapboxResp); err != nil {
		return models.GeoPoint{}, false, fmt.Errorf("decode response: %w", err)
	}

	if len(mapboxResp.Features) == 0 || len(mapboxResp.Features[0].Center) != 2 {
		log.Debug("Mapbox returned no features")
		return models.GeoPoint{}, false, nil
	}

	f := mapboxResp.Features[0]
	log.WithFields(logrus.Fields{
		"place":     f.PlaceName,
		"relevance": f.Relevance,
	}).Debug("Address geocoded")

	// Mapbox отдает center как [lon, lat]
	return models.GeoPoint{Latitude: f.Center[1], Longitude: f.Center[0]}, true, nil
}

type response struct {
	Features []feature `json:"features"`
}

type feature struct {
	Center    []float64 `json:"center"`
	PlaceName string    `json:"place_name"`
	Text      string    `json:"text"`
	Relevance float64   `json:"relevance"`
}
