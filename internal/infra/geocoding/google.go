// Package geocoding implements the Geocoder capability against the Google
// Maps geocoding JSON API.
package geocoding

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"addrbook/config"
	"addrbook/internal/domain/service"

	"github.com/pkg/errors"
)

const defaultEndpoint = "https://maps.google.com/maps/api/geocode/json"

type googleGeocoder struct {
	client   *http.Client
	endpoint string
	apiKey   string
}

// NewGoogleGeocoder creates a Geocoder backed by the Google Maps API. The
// HTTP client is bounded by the configured timeout so a slow provider can
// only delay a save, never hang it.
func NewGoogleGeocoder(cfg config.GeocodingConfig) service.Geocoder {
	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = defaultEndpoint
	}

	return &googleGeocoder{
		client:   &http.Client{Timeout: cfg.Timeout},
		endpoint: endpoint,
		apiKey:   cfg.APIKey,
	}
}

// geocodeResponse mirrors the subset of the provider payload we read.
type geocodeResponse struct {
	Status  string `json:"status"`
	Results []struct {
		Geometry struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
	} `json:"results"`
}

// Geocode resolves the URL-encoded query to the first result's coordinates.
func (g *googleGeocoder) Geocode(ctx context.Context, query string) (service.GeocodeResult, bool, error) {
	requestURL := g.endpoint + "?address=" + query + "&sensor=false&key=" + url.QueryEscape(g.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return service.GeocodeResult{}, false, errors.Wrap(err, "build geocoding request")
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return service.GeocodeResult{}, false, errors.Wrap(err, "call geocoding provider")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return service.GeocodeResult{}, false, errors.Errorf("geocoding provider returned status %d", resp.StatusCode)
	}

	var payload geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return service.GeocodeResult{}, false, errors.Wrap(err, "decode geocoding response")
	}

	if len(payload.Results) == 0 {
		return service.GeocodeResult{}, false, nil
	}

	location := payload.Results[0].Geometry.Location

	return service.GeocodeResult{Latitude: location.Lat, Longitude: location.Lng}, true, nil
}
