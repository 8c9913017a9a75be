// Package service declares the external capabilities the domain depends on.
package service

import "context"

// GeocodeResult contains location data returned by a geocoding provider.
type GeocodeResult struct {
	Latitude  float64
	Longitude float64
}

// Geocoder converts a formatted address query string into coordinates.
// Implementations are best-effort collaborators: callers treat any failure as
// a recoverable side effect, never as a reason to abort a write.
type Geocoder interface {
	// Geocode resolves the URL-encoded query. The boolean result is false
	// when the provider returned no usable result for the query.
	Geocode(ctx context.Context, query string) (GeocodeResult, bool, error)
}
