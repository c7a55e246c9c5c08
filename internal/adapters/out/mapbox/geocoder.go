// Package mapbox implements the geocoder port against the Mapbox forward
// geocoding API. The client is deliberately thin: one request per destination,
// bounded by the caller's context, no retries. Callers treat any failure as
// "no destination" and quote the generic locker fallback.
package mapbox

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"lastmile/internal/core/domain/model/kernel"
	"lastmile/internal/core/ports"
)

const (
	defaultBaseURL = "https://api.mapbox.com"
	defaultTimeout = 5 * time.Second
	resultLimit    = 1
)

// Geocoder resolves free-form addresses to coordinates via Mapbox.
type Geocoder struct {
	client      *http.Client
	baseURL     string
	accessToken string
}

// Option customizes the geocoder client.
type Option func(*Geocoder)

// WithBaseURL overrides the API endpoint. Used by tests.
func WithBaseURL(baseURL string) Option {
	return func(g *Geocoder) {
		g.baseURL = baseURL
	}
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(g *Geocoder) {
		g.client = client
	}
}

// NewGeocoder creates a geocoder client authenticated with the given access token.
func NewGeocoder(accessToken string, opts ...Option) *Geocoder {
	g := &Geocoder{
		client:      &http.Client{Timeout: defaultTimeout},
		baseURL:     defaultBaseURL,
		accessToken: accessToken,
	}

	for _, opt := range opts {
		opt(g)
	}

	return g
}

// geocodeResponse mirrors the slice of the Mapbox response the quote needs.
// Center is a [longitude, latitude] pair.
type geocodeResponse struct {
	Features []struct {
		Center []float64 `json:"center"`
	} `json:"features"`
}

// Geocode resolves an address to coordinates. Returns ports.ErrAddressNotFound
// when the API has no match for the address.
func (g *Geocoder) Geocode(ctx context.Context, address string) (kernel.Coordinates, error) {
	endpoint := fmt.Sprintf("%s/geocoding/v5/mapbox.places/%s.json",
		g.baseURL, url.PathEscape(address))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return kernel.Coordinates{}, fmt.Errorf("build geocoding request: %w", err)
	}

	query := req.URL.Query()
	query.Set("access_token", g.accessToken)
	query.Set("limit", fmt.Sprint(resultLimit))
	req.URL.RawQuery = query.Encode()

	resp, err := g.client.Do(req)
	if err != nil {
		return kernel.Coordinates{}, fmt.Errorf("geocoding request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return kernel.Coordinates{}, fmt.Errorf("geocoding request: unexpected status %d", resp.StatusCode)
	}

	var payload geocodeResponse
	if err = json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return kernel.Coordinates{}, fmt.Errorf("decode geocoding response: %w", err)
	}

	if len(payload.Features) == 0 {
		return kernel.Coordinates{}, ports.ErrAddressNotFound
	}

	center := payload.Features[0].Center
	if len(center) != 2 {
		return kernel.Coordinates{}, fmt.Errorf("geocoding response: malformed center %v", center)
	}

	return kernel.NewCoordinates(center[1], center[0])
}
