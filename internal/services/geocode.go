// OpenCage implementation of [Geocoder]
//
// https://opencagedata.com/api
package services

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"gigmix/internal/models"
	"gigmix/internal/shared"
)

const defaultOpenCageBaseURL = "https://api.opencagedata.com/geocode/v1/json"

// OpenCageClient implements [Geocoder] against the OpenCage forward-geocoding API.
type OpenCageClient struct {
	baseURL    string
	key        string
	httpClient *http.Client
	retry      shared.Retry
}

// NewOpenCageClient creates a geocoding client with the given API key.
func NewOpenCageClient(key string, client *http.Client) *OpenCageClient {
	if client == nil {
		client = http.DefaultClient
	}

	return &OpenCageClient{
		baseURL:    defaultOpenCageBaseURL,
		key:        key,
		httpClient: client,
		retry:      shared.NewRetry(),
	}
}

// Geocode resolves a city name to coordinates, taking the first result only.
//
// Identical queries repeat the network call; there is no cache. Transient
// failures are retried by the client's retry policy before the terminal error
// is returned.
func (c *OpenCageClient) Geocode(ctx context.Context, city string) (models.Coordinates, error) {
	if c.key == "" {
		return models.Coordinates{}, fmt.Errorf("%w: geocoding API key not set", shared.ErrMissingConfig)
	}

	query := url.Values{}
	query.Set("q", city)
	query.Set("key", c.key)
	query.Set("limit", "1")
	reqURL := c.baseURL + "?" + query.Encode()

	var body struct {
		Results []struct {
			Geometry struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"geometry"`
		} `json:"results"`
	}

	err := c.retry.Do(ctx, func(ctx context.Context) error {
		body.Results = nil
		return getJSON(ctx, c.httpClient, reqURL, &body)
	})
	if err != nil {
		return models.Coordinates{}, fmt.Errorf("%w: geocoding %q: %v", shared.ErrAPIRequest, city, err)
	}

	if len(body.Results) == 0 {
		return models.Coordinates{}, fmt.Errorf("%w: no match for %q", shared.ErrPlaceNotFound, city)
	}

	geometry := body.Results[0].Geometry
	return models.Coordinates{Lat: geometry.Lat, Lng: geometry.Lng}, nil
}
