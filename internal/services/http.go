// Shared HTTP plumbing for the provider clients.
package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// getJSON performs a GET request and decodes the JSON response into result.
//
// A non-2xx status is an error; when the body carries a provider error message
// it is included in the returned error.
func getJSON(ctx context.Context, client *http.Client, rawURL string, result any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	return doJSON(client, req, result)
}

// postJSON performs a POST request with a JSON body and decodes the response.
// When bearer is non-empty it is sent as an Authorization header.
func postJSON(ctx context.Context, client *http.Client, rawURL, bearer string, body, result any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, rawURL, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	return doJSON(client, req, result)
}

func doJSON(client *http.Client, req *http.Request, result any) error {
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errResp struct {
			Error struct {
				Message string `json:"message"`
			} `json:"error"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&errResp); err == nil && errResp.Error.Message != "" {
			return fmt.Errorf("provider error (status %d): %s", resp.StatusCode, errResp.Error.Message)
		}
		return fmt.Errorf("provider error: status %d", resp.StatusCode)
	}

	if result != nil {
		if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}
