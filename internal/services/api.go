// PostgREST client used by the Supabase content store
package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/desertthunder/contenthub/internal/shared"
)

// APIService makes read-only requests to a PostgREST endpoint (a Supabase project's /rest/v1).
type APIService struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// APIError is the error body PostgREST returns for failed requests.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details"`
	Hint    string `json:"hint"`
}

// NewAPIService creates a client for the project at projectURL authenticated with the anon key.
//
// A nil client uses [http.DefaultClient]; a non-positive rps disables rate limiting.
func NewAPIService(projectURL, apiKey string, client *http.Client, rps float64) *APIService {
	if client == nil {
		client = http.DefaultClient
	}

	svc := &APIService{
		baseURL:    strings.TrimSuffix(projectURL, "/") + "/rest/v1",
		apiKey:     apiKey,
		httpClient: client,
	}
	if rps > 0 {
		svc.limiter = rate.NewLimiter(rate.Limit(rps), 1)
	}
	return svc
}

// NewHTTPClient returns a client with the configured timeout.
func NewHTTPClient(timeoutSeconds int) *http.Client {
	if timeoutSeconds <= 0 {
		return &http.Client{}
	}
	return &http.Client{Timeout: time.Duration(timeoutSeconds) * time.Second}
}

// Select performs GET /rest/v1/{table}?{params} and decodes the JSON array into out.
func (a *APIService) Select(ctx context.Context, table string, params url.Values, out any) error {
	if a.limiter != nil {
		if err := a.limiter.Wait(ctx); err != nil {
			return err
		}
	}

	fullURL := a.baseURL + "/" + table
	if encoded := params.Encode(); encoded != "" {
		fullURL += "?" + encoded
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("apikey", a.apiKey)
	req.Header.Set("Authorization", "Bearer "+a.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: request failed: %w", shared.ErrServiceUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: failed to read response: %w", shared.ErrBackend, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var apiErr APIError
		if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Message != "" {
			return fmt.Errorf("%w: %s (%d): %s", shared.ErrBackend, table, resp.StatusCode, apiErr.Message)
		}
		return fmt.Errorf("%w: %s: status %d", shared.ErrBackend, table, resp.StatusCode)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%w: failed to decode %s: %w", shared.ErrBackend, table, err)
	}
	return nil
}
