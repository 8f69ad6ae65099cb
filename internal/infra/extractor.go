package infra

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"

	"github.com/bsaveapp/bsave/internal/domain"
	"github.com/bsaveapp/bsave/internal/models"
	"github.com/bsaveapp/bsave/internal/ports"
)

// DefaultBaseURL is the fixed extraction endpoint. Overridable only for
// deployment and tests.
const DefaultBaseURL = "https://fb-video-api.vercel.app/api/video"

type ExtractorClient struct {
	baseURL string
	client  *http.Client
}

func NewExtractorClient(baseURL string, httpClient *http.Client) ports.Extractor {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &ExtractorClient{
		baseURL: baseURL,
		client:  httpClient,
	}
}

// Resolve performs exactly one GET against the extraction endpoint with the
// video URL percent-encoded as a query parameter. No retries.
func (c *ExtractorClient) Resolve(ctx context.Context, videoURL string) (models.ExtractResponse, error) {
	reqURL := c.baseURL + "?url=" + url.QueryEscape(videoURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return models.ExtractResponse{}, fmt.Errorf("%w: build request: %v", domain.ErrService, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		if isConnectivityError(err) {
			return models.ExtractResponse{}, fmt.Errorf("%w: %v", domain.ErrConnectivity, err)
		}
		return models.ExtractResponse{}, fmt.Errorf("%w: %v", domain.ErrService, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return models.ExtractResponse{}, fmt.Errorf("%w: read response: %v", domain.ErrService, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return models.ExtractResponse{}, &domain.HTTPStatusError{StatusCode: resp.StatusCode}
	}

	var parsed models.ExtractResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return models.ExtractResponse{}, fmt.Errorf("%w: decode response: %v", domain.ErrService, err)
	}
	return parsed, nil
}

// isConnectivityError separates failures of the network layer itself from
// everything else that can go wrong around a request.
func isConnectivityError(err error) bool {
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return true
	}
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
