// Package calcapi is the HTTP client for the remote time calculation service.
package calcapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"time-calculator/internal/model"
	pkgLog "time-calculator/pkg/log"
)

// CalculatePath is the endpoint of the calculation service.
const CalculatePath = "/api/calculate_time"

// RequestIDHeader carries the id that ties client and service logs together.
const RequestIDHeader = "X-Request-ID"

// Calculator computes a result for a request payload.
type Calculator interface {
	Calculate(ctx context.Context, payload model.RequestPayload) (*model.CalculationResult, error)
}

// Client is the HTTP wrapper for the calculation service.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new calculation service client. A nil httpClient uses a default one.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

// Calculate posts the payload. A 2xx response is decoded whatever shape it has;
// a non-2xx one comes back as *RequestError.
func (c *Client) Calculate(ctx context.Context, payload model.RequestPayload) (*model.CalculationResult, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal calculate request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+CalculatePath, bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build calculate request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set(RequestIDHeader, requestID(ctx))

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to call calculate API: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read calculate response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		reqErr := &RequestError{StatusCode: resp.StatusCode}
		var errBody struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(raw, &errBody) == nil {
			reqErr.Message = errBody.Error
		}
		return nil, reqErr
	}

	var result model.CalculationResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, fmt.Errorf("failed to decode calculate response: %w", err)
	}
	return &result, nil
}

func requestID(ctx context.Context) string {
	if id := pkgLog.TraceID(ctx); id != "" {
		return id
	}
	return uuid.NewString()
}

var _ Calculator = (*Client)(nil)
