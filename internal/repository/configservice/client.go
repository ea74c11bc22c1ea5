package configservice

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

type ClientConfig struct {
	BaseURL string
	Timeout time.Duration
}

// Client is the origin config source. It speaks the config-service
// envelope: {"success": bool, "data": {"value": <json>}}.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(cfg ClientConfig) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Client{
		baseURL: cfg.BaseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

type configEnvelope struct {
	Success bool `json:"success"`
	Data    struct {
		Value json.RawMessage `json:"value"`
	} `json:"data"`
}

// Fetch retrieves a single config value. found=false covers both a
// success=false envelope and a 404; transport errors are returned so the
// resolver can surface timeouts.
func (c *Client) Fetch(ctx context.Context, key string) ([]byte, bool, error) {
	endpoint := fmt.Sprintf("%s/api/v1/config/%s", c.baseURL, url.PathEscape(key))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, false, fmt.Errorf("failed to build config request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, false, fmt.Errorf("config service request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, false, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, false, fmt.Errorf("config service returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, false, fmt.Errorf("failed to read config response: %w", err)
	}

	var envelope configEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, false, fmt.Errorf("failed to decode config response: %w", err)
	}
	if !envelope.Success || len(envelope.Data.Value) == 0 {
		return nil, false, nil
	}

	return envelope.Data.Value, true, nil
}
