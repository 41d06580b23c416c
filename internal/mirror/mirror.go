// Package mirror provides the optional remote document mirror.
//
// The mirror is a best-effort copy of the local document on a remote
// REST service. It is only active when both the service URL and the API
// key are configured; every failure is logged and swallowed — the local
// document stays the source of truth and reads never consult the remote
// side.
package mirror

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/mkuiper/kraamlog/internal/logging"
	"github.com/mkuiper/kraamlog/internal/models"
)

const pushTimeout = 30 * time.Second

// Config holds the remote mirror configuration.
type Config struct {
	ServiceURL     string
	APIKey         string
	InstallationID string
}

// Client mirrors documents to the remote service.
type Client struct {
	config     Config
	baseURL    string
	httpClient *http.Client
}

// New creates a mirror client. Use Enabled to check whether the
// configuration is complete and well-formed.
func New(config Config) *Client {
	return &Client{
		config:  config,
		baseURL: strings.TrimRight(config.ServiceURL, "/"),
		httpClient: &http.Client{
			Timeout: pushTimeout,
			Transport: &http.Transport{
				MaxIdleConns:    10,
				IdleConnTimeout: 30 * time.Second,
			},
		},
	}
}

// Enabled reports whether both configuration values are present and the
// service URL parses.
func (c *Client) Enabled() bool {
	if c.config.ServiceURL == "" || c.config.APIKey == "" {
		return false
	}
	u, err := url.Parse(c.config.ServiceURL)
	if err != nil {
		return false
	}
	return u.Scheme == "http" || u.Scheme == "https"
}

// Push uploads a document snapshot. Best-effort: errors are logged at
// warn and never surface to the caller.
func (c *Client) Push(doc models.AppData) {
	if !c.Enabled() {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), pushTimeout)
	defer cancel()

	if err := c.push(ctx, doc); err != nil {
		logging.Warn("mirror push failed, keeping local document",
			map[string]interface{}{"error": err.Error()})
	}
}

func (c *Client) push(ctx context.Context, doc models.AppData) error {
	payload, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to serialize document: %w", err)
	}

	endpoint := fmt.Sprintf("%s/documents/%s", c.baseURL, c.config.InstallationID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("apikey", c.config.APIKey)
	req.Header.Set("Authorization", "Bearer "+c.config.APIKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("push request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("push failed with status %d: %s", resp.StatusCode, string(body))
	}
	return nil
}
