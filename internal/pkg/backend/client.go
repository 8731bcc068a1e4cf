package backend

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

	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
	"github.com/gregjones/httpcache"

	"github.com/zakerai/zaker-web/internal/pkg/env"
)

const (
	defaultBaseURL = "http://localhost:8000"
	defaultTimeout = 15 * time.Second
	maxBodyBytes   = 1 << 20
)

// Client talks JSON to the Zaker product API.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// APIError is returned for every non-2xx response.
type APIError struct {
	Endpoint string
	Status   int
	Detail   string
}

func (e *APIError) Error() string {
	return e.Detail
}

// New builds a client whose GET responses honour Cache-Control through an
// in-memory httpcache transport.
func New(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{
			Transport: httpcache.NewTransport(httpcache.NewMemoryCache()),
			Timeout:   timeout,
		},
	}
}

func NewFromEnv() *Client {
	return New(
		env.GetEnv("API_BASE_URL", defaultBaseURL),
		env.GetEnvDuration("API_TIMEOUT", defaultTimeout),
	)
}

// Get decodes the JSON response of GET path?query into out.
func (c *Client) Get(ctx context.Context, path string, query url.Values, out interface{}) error {
	endpoint := path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}
	return c.do(ctx, http.MethodGet, endpoint, nil, out)
}

// Post sends body as JSON and decodes the JSON response into out.
func (c *Client) Post(ctx context.Context, path string, body, out interface{}) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

func (c *Client) do(ctx context.Context, method, endpoint string, body, out interface{}) error {
	err := c.roundTrip(ctx, method, endpoint, body, out)
	if err != nil {
		log.Errorf("API Error [%s]: %v", endpoint, err)
	}
	return err
}

func (c *Client) roundTrip(ctx context.Context, method, endpoint string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+endpoint, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &APIError{
			Endpoint: endpoint,
			Status:   resp.StatusCode,
			Detail:   errorDetail(raw, resp.StatusCode),
		}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// errorDetail extracts the "detail" field of an error body. FastAPI returns
// either a string or a list of {loc, msg, type} objects.
func errorDetail(raw []byte, status int) string {
	fallback := fmt.Sprintf("HTTP error! status: %d", status)

	var body struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(raw, &body); err != nil || len(body.Detail) == 0 {
		return fallback
	}

	var text string
	if err := json.Unmarshal(body.Detail, &text); err == nil {
		if strings.TrimSpace(text) == "" {
			return fallback
		}
		return text
	}

	var items []struct {
		Msg string `json:"msg"`
	}
	if err := json.Unmarshal(body.Detail, &items); err == nil {
		msgs := make([]string, 0, len(items))
		for _, it := range items {
			if it.Msg != "" {
				msgs = append(msgs, it.Msg)
			}
		}
		if len(msgs) > 0 {
			return strings.Join(msgs, "; ")
		}
	}
	return fallback
}
