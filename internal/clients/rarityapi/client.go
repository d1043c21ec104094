// Package rarityapi is the client for the remote rarity service
package rarityapi

//go:generate mockgen -destination=mock/mock_client.go -package=rarityapimock github.com/KirkDiggler/talent-api/internal/clients/rarityapi Client

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/KirkDiggler/talent-api/internal/entities/talents"
	"github.com/KirkDiggler/talent-api/internal/errors"
	"github.com/KirkDiggler/talent-api/internal/repositories/session"
)

const (
	defaultTimeout = 10 * time.Second
	raritiesPath   = "/api/v1/rarities"

	// cap on error bodies read for a message
	maxErrorBody = 64 << 10
)

// Client defines the remote rarity operations
type Client interface {
	// List fetches every rarity the remote knows about
	List(ctx context.Context) ([]talents.RarityItem, error)

	// Create stores a new rarity and returns the canonical record
	Create(ctx context.Context, input *RarityInput) (*talents.RarityItem, error)

	// Update changes a rarity and returns the canonical record
	Update(ctx context.Context, id string, input *RarityInput) (*talents.RarityItem, error)

	// Delete removes a rarity
	Delete(ctx context.Context, id string) error
}

// RarityInput is the body sent on create and update
type RarityInput struct {
	Tier   string   `json:"tier,omitempty"`
	Color  string   `json:"color,omitempty"`
	Weight *float64 `json:"weight,omitempty"`
}

// Config contains configuration options for the rarity client
type Config struct {
	// BaseURL of the rarity service, e.g. https://api.example.com
	BaseURL string
	// Timeout for each request (optional, defaults to 10 seconds)
	Timeout time.Duration
	// HTTPClient overrides the transport (optional)
	HTTPClient *http.Client
	// Sessions supplies the bearer token (optional)
	Sessions session.Store
}

// Validate checks the configuration
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}

	vb := errors.NewValidationBuilder()
	base := strings.TrimSpace(c.BaseURL)
	if base == "" {
		vb.RequiredField("BaseURL")
	} else if u, err := url.Parse(base); err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		vb.Field("BaseURL", "must be an absolute http or https URL")
	}
	if c.Timeout < 0 {
		vb.Field("Timeout", "must not be negative")
	}
	return vb.Build()
}

type client struct {
	endpoint   string
	httpClient *http.Client
	sessions   session.Store
}

// New creates a rarity client
func New(cfg *Config) (Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid rarity client config")
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout == 0 {
			timeout = defaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	return &client{
		endpoint:   strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/") + raritiesPath,
		httpClient: httpClient,
		sessions:   cfg.Sessions,
	}, nil
}

func (c *client) List(ctx context.Context) ([]talents.RarityItem, error) {
	body, err := c.do(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		return nil, err
	}

	items, err := decodeList(body)
	if err != nil {
		return nil, err
	}

	slog.DebugContext(ctx, "fetched remote rarities", "count", len(items))
	return items, nil
}

func (c *client) Create(ctx context.Context, input *RarityInput) (*talents.RarityItem, error) {
	if input == nil {
		return nil, errors.InvalidArgument("rarity input is required")
	}

	body, err := c.do(ctx, http.MethodPost, c.endpoint, input)
	if err != nil {
		return nil, err
	}
	return decodeOne(body)
}

func (c *client) Update(ctx context.Context, id string, input *RarityInput) (*talents.RarityItem, error) {
	if id == "" {
		return nil, errors.InvalidArgument("rarity ID is required")
	}
	if input == nil {
		return nil, errors.InvalidArgument("rarity input is required")
	}

	body, err := c.do(ctx, http.MethodPut, c.itemURL(id), input)
	if err != nil {
		return nil, err
	}
	return decodeOne(body)
}

func (c *client) Delete(ctx context.Context, id string) error {
	if id == "" {
		return errors.InvalidArgument("rarity ID is required")
	}

	_, err := c.do(ctx, http.MethodDelete, c.itemURL(id), nil)
	return err
}

func (c *client) itemURL(id string) string {
	return c.endpoint + "/" + url.PathEscape(id)
}

// do sends a request and returns the body of a 2xx response. Other statuses
// become errors coded from the status, with the body's message when present.
func (c *client) do(ctx context.Context, method, target string, payload any) ([]byte, error) {
	var reader io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, errors.Wrap(err, "failed to marshal request")
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build request")
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if err := c.authorize(ctx, req); err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "rarity service request failed")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		msg := errorMessage(data)
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		slog.WarnContext(ctx, "rarity service returned an error",
			"method", method,
			"status", resp.StatusCode,
			"message", msg)
		return nil, errors.New(errors.FromHTTPStatus(resp.StatusCode), msg).
			WithMeta("http_status", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to read rarity service response")
	}
	return data, nil
}

func (c *client) authorize(ctx context.Context, req *http.Request) error {
	if c.sessions == nil {
		return nil
	}

	s, err := c.sessions.Load(ctx)
	if err != nil {
		if errors.IsNotFound(err) {
			return nil
		}
		return errors.Wrap(err, "failed to load session")
	}
	if token := s.BearerToken(); token != "" {
		req.Header.Set("Authorization", token)
	}
	return nil
}

func errorMessage(body []byte) string {
	var envelope struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if json.Unmarshal(body, &envelope) != nil {
		return ""
	}
	if envelope.Message != "" {
		return envelope.Message
	}
	return envelope.Error
}
