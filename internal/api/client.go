package api

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

	"github.com/go-playground/validator/v10"
	"github.com/hashicorp/go-retryablehttp"
	"github.com/rs/zerolog"
	"github.com/thep2p/go-staker-manager/internal/model"
	"github.com/thep2p/go-staker-manager/internal/staker"
)

// ClientConfig configures a Client.
type ClientConfig struct {
	// BaseURL is the address of a running staker API, e.g. http://127.0.0.1:7000.
	BaseURL string `validate:"required,url"`
	// RetryMax is the number of retries of a failed request.
	RetryMax int `validate:"gte=0"`
	// RetryWaitMin is the initial backoff between retries.
	RetryWaitMin time.Duration
	// RetryWaitMax caps the backoff between retries.
	RetryWaitMax time.Duration
}

// DefaultClientConfig returns the configuration used by the CLI.
func DefaultClientConfig(baseURL string) ClientConfig {
	return ClientConfig{
		BaseURL:      baseURL,
		RetryMax:     3,
		RetryWaitMin: 500 * time.Millisecond,
		RetryWaitMax: 5 * time.Second,
	}
}

// Client talks to a staker API over HTTP.
type Client struct {
	logger  zerolog.Logger
	baseURL string
	client  *retryablehttp.Client
}

var _ staker.Backend = (*Client)(nil)

// NewClient creates a Client.
func NewClient(logger zerolog.Logger, cfg ClientConfig) (*Client, error) {
	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid client config: %w", err)
	}
	logger = logger.With().Str("component", "staker-client").Logger()

	// create retryablehttp client using our own logger format with a sublogger
	httpClient := retryablehttp.NewClient()
	httpClient.Logger = NewRetryableHTTPLogger(logger.With().Str("component", "retryableHTTPClient").Logger())
	httpClient.RetryMax = cfg.RetryMax
	if cfg.RetryWaitMin > 0 {
		httpClient.RetryWaitMin = cfg.RetryWaitMin
	}
	if cfg.RetryWaitMax > 0 {
		httpClient.RetryWaitMax = cfg.RetryWaitMax
	}
	// hand back the last response so the server's error message is kept
	httpClient.ErrorHandler = retryablehttp.PassthroughErrorHandler

	return &Client{
		logger:  logger,
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		client:  httpClient,
	}, nil
}

// StakerConfigGet fetches the staker view of network.
func (c *Client) StakerConfigGet(ctx context.Context, network model.Network) (model.StakerConfigGet, error) {
	var out model.StakerConfigGet
	path := StakerConfigEndpoint + "/" + url.PathEscape(string(network))
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return model.StakerConfigGet{}, err
	}
	return out, nil
}

// StakerConfigSet submits cfg.
func (c *Client) StakerConfigSet(ctx context.Context, cfg model.StakerConfig) error {
	body, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode staker config: %w", err)
	}
	return c.do(ctx, http.MethodPost, StakerConfigEndpoint, body, nil)
}

// Chain returns the chain driver of an installed package.
func (c *Client) Chain(ctx context.Context, dnpName string) (ChainResponse, error) {
	var out ChainResponse
	err := c.do(ctx, http.MethodGet, ChainsEndpoint+"/"+url.PathEscape(dnpName), nil, &out)
	return out, err
}

// Ping reports whether the API answers.
func (c *Client) Ping(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, PingEndpoint, nil, nil)
}

// do handles all the low level http calls using retryablehttp.Client.
func (c *Client) do(ctx context.Context, method, path string, body []byte, out interface{}) error {
	var reqBody interface{}
	if body != nil {
		reqBody = bytes.NewReader(body)
	}
	req, err := retryablehttp.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("build request %s %s: %w", method, path, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			c.logger.Error().Err(err).Msg("failed to close response body")
		}
	}()

	buf, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response of %s %s: %w", method, path, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var e errorResponse
		if json.Unmarshal(buf, &e) == nil && e.Error != "" {
			return &StatusError{Code: resp.StatusCode, Message: e.Error}
		}
		return &StatusError{Code: resp.StatusCode, Message: strings.TrimSpace(string(buf))}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(buf, out); err != nil {
		return fmt.Errorf("decode response of %s %s: %w", method, path, err)
	}
	return nil
}

// StatusError is a non-2xx answer of the staker API.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("staker api: %s (status %d)", e.Message, e.Code)
}
