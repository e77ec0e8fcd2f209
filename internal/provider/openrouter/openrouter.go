// Package openrouter talks to an OpenAI-compatible chat completions endpoint
// such as https://openrouter.ai/api/v1/chat/completions.
package openrouter

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/gptpipe/gptpipe/internal/provider"
)

const DefaultEndpoint = "https://openrouter.ai/api/v1/chat/completions"

// Options configures a Client.
type Options struct {
	Endpoint string
	// Timeout bounds the whole exchange. Zero means no timeout.
	Timeout time.Duration
	// AppURL and AppTitle are sent as OpenRouter attribution headers when set.
	AppURL   string
	AppTitle string
	// Transport overrides the underlying round tripper (tests).
	Transport http.RoundTripper
}

// Client is a single-shot chat completions client. It never retries.
type Client struct {
	opts Options
	rc   *resty.Client
}

func New(opts Options) *Client {
	if opts.Endpoint == "" {
		opts.Endpoint = DefaultEndpoint
	}
	base := opts.Transport
	if base == nil {
		base = http.DefaultTransport
	}
	rc := resty.New().
		SetTransport(otelhttp.NewTransport(base)).
		SetRetryCount(0).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")
	if opts.Timeout > 0 {
		rc.SetTimeout(opts.Timeout)
	}
	if opts.AppURL != "" {
		rc.SetHeader("HTTP-Referer", opts.AppURL)
	}
	if opts.AppTitle != "" {
		rc.SetHeader("X-Title", opts.AppTitle)
	}
	return &Client{opts: opts, rc: rc}
}

// Send posts req with bearer authentication and returns the raw reply.
// Non-2xx statuses are returned as *provider.APIError.
func (c *Client) Send(ctx context.Context, req *provider.ChatRequest, apiKey string) (*provider.RawResponse, error) {
	resp, err := c.rc.R().
		SetContext(ctx).
		SetAuthToken(apiKey).
		SetHeader("X-Request-Id", uuid.NewString()).
		SetBody(req).
		Post(c.opts.Endpoint)
	if err != nil {
		if isTimeout(err) {
			return nil, &provider.TimeoutError{URL: c.opts.Endpoint, Timeout: c.opts.Timeout.String(), Err: err}
		}
		return nil, &provider.TransportError{URL: c.opts.Endpoint, Err: err}
	}

	raw := &provider.RawResponse{
		StatusCode: resp.StatusCode(),
		Status:     http.StatusText(resp.StatusCode()),
		Body:       resp.Body(),
	}
	if !resp.IsSuccess() {
		return raw, &provider.APIError{StatusCode: raw.StatusCode, Status: raw.Status, Body: string(raw.Body)}
	}
	return raw, nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}
