package httpclient

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/aalvaropc/customs/internal/domain"
	"github.com/aalvaropc/customs/internal/ports"
)

const defaultMaxBodyBytes = 4 * 1024 * 1024 // 4MB

// ResponseData captures the response details and duration.
type ResponseData struct {
	Status    int
	Headers   http.Header
	BodyBytes []byte
	Truncated bool
	Duration  time.Duration
}

// Executor executes HTTP requests with timing.
type Executor struct {
	client       *http.Client
	timeout      time.Duration
	userAgent    string
	maxBodyBytes int64
	logger       *slog.Logger
}

// ExecutorOption allows configuring an Executor.
type ExecutorOption func(*Executor)

// WithTimeout sets the default timeout applied to requests.
func WithTimeout(timeout time.Duration) ExecutorOption {
	return func(e *Executor) { e.timeout = timeout }
}

// WithClient sets a custom HTTP client.
func WithClient(client *http.Client) ExecutorOption {
	return func(e *Executor) { e.client = client }
}

// WithUserAgent sets the User-Agent header sent with every form post.
func WithUserAgent(ua string) ExecutorOption {
	return func(e *Executor) { e.userAgent = ua }
}

// WithMaxBodyBytes bounds how much of a response body is read.
func WithMaxBodyBytes(n int64) ExecutorOption {
	return func(e *Executor) { e.maxBodyBytes = n }
}

// WithLogger sets the logger used for per-request records.
func WithLogger(l *slog.Logger) ExecutorOption {
	return func(e *Executor) { e.logger = l }
}

// NewExecutor builds an Executor with a default client and timeout.
func NewExecutor(opts ...ExecutorOption) *Executor {
	cfg := DefaultConfig()
	e := &Executor{
		client:       New(cfg),
		timeout:      cfg.Timeout,
		maxBodyBytes: defaultMaxBodyBytes,
		logger:       slog.New(slog.NewJSONHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

var _ ports.FormPoster = (*Executor)(nil)

// Do executes the request and returns response data plus duration.
func (e *Executor) Do(ctx context.Context, req *http.Request) (ResponseData, error) {
	start := time.Now()
	ctxWithTimeout := ctx
	cancel := func() {}
	if e.timeout > 0 {
		ctxWithTimeout, cancel = context.WithTimeout(ctx, e.timeout)
	}
	defer cancel()

	resp, err := e.client.Do(req.WithContext(ctxWithTimeout))
	duration := time.Since(start)
	if err != nil {
		return ResponseData{Duration: duration}, err
	}
	defer resp.Body.Close()

	body, truncated, err := readBounded(resp.Body, e.maxBodyBytes)
	if err != nil {
		return ResponseData{Duration: time.Since(start)}, err
	}

	return ResponseData{
		Status:    resp.StatusCode,
		Headers:   resp.Header.Clone(),
		BodyBytes: body,
		Truncated: truncated,
		Duration:  time.Since(start),
	}, nil
}

// PostForm sends form to endpoint and returns the raw body of a 2xx response.
func (e *Executor) PostForm(ctx context.Context, endpoint string, form url.Values) ([]byte, error) {
	headers := http.Header{}
	if e.userAgent != "" {
		headers.Set("User-Agent", e.userAgent)
	}

	req, err := BuildFormRequest(ctx, endpoint, form, headers)
	if err != nil {
		return nil, err
	}

	resp, err := e.Do(ctx, req)
	if err != nil {
		e.logger.Debug("http.post.failed", "endpoint", endpoint, "duration_ms", resp.Duration.Milliseconds(), "err", err)
		return nil, &domain.OpError{
			Op:   "httpclient.post_form",
			Kind: domain.KindTransport,
			Path: endpoint,
			Err:  err,
		}
	}

	e.logger.Debug("http.post",
		"endpoint", endpoint,
		"status", resp.Status,
		"bytes", len(resp.BodyBytes),
		"truncated", resp.Truncated,
		"duration_ms", resp.Duration.Milliseconds(),
	)

	if resp.Status < 200 || resp.Status > 299 {
		return nil, &domain.OpError{
			Op:   "httpclient.post_form",
			Kind: domain.KindHTTPStatus,
			Path: endpoint,
			Err:  fmt.Errorf("unexpected status %d", resp.Status),
		}
	}
	if resp.Truncated {
		return nil, &domain.OpError{
			Op:   "httpclient.post_form",
			Kind: domain.KindMalformedResponse,
			Path: endpoint,
			Err:  fmt.Errorf("response body exceeds %d bytes", e.maxBodyBytes),
		}
	}

	return resp.BodyBytes, nil
}

func readBounded(r io.Reader, maxBytes int64) ([]byte, bool, error) {
	lim := io.LimitReader(r, maxBytes+1)
	b, err := io.ReadAll(lim)
	if err != nil {
		return nil, false, err
	}
	if int64(len(b)) > maxBytes {
		return b[:maxBytes], true, nil
	}
	return b, false, nil
}
