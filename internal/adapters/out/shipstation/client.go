package shipstation

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"fulfillment/internal/pkg/errs"

	"github.com/cenkalti/backoff/v5"
)

const (
	DefaultBaseURL         = "https://ssapi.shipstation.com"
	DefaultTimeout         = 30 * time.Second
	DefaultMaxTries        = 4
	DefaultInitialInterval = 500 * time.Millisecond
	DefaultMaxInterval     = 10 * time.Second

	// maxRetryAfter caps how long a Retry-After header may stall a call.
	maxRetryAfter = time.Minute
	maxBodyBytes  = 32 << 20
)

var ErrCredentialsAreRequired = errors.New("shipstation api key and secret are required")

// Config configures the Client. Zero durations and tries fall back to defaults.
type Config struct {
	BaseURL         string
	APIKey          string
	APISecret       string
	Timeout         time.Duration
	MaxTries        uint
	InitialInterval time.Duration
	MaxInterval     time.Duration
	HTTPClient      *http.Client
}

// Client talks JSON to the ShipStation v1 API with basic auth. Rate limiting (429) and
// server errors are retried with exponential backoff; other failures are returned as
// *errs.RemoteCallError without retrying.
type Client struct {
	baseURL         *url.URL
	key             string
	secret          string
	http            *http.Client
	maxTries        uint
	initialInterval time.Duration
	maxInterval     time.Duration
	logger          *slog.Logger
}

func NewClient(cfg Config, logger *slog.Logger) (*Client, error) {
	if cfg.APIKey == "" || cfg.APISecret == "" {
		return nil, ErrCredentialsAreRequired
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	base, err := url.Parse(strings.TrimRight(cfg.BaseURL, "/"))
	if err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("baseURL", err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, errs.NewValueIsInvalidErrorWithCause("baseURL", fmt.Errorf("%q is not absolute", cfg.BaseURL))
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		baseURL:         base,
		key:             cfg.APIKey,
		secret:          cfg.APISecret,
		http:            httpClient,
		maxTries:        orDefault(cfg.MaxTries, DefaultMaxTries),
		initialInterval: orDefault(cfg.InitialInterval, DefaultInitialInterval),
		maxInterval:     orDefault(cfg.MaxInterval, DefaultMaxInterval),
		logger:          logger.With("component", "shipstation"),
	}, nil
}

// hintedBackOff lets a Retry-After header override the next exponential interval once.
type hintedBackOff struct {
	backoff.BackOff
	hint time.Duration
}

func (b *hintedBackOff) NextBackOff() time.Duration {
	if b.hint > 0 {
		d := b.hint
		b.hint = 0
		return d
	}
	return b.BackOff.NextBackOff()
}

// do sends one logical request. body, when non-nil, is sent as JSON; out, when non-nil,
// receives the decoded 2xx response.
func (c *Client) do(ctx context.Context, op, method, path string, query url.Values, body, out any) error {
	var payload []byte
	if body != nil {
		var err error
		if payload, err = json.Marshal(body); err != nil {
			return fmt.Errorf("%s: encode request: %w", op, err)
		}
	}

	target := c.baseURL.JoinPath(path)
	if len(query) > 0 {
		target.RawQuery = query.Encode()
	}

	exp := backoff.NewExponentialBackOff()
	exp.InitialInterval = c.initialInterval
	exp.MaxInterval = c.maxInterval
	bo := &hintedBackOff{BackOff: exp}

	_, err := backoff.Retry(ctx, func() (struct{}, error) {
		return struct{}{}, c.attempt(ctx, op, method, target.String(), payload, out, bo)
	},
		backoff.WithBackOff(bo),
		backoff.WithMaxTries(c.maxTries),
		backoff.WithNotify(func(err error, next time.Duration) {
			c.logger.Warn("retrying request", "operation", op, "in", next, "error", err)
		}),
	)
	var perm *backoff.PermanentError
	if errors.As(err, &perm) {
		return perm.Unwrap()
	}
	return err
}

func (c *Client) attempt(ctx context.Context, op, method, target string, payload []byte, out any, bo *hintedBackOff) error {
	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return backoff.Permanent(fmt.Errorf("%s: build request: %w", op, err))
	}
	req.SetBasicAuth(c.key, c.secret)
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return backoff.Permanent(ctx.Err())
		}
		return errs.NewRemoteCallErrorWithCause(op, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return errs.NewRemoteCallErrorWithCause(op, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		callErr := errs.NewRemoteCallError(op, resp.StatusCode, string(raw))
		if !callErr.Retryable {
			return backoff.Permanent(callErr)
		}
		bo.hint = retryAfter(resp.Header.Get("Retry-After"))
		return callErr
	}

	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return backoff.Permanent(fmt.Errorf("%s: decode response: %w", op, err))
	}
	return nil
}

// retryAfter parses a Retry-After header given in seconds. Anything else yields zero.
func retryAfter(header string) time.Duration {
	secs, err := strconv.Atoi(strings.TrimSpace(header))
	if err != nil || secs <= 0 {
		return 0
	}
	return min(time.Duration(secs)*time.Second, maxRetryAfter)
}

func orDefault[T comparable](v, def T) T {
	var zero T
	if v == zero {
		return def
	}
	return v
}
