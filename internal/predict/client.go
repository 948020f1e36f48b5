package predict

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"houseprice/internal/domain"
	"houseprice/internal/logging"
)

// DefaultPath is appended to the base URL unless overridden with WithPath.
const DefaultPath = "/predict"

// RequestIDHeader carries a per-request id the service can log.
const RequestIDHeader = "X-Request-Id"

// Client posts feature sets to the prediction service.
type Client struct {
	Base   string
	Path   string
	HTTP   *http.Client
	Logger *slog.Logger
}

// Option customises a Client.
type Option func(*Client)

// WithPath sets the path appended to the base URL. An empty path posts to the
// base URL itself.
func WithPath(path string) Option {
	return func(c *Client) { c.Path = path }
}

// WithHTTPClient replaces http.DefaultClient.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.HTTP = hc
		}
	}
}

// WithLogger sets the logger used for per-call records. Without it the client
// logs through the logger carried by the request context.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.Logger = l
		}
	}
}

// New returns a Client for the service at base.
func New(base string, opts ...Option) *Client {
	c := &Client{
		Base:   base,
		Path:   DefaultPath,
		HTTP:   http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Endpoint returns the URL predictions are posted to.
func (c *Client) Endpoint() string {
	if c.Path == "" {
		return c.Base
	}
	return strings.TrimRight(c.Base, "/") + c.Path
}

func (c *Client) logger(ctx context.Context) *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return logging.FromContext(ctx)
}

// response accepts either key the service may answer with.
type response struct {
	PredictedPrice *float64 `json:"predicted_price"`
	Prediction     *float64 `json:"prediction"`
}

func (r response) raw() (float64, bool) {
	switch {
	case r.PredictedPrice != nil:
		return *r.PredictedPrice, true
	case r.Prediction != nil:
		return *r.Prediction, true
	}
	return 0, false
}

// Predict posts in and returns the scaled estimate.
func (c *Client) Predict(ctx context.Context, in domain.FormInput) (domain.PredictionResult, error) {
	log := c.logger(ctx)
	endpoint := c.Endpoint()
	rid := uuid.NewString()
	start := time.Now()

	buf := new(bytes.Buffer)
	if err := json.NewEncoder(buf).Encode(in); err != nil {
		return domain.PredictionResult{}, fmt.Errorf("encode request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, buf)
	if err != nil {
		return domain.PredictionResult{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set(RequestIDHeader, rid)

	resp, err := c.HTTP.Do(req)
	if err != nil {
		log.Info("predict request failed",
			slog.String("error", err.Error()),
			slog.String("url", endpoint),
			slog.String("request_id", rid),
			slog.Duration("duration", time.Since(start)))
		return domain.PredictionResult{}, &domain.TransportError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		_, _ = io.Copy(io.Discard, resp.Body)
		log.Info("predict rejected",
			slog.String("url", endpoint),
			slog.String("request_id", rid),
			slog.Int("status", resp.StatusCode),
			slog.Duration("duration", time.Since(start)))
		return domain.PredictionResult{}, domain.ErrRequestFailed
	}

	var out response
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		log.Info("predict response undecodable",
			slog.String("error", err.Error()),
			slog.String("url", endpoint),
			slog.String("request_id", rid))
		return domain.PredictionResult{}, fmt.Errorf("decode response: %w", err)
	}
	raw, ok := out.raw()
	if !ok {
		return domain.PredictionResult{}, domain.ErrNoPrediction
	}

	result := domain.NewPredictionResult(raw)
	logging.LogOperation(log, "predict",
		slog.String("url", endpoint),
		slog.String("request_id", rid),
		slog.Int("status", resp.StatusCode),
		slog.Float64("raw", raw),
		slog.Duration("duration", time.Since(start)))
	return result, nil
}

var _ domain.Predictor = (*Client)(nil)
