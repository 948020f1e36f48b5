package app

import (
	"io"
	"log/slog"
	"net/http"

	"houseprice/internal/domain"
	"houseprice/internal/logging"
	"houseprice/internal/predict"
	"houseprice/internal/render"
	formsvc "houseprice/internal/services/form"
	themesvc "houseprice/internal/services/theme"
	"houseprice/internal/store"
)

// Wire bundles all stores, services, and clients for the CLI.
type Wire struct {
	Config Config
	Logger *slog.Logger
	Theme  *themesvc.Service

	http      *http.Client
	logCloser io.Closer
}

// NewWire constructs the dependency graph from cfg. The API settings are
// checked later, by Predictor, so commands that never predict still run with
// a bad API URL.
func NewWire(cfg Config) (*Wire, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger, closer, err := logging.New(logging.Options{Level: cfg.LogLevel, File: cfg.LogFile})
	if err != nil {
		return nil, err
	}

	// Ensure an HTTP client is available for outbound calls
	httpClient := cfg.HTTP
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}

	detector := cfg.Detector
	if detector == nil {
		detector = themesvc.EnvDetector{}
	}

	return &Wire{
		Config:    cfg,
		Logger:    logger,
		Theme:     themesvc.New(store.NewPreferenceFileStore(cfg.Home), detector),
		http:      httpClient,
		logCloser: closer,
	}, nil
}

// Predictor returns a client for the configured prediction service. The
// client logs through the logger carried by the request context.
func (w *Wire) Predictor() (domain.Predictor, error) {
	if err := w.Config.ValidateAPI(); err != nil {
		return nil, err
	}
	return predict.New(w.Config.APIURL,
		predict.WithPath(w.Config.PredictPath),
		predict.WithHTTPClient(w.http),
	), nil
}

// Form returns a fresh form service over the configured predictor.
func (w *Wire) Form(opts ...formsvc.Option) (*formsvc.Service, error) {
	p, err := w.Predictor()
	if err != nil {
		return nil, err
	}
	return formsvc.New(p, opts...), nil
}

// Renderer returns a renderer for the current theme. A theme that cannot be
// loaded falls back to light.
func (w *Wire) Renderer(out io.Writer) *render.Renderer {
	t, err := w.Theme.Current()
	if err != nil {
		w.Logger.Warn("theme unavailable, using light", slog.String("error", err.Error()))
		t = domain.ThemeLight
	}
	return render.New(out, t, !w.Config.NoColor)
}

// Close releases the log sink.
func (w *Wire) Close() error {
	if w.logCloser == nil {
		return nil
	}
	return w.logCloser.Close()
}
