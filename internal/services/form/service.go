package form

import (
	"context"
	"sync"

	"houseprice/internal/domain"
)

// Service submits form input to a predictor, one request at a time.
type Service struct {
	predictor domain.Predictor
	onBusy    func(bool)

	mu     sync.Mutex
	busy   bool
	result *domain.PredictionResult
	err    error
}

// Option customises a Service.
type Option func(*Service)

// OnBusy registers a hook called when the busy flag changes. It runs on the
// submitting goroutine, outside the lock.
func OnBusy(fn func(busy bool)) Option {
	return func(s *Service) { s.onBusy = fn }
}

// New returns a form service backed by p.
func New(p domain.Predictor, opts ...Option) *Service {
	s := &Service{predictor: p}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Submit issues one prediction for in. It returns domain.ErrBusy without
// contacting the service if another submission has not finished.
func (s *Service) Submit(ctx context.Context, in domain.FormInput) (domain.PredictionResult, error) {
	if !s.begin() {
		return domain.PredictionResult{}, domain.ErrBusy
	}
	defer s.end()

	res, err := s.predictor.Predict(ctx, in)

	s.mu.Lock()
	if err != nil {
		s.err = err
	} else {
		s.result = &res
	}
	s.mu.Unlock()
	return res, err
}

// begin claims the busy flag and clears the previous outcome.
func (s *Service) begin() bool {
	s.mu.Lock()
	if s.busy {
		s.mu.Unlock()
		return false
	}
	s.busy = true
	s.result = nil
	s.err = nil
	s.mu.Unlock()

	if s.onBusy != nil {
		s.onBusy(true)
	}
	return true
}

func (s *Service) end() {
	s.mu.Lock()
	s.busy = false
	s.mu.Unlock()

	if s.onBusy != nil {
		s.onBusy(false)
	}
}

// Busy reports whether a submission is in flight.
func (s *Service) Busy() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.busy
}

// Result returns the outcome of the last completed submission, if it
// succeeded.
func (s *Service) Result() (domain.PredictionResult, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.result == nil {
		return domain.PredictionResult{}, false
	}
	return *s.result, true
}

// Err returns the error of the last completed submission, if it failed.
func (s *Service) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}
