package theme

import (
	"fmt"

	"houseprice/internal/domain"
)

// Service manages the theme preference using a backing store and a fallback
// detector.
type Service struct {
	store    domain.PreferenceStore
	detector domain.SchemeDetector
}

// New returns a theme service.
func New(s domain.PreferenceStore, d domain.SchemeDetector) *Service {
	return &Service{store: s, detector: d}
}

// Current returns the persisted theme, or the detected one when nothing valid
// is stored.
func (s *Service) Current() (domain.Theme, error) {
	v, ok, err := s.store.Get(domain.ThemeKey)
	if err != nil {
		return "", fmt.Errorf("load theme: %w", err)
	}
	if ok {
		if t, err := domain.ParseTheme(v); err == nil {
			return t, nil
		}
	}
	return domain.ThemeFor(s.detector != nil && s.detector.PrefersDark()), nil
}

// Toggle flips the current theme, persists it and returns it.
func (s *Service) Toggle() (domain.Theme, error) {
	cur, err := s.Current()
	if err != nil {
		return "", err
	}
	next := cur.Toggle()
	if err := s.Set(next); err != nil {
		return "", err
	}
	return next, nil
}

// Set persists t.
func (s *Service) Set(t domain.Theme) error {
	if _, err := domain.ParseTheme(t.String()); err != nil {
		return err
	}
	if err := s.store.Set(domain.ThemeKey, t.String()); err != nil {
		return fmt.Errorf("save theme: %w", err)
	}
	return nil
}
