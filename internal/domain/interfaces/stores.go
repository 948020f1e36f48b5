package interfaces

// PreferenceStore persists small string preferences by key.
type PreferenceStore interface {
	// Get returns the value under key; ok is false when nothing is stored.
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
}

// SchemeDetector reports the environment's colour-scheme signal.
type SchemeDetector interface {
	PrefersDark() bool
}
