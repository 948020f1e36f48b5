// Package theme resolves and persists the light/dark display preference.
//
// The stored preference wins; without one, the environment's colour-scheme
// signal decides. Every change is written back through the injected
// domain.PreferenceStore.
package theme
