package types

import "fmt"

// ThemeKey is the preference key the theme is persisted under.
const ThemeKey = "theme"

// Theme is the light/dark display preference.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// String returns the string form of the theme.
func (t Theme) String() string { return string(t) }

// IsDark reports whether t is the dark theme.
func (t Theme) IsDark() bool { return t == ThemeDark }

// Toggle returns the opposite theme.
func (t Theme) Toggle() Theme {
	if t.IsDark() {
		return ThemeLight
	}
	return ThemeDark
}

// ThemeFor maps a dark-mode flag to a theme.
func ThemeFor(dark bool) Theme {
	if dark {
		return ThemeDark
	}
	return ThemeLight
}

// ParseTheme accepts "light" or "dark".
func ParseTheme(s string) (Theme, error) {
	switch Theme(s) {
	case ThemeLight, ThemeDark:
		return Theme(s), nil
	}
	return "", fmt.Errorf("unknown theme %q (want light or dark)", s)
}
