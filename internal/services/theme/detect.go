package theme

import (
	"os"
	"strconv"
	"strings"

	"houseprice/internal/domain"
)

// SchemeEnv forces the detected scheme ("dark" or "light").
const SchemeEnv = "HOUSEPRICE_COLOR_SCHEME"

// EnvDetector reads the colour-scheme signal from the environment.
//
// SchemeEnv wins when it names a theme. Otherwise COLORFGBG, set by many
// terminals as "fg;bg", is consulted: background colours 0-6 and 8 are dark.
// With neither, the scheme is light.
type EnvDetector struct {
	Getenv func(string) string // defaults to os.Getenv
}

func (d EnvDetector) PrefersDark() bool {
	getenv := d.Getenv
	if getenv == nil {
		getenv = os.Getenv
	}

	if t, err := domain.ParseTheme(strings.ToLower(strings.TrimSpace(getenv(SchemeEnv)))); err == nil {
		return t.IsDark()
	}

	fgbg := getenv("COLORFGBG")
	if fgbg == "" {
		return false
	}
	parts := strings.Split(fgbg, ";")
	bg, err := strconv.Atoi(parts[len(parts)-1])
	if err != nil {
		return false
	}
	return (bg >= 0 && bg <= 6) || bg == 8
}

// DetectorFunc adapts a function to domain.SchemeDetector.
type DetectorFunc func() bool

func (f DetectorFunc) PrefersDark() bool { return f() }

var (
	_ domain.SchemeDetector = EnvDetector{}
	_ domain.SchemeDetector = DetectorFunc(nil)
)
