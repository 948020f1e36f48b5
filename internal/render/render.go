// Package render writes prediction output for a terminal.
//
// A Renderer is built for one theme and passed to whoever prints; nothing here
// reads or mutates global display state.
package render

import (
	"fmt"
	"io"
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"houseprice/internal/domain"
)

const reset = "\x1b[0m"

// palette holds the ANSI sequences for one theme.
type palette struct {
	accent string
	price  string
	err    string
	muted  string
}

var palettes = map[domain.Theme]palette{
	domain.ThemeLight: {accent: "\x1b[34m", price: "\x1b[1;32m", err: "\x1b[31m", muted: "\x1b[90m"},
	domain.ThemeDark:  {accent: "\x1b[96m", price: "\x1b[1;92m", err: "\x1b[91m", muted: "\x1b[37m"},
}

var usd = message.NewPrinter(language.AmericanEnglish)

// FormatPrice renders a dollar amount the way en-US locale formatting does:
// grouped thousands, at most three fraction digits, no trailing zeros.
func FormatPrice(v float64) string {
	v = math.Round(v*1000) / 1000
	return "$" + usd.Sprintf("%v", number.Decimal(v, number.MaxFractionDigits(3)))
}

// Renderer prints results, errors and status lines.
type Renderer struct {
	w     io.Writer
	theme domain.Theme
	color bool
}

// New returns a Renderer for theme. With color false no escape sequences are
// written.
func New(w io.Writer, theme domain.Theme, color bool) *Renderer {
	if _, ok := palettes[theme]; !ok {
		theme = domain.ThemeLight
	}
	return &Renderer{w: w, theme: theme, color: color}
}

// Theme returns the theme the renderer was built for.
func (r *Renderer) Theme() domain.Theme { return r.theme }

func (r *Renderer) paint(code, s string) string {
	if !r.color {
		return s
	}
	return code + s + reset
}

// Result prints a predicted price.
func (r *Renderer) Result(res domain.PredictionResult) {
	p := palettes[r.theme]
	fmt.Fprintln(r.w, r.paint(p.accent, "Predicted House Price"))
	fmt.Fprintln(r.w, r.paint(p.price, FormatPrice(res.Price)))
	fmt.Fprintln(r.w, r.paint(p.muted, "Based on your input data"))
}

// Error prints err inline.
func (r *Renderer) Error(err error) {
	fmt.Fprintln(r.w, r.paint(palettes[r.theme].err, "Error: "+err.Error()))
}

// Busy prints the in-flight indicator, or nothing once idle.
func (r *Renderer) Busy(busy bool) {
	if busy {
		fmt.Fprintln(r.w, r.paint(palettes[r.theme].muted, "Predicting..."))
	}
}

// Banner prints the title line, with a marker for the active theme.
func (r *Renderer) Banner() {
	mark := "light"
	if r.theme.IsDark() {
		mark = "dark"
	}
	fmt.Fprintf(r.w, "%s %s\n", r.paint(palettes[r.theme].accent, "House Price Predictor"), r.paint(palettes[r.theme].muted, "["+mark+"]"))
}

// Themef prints a theme status line.
func (r *Renderer) Themef(format string, args ...any) {
	fmt.Fprintln(r.w, r.paint(palettes[r.theme].accent, fmt.Sprintf(format, args...)))
}
