package render_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"houseprice/internal/domain"
	"houseprice/internal/render"
)

func TestFormatPrice(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{in: 393000, want: "$393,000"},
		{in: domain.NewPredictionResult(3.93).Price, want: "$393,000"},
		{in: 250000, want: "$250,000"},
		{in: 452600.5, want: "$452,600.5"},
		{in: 1234567.891, want: "$1,234,567.891"},
		{in: 999.12345, want: "$999.123"},
		{in: 0, want: "$0"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, render.FormatPrice(tc.in), "%v", tc.in)
	}
}

func TestRenderer_Result_NoColor(t *testing.T) {
	var buf bytes.Buffer
	render.New(&buf, domain.ThemeDark, false).Result(domain.NewPredictionResult(2.5))

	assert.Equal(t, "Predicted House Price\n$250,000\nBased on your input data\n", buf.String())
}

func TestRenderer_ColorDependsOnTheme(t *testing.T) {
	var light, dark bytes.Buffer
	render.New(&light, domain.ThemeLight, true).Error(errors.New("failed to get prediction"))
	render.New(&dark, domain.ThemeDark, true).Error(errors.New("failed to get prediction"))

	assert.Contains(t, light.String(), "\x1b[")
	assert.Contains(t, light.String(), "Error: failed to get prediction")
	assert.NotEqual(t, light.String(), dark.String())
}

func TestRenderer_Busy(t *testing.T) {
	var buf bytes.Buffer
	r := render.New(&buf, domain.ThemeLight, false)
	r.Busy(true)
	r.Busy(false)
	assert.Equal(t, "Predicting...\n", buf.String())
}

func TestRenderer_UnknownThemeFallsBackToLight(t *testing.T) {
	r := render.New(&bytes.Buffer{}, domain.Theme("sepia"), false)
	assert.Equal(t, domain.ThemeLight, r.Theme())
}

func TestRenderer_Banner(t *testing.T) {
	var buf bytes.Buffer
	render.New(&buf, domain.ThemeDark, false).Banner()
	assert.Equal(t, "House Price Predictor [dark]\n", buf.String())
}

func TestRenderer_Result_ZeroIsShown(t *testing.T) {
	var buf bytes.Buffer
	render.New(&buf, domain.ThemeLight, false).Result(domain.NewPredictionResult(0))

	assert.Equal(t, "Predicted House Price\n$0\nBased on your input data\n", buf.String())
}
