package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"houseprice/internal/app"
	"houseprice/internal/domain"
	"houseprice/internal/services/theme"
	"houseprice/internal/store"
)

var featureArgs = []string{
	"--med-inc", "8.3252",
	"--house-age", "41",
	"--ave-rooms", "6.984",
	"--ave-bedrms", "1.024",
	"--population", "322",
	"--ave-occup", "2.556",
	"--latitude", "37.88",
	"--longitude", "-122.23",
}

// run executes the CLI with args.
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	return runContext(t, context.Background(), stdin, args...)
}

func runContext(t *testing.T, ctx context.Context, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Setenv(theme.SchemeEnv, "light")

	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := execute(ctx, root)
	return out.String(), err
}

func service(t *testing.T, status int, body string, calls *int32) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(calls, 1)
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestPredict_PrintsScaledPrice(t *testing.T) {
	var calls int32
	srv := service(t, http.StatusOK, `{"predicted_price": 3.93}`, &calls)

	args := append([]string{"--home", t.TempDir(), "--api", srv.URL, "--no-color", "predict"}, featureArgs...)
	out, err := run(t, "", args...)
	require.NoError(t, err)

	assert.Contains(t, out, "Predicting...")
	assert.Contains(t, out, "$393,000")
	assert.EqualValues(t, 1, atomic.LoadInt32(&calls))
}

func TestPredict_JSON(t *testing.T) {
	var calls int32
	srv := service(t, http.StatusOK, `{"prediction": 2.5}`, &calls)

	args := append([]string{"--home", t.TempDir(), "--api", srv.URL, "predict", "--json"}, featureArgs...)
	out, err := run(t, "", args...)
	require.NoError(t, err)

	var res domain.PredictionResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, 2.5, res.Raw)
	assert.InDelta(t, 250000, res.Price, 1e-6)
}

func TestPredict_ServiceFailure(t *testing.T) {
	var calls int32
	srv := service(t, http.StatusInternalServerError, `{"error": "Model not loaded"}`, &calls)

	args := append([]string{"--home", t.TempDir(), "--api", srv.URL, "--no-color", "predict"}, featureArgs...)
	out, err := run(t, "", args...)
	assert.ErrorIs(t, err, domain.ErrRequestFailed)
	assert.NotContains(t, out, "$")
	assert.NotContains(t, out, "Model not loaded")
}

func TestPredict_InvalidFieldFailsBeforeRequest(t *testing.T) {
	var calls int32
	srv := service(t, http.StatusOK, `{"prediction": 1}`, &calls)

	args := append([]string{"--home", t.TempDir(), "--api", srv.URL, "predict"}, featureArgs...)
	args = append(args, "--latitude", "north")
	_, err := run(t, "", args...)

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, domain.Latitude, verr.Field)
	assert.Zero(t, atomic.LoadInt32(&calls))
}

func TestPredict_MissingFlag(t *testing.T) {
	_, err := run(t, "", "--home", t.TempDir(), "predict", "--med-inc", "1")
	assert.Error(t, err)
}

func TestForm_RepromptsAndRecoversFromFailure(t *testing.T) {
	var calls int32
	status := int32(http.StatusBadGateway)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(int(atomic.LoadInt32(&status)))
		_, _ = w.Write([]byte(`{"predicted_price": 4.526}`))
		atomic.StoreInt32(&status, http.StatusOK)
	}))
	defer srv.Close()

	values := "8.3252\n41\n6.984\n1.024\n322\n2.556\n37.88\n-122.23\n"
	// First round: a bad value is re-asked, then the service fails.
	// Second round succeeds, then the user stops.
	stdin := "abc\n" + values + "y\n" + values + "n\n"

	out, err := run(t, stdin, "--home", t.TempDir(), "--api", srv.URL, "--no-color", "form")
	require.NoError(t, err)

	assert.Contains(t, out, `Error: MedInc: "abc": not a number`)
	assert.Contains(t, out, "Error: failed to get prediction")
	assert.Contains(t, out, "$452,600")
	assert.EqualValues(t, 2, atomic.LoadInt32(&calls))
}

func TestForm_InputClosed(t *testing.T) {
	_, err := run(t, "1\n2\n", "--home", t.TempDir(), "form")
	assert.ErrorIs(t, err, errInputClosed)
}

func TestTheme_TogglePersists(t *testing.T) {
	home := t.TempDir()

	out, err := run(t, "", "--home", home, "--no-color", "theme")
	require.NoError(t, err)
	assert.Equal(t, "Theme: light\n", out)

	out, err = run(t, "", "--home", home, "--no-color", "theme", "toggle")
	require.NoError(t, err)
	assert.Equal(t, "Theme: dark\n", out)

	v, ok, err := store.NewPreferenceFileStore(home).Get(domain.ThemeKey)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "dark", v)

	// Stored value beats the environment on the next run.
	out, err = run(t, "", "--home", home, "--no-color", "theme")
	require.NoError(t, err)
	assert.Equal(t, "Theme: dark\n", out)
}

func TestTheme_Set(t *testing.T) {
	home := t.TempDir()

	_, err := run(t, "", "--home", home, "theme", "set", "sepia")
	assert.Error(t, err)

	out, err := run(t, "", "--home", home, "--no-color", "theme", "set", "dark")
	require.NoError(t, err)
	assert.Equal(t, "Theme: dark\n", out)
	assert.FileExists(t, filepath.Join(home, store.PreferencesFile))
}

func TestFields(t *testing.T) {
	out, err := run(t, "", "--home", t.TempDir(), "fields")
	require.NoError(t, err)
	for _, f := range domain.Fields {
		assert.Contains(t, out, f.Key.String())
		assert.Contains(t, out, "--"+f.Flag)
	}
}

func TestRoot_BadAPIURLOnlyBlocksPredictions(t *testing.T) {
	home := t.TempDir()

	out, err := run(t, "", "--home", home, "--api", "localhost", "--no-color", "theme")
	require.NoError(t, err)
	assert.Equal(t, "Theme: light\n", out)

	_, err = run(t, "", "--home", home, "--api", "localhost", "fields")
	require.NoError(t, err)

	args := append([]string{"--home", home, "--api", "localhost", "predict"}, featureArgs...)
	_, err = run(t, "", args...)
	assert.ErrorContains(t, err, "api url")
}

func TestPredict_CorruptPreferencesStillPredicts(t *testing.T) {
	var calls int32
	srv := service(t, http.StatusOK, `{"predicted_price": 3.93}`, &calls)
	home := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(home, store.PreferencesFile), []byte("{not json"), 0o600))

	args := append([]string{"--home", home, "--api", srv.URL, "--no-color", "--log-level", "error", "predict"}, featureArgs...)
	out, err := run(t, "", args...)
	require.NoError(t, err)
	assert.Contains(t, out, "$393,000")
	assert.EqualValues(t, 1, atomic.LoadInt32(&calls))
}

func TestPredict_FailureLogsAndClosesSink(t *testing.T) {
	var calls int32
	srv := service(t, http.StatusInternalServerError, `{}`, &calls)
	logFile := filepath.Join(t.TempDir(), "houseprice.log")
	t.Setenv(app.EnvLogFile, logFile)

	args := append([]string{"--home", t.TempDir(), "--api", srv.URL, "--log-level", "info", "predict"}, featureArgs...)
	out, err := run(t, "", args...)
	require.ErrorIs(t, err, domain.ErrRequestFailed)
	assert.Nil(t, appCtx)
	assert.NotContains(t, out, "predict rejected")

	b, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"msg":"predict rejected"`)
}

func TestForm_CancelledBeforeStart(t *testing.T) {
	var calls int32
	srv := service(t, http.StatusOK, `{"predicted_price": 3.93}`, &calls)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	values := "8.3252\n41\n6.984\n1.024\n322\n2.556\n37.88\n-122.23\n"
	stdin := values + "y\n" + values + "y\n" + values + "n\n"
	out, err := runContext(t, ctx, stdin, "--home", t.TempDir(), "--api", srv.URL, "--no-color", "form")
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, atomic.LoadInt32(&calls))
	assert.NotContains(t, out, "Predict another?")
}

func TestForm_CancelledDuringSubmit(t *testing.T) {
	var calls int32
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		cancel()
		select {
		case <-r.Context().Done():
		case <-time.After(5 * time.Second):
		}
	}))
	defer srv.Close()

	values := "8.3252\n41\n6.984\n1.024\n322\n2.556\n37.88\n-122.23\n"
	out, err := runContext(t, ctx, values+"y\n"+values+"n\n", "--home", t.TempDir(), "--api", srv.URL, "--no-color", "form")
	assert.ErrorIs(t, err, context.Canceled)
	assert.EqualValues(t, 1, atomic.LoadInt32(&calls))
	assert.NotContains(t, out, "Predict another?")
}

func TestMain(m *testing.M) {
	for _, k := range []string{"HOUSEPRICE_API_URL", "HOUSEPRICE_PREDICT_PATH", "HOUSEPRICE_TIMEOUT", "HOUSEPRICE_LOG_LEVEL", "HOUSEPRICE_LOG_FILE"} {
		os.Unsetenv(k)
	}
	os.Exit(m.Run())
}
