package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServerExposesCollectors(t *testing.T) {
	PalettesTotal.WithLabelValues("triadic", "warm").Inc()

	srv := httptest.NewServer(NewServer(":0", nil).Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), `hueshift_palettes_total{scheme="triadic",warmth="warm"}`)
}

func TestServerGuard(t *testing.T) {
	deny := func(http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		})
	}

	rec := httptest.NewRecorder()
	NewServer(":0", deny).Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestClipboardCounter(t *testing.T) {
	before := testutil.ToFloat64(ClipboardFailures)
	ClipboardFailures.Inc()
	assert.Equal(t, before+1, testutil.ToFloat64(ClipboardFailures))
}
