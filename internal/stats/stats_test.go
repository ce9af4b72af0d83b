package stats

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuccessRate(t *testing.T) {
	s := NewTracker()
	assert.Equal(t, 100.0, s.SuccessRate())

	s.RecordPalette()
	s.RecordPalette()
	s.RecordConversion()
	s.RecordError()
	assert.InDelta(t, 75.0, s.SuccessRate(), 1e-9)
}

func TestConcurrentRecording(t *testing.T) {
	s := NewTracker()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				s.RecordPalette()
				s.RecordClipboardFailure()
			}
		}()
	}
	wg.Wait()

	snap := s.Snapshot()
	assert.Equal(t, int64(5000), snap.Palettes)
	assert.Equal(t, int64(5000), snap.ClipboardFailures)
}

func TestHandler(t *testing.T) {
	s := NewTracker()
	s.RecordPalette()
	s.RecordRateLimited()

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/stats", nil))

	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var got Snapshot
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, int64(1), got.Palettes)
	assert.Equal(t, int64(1), got.RateLimited)
	assert.Equal(t, 100.0, got.SuccessRate)
}
