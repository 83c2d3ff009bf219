package api

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ItsNotGoodName/stupidwm/internal/bus"
	"github.com/ItsNotGoodName/stupidwm/internal/wm"
)

func TestCacheTracksLatestSnapshot(t *testing.T) {
	cache := NewCache()

	bus.Publish(wm.Snapshot{Focused: 42})
	if got := cache.Snapshot().Focused; got != 42 {
		t.Fatalf("focused = %d, want 42", got)
	}

	bus.Publish(wm.Snapshot{Focused: 43})
	if got := cache.Snapshot().Focused; got != 43 {
		t.Fatalf("cache must keep the latest snapshot, got %d", got)
	}
}

func TestStateEndpoint(t *testing.T) {
	cache := NewCache()
	srv := NewServer("127.0.0.1:0", cache)

	bus.Publish(wm.Snapshot{Focused: 7})

	rec := httptest.NewRecorder()
	srv.handler.ServeHTTP(rec, httptest.NewRequest("GET", "/api/state", nil))

	if rec.Code != 200 {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body)
	}
	if !strings.Contains(rec.Body.String(), `"focused":7`) {
		t.Fatalf("body = %s", rec.Body)
	}
}
