package health

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/KomalSinghhhh/FASTapi-mongo/internal/storage/memory"
)

func TestCheckHealthy(t *testing.T) {
	handler := Check(memory.New())

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), `"status":"ok"`) {
		t.Fatalf("expected status ok, got %s", rr.Body.String())
	}
}

// failingStore reports an unreachable backend from Ping.
type failingStore struct {
	*memory.Memory
}

func (f failingStore) Ping(context.Context) error {
	return errors.New("connection refused")
}

func TestCheckUnhealthy(t *testing.T) {
	handler := Check(failingStore{memory.New()})

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	if rr.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "connection refused") {
		t.Fatalf("expected the ping error in the body, got %s", rr.Body.String())
	}
}
