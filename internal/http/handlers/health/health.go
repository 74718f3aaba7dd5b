// Package health exposes the readiness probe endpoint. Orchestrators
// hit it to decide whether the process should receive traffic.
package health

import (
	"log/slog"
	"net/http"

	"github.com/KomalSinghhhh/FASTapi-mongo/internal/storage"
	"github.com/KomalSinghhhh/FASTapi-mongo/internal/utils/response"
)

// Check handles GET /healthz.
// It pings the backing store: the process is only ready when the store
// can answer a round-trip. Reachable → 200 {"status":"ok"}; unreachable
// → 503 with the ping error in the usual error envelope.
func Check(storage storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := storage.Ping(r.Context()); err != nil {
			slog.Error("health check failed", slog.String("error", err.Error()))
			response.WriteJSON(w, http.StatusServiceUnavailable,
				response.GeneralError(err))
			return
		}

		response.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}
