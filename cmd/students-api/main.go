// main is the entry point of the Students API application.
//
// STARTUP SEQUENCE:
//  1. Load configuration (.env + YAML file or plain environment)
//  2. Initialise the logger and make it the process default
//  3. Connect to MongoDB and verify the connection with a ping
//  4. Register all HTTP routes and wrap them in middleware
//  5. Start the HTTP server in a separate goroutine
//  6. Block the main goroutine until an OS signal (Ctrl+C / kill) arrives
//  7. Gracefully shut down: finish in-flight requests, disconnect, exit
//
// RUNNING THE SERVER:
//
//	MONGODB_URL=mongodb://localhost:27017 go run ./cmd/students-api
//
// or (with a YAML config file):
//
//	go run ./cmd/students-api --config=config/local.yaml
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/KomalSinghhhh/FASTapi-mongo/internal/config"
	"github.com/KomalSinghhhh/FASTapi-mongo/internal/http/handlers/health"
	"github.com/KomalSinghhhh/FASTapi-mongo/internal/http/handlers/student"
	"github.com/KomalSinghhhh/FASTapi-mongo/internal/http/middleware"
	"github.com/KomalSinghhhh/FASTapi-mongo/internal/storage/mongodb"
)

func main() {
	// ── 1. Load Config ────────────────────────────────────────────────────
	// MustLoad reads the config and fatal-exits if anything is wrong —
	// including a missing MONGODB_URL. If this returns, config is valid.
	cfg := config.MustLoad()

	// ── 2. Initialise Logger ──────────────────────────────────────────────
	// slog is Go's structured logger (stdlib since Go 1.21).
	// Setting it as the default lets handlers and middleware call
	// slog.Info(...) directly and still go through the configured handler.
	log := setupLogger(cfg.Env)
	slog.SetDefault(log)

	log.Info("starting students-api",
		slog.String("env", cfg.Env),
		slog.String("version", "1.0.0"),
	)

	// ── 3. Initialise Storage (MongoDB) ───────────────────────────────────
	// mongodb.New connects and pings, so a bad connection string or an
	// unreachable server fails here, at startup, not on the first request.
	// We keep the result as *mongodb.MongoDB for Close, but the handlers
	// only ever see it through the storage.Storage interface.
	connectCtx, connectCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer connectCancel()

	db, err := mongodb.New(connectCtx, cfg)
	if err != nil {
		log.Error("failed to initialise storage",
			slog.String("error", err.Error()))
		os.Exit(1) // non-zero exit code signals failure to the OS / CI system
	}

	log.Info("storage initialised",
		slog.String("database", cfg.Mongo.Database),
		slog.String("collection", cfg.Mongo.Collection))

	// ── 4. Register HTTP Routes ───────────────────────────────────────────
	// The handler functions (student.New, student.GetByID, etc.) are
	// FACTORIES — they receive the storage and return the actual handler.
	//
	// Route table:
	//   POST   /students/       → create a new student
	//   GET    /students/       → list students (country / age filters)
	//   GET    /students/{id}   → get one student by ID
	//   PATCH  /students/{id}   → partially update a student
	//   DELETE /students/{id}   → delete a student
	//   GET    /healthz         → readiness probe
	//
	// {$} pins the collection patterns to exactly "/students/" — without
	// it, "GET /students/" would also swallow "/students/anything".
	router := http.NewServeMux()

	router.HandleFunc("POST /students/{$}", student.New(db))
	router.HandleFunc("GET /students/{$}", student.GetList(db))
	router.HandleFunc("GET /students/{id}", student.GetByID(db))
	router.HandleFunc("PATCH /students/{id}", student.Update(db))
	router.HandleFunc("DELETE /students/{id}", student.Delete(db))
	router.HandleFunc("GET /healthz", health.Check(db))

	// Middleware wraps outside-in: the request id is assigned first so
	// the access-log line can include it.
	handler := middleware.RequestID(middleware.Logging(router))

	// ── 5. Create the HTTP Server ─────────────────────────────────────────
	server := &http.Server{
		Addr:    cfg.HTTPServer.Addr,
		Handler: handler,

		// Production hardening — set timeouts to prevent slow-client attacks.
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// ── 6. Start Server in a Goroutine ────────────────────────────────────
	// ListenAndServe blocks forever. Run it in a goroutine so the
	// graceful-shutdown code below gets to run.
	go func() {
		log.Info("server started", slog.String("address", cfg.HTTPServer.Addr))

		// ListenAndServe returns http.ErrServerClosed when Shutdown() is
		// called. That's expected — we don't want to log it as an error.
		if err := server.ListenAndServe(); err != nil &&
			err != http.ErrServerClosed {
			log.Error("server encountered an error",
				slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	// ── 7. Wait for Shutdown Signal ───────────────────────────────────────
	// Buffered so we don't miss the signal if main is briefly busy.
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)
	<-done

	log.Info("shutdown signal received, stopping server...")

	// ── 8. Graceful Shutdown ──────────────────────────────────────────────
	// Give in-flight requests up to 5 seconds to finish, then disconnect
	// from the store.
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("failed to shutdown server gracefully",
			slog.String("error", err.Error()))
	}

	if err := db.Close(ctx); err != nil {
		log.Error("failed to disconnect from storage",
			slog.String("error", err.Error()))
	}

	log.Info("server stopped gracefully")
}

// setupLogger returns a *slog.Logger configured for the given environment.
//
// Development (dev): human-readable text output at DEBUG level.
// Production (prod): machine-readable JSON output at INFO level.
//
//	JSON logs are easy to ingest by log aggregators (Loki, CloudWatch, etc.)
func setupLogger(env string) *slog.Logger {
	switch env {
	case "prod":
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelInfo, // INFO and above in production
			}),
		)
	case "staging":
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelDebug, // more verbose in staging
			}),
		)
	default: // "dev" and anything unrecognised
		return slog.New(
			slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelDebug, // all levels in development
			}),
		)
	}
}
