// Package config handles loading and parsing application configuration.
// It supports two sources (in priority order):
//  1. A YAML file, located via the CONFIG_PATH environment variable or
//     the --config command-line flag.
//  2. The environment alone — when no config file is named, every value
//     is read straight from environment variables. This is the standard
//     path in Docker / Kubernetes deployments.
//
// In both modes a .env file in the working directory is loaded first
// (if one exists), so local development can keep MONGODB_URL out of the
// shell profile.
//
// The parsed values are returned as a *Config pointer so the struct is
// shared by reference rather than copied everywhere.
package config

import (
	"flag"
	"log"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Config is the root configuration structure.
// Every field maps to a key in the YAML file AND can be overridden
// by the corresponding environment variable (env:"...").
//
// env-required:"true" means the app refuses to start if that value is
// missing — better to crash at boot than to silently use a wrong default.
type Config struct {
	// Env controls log format and verbosity.
	// Valid values: "dev", "staging", "prod"
	Env string `yaml:"env" env:"ENV" env-default:"dev"`

	// Mongo points at the document store. Its URL is the one value with
	// no sane default: absence is a startup-fatal condition.
	Mongo Mongo `yaml:"mongo"`

	// HTTPServer is embedded (not a pointer) so its fields are accessible
	// directly on Config:  cfg.HTTPServer.Addr
	HTTPServer `yaml:"http_server"`
}

// Mongo holds the document-store connection settings.
type Mongo struct {
	// URL is the MongoDB connection string, e.g.
	// "mongodb://localhost:27017".
	URL string `yaml:"url" env:"MONGODB_URL" env-required:"true"`

	// Database and Collection name where student documents live.
	Database   string `yaml:"database"   env:"MONGODB_DATABASE"   env-default:"college"`
	Collection string `yaml:"collection" env:"MONGODB_COLLECTION" env-default:"students"`
}

// HTTPServer holds settings specific to the HTTP server.
// Nested under http_server: in the YAML file.
type HTTPServer struct {
	// Addr is the TCP address the server listens on.
	Addr string `yaml:"address" env:"HTTP_SERVER_ADDR" env-default:"localhost:8080"`
}

// MustLoad reads, validates, and returns the application config.
//
// The name "MustLoad" follows a Go convention: functions prefixed with
// "Must" are allowed to panic/fatal on failure. Callers do not need to
// check a returned error — if this function returns, the config is valid.
func MustLoad() *Config {
	// Load a .env file if one is present. Missing file is fine — the
	// variables may just as well come from the real environment.
	_ = godotenv.Load()

	var configPath string

	// ── Source 1: environment variable ───────────────────────────────
	configPath = os.Getenv("CONFIG_PATH")

	// ── Source 2: command-line flag ───────────────────────────────────
	// Useful when running locally:
	//   go run ./cmd/students-api --config=config/local.yaml
	if configPath == "" {
		flags := flag.String("config", "", "Path to the configuration YAML file")
		flag.Parse()
		configPath = *flags
	}

	var cfg Config

	// ── No config file: read everything from the environment ─────────
	// cleanenv.ReadEnv populates env:"..." tagged fields and enforces
	// env-required:"true" — a missing MONGODB_URL fails right here.
	if configPath == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			log.Fatalf("cannot read config from environment: %s", err.Error())
		}
		return &cfg
	}

	// ── Config file named: it must exist ──────────────────────────────
	// os.Stat gives a clear message rather than a cryptic
	// "open: no such file" later.
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Fatalf("config file does not exist: %s", configPath)
	}

	// cleanenv.ReadConfig reads the YAML file and populates the struct.
	// It also reads any env:"..." tagged fields from the environment,
	// and validates env-required:"true" constraints.
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("cannot read config: %s", err.Error())
	}

	return &cfg
}
