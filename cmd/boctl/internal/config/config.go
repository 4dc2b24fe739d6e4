package config

import (
	"context"
	"os"

	"github.com/goliatone/go-backoffice"
	"github.com/joho/godotenv"
)

const defaultAPIURL = "http://localhost:8080"

type contextKey string

const configKey contextKey = "boctl-config"

// GlobalConfig holds the shared wiring for all boctl commands. The root
// command builds it in PersistentPreRun and injects it into the command
// context; subcommands read it back with MustFromContext.
type GlobalConfig struct {
	APIURL  string
	Client  *backoffice.Client
	Session *backoffice.SessionStore
}

// Load resolves the API base URL from a local .env file and the process
// environment. The flag value wins when non-empty.
func Load(flagURL string) string {
	// Missing .env files are fine, the environment still applies
	_ = godotenv.Load()

	if flagURL != "" {
		return flagURL
	}
	if url := os.Getenv("BACKOFFICE_API_URL"); url != "" {
		return url
	}
	return defaultAPIURL
}

// Inject adds the config to a cobra command context
func Inject(ctx context.Context, cfg *GlobalConfig) context.Context {
	return context.WithValue(ctx, configKey, cfg)
}

// FromContext retrieves the config, reporting whether it was present
func FromContext(ctx context.Context) (*GlobalConfig, bool) {
	cfg, ok := ctx.Value(configKey).(*GlobalConfig)
	return cfg, ok
}

// MustFromContext retrieves the config or panics. Only for RunE functions
// below the root command, which always injects it.
func MustFromContext(ctx context.Context) *GlobalConfig {
	cfg, ok := FromContext(ctx)
	if !ok {
		panic("boctl: config not found in context")
	}
	return cfg
}
