package env

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
)

var ErrNoEnvFile = errors.New("no .env file found")

// LoadDotEnv loads every existing file of paths into the process
// environment; variables already set win. ENV_PATH, when set, replaces
// paths. Only local runs (env "local" or empty) require a file.
func LoadDotEnv(env string, paths ...string) error {
	if p := os.Getenv("ENV_PATH"); p != "" {
		paths = []string{p}
	}

	existing := make([]string, 0, len(paths))
	for _, p := range paths {
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			existing = append(existing, p)
		}
	}

	if len(existing) == 0 {
		if isLocal(env) {
			return fmt.Errorf("%w in %v", ErrNoEnvFile, paths)
		}
		slog.Debug("No .env file, using process environment", "env", env)
		return nil
	}

	if err := godotenv.Load(existing...); err != nil {
		return fmt.Errorf("load %v: %w", existing, err)
	}
	slog.Info("Loaded environment files", "paths", existing)
	return nil
}

func isLocal(env string) bool {
	return env == "" || env == "local"
}
