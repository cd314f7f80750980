package env

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
)

// LoadDotEnv loads variables from a .env file without overriding variables
// already present in the environment. ENV_PATH, when set, wins over defaultPath.
// A missing file is only an error in strict mode.
func LoadDotEnv(defaultPath string, strict bool) error {
	envPath := os.Getenv("ENV_PATH")
	if envPath == "" {
		envPath = defaultPath
	}

	err := godotenv.Load(envPath)
	if err == nil {
		slog.Debug("Loaded environment file", "path", envPath)
		return nil
	}

	if errors.Is(err, fs.ErrNotExist) && !strict {
		slog.Debug("Skipping .env ...", "path", envPath)
		return nil
	}
	return err
}

// String returns the variable value or def when it is unset or empty.
func String(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
