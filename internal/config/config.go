// Package config resolves defaults for the fib commands from the
// environment and an optional .env file.
package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

const (
	EnvVariant  = "FIB_VARIANT"
	EnvLogLevel = "FIB_LOG_LEVEL"
)

// Config holds command defaults, overridden by flags.
type Config struct {
	Variant  string
	LogLevel string
}

// Load reads files (".env" when none are given) into the environment and
// returns the resulting defaults. A missing file is not an error.
func Load(files ...string) Config {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !os.IsNotExist(err) {
			logrus.WithError(err).WithField("file", f).Warn("could not load env file")
		}
	}

	return Config{
		Variant:  getenv(EnvVariant, "memo"),
		LogLevel: getenv(EnvLogLevel, "info"),
	}
}

func getenv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
