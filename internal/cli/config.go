package cli

import (
	"io"
	"os"
)

// EnvLogLevel overrides the default log level when set.
const EnvLogLevel = "ARRDRILL_LOG_LEVEL"

// Config holds the runtime configuration for the command tree.
type Config struct {
	// LogLevel is any level accepted by logrus.ParseLevel.
	// Defaults to "warn", or to $ARRDRILL_LOG_LEVEL when set.
	LogLevel string

	// LogFormat selects the log encoding: "text" (default) or "json".
	LogFormat string

	// Stdin is read by commands that consume JSON input.
	Stdin io.Reader

	// Stdout receives command results. Diagnostics never go here.
	Stdout io.Writer

	// Stderr receives log output.
	Stderr io.Writer
}

// DefaultConfig returns a [Config] wired to the process streams.
func DefaultConfig() Config {
	level := "warn"
	if env := os.Getenv(EnvLogLevel); env != "" {
		level = env
	}
	return Config{
		LogLevel:  level,
		LogFormat: "text",
		Stdin:     os.Stdin,
		Stdout:    os.Stdout,
		Stderr:    os.Stderr,
	}
}
