package cli

import (
	"io"
	"log/slog"
	"os"
	"strconv"
)

// Config holds CLI configuration
type Config struct {
	Size       int
	Difficulty string
	Seed       int64
	LogFile    string
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		Size:       getEnvIntOrDefault("MINESWEEP_SIZE", 10),
		Difficulty: getEnvOrDefault("MINESWEEP_DIFFICULTY", "normal"),
		LogFile:    os.Getenv("MINESWEEP_LOG_FILE"),
	}
}

// OpenLogger builds the JSON logger. The TUI owns the terminal, so logs
// go to a file or nowhere, never to stdout.
func (c *Config) OpenLogger() (*slog.Logger, func(), error) {
	if c.LogFile == "" {
		return slog.New(slog.NewJSONHandler(io.Discard, nil)), func() {}, nil
	}

	f, err := os.OpenFile(c.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}

	logger := slog.New(slog.NewJSONHandler(f, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	return logger, func() { _ = f.Close() }, nil
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvIntOrDefault(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			return n
		}
	}
	return defaultVal
}
