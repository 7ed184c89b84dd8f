package config

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strconv"
	"strings"
)

const (
	UIConsole = "console"
	UITUI     = "tui"
)

// Config holds the front end and logging settings of the binary.
type Config struct {
	UI        string
	ShowHints bool
	LogLevel  slog.Level
	LogFormat string
	LogFile   string
}

// LoadConfig reads the environment and then lets command-line flags
// override it. args excludes the program name.
func LoadConfig(args []string) (*Config, error) {
	fs := flag.NewFlagSet("reversi", flag.ContinueOnError)

	ui := fs.String("ui", GetEnv("REVERSI_UI", UIConsole), "Front end: console or tui")
	hints := fs.Bool("hints", GetEnvAsBool("REVERSI_HINTS", true), "Highlight legal moves in the tui")
	level := fs.String("log-level", GetEnv("REVERSI_LOG_LEVEL", "warn"), "Log level: debug, info, warn or error")
	format := fs.String("log-format", GetEnv("REVERSI_LOG_FORMAT", "text"), "Log format: text or json")
	file := fs.String("log-file", GetEnv("REVERSI_LOG_FILE", ""), "Append logs to this file instead of stderr")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg := &Config{
		UI:        strings.ToLower(*ui),
		ShowHints: *hints,
		LogFormat: strings.ToLower(*format),
		LogFile:   *file,
	}

	if cfg.UI != UIConsole && cfg.UI != UITUI {
		return nil, fmt.Errorf("unknown ui %q", *ui)
	}
	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return nil, fmt.Errorf("unknown log format %q", *format)
	}
	if err := cfg.LogLevel.UnmarshalText([]byte(*level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", *level, err)
	}

	return cfg, nil
}

// GetEnv returns the value of key, or defaultValue when it is unset or empty.
func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// GetEnvAsBool is GetEnv for booleans; an unparsable value falls back to
// defaultValue.
func GetEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("Invalid boolean value for %s: %s, using default: %t", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}
