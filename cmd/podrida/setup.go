package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"

	"github.com/lox/podrida/internal/config"
)

const defaultConfigFile = "podrida.hcl"

var titleStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("#FAFAFA")).
	Background(lipgloss.Color("#7D56F4")).
	Padding(0, 1).
	Bold(true)

// loadConfig reads the config file and .env, then applies the global flags.
// Command specific flags are applied by each command.
func loadConfig(globals *Globals) (*config.Config, error) {
	lookup, err := config.EnvLookup(".env")
	if err != nil {
		return nil, err
	}

	path := globals.Config
	if path == "" {
		path = defaultConfigFile
		if v, ok := lookup(config.EnvConfig); ok && v != "" {
			path = v
		}
	}

	cfg, err := config.LoadConfig(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(lookup); err != nil {
		return nil, err
	}
	if globals.LogLevel != "" {
		cfg.UI.LogLevel = strings.ToLower(globals.LogLevel)
	}
	if globals.NoColor {
		cfg.UI.NoColor = true
	}
	if cfg.UI.NoColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
	return cfg, nil
}

func newLogger(w io.Writer, level, prefix string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Prefix:          prefix,
	})
	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.InfoLevel
	}
	logger.SetLevel(lvl)
	return logger
}

// openLogFile opens the log file for a command that owns the terminal
func openLogFile(path string) (*os.File, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return f, nil
}
