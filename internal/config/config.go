// Package config loads the shell's startup options, combining built-in
// defaults with an optional YAML rc file. Command-line flags override
// anything read from the file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultPrompt is printed before each read unless prompting is disabled.
const DefaultPrompt = "tsh> "

// Config carries the startup options for the shell.
type Config struct {
	// Prompt is the string printed before each command line is read.
	Prompt string `yaml:"prompt"`

	// Verbose enables debug-level diagnostics on the output stream.
	Verbose bool `yaml:"verbose"`

	// NoPrompt suppresses the prompt. Handy for scripted test harnesses.
	NoPrompt bool `yaml:"no_prompt"`

	// HistoryFile is where interactive line history is persisted. An
	// empty value disables history.
	HistoryFile string `yaml:"history_file"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Prompt:      DefaultPrompt,
		HistoryFile: homePath(".tsh_history"),
	}
}

// DefaultPath returns the rc file location probed when no --config flag
// is given, or "" when the home directory cannot be determined.
func DefaultPath() string {
	return homePath(".tshrc.yaml")
}

// Load reads the rc file at path, applying it over Default. A missing
// file is not an error; an unreadable or malformed file is.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}

		return cfg, fmt.Errorf("read rc file: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse rc file %s: %w", path, err)
	}

	if cfg.Prompt == "" {
		cfg.Prompt = DefaultPrompt
	}

	return cfg, nil
}

func homePath(name string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	return filepath.Join(home, name)
}
