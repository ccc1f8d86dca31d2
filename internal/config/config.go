// Package config loads nfasim settings from the environment.
package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"

	"github.com/geange/nfa"
)

// Config holds settings shared by every nfasim command. Command-line flags
// override the environment.
type Config struct {
	Epsilon   string `env:"NFASIM_EPSILON"    envDefault:"single"`
	MaxStates int    `env:"NFASIM_MAX_STATES" envDefault:"0"`
	WorkLimit int    `env:"NFASIM_WORK_LIMIT" envDefault:"10000"`
	Compiled  bool   `env:"NFASIM_COMPILED"`
	Verbose   bool   `env:"NFASIM_VERBOSE"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Policy resolves the configured epsilon policy name.
func (c Config) Policy() (nfa.EpsilonPolicy, error) {
	return nfa.ParseEpsilonPolicy(c.Epsilon)
}

// BuilderOptions translates the loader settings.
func (c Config) BuilderOptions() []nfa.BuilderOption {
	if c.MaxStates <= 0 {
		return nil
	}
	return []nfa.BuilderOption{nfa.WithMaxStates(c.MaxStates)}
}

// Exitf writes a formatted error message to stderr and exits with code 1.
func Exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
