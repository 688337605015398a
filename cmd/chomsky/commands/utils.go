/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: utils.go
Description: Shared utilities for the Chomsky toolkit commands. Provides configuration loading,
logger and toolkit construction, flag overrides and input/output helpers used by every
command implementation.
*/

package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/kleascm/chomsky-toolkit/pkg/config"
	"github.com/kleascm/chomsky-toolkit/pkg/logging"
	"github.com/kleascm/chomsky-toolkit/pkg/pipeline"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// env is what a command needs to run
type env struct {
	cfg     *config.Config
	logger  *logging.Logger
	toolkit *pipeline.Toolkit
	out     io.Writer
}

// LoadConfig loads configuration from defaults, the config file, environment and flags
func LoadConfig(v *viper.Viper) (*config.Config, error) {
	return config.Load(v, v.GetString("config"))
}

// SetupLogging creates the logger described by cfg
func SetupLogging(cfg *config.Config, w io.Writer) (*logging.Logger, error) {
	logger, err := logging.NewLogger(&cfg.Log)
	if err != nil {
		return nil, err
	}
	logger.SetOutput(w)
	return logger, nil
}

// setup prepares configuration, logging and the toolkit for cmd
func setup(cmd *cobra.Command, v *viper.Viper) (*env, error) {
	cfg, err := LoadConfig(v)
	if err != nil {
		return nil, err
	}
	overrideInt(cmd, "max-len", &cfg.Sampler.MaxLen)
	overrideInt(cmd, "max-steps", &cfg.Sampler.MaxSteps)
	overrideInt(cmd, "bound", &cfg.Sampler.CompareBound)
	overrideInt(cmd, "workers", &cfg.Batch.Workers)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	logger, err := SetupLogging(cfg, cmd.ErrOrStderr())
	if err != nil {
		return nil, fmt.Errorf("failed to setup logging: %w", err)
	}

	toolkit, err := pipeline.New(logger, pipeline.Options{
		Bounds:        cfg.Sampler.Bounds(),
		CompareBounds: cfg.Sampler.CompareBounds(),
	})
	if err != nil {
		logger.Close()
		return nil, err
	}
	return &env{cfg: cfg, logger: logger, toolkit: toolkit, out: cmd.OutOrStdout()}, nil
}

// overrideInt copies an explicitly set flag into dst
func overrideInt(cmd *cobra.Command, name string, dst *int) {
	f := cmd.Flags().Lookup(name)
	if f == nil || !f.Changed {
		return
	}
	if n, err := cmd.Flags().GetInt(name); err == nil {
		*dst = n
	}
}

// readInput reads a file, or standard input for "-"
func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return data, nil
}

// writeFile writes through render into path, creating parent directories
func writeFile(path string, render func(io.Writer) error) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer file.Close()
	return render(file)
}

// isYAML reports whether path names a YAML document
func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

// displayWord renders the empty word as ε
func displayWord(w string) string {
	if w == "" {
		return "ε"
	}
	return w
}
