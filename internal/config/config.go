// Package config provides centralized configuration management using Viper.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration values for stepform.
type Config struct {
	DraftDir             string `mapstructure:"draft_dir" yaml:"draft_dir"`
	LogLevel             string `mapstructure:"log_level" yaml:"log_level"`
	LogFile              string `mapstructure:"log_file" yaml:"log_file"`
	DisableBackdropClose bool   `mapstructure:"disable_backdrop_close" yaml:"disable_backdrop_close"`
	CancelLabel          string `mapstructure:"cancel_label" yaml:"cancel_label"`
	SubmitLabel          string `mapstructure:"submit_label" yaml:"submit_label"`
}

// Load loads configuration with full precedence:
// ENV vars > project config > XDG global config > defaults
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetConfigName("stepform")

	v.SetDefault("draft_dir", ".stepform")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_file", "")
	v.SetDefault("disable_backdrop_close", false)
	v.SetDefault("cancel_label", "")
	v.SetDefault("submit_label", "")

	v.SetEnvPrefix("STEPFORM")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Explicit ENV bindings for better bool parsing.
	bindings := [][2]string{
		{"draft_dir", "STEPFORM_DRAFT_DIR"},
		{"log_level", "STEPFORM_LOG_LEVEL"},
		{"log_file", "STEPFORM_LOG_FILE"},
		{"disable_backdrop_close", "STEPFORM_DISABLE_BACKDROP_CLOSE"},
		{"cancel_label", "STEPFORM_CANCEL_LABEL"},
		{"submit_label", "STEPFORM_SUBMIT_LABEL"},
	}
	for _, b := range bindings {
		if err := v.BindEnv(b[0], b[1]); err != nil {
			return nil, fmt.Errorf("binding %s env: %w", b[0], err)
		}
	}

	// Load global config first (if exists)
	globalPath := GlobalPath()
	if fileExists(globalPath) {
		v.SetConfigFile(globalPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading global config: %w", err)
		}
	}

	// Merge project config on top (if exists)
	projectPath := ProjectPath()
	if fileExists(projectPath) {
		v.SetConfigFile(projectPath)
		if err := v.MergeInConfig(); err != nil {
			return nil, fmt.Errorf("merging project config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}

// Exists returns true if any config file exists (global or project).
func Exists() bool {
	return fileExists(GlobalPath()) || fileExists(ProjectPath())
}

// GlobalPath returns the XDG global config path.
// Returns ~/.config/stepform/stepform.yml or $XDG_CONFIG_HOME/stepform/stepform.yml.
func GlobalPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "stepform", "stepform.yml")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "stepform", "stepform.yml")
}

// ProjectPath returns the project-local config path.
// Returns ./stepform.yml in the current working directory.
func ProjectPath() string {
	return "stepform.yml"
}

// WriteGlobal writes the config to the XDG global location.
func WriteGlobal(cfg *Config) error {
	path := GlobalPath()

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// WriteProject writes the config to the project-local location.
func WriteProject(cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(ProjectPath(), data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// fileExists checks if a file exists.
func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
