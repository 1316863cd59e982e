// Package config resolves hydroflow defaults from hydroflow.yaml, a .env
// file and HYDROFLOW_* environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// FileName is the optional settings file looked up in the working directory.
const FileName = "hydroflow.yaml"

// Environment variables, applied over the settings file.
const (
	EnvProfile    = "HYDROFLOW_PROFILE"
	EnvIterations = "HYDROFLOW_ITERATIONS"
	EnvWorkers    = "HYDROFLOW_WORKERS"
	EnvOutputDir  = "HYDROFLOW_OUTPUT_DIR"
)

// Settings holds defaults for command flags.
type Settings struct {
	Profile    string `yaml:"profile"`
	Iterations int    `yaml:"iterations"`
	Workers    int    `yaml:"workers"`
	OutputDir  string `yaml:"output_dir"`
}

// Default returns the built-in settings.
func Default() Settings {
	return Settings{
		Profile:    filepath.Join("data", "profiles", "ona.json"),
		Iterations: 1000,
		Workers:    1,
		OutputDir:  "local_workspace",
	}
}

// Load resolves settings for dir. Missing hydroflow.yaml and .env files
// are not errors.
func Load(dir string) (Settings, error) {
	s := Default()

	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
	case err != nil:
		return s, fmt.Errorf("read %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, &s); err != nil {
			return s, fmt.Errorf("unmarshal %s: %w", path, err)
		}
	}

	envFile := filepath.Join(dir, ".env")
	if _, err := os.Stat(envFile); err == nil {
		// Variables already set in the environment win over the file.
		if err := godotenv.Load(envFile); err != nil {
			return s, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	if err := s.applyEnv(); err != nil {
		return s, err
	}
	return s, nil
}

func (s *Settings) applyEnv() error {
	if v := os.Getenv(EnvProfile); v != "" {
		s.Profile = v
	}
	if v := os.Getenv(EnvOutputDir); v != "" {
		s.OutputDir = v
	}
	if v := os.Getenv(EnvIterations); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvIterations, err)
		}
		s.Iterations = n
	}
	if v := os.Getenv(EnvWorkers); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvWorkers, err)
		}
		s.Workers = n
	}
	return nil
}

// OutputPath joins name onto the output directory unless name already
// contains a directory.
func (s Settings) OutputPath(name string) string {
	if filepath.Dir(name) != "." || s.OutputDir == "" {
		return name
	}
	return filepath.Join(s.OutputDir, name)
}
