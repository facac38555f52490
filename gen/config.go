package gen

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/nasdf/gqlselect/types"

	"gopkg.in/yaml.v3"
)

// Config contains the generator settings.
type Config struct {
	// Package is the name of the generated Go package.
	Package string `yaml:"package"`
	// Output is the path of the generated file.
	Output string `yaml:"output"`
	// Schema is the list of schema files to load.
	Schema []string `yaml:"schema"`
	// Scalars maps custom scalar names to Go types.
	Scalars map[string]types.Scalar `yaml:"scalars"`
}

// LoadConfig reads the YAML config at the given path.
//
// Relative schema and output paths are resolved against the config directory.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	dir := filepath.Dir(path)
	for i, p := range cfg.Schema {
		cfg.Schema[i] = resolve(dir, p)
	}
	if cfg.Output != "" {
		cfg.Output = resolve(dir, cfg.Output)
	}
	return cfg, cfg.Validate()
}

// Validate returns an error if a required setting is missing.
func (c Config) Validate() error {
	var errs []error
	if c.Package == "" {
		errs = append(errs, errors.New("package is required"))
	}
	if c.Output == "" {
		errs = append(errs, errors.New("output is required"))
	}
	if len(c.Schema) == 0 {
		errs = append(errs, errors.New("at least one schema file is required"))
	}
	for name, s := range c.Scalars {
		if s.Type == "" {
			errs = append(errs, fmt.Errorf("scalar %s: type is required", name))
		}
	}
	return errors.Join(errs...)
}

func resolve(dir, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(dir, path)
}
