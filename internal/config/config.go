// Package config loads pageid settings from a YAML file, a .env file and
// PAGEID_ environment variables.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/hashicorp/go-multierror"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/macropower/pageid/internal/render"
	"github.com/macropower/pageid/pkg/log"
)

const (
	// DefaultFile is read from the working directory when no config file is
	// given explicitly. It is optional.
	DefaultFile = ".pageid.yaml"

	// DotEnvFile is loaded from the working directory when present.
	DotEnvFile = ".env"

	EnvRoot      = "PAGEID_ROOT"
	EnvLogLevel  = "PAGEID_LOG_LEVEL"
	EnvLogFormat = "PAGEID_LOG_FORMAT"
	EnvOutput    = "PAGEID_OUTPUT"
)

var (
	ErrReadConfig    = errors.New("failed to read config")
	ErrInvalidConfig = errors.New("invalid config")
)

// Config holds settings that may come from flags, the environment or a file.
type Config struct {
	Root      string `yaml:"root"`
	LogLevel  string `yaml:"logLevel"`
	LogFormat string `yaml:"logFormat"`
	Output    string `yaml:"output"`
}

// Default returns the built-in defaults. Root is left empty so that it is
// discovered from the working directory.
func Default() *Config {
	return &Config{
		LogLevel:  "warn",
		LogFormat: log.TextFormat,
		Output:    string(render.Text),
	}
}

// Load returns [Default] overlaid with the YAML file at path. A missing file
// is only an error when required is true.
func Load(path string, required bool) (*Config, error) {
	c := Default()

	f, err := os.Open(path)
	if err != nil {
		if !required && errors.Is(err, fs.ErrNotExist) {
			return c, nil
		}

		return nil, fmt.Errorf("%w: %w", ErrReadConfig, err)
	}
	defer f.Close() //nolint:errcheck

	if err := c.Decode(f); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrReadConfig, path, err)
	}

	return c, nil
}

// Decode overlays YAML read from r onto c. Unknown keys are rejected.
func (c *Config) Decode(r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("read: %w", err)
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	if err := dec.Decode(c); err != nil {
		return fmt.Errorf("decode yaml: %w", err)
	}

	return nil
}

// LoadDotEnv loads path into the process environment without overriding
// variables that are already set. A missing file is ignored.
func LoadDotEnv(path string) error {
	err := godotenv.Load(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load %s: %w", path, err)
	}

	return nil
}

// ApplyEnv overlays non-empty PAGEID_ variables found with lookup, usually
// [os.LookupEnv].
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) {
	set := func(dst *string, key string) {
		if v, ok := lookup(key); ok && v != "" {
			*dst = v
		}
	}

	set(&c.Root, EnvRoot)
	set(&c.LogLevel, EnvLogLevel)
	set(&c.LogFormat, EnvLogFormat)
	set(&c.Output, EnvOutput)
}

// Validate reports every invalid setting.
func (c *Config) Validate() error {
	var merr error

	if _, err := log.GetLevel(c.LogLevel); err != nil {
		merr = multierror.Append(merr, fmt.Errorf("logLevel: %w", err))
	}

	if _, err := log.GetFormatter(c.LogFormat); err != nil {
		merr = multierror.Append(merr, fmt.Errorf("logFormat: %w", err))
	}

	if _, err := render.ParseFormat(c.Output); err != nil {
		merr = multierror.Append(merr, fmt.Errorf("output: %w", err))
	}

	if merr != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, merr)
	}

	return nil
}
