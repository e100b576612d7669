// Package config loads ciphermsg settings from defaults, a YAML file and the
// environment, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"ciphermsg/internal/crypto"
	"ciphermsg/internal/domain"
	"ciphermsg/internal/store"
)

// Environment variables consulted by ApplyEnv.
const (
	EnvHome     = "CIPHERMSG_HOME"
	EnvCurve    = "CIPHERMSG_CURVE"
	EnvLogLevel = "CIPHERMSG_LOG_LEVEL"
	EnvOutput   = "CIPHERMSG_OUTPUT"
)

// Output encodings for envelopes printed by the CLI.
const (
	OutputHex    = "hex"
	OutputBase64 = "base64"
)

// ErrInvalidConfig is returned by Validate and Load.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds runtime options for building the app.
type Config struct {
	Home     string `yaml:"home"`     // config directory, e.g. $HOME/.ciphermsg
	KeyFile  string `yaml:"keyFile"`  // key file name under Home, or an absolute path
	Curve    string `yaml:"curve"`    // ed25519, x25519 or x448
	LogLevel string `yaml:"logLevel"` // any logrus level name
	Output   string `yaml:"output"`   // hex or base64
}

// Default returns the built-in configuration.
func Default() Config {
	home := ".ciphermsg"
	if h, err := os.UserHomeDir(); err == nil {
		home = filepath.Join(h, ".ciphermsg")
	}
	return Config{
		Home:     home,
		KeyFile:  store.DefaultKeyFile,
		Curve:    domain.CurveEd25519.String(),
		LogLevel: logrus.WarnLevel.String(),
		Output:   OutputHex,
	}
}

// Load returns Default merged with the YAML file at path. A missing file is
// not an error; a malformed one is.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return Config{}, err
	}

	var parsed Config
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return Config{}, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, path, err)
	}
	Merge(&cfg, parsed)
	return cfg, nil
}

// Merge copies every non-empty field of src into dst.
func Merge(dst *Config, src Config) {
	if src.Home != "" {
		dst.Home = src.Home
	}
	if src.KeyFile != "" {
		dst.KeyFile = src.KeyFile
	}
	if src.Curve != "" {
		dst.Curve = src.Curve
	}
	if src.LogLevel != "" {
		dst.LogLevel = src.LogLevel
	}
	if src.Output != "" {
		dst.Output = src.Output
	}
}

// ApplyEnv overrides fields from CIPHERMSG_* environment variables.
func (c *Config) ApplyEnv() {
	Merge(c, Config{
		Home:     strings.TrimSpace(os.Getenv(EnvHome)),
		Curve:    strings.TrimSpace(os.Getenv(EnvCurve)),
		LogLevel: strings.TrimSpace(os.Getenv(EnvLogLevel)),
		Output:   strings.TrimSpace(os.Getenv(EnvOutput)),
	})
}

// Validate rejects unknown curves, log levels and output encodings.
func (c Config) Validate() error {
	if c.Home == "" {
		return fmt.Errorf("%w: home is empty", ErrInvalidConfig)
	}
	if _, err := crypto.ParseCurve(c.Curve); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	switch c.Output {
	case OutputHex, OutputBase64:
	default:
		return fmt.Errorf("%w: unknown output encoding %q", ErrInvalidConfig, c.Output)
	}
	return nil
}

// KeyPath returns the directory and file name of the key file.
func (c Config) KeyPath() (dir, name string) {
	if filepath.IsAbs(c.KeyFile) {
		return filepath.Dir(c.KeyFile), filepath.Base(c.KeyFile)
	}
	return c.Home, c.KeyFile
}
