package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/j-mracek/libcomps/pkg/comps"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

const ConfigFileName = "comps.yaml"

// Environment variables overriding comps.yaml.
const (
	EnvOutput      = "COMPS_OUTPUT"
	EnvStrict      = "COMPS_STRICT"
	EnvLockTimeout = "COMPS_LOCK_TIMEOUT"
)

const (
	DefaultIndent      = "  "
	DefaultLockTimeout = 5 * time.Second
)

type ProjectConfig struct {
	Output      string `yaml:"output"`
	Indent      string `yaml:"indent"`
	Strict      bool   `yaml:"strict"`
	LockTimeout string `yaml:"lock_timeout"`
}

// Settings are the effective values after applying comps.yaml and the
// environment to the defaults.
type Settings struct {
	Output      string
	Indent      string
	Strict      bool
	LockTimeout time.Duration
}

// Defaults returns the built-in settings.
func Defaults() Settings {
	return Settings{
		Indent:      DefaultIndent,
		LockTimeout: DefaultLockTimeout,
	}
}

// Load reads comps.yaml from dir.
func Load(dir string) (*ProjectConfig, error) {
	return LoadFile(filepath.Join(dir, ConfigFileName))
}

// LoadFile reads a config file at an explicit path.
func LoadFile(configPath string) (*ProjectConfig, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cfg ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", comps.ErrInvalidConfig, configPath, err)
	}
	return &cfg, nil
}

// Resolve layers cfg (may be nil) and then the environment over the
// defaults. lookup is usually os.LookupEnv.
func Resolve(cfg *ProjectConfig, lookup func(string) (string, bool)) (Settings, error) {
	s := Defaults()

	if cfg != nil {
		if cfg.Output != "" {
			s.Output = cfg.Output
		}
		if cfg.Indent != "" {
			s.Indent = cfg.Indent
		}
		s.Strict = cfg.Strict
		if cfg.LockTimeout != "" {
			d, err := parseTimeout(cfg.LockTimeout)
			if err != nil {
				return Settings{}, fmt.Errorf("invalid lock_timeout in %s: %w", ConfigFileName, err)
			}
			s.LockTimeout = d
		}
	}

	if lookup == nil {
		return s, nil
	}
	if v, ok := lookup(EnvOutput); ok && v != "" {
		s.Output = v
	}
	if v, ok := lookup(EnvStrict); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return Settings{}, fmt.Errorf("%w: %s=%q is not a boolean", comps.ErrInvalidConfig, EnvStrict, v)
		}
		s.Strict = b
	}
	if v, ok := lookup(EnvLockTimeout); ok && v != "" {
		d, err := parseTimeout(v)
		if err != nil {
			return Settings{}, fmt.Errorf("invalid %s: %w", EnvLockTimeout, err)
		}
		s.LockTimeout = d
	}
	return s, nil
}

func parseTimeout(v string) (time.Duration, error) {
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", comps.ErrInvalidConfig, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%w: timeout must be positive, got %s", comps.ErrInvalidConfig, v)
	}
	return d, nil
}
