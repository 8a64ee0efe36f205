// Package config resolves the piececube configuration directory and loads
// config.yaml with viper.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
	fileExt  = "config.yaml"

	// EnvConfigDir overrides the default configuration directory.
	EnvConfigDir = "PIECECUBE_CONFIG_DIR"
	// DefaultDirName is created under the user's home directory.
	DefaultDirName = ".piececube"
)

// Config keys.
const (
	KeyDBPath         = "db_path"
	KeyScrambleLength = "scramble.length"
	KeyAvoidRepeats   = "scramble.avoid_repeats"
	KeyMaxDepth       = "search.max_depth"
	KeyBackend        = "solver.backend"
	KeyEndpoint       = "solver.endpoint"
	KeyCommand        = "solver.command"
	KeyTimeout        = "solver.timeout"
	KeyFallback       = "solver.fallback"
)

// Solver backends.
const (
	BackendNone = "none"
	BackendHTTP = "http"
	BackendExec = "exec"
)

// ErrInvalid reports a config value outside its allowed set.
var ErrInvalid = errors.New("config: invalid value")

const defaultYAML = `# piececube configuration

# SQLite history database (default: <config dir>/history.db)
# db_path:

scramble:
  length: 20
  avoid_repeats: false

search:
  max_depth: 8

solver:
  # none, http or exec
  backend: none
  # endpoint: http://localhost:8080/solve
  # command: kociemba
  timeout: 10s
  # none, solved or cross
  fallback: cross
`

// Config is the resolved configuration.
type Config struct {
	Dir string
	// DBPath is empty unless set in the file.
	DBPath string

	ScrambleLength int
	AvoidRepeats   bool
	MaxDepth       int

	Backend  string
	Endpoint string
	Command  string
	Timeout  time.Duration
	Fallback string
}

var homeDir = os.UserHomeDir

// ResolveDir returns the configuration directory following the precedence
// flag > PIECECUBE_CONFIG_DIR > ~/.piececube.
func ResolveDir(flag string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if env := os.Getenv(EnvConfigDir); env != "" {
		return filepath.Abs(env)
	}
	home, err := homeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, DefaultDirName), nil
}

// Load reads config.yaml from dir, creating the directory and a default
// file on first run. A missing file is not an error.
func Load(dir string) (*Config, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("ensure config dir: %w", err)
	}
	if err := ensureDefaultFile(dir); err != nil {
		return nil, fmt.Errorf("ensure default config: %w", err)
	}

	v := viper.New()
	setDefaults(v)
	v.SetConfigName(fileName)
	v.SetConfigType(fileType)
	v.AddConfigPath(dir)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	return fromViper(v, dir)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(KeyScrambleLength, 20)
	v.SetDefault(KeyAvoidRepeats, false)
	v.SetDefault(KeyMaxDepth, 8)
	v.SetDefault(KeyBackend, BackendNone)
	v.SetDefault(KeyTimeout, 10*time.Second)
	v.SetDefault(KeyFallback, "cross")
}

func fromViper(v *viper.Viper, dir string) (*Config, error) {
	cfg := &Config{
		Dir:            dir,
		DBPath:         v.GetString(KeyDBPath),
		ScrambleLength: v.GetInt(KeyScrambleLength),
		AvoidRepeats:   v.GetBool(KeyAvoidRepeats),
		MaxDepth:       v.GetInt(KeyMaxDepth),
		Backend:        strings.ToLower(v.GetString(KeyBackend)),
		Endpoint:       v.GetString(KeyEndpoint),
		Command:        v.GetString(KeyCommand),
		Timeout:        v.GetDuration(KeyTimeout),
		Fallback:       strings.ToLower(v.GetString(KeyFallback)),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks enumerated and numeric settings.
func (c *Config) Validate() error {
	switch c.Backend {
	case BackendNone:
	case BackendHTTP:
		if c.Endpoint == "" {
			return fmt.Errorf("%w: %s requires %s", ErrInvalid, BackendHTTP, KeyEndpoint)
		}
	case BackendExec:
		if c.Command == "" {
			return fmt.Errorf("%w: %s requires %s", ErrInvalid, BackendExec, KeyCommand)
		}
	default:
		return fmt.Errorf("%w: %s %q", ErrInvalid, KeyBackend, c.Backend)
	}

	switch c.Fallback {
	case "none", "solved", "cross":
	default:
		return fmt.Errorf("%w: %s %q", ErrInvalid, KeyFallback, c.Fallback)
	}

	if c.ScrambleLength < 0 {
		return fmt.Errorf("%w: %s %d", ErrInvalid, KeyScrambleLength, c.ScrambleLength)
	}
	if c.MaxDepth < 0 {
		return fmt.Errorf("%w: %s %d", ErrInvalid, KeyMaxDepth, c.MaxDepth)
	}
	return nil
}

func ensureDefaultFile(dir string) error {
	path := filepath.Join(dir, fileExt)
	_, err := os.Stat(path)
	if err == nil {
		return nil
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}
	return os.WriteFile(path, []byte(defaultYAML), 0o644)
}
