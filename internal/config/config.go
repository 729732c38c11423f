package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the application
type Config struct {
	// Project settings
	ProjectPath string `yaml:"project_path"`
	SuitesDir   string `yaml:"suites_dir"`

	// Output settings
	OutputJSONFile string `yaml:"output_json_file"`
	OutputJSONDir  string `yaml:"output_json_dir"`
	JUnitPath      string `yaml:"junit_path"`
	MetricsFile    string `yaml:"metrics_file"`
	Verbosity      string `yaml:"verbosity"`
	Progress       bool   `yaml:"progress"`

	// Execution settings
	Repeat   int    `yaml:"repeat"`
	FailFast bool   `yaml:"fail_fast"`
	Filter   string `yaml:"filter"`

	// Logging
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`

	// Paths to ignore when scanning
	PathsToIgnore []string `yaml:"paths_to_ignore"`

	// Command flags
	Flags Flags `yaml:"-"`
}

// Flags holds command-line flags
type Flags struct {
	ProjectPath  string
	ConfigFile   string
	SuitesDir    string
	Filter       string
	Repeat       int
	FailFast     bool
	OnlyFailed   bool
	Verbosity    string
	JUnitPath    string
	MetricsFile  string
	NoProgress   bool
	OpenFailures bool
	ShowTests    bool
	LogLevel     string
	LogFormat    string
}

// New creates a new Config with defaults
func New() *Config {
	cfg := &Config{
		ProjectPath:    DefaultProjectPath,
		SuitesDir:      DefaultSuitesDir,
		OutputJSONFile: DefaultOutputJSONFile,
		OutputJSONDir:  DefaultOutputJSONDir,
		Verbosity:      string(DefaultVerbosity),
		Progress:       true,
		Repeat:         DefaultRepeat,
		LogLevel:       DefaultLogLevel,
		LogFormat:      DefaultLogFormat,
	}
	// Copy default paths to ignore
	cfg.PathsToIgnore = make([]string, len(DefaultPathsToIgnore))
	copy(cfg.PathsToIgnore, DefaultPathsToIgnore)
	return cfg
}

// Load creates a config from defaults, the config file, the environment and
// finally the given flags.
func Load(flags Flags) (*Config, error) {
	cfg := New()
	if flags.ProjectPath != "" {
		cfg.ProjectPath = flags.ProjectPath
	}

	path := flags.ConfigFile
	explicit := path != ""
	if !explicit {
		path = filepath.Join(cfg.ProjectPath, DefaultConfigFile)
	}
	if err := cfg.LoadFile(path); err != nil {
		if explicit || !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
	}

	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}

	cfg.ApplyFlags(flags)
	return cfg, cfg.Validate()
}

// LoadFile overlays a YAML config file onto the config
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

// ApplyEnv loads the project .env file, if any, and applies SUITERUN_* overrides
func (c *Config) ApplyEnv() error {
	// .env file might not exist, that's okay - use environment variables
	_ = godotenv.Load(filepath.Join(c.ProjectPath, ".env"))

	if v := os.Getenv(EnvPrefix + "SUITES_DIR"); v != "" {
		c.SuitesDir = v
	}
	if v := os.Getenv(EnvPrefix + "FILTER"); v != "" {
		c.Filter = v
	}
	if v := os.Getenv(EnvPrefix + "VERBOSITY"); v != "" {
		c.Verbosity = v
	}
	if v := os.Getenv(EnvPrefix + "LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv(EnvPrefix + "LOG_FORMAT"); v != "" {
		c.LogFormat = v
	}
	if v := os.Getenv(EnvPrefix + "REPEAT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %sREPEAT %q: %w", EnvPrefix, v, err)
		}
		c.Repeat = n
	}
	if v := os.Getenv(EnvPrefix + "FAIL_FAST"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %sFAIL_FAST %q: %w", EnvPrefix, v, err)
		}
		c.FailFast = b
	}
	return nil
}

// ApplyFlags stores the flags and overrides every value that was set
func (c *Config) ApplyFlags(flags Flags) {
	c.Flags = flags

	if flags.ProjectPath != "" {
		c.ProjectPath = flags.ProjectPath
	}
	if flags.SuitesDir != "" {
		c.SuitesDir = flags.SuitesDir
	}
	if flags.Filter != "" {
		c.Filter = flags.Filter
	}
	if flags.Repeat > 0 {
		c.Repeat = flags.Repeat
	}
	if flags.FailFast {
		c.FailFast = true
	}
	if flags.Verbosity != "" {
		c.Verbosity = flags.Verbosity
	}
	if flags.JUnitPath != "" {
		c.JUnitPath = flags.JUnitPath
	}
	if flags.MetricsFile != "" {
		c.MetricsFile = flags.MetricsFile
	}
	if flags.NoProgress {
		c.Progress = false
	}
	if flags.LogLevel != "" {
		c.LogLevel = flags.LogLevel
	}
	if flags.LogFormat != "" {
		c.LogFormat = flags.LogFormat
	}
}

// Validate checks values that cannot be fixed up silently
func (c *Config) Validate() error {
	if c.Repeat < 1 {
		return fmt.Errorf("repeat must be at least 1, got %d", c.Repeat)
	}
	if _, err := ParseVerbosity(c.Verbosity); err != nil {
		return err
	}
	return nil
}

// GetVerbosity returns the parsed verbosity, falling back to the default
func (c *Config) GetVerbosity() Verbosity {
	v, err := ParseVerbosity(c.Verbosity)
	if err != nil {
		return DefaultVerbosity
	}
	return v
}

// GetSuitesPath returns the directory declarative suites are loaded from
func (c *Config) GetSuitesPath() string {
	if filepath.IsAbs(c.SuitesDir) {
		return c.SuitesDir
	}
	return filepath.Join(c.ProjectPath, c.SuitesDir)
}

// SuitesDirExplicit reports whether the suites directory was chosen by the user
func (c *Config) SuitesDirExplicit() bool {
	return c.Flags.SuitesDir != "" || c.SuitesDir != DefaultSuitesDir
}

// GetOutputPath returns the full path to the output JSON file.
// Resolves to an absolute path so run and failures always read/write the same file regardless of cwd.
func (c *Config) GetOutputPath() string {
	p := filepath.Join(c.ProjectPath, c.OutputJSONDir, c.OutputJSONFile)
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}
