package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variable names
const (
	EnvAPIURL   = "FLEETMAINT_API_URL"
	EnvLogLevel = "FLEETMAINT_LOG_LEVEL"
	EnvLogFile  = "FLEETMAINT_LOG_FILE"
	EnvTimeout  = "FLEETMAINT_TIMEOUT"
)

// DefaultEnvFile is the dotenv file read from the working directory
const DefaultEnvFile = ".env"

var (
	// ErrNoAPIURL is returned when no source provides the vehicles API base URL
	ErrNoAPIURL = errors.New("no API URL configured (set " + EnvAPIURL + " or --api-url)")

	// ErrInvalidAPIURL is returned when the base URL is not an absolute http(s) URL
	ErrInvalidAPIURL = errors.New("invalid API URL")
)

// Settings is the resolved configuration
type Settings struct {
	// APIURL is the base endpoint; the client appends /vehicles
	APIURL string `yaml:"api_url"`

	// LogLevel enables diagnostic logging when non-empty
	LogLevel string `yaml:"log_level,omitempty"`

	// LogFile is where the TUI writes logs
	LogFile string `yaml:"log_file,omitempty"`

	// Timeout bounds each HTTP request; zero means no timeout
	Timeout time.Duration `yaml:"timeout,omitempty"`
}

// Overrides holds command-line values. Zero values mean "not set".
type Overrides struct {
	APIURL   string
	LogLevel string
	LogFile  string
	Timeout  time.Duration
}

// Options controls where Resolve looks
type Options struct {
	// ConfigPath overrides the default config file location. An explicit
	// path must exist; the default path is optional.
	ConfigPath string

	// EnvFile overrides DefaultEnvFile. Missing files are ignored.
	EnvFile string

	// LookupEnv replaces os.LookupEnv
	LookupEnv func(string) (string, bool)

	Overrides Overrides
}

// Resolve merges every source into Settings and validates the result
func Resolve(opts Options) (*Settings, error) {
	settings := &Settings{}

	if err := settings.mergeFile(opts.ConfigPath); err != nil {
		return nil, err
	}

	dotenv, err := readEnvFile(opts.EnvFile)
	if err != nil {
		return nil, err
	}

	lookup := opts.LookupEnv
	if lookup == nil {
		lookup = os.LookupEnv
	}
	env := func(key string) (string, bool) {
		if v, ok := lookup(key); ok && v != "" {
			return v, true
		}
		v, ok := dotenv[key]
		return v, ok && v != ""
	}

	if err := settings.mergeEnv(env); err != nil {
		return nil, err
	}
	settings.mergeOverrides(opts.Overrides)

	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return settings, nil
}

// LoadFile reads settings from a YAML file
func LoadFile(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var settings Settings
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return &settings, nil
}

// Validate checks that the API URL is present and usable
func (s *Settings) Validate() error {
	if s.APIURL == "" {
		return ErrNoAPIURL
	}

	u, err := url.Parse(s.APIURL)
	if err != nil {
		return fmt.Errorf("%w %q: %v", ErrInvalidAPIURL, s.APIURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%w %q: scheme must be http or https", ErrInvalidAPIURL, s.APIURL)
	}
	if u.Host == "" {
		return fmt.Errorf("%w %q: missing host", ErrInvalidAPIURL, s.APIURL)
	}
	if s.Timeout < 0 {
		return fmt.Errorf("invalid timeout %s: must not be negative", s.Timeout)
	}
	return nil
}

func (s *Settings) mergeFile(path string) error {
	explicit := path != ""
	if !explicit {
		defaultPath, err := GetConfigPath()
		if err != nil {
			// No home directory; behave as if there is no file
			return nil
		}
		path = defaultPath
	}

	fromFile, err := LoadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return err
	}

	*s = *fromFile
	return nil
}

func (s *Settings) mergeEnv(env func(string) (string, bool)) error {
	if v, ok := env(EnvAPIURL); ok {
		s.APIURL = strings.TrimSpace(v)
	}
	if v, ok := env(EnvLogLevel); ok {
		s.LogLevel = v
	}
	if v, ok := env(EnvLogFile); ok {
		s.LogFile = v
	}
	if v, ok := env(EnvTimeout); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvTimeout, v, err)
		}
		s.Timeout = d
	}
	return nil
}

func (s *Settings) mergeOverrides(o Overrides) {
	if o.APIURL != "" {
		s.APIURL = o.APIURL
	}
	if o.LogLevel != "" {
		s.LogLevel = o.LogLevel
	}
	if o.LogFile != "" {
		s.LogFile = o.LogFile
	}
	if o.Timeout != 0 {
		s.Timeout = o.Timeout
	}
}

func readEnvFile(path string) (map[string]string, error) {
	if path == "" {
		path = DefaultEnvFile
	}
	values, err := godotenv.Read(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return values, nil
}
