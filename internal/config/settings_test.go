package config

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func envMap(values map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := values[key]
		return v, ok
	}
}

func TestResolvePrecedence(t *testing.T) {
	dir := t.TempDir()
	configPath := writeFile(t, dir, "config.yaml", `
api_url: http://file.example
log_level: info
log_file: /tmp/file.log
timeout: 5s
`)
	dotenvPath := writeFile(t, dir, ".env", "FLEETMAINT_API_URL=http://dotenv.example\nFLEETMAINT_LOG_LEVEL=warn\n")

	tests := []struct {
		name      string
		env       map[string]string
		overrides Overrides
		wantURL   string
		wantLevel string
	}{
		{
			name:      "dotenv beats file",
			env:       map[string]string{},
			wantURL:   "http://dotenv.example",
			wantLevel: "warn",
		},
		{
			name:      "environment beats dotenv",
			env:       map[string]string{EnvAPIURL: "http://env.example"},
			wantURL:   "http://env.example",
			wantLevel: "warn",
		},
		{
			name:      "empty environment value falls through",
			env:       map[string]string{EnvAPIURL: ""},
			wantURL:   "http://dotenv.example",
			wantLevel: "warn",
		},
		{
			name:      "flags beat everything",
			env:       map[string]string{EnvAPIURL: "http://env.example", EnvLogLevel: "error"},
			overrides: Overrides{APIURL: "http://flag.example", LogLevel: "debug"},
			wantURL:   "http://flag.example",
			wantLevel: "debug",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			settings, err := Resolve(Options{
				ConfigPath: configPath,
				EnvFile:    dotenvPath,
				LookupEnv:  envMap(tt.env),
				Overrides:  tt.overrides,
			})
			if err != nil {
				t.Fatalf("Resolve() error = %v", err)
			}
			if settings.APIURL != tt.wantURL {
				t.Errorf("APIURL = %q, want %q", settings.APIURL, tt.wantURL)
			}
			if settings.LogLevel != tt.wantLevel {
				t.Errorf("LogLevel = %q, want %q", settings.LogLevel, tt.wantLevel)
			}
			if settings.LogFile != "/tmp/file.log" {
				t.Errorf("LogFile = %q, want value from file", settings.LogFile)
			}
			if settings.Timeout != 5*time.Second {
				t.Errorf("Timeout = %v, want 5s", settings.Timeout)
			}
		})
	}
}

func TestResolveNoURL(t *testing.T) {
	dir := t.TempDir()
	_, err := Resolve(Options{
		ConfigPath: writeFile(t, dir, "config.yaml", "log_level: debug\n"),
		EnvFile:    filepath.Join(dir, "missing.env"),
		LookupEnv:  envMap(nil),
	})
	if !errors.Is(err, ErrNoAPIURL) {
		t.Fatalf("Resolve() error = %v, want ErrNoAPIURL", err)
	}
}

func TestResolveExplicitConfigMustExist(t *testing.T) {
	dir := t.TempDir()
	_, err := Resolve(Options{
		ConfigPath: filepath.Join(dir, "nope.yaml"),
		EnvFile:    filepath.Join(dir, "missing.env"),
		LookupEnv:  envMap(map[string]string{EnvAPIURL: "http://x"}),
	})
	if err == nil {
		t.Fatal("Resolve() should fail for a missing explicit config file")
	}
}

func TestResolveDefaultConfigOptional(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("XDG_CONFIG_HOME only applies on linux")
	}
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	settings, err := Resolve(Options{
		EnvFile:   filepath.Join(dir, "missing.env"),
		LookupEnv: envMap(map[string]string{EnvAPIURL: "https://api.example/v1"}),
	})
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if settings.APIURL != "https://api.example/v1" {
		t.Errorf("APIURL = %q", settings.APIURL)
	}
	if settings.Timeout != 0 {
		t.Errorf("Timeout = %v, want 0 by default", settings.Timeout)
	}
}

func TestResolveTimeoutFromEnv(t *testing.T) {
	dir := t.TempDir()
	opts := Options{
		ConfigPath: writeFile(t, dir, "config.yaml", "api_url: http://x\n"),
		EnvFile:    filepath.Join(dir, "missing.env"),
	}

	opts.LookupEnv = envMap(map[string]string{EnvTimeout: "750ms"})
	settings, err := Resolve(opts)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if settings.Timeout != 750*time.Millisecond {
		t.Errorf("Timeout = %v, want 750ms", settings.Timeout)
	}

	opts.LookupEnv = envMap(map[string]string{EnvTimeout: "soon"})
	if _, err := Resolve(opts); err == nil || !strings.Contains(err.Error(), EnvTimeout) {
		t.Errorf("Resolve() error = %v, want mention of %s", err, EnvTimeout)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		s       Settings
		wantErr error
	}{
		{"ok http", Settings{APIURL: "http://localhost:8080"}, nil},
		{"ok https with path", Settings{APIURL: "https://api.example/fleet"}, nil},
		{"missing", Settings{}, ErrNoAPIURL},
		{"relative", Settings{APIURL: "/vehicles"}, ErrInvalidAPIURL},
		{"ftp", Settings{APIURL: "ftp://host"}, ErrInvalidAPIURL},
		{"no host", Settings{APIURL: "http://"}, ErrInvalidAPIURL},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.s.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Validate() error = %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}

	neg := Settings{APIURL: "http://x", Timeout: -time.Second}
	if err := neg.Validate(); err == nil {
		t.Error("Validate() should reject a negative timeout")
	}
}

func TestLoadFileBadYAML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "config.yaml", "api_url: [unterminated\n")
	if _, err := LoadFile(path); err == nil {
		t.Fatal("LoadFile() should fail on malformed YAML")
	}
}

func TestGetConfigDir(t *testing.T) {
	configDir, err := GetConfigDir()
	if err != nil {
		t.Fatalf("GetConfigDir() error = %v", err)
	}
	if !strings.Contains(configDir, "fleetmaint") {
		t.Errorf("GetConfigDir() = %v, should contain 'fleetmaint'", configDir)
	}
}

func TestGetConfigPath(t *testing.T) {
	configPath, err := GetConfigPath()
	if err != nil {
		t.Fatalf("GetConfigPath() error = %v", err)
	}
	if filepath.Base(configPath) != "config.yaml" {
		t.Errorf("GetConfigPath() should end with 'config.yaml', got: %v", configPath)
	}
}

func TestDefaultLogPath(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("XDG_CONFIG_HOME only applies on linux")
	}
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	path, err := DefaultLogPath()
	if err != nil {
		t.Fatalf("DefaultLogPath() error = %v", err)
	}
	if want := filepath.Join(dir, "fleetmaint", "fleetmaint.log"); path != want {
		t.Errorf("DefaultLogPath() = %q, want %q", path, want)
	}
	if _, err := os.Stat(filepath.Dir(path)); err != nil {
		t.Errorf("log directory not created: %v", err)
	}
}
