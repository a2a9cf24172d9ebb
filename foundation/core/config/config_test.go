// File: config_test.go
// Title: Configuration Tests
// Description: Tests for loading, typed access, defaults, environment
//              overrides and hot-reloading.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial test coverage

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	rwerror "github.com/msto63/rechenwerk/foundation/core/error"
)

const sampleTOML = `
[log]
level = "debug"
format = "json"

[parser]
max_input_length = 4096

[diagnostic]
color = false
`

const sampleYAML = `
log:
  level: info
parser:
  max_input_length: 2048
diagnostic:
  color: true
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name       string
		file       string
		content    string
		wantFormat Format
		wantLevel  string
		wantLimit  int
		wantColor  bool
	}{
		{"toml", "rechenwerk.toml", sampleTOML, FormatTOML, "debug", 4096, false},
		{"yaml", "rechenwerk.yaml", sampleYAML, FormatYAML, "info", 2048, true},
		{"yml", "rechenwerk.yml", sampleYAML, FormatYAML, "info", 2048, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(writeFile(t, tt.file, tt.content))
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			if cfg.Format() != tt.wantFormat {
				t.Errorf("Format() = %v, want %v", cfg.Format(), tt.wantFormat)
			}
			if got := cfg.GetString("log.level"); got != tt.wantLevel {
				t.Errorf("log.level = %q, want %q", got, tt.wantLevel)
			}
			if got := cfg.GetInt("parser.max_input_length"); got != tt.wantLimit {
				t.Errorf("parser.max_input_length = %d, want %d", got, tt.wantLimit)
			}
			if got := cfg.GetBool("diagnostic.color", !tt.wantColor); got != tt.wantColor {
				t.Errorf("diagnostic.color = %v, want %v", got, tt.wantColor)
			}
		})
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		path func(t *testing.T) string
		code rwerror.Code
	}{
		{"empty path", func(t *testing.T) string { return "  " }, rwerror.CodeInvalidConfig},
		{"missing file", func(t *testing.T) string { return filepath.Join(t.TempDir(), "nope.toml") }, rwerror.CodeNotFound},
		{"broken toml", func(t *testing.T) string { return writeFile(t, "bad.toml", "[log\nlevel=") }, rwerror.CodeInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.path(t))
			if err == nil {
				t.Fatal("expected an error")
			}
			if !rwerror.HasCode(err, tt.code) {
				t.Errorf("code = %v, want %v", rwerror.GetCode(err), tt.code)
			}
		})
	}
}

func TestDefaultsAndFallbacks(t *testing.T) {
	path := writeFile(t, "rechenwerk.toml", "[log]\nlevel = \"error\"\n")
	cfg, err := LoadWithOptions(path, LoadOptions{
		Format: FormatAuto,
		Defaults: map[string]interface{}{
			"log":    map[string]interface{}{"level": "warn", "format": "text"},
			"output": map[string]interface{}{"format": "sexpr"},
		},
	})
	if err != nil {
		t.Fatalf("LoadWithOptions() error = %v", err)
	}

	if got := cfg.GetString("log.level"); got != "error" {
		t.Errorf("file value should win, got %q", got)
	}
	if got := cfg.GetString("log.format"); got != "text" {
		t.Errorf("nested default missing, got %q", got)
	}
	if got := cfg.GetString("output.format"); got != "sexpr" {
		t.Errorf("default section missing, got %q", got)
	}
	if got := cfg.GetString("missing.key", "fallback"); got != "fallback" {
		t.Errorf("fallback = %q", got)
	}
	if cfg.Has("missing.key") {
		t.Error("Has() should be false for a missing key")
	}
}

func TestEnvOverride(t *testing.T) {
	cfg := FromDefaults(map[string]interface{}{
		"parser": map[string]interface{}{"max_input_length": 100},
	}, "RECHENWERK")

	t.Setenv("RECHENWERK_PARSER_MAX_INPUT_LENGTH", "42")
	t.Setenv("RECHENWERK_DIAGNOSTIC_COLOR", "false")

	if got := cfg.GetInt("parser.max_input_length"); got != 42 {
		t.Errorf("env override = %d, want 42", got)
	}
	if got := cfg.GetBool("diagnostic.color", true); got {
		t.Error("env override for diagnostic.color not applied")
	}
}

func TestSet(t *testing.T) {
	cfg, err := LoadFromString(sampleTOML, FormatTOML)
	if err != nil {
		t.Fatalf("LoadFromString() error = %v", err)
	}

	cfg.Set("output.format", "json")
	cfg.Set("log.level", "trace")

	if got := cfg.GetString("output.format"); got != "json" {
		t.Errorf("output.format = %q", got)
	}
	if got := cfg.GetString("log.level"); got != "trace" {
		t.Errorf("log.level = %q", got)
	}
}

func TestWatch_ReloadNotifiesHandlers(t *testing.T) {
	path := writeFile(t, "rechenwerk.toml", "[log]\nlevel = \"warn\"\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	changed := make(chan string, 4)
	cfg.OnChange(func(oldCfg, newCfg *Config) {
		changed <- oldCfg.GetString("log.level") + "->" + newCfg.GetString("log.level")
	})

	if err := cfg.Watch(); err != nil {
		t.Fatalf("Watch() error = %v", err)
	}
	defer cfg.StopWatching()

	if !cfg.IsWatching() {
		t.Fatal("IsWatching() = false after Watch()")
	}

	if err := os.WriteFile(path, []byte("[log]\nlevel = \"debug\"\n"), 0o644); err != nil {
		t.Fatalf("rewrite config: %v", err)
	}

	select {
	case got := <-changed:
		if got != "warn->debug" {
			t.Errorf("change = %q, want warn->debug", got)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("no reload observed")
	}

	cfg.StopWatching()
	cfg.StopWatching()
	if cfg.IsWatching() {
		t.Error("IsWatching() = true after StopWatching()")
	}
}
