// File: config.go
// Title: Core Configuration Management Implementation
// Description: Implements the Config type: loading TOML and YAML files into a
//              map, dot-notation access with typed getters and environment
//              variable overrides.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation with TOML/YAML support

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/fsnotify/fsnotify"
	"gopkg.in/yaml.v3"

	rwerror "github.com/msto63/rechenwerk/foundation/core/error"
)

// Format represents the configuration file format
type Format int

const (
	// FormatTOML represents TOML format (default)
	FormatTOML Format = iota

	// FormatYAML represents YAML format
	FormatYAML

	// FormatAuto detects the format from the file extension
	FormatAuto
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	case FormatAuto:
		return "auto"
	default:
		return "unknown"
	}
}

// Config represents a configuration instance with thread-safe access
type Config struct {
	mu        sync.RWMutex
	data      map[string]interface{}
	filePath  string
	format    Format
	envPrefix string
	defaults  map[string]interface{}
	handlers  []ChangeHandler

	watcher *fsnotify.Watcher
	done    chan struct{}
}

// ChangeHandler is called after the configuration file was reloaded
type ChangeHandler func(oldConfig, newConfig *Config)

// LoadOptions defines options for loading configuration
type LoadOptions struct {
	Format    Format                 // File format (default: auto-detect)
	EnvPrefix string                 // Environment variable prefix (default: none)
	Defaults  map[string]interface{} // Default values, nested maps allowed
	Watch     bool                   // Reload on file changes (default: false)
}

// Load loads configuration from a file with default options
func Load(filePath string) (*Config, error) {
	return LoadWithOptions(filePath, LoadOptions{Format: FormatAuto})
}

// LoadWithOptions loads configuration from a file with custom options
func LoadWithOptions(filePath string, options LoadOptions) (*Config, error) {
	if strings.TrimSpace(filePath) == "" {
		return nil, rwerror.New("config file path cannot be empty").
			WithCode(rwerror.CodeInvalidConfig).
			WithOperation("config.LoadWithOptions")
	}

	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return nil, rwerror.New(fmt.Sprintf("config file not found: %s", filePath)).
			WithCode(rwerror.CodeNotFound).
			WithOperation("config.LoadWithOptions").
			WithDetail("filePath", filePath)
	}

	format := options.Format
	if format == FormatAuto {
		format = detectFormat(filePath)
	}

	content, err := os.ReadFile(filePath)
	if err != nil {
		return nil, rwerror.Wrap(err, "failed to read config file").
			WithCode(rwerror.CodeConfigError).
			WithOperation("config.LoadWithOptions").
			WithDetail("filePath", filePath)
	}

	data, err := parseContent(content, format)
	if err != nil {
		return nil, rwerror.Wrap(err, "failed to parse config file").
			WithCode(rwerror.CodeInvalidConfig).
			WithOperation("config.LoadWithOptions").
			WithDetail("filePath", filePath).
			WithDetail("format", format.String())
	}

	if options.Defaults != nil {
		data = mergeDefaults(data, options.Defaults)
	}

	config := &Config{
		data:      data,
		filePath:  filePath,
		format:    format,
		envPrefix: options.EnvPrefix,
		defaults:  options.Defaults,
	}

	if options.Watch {
		if err := config.Watch(); err != nil {
			return nil, err
		}
	}

	return config, nil
}

// LoadFromString loads configuration from a string with specified format
func LoadFromString(content string, format Format) (*Config, error) {
	if format == FormatAuto {
		format = FormatTOML
	}

	data, err := parseContent([]byte(content), format)
	if err != nil {
		return nil, rwerror.Wrap(err, "failed to parse config from string").
			WithCode(rwerror.CodeInvalidConfig).
			WithOperation("config.LoadFromString").
			WithDetail("format", format.String())
	}

	return &Config{data: data, format: format}, nil
}

// FromDefaults builds a configuration that only holds the given defaults.
// Used when no config file is present.
func FromDefaults(defaults map[string]interface{}, envPrefix string) *Config {
	return &Config{
		data:      mergeDefaults(map[string]interface{}{}, defaults),
		format:    FormatTOML,
		envPrefix: envPrefix,
	}
}

// detectFormat determines the configuration format from file extension
func detectFormat(filePath string) Format {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// parseContent parses configuration content based on format
func parseContent(content []byte, format Format) (map[string]interface{}, error) {
	data := make(map[string]interface{})

	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(content, &data); err != nil {
			return nil, rwerror.Wrap(err, "TOML parse error").
				WithCode(rwerror.CodeInvalidConfig).
				WithOperation("config.parseContent")
		}
	case FormatYAML:
		if err := yaml.Unmarshal(content, &data); err != nil {
			return nil, rwerror.Wrap(err, "YAML parse error").
				WithCode(rwerror.CodeInvalidConfig).
				WithOperation("config.parseContent")
		}
	default:
		return nil, rwerror.New(fmt.Sprintf("unsupported format: %s", format)).
			WithCode(rwerror.CodeInvalidConfig).
			WithOperation("config.parseContent")
	}

	return data, nil
}

// mergeDefaults merges default values into configuration data.
// Nested maps are merged key by key, file values win.
func mergeDefaults(data, defaults map[string]interface{}) map[string]interface{} {
	result := make(map[string]interface{}, len(defaults)+len(data))

	for k, v := range defaults {
		if nested, ok := v.(map[string]interface{}); ok {
			result[k] = mergeDefaults(map[string]interface{}{}, nested)
			continue
		}
		result[k] = v
	}

	for k, v := range data {
		dv, dok := result[k].(map[string]interface{})
		nv, nok := v.(map[string]interface{})
		if dok && nok {
			result[k] = mergeDefaults(nv, dv)
			continue
		}
		result[k] = v
	}

	return result
}

// GetString returns a string configuration value with optional default
func (c *Config) GetString(key string, defaultValue ...string) string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if envValue := c.getEnvValue(key); envValue != "" {
		return envValue
	}

	value := c.getValue(key)
	if value == nil {
		if len(defaultValue) > 0 {
			return defaultValue[0]
		}
		return ""
	}

	switch v := value.(type) {
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}

// GetInt returns an integer configuration value with optional default
func (c *Config) GetInt(key string, defaultValue ...int) int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if envValue := c.getEnvValue(key); envValue != "" {
		if intVal, err := strconv.Atoi(envValue); err == nil {
			return intVal
		}
	}

	switch v := c.getValue(key).(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	case string:
		if intVal, err := strconv.Atoi(v); err == nil {
			return intVal
		}
	}

	if len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return 0
}

// GetBool returns a boolean configuration value with optional default
func (c *Config) GetBool(key string, defaultValue ...bool) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if envValue := c.getEnvValue(key); envValue != "" {
		if boolVal, err := strconv.ParseBool(envValue); err == nil {
			return boolVal
		}
	}

	switch v := c.getValue(key).(type) {
	case bool:
		return v
	case string:
		if boolVal, err := strconv.ParseBool(v); err == nil {
			return boolVal
		}
	}

	if len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return false
}

// getValue retrieves a configuration value by dot-notation key
func (c *Config) getValue(key string) interface{} {
	keys := strings.Split(key, ".")
	current := c.data

	for i, k := range keys {
		if i == len(keys)-1 {
			return current[k]
		}

		next, ok := current[k].(map[string]interface{})
		if !ok {
			return nil
		}
		current = next
	}

	return nil
}

// getEnvValue retrieves the environment override for a configuration key
func (c *Config) getEnvValue(key string) string {
	return os.Getenv(c.formatEnvKey(key))
}

// formatEnvKey converts a config key to environment variable format:
// parser.max_input_length -> RECHENWERK_PARSER_MAX_INPUT_LENGTH
func (c *Config) formatEnvKey(key string) string {
	envKey := strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
	if c.envPrefix != "" {
		envKey = strings.ToUpper(c.envPrefix) + "_" + envKey
	}
	return envKey
}

// Has checks if a configuration key exists
func (c *Config) Has(key string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.getValue(key) != nil
}

// Set sets a configuration value (runtime only, not persisted)
func (c *Config) Set(key string, value interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()

	keys := strings.Split(key, ".")
	current := c.data

	for i, k := range keys {
		if i == len(keys)-1 {
			current[k] = value
			return
		}

		next, ok := current[k].(map[string]interface{})
		if !ok {
			next = make(map[string]interface{})
			current[k] = next
		}
		current = next
	}
}

// FilePath returns the path of the loaded configuration file
func (c *Config) FilePath() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.filePath
}

// Format returns the configuration file format
func (c *Config) Format() Format {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.format
}

// OnChange registers a change handler for configuration reloads
func (c *Config) OnChange(handler ChangeHandler) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.handlers = append(c.handlers, handler)
}

// deepCopyMap creates a deep copy of a map
func deepCopyMap(src map[string]interface{}) map[string]interface{} {
	dst := make(map[string]interface{}, len(src))

	for k, v := range src {
		switch val := v.(type) {
		case map[string]interface{}:
			dst[k] = deepCopyMap(val)
		case []interface{}:
			dst[k] = append([]interface{}(nil), val...)
		default:
			dst[k] = v
		}
	}

	return dst
}

// String provides a readable representation of the configuration
func (c *Config) String() string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	parts := []string{fmt.Sprintf("Config{format: %s", c.format.String())}
	if c.filePath != "" {
		parts = append(parts, fmt.Sprintf("path: %s", c.filePath))
	}
	if c.envPrefix != "" {
		parts = append(parts, fmt.Sprintf("envPrefix: %s", c.envPrefix))
	}
	if c.watcher != nil {
		parts = append(parts, "watching: true")
	}
	parts = append(parts, fmt.Sprintf("keys: %d}", len(c.data)))

	return strings.Join(parts, ", ")
}
