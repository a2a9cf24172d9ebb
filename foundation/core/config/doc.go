// File: doc.go
// Title: Configuration Management Package Documentation
// Description: Package config provides configuration management for rechenwerk
//              with TOML and YAML files, environment overrides and
//              hot-reloading.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation with TOML/YAML support

/*
Package config provides configuration management for rechenwerk.

Key Features:
  - TOML and YAML support with detection by file extension
  - Dot-notation keys with typed getters and fallback defaults
  - Environment overrides (parser.max_input_length is overridden by
    RECHENWERK_PARSER_MAX_INPUT_LENGTH when the prefix is RECHENWERK)
  - Hot-reloading through fsnotify with change callbacks
  - Structured errors from the rechenwerk error package

Basic Usage:

	cfg, err := config.LoadWithOptions("rechenwerk.toml", config.LoadOptions{
		Format:    config.FormatAuto,
		EnvPrefix: "RECHENWERK",
		Defaults: map[string]interface{}{
			"log": map[string]interface{}{"level": "warn"},
		},
	})
	if err != nil {
		return err
	}

	level := cfg.GetString("log.level", "warn")
	limit := cfg.GetInt("parser.max_input_length", 1<<20)

Hot-Reloading:

	cfg.OnChange(func(oldCfg, newCfg *config.Config) {
		logger.Info("configuration reloaded")
	})
	if err := cfg.Watch(); err != nil {
		return err
	}
	defer cfg.StopWatching()

All getters are safe for concurrent use.
*/
package config
