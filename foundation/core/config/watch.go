// File: watch.go
// Title: Configuration File Watching Implementation
// Description: Implements fsnotify based watching of the configuration file.
//              Changes trigger a reload and notify registered handlers.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation of file watching

package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	rwerror "github.com/msto63/rechenwerk/foundation/core/error"
)

// debounceDelay collapses the burst of events editors emit on save
const debounceDelay = 100 * time.Millisecond

// Watch starts monitoring the configuration file. The parent directory is
// watched so that editors replacing the file via rename are noticed.
func (c *Config) Watch() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.watcher != nil {
		return nil
	}
	if c.filePath == "" {
		return rwerror.New("file path required for watching").
			WithCode(rwerror.CodeInvalidConfig).
			WithOperation("config.Watch")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return rwerror.Wrap(err, "failed to create watcher").
			WithCode(rwerror.CodeConfigError).
			WithOperation("config.Watch")
	}

	dir := filepath.Dir(c.filePath)
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return rwerror.Wrap(err, "failed to watch directory").
			WithCode(rwerror.CodeConfigError).
			WithOperation("config.Watch").
			WithDetail("dir", dir)
	}

	c.watcher = watcher
	c.done = make(chan struct{})
	go c.watchLoop(watcher, c.done, filepath.Clean(c.filePath))

	return nil
}

// StopWatching stops the file watcher. It is safe to call more than once.
func (c *Config) StopWatching() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.watcher == nil {
		return
	}
	close(c.done)
	c.watcher.Close()
	c.watcher = nil
	c.done = nil
}

// IsWatching reports whether the file watcher is running
func (c *Config) IsWatching() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.watcher != nil
}

func (c *Config) watchLoop(watcher *fsnotify.Watcher, done <-chan struct{}, target string) {
	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-done:
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			// reload once the burst of events has settled
			if timer == nil {
				timer = time.NewTimer(debounceDelay)
			} else {
				timer.Reset(debounceDelay)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			// a failed reload keeps the previous data
			_ = c.reload()

		case _, ok := <-watcher.Errors:
			if !ok {
				return
			}
		}
	}
}

// reload re-reads the configuration file and notifies change handlers
func (c *Config) reload() error {
	c.mu.RLock()
	path, format, defaults := c.filePath, c.format, c.defaults
	c.mu.RUnlock()

	content, err := os.ReadFile(path)
	if err != nil {
		return rwerror.Wrap(err, "failed to read config file").
			WithCode(rwerror.CodeConfigError).
			WithOperation("config.reload").
			WithDetail("filePath", path)
	}

	data, err := parseContent(content, format)
	if err != nil {
		return err
	}
	if defaults != nil {
		data = mergeDefaults(data, defaults)
	}

	c.mu.Lock()
	old := &Config{
		data:      deepCopyMap(c.data),
		filePath:  c.filePath,
		format:    c.format,
		envPrefix: c.envPrefix,
	}
	c.data = data
	handlers := append([]ChangeHandler(nil), c.handlers...)
	c.mu.Unlock()

	for _, handler := range handlers {
		handler(old, c)
	}

	return nil
}
