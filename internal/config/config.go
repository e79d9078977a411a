// Package config provides session configuration management, including the
// per-command enable gate read from and written to a JSON file.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
)

// DefaultFileName is the config file used when none is specified.
const DefaultFileName = "simgit_config.json"

// defaultCommands are the top-level commands enabled when no config exists.
var defaultCommands = []string{"init", "add", "commit", "branch", "checkout", "status", "log", "pr", "repos"}

// fileConfig is the on-disk shape of the configuration.
type fileConfig struct {
	EnabledCommands []string `json:"enabled_commands,omitempty"`
}

// Config gates top-level command names. The gate is orthogonal to repository
// state; it only decides whether a command may run at all.
type Config struct {
	path    string
	enabled map[string]bool
}

// Load reads the configuration from path. A missing file yields the default
// configuration (everything enabled) and writes it back, matching first-run
// behavior.
func Load(path string) (*Config, error) {
	c := &Config{path: path, enabled: make(map[string]bool)}

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		for _, name := range defaultCommands {
			c.enabled[name] = true
		}
		if err := c.save(); err != nil {
			return nil, err
		}
		return c, nil
	}

	var fc fileConfig
	if err := json.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	for _, name := range fc.EnabledCommands {
		c.enabled[name] = true
	}
	return c, nil
}

// IsEnabled reports whether the top-level command may run.
func (c *Config) IsEnabled(command string) bool {
	return c.enabled[command]
}

// Enable turns a command on and persists the change.
func (c *Config) Enable(command string) error {
	c.enabled[command] = true
	return c.save()
}

// Disable turns a command off and persists the change.
func (c *Config) Disable(command string) error {
	delete(c.enabled, command)
	return c.save()
}

// EnabledCommands returns the enabled command names in sorted order.
func (c *Config) EnabledCommands() []string {
	names := make([]string, 0, len(c.enabled))
	for name := range c.enabled {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (c *Config) save() error {
	fc := fileConfig{EnabledCommands: c.EnabledCommands()}
	data, err := json.MarshalIndent(fc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := os.WriteFile(c.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// Disabled is a convenience for tests and callers that need a gate with a
// specific command turned off without touching the filesystem.
func Disabled(path string, commands ...string) *Config {
	c := &Config{path: path, enabled: make(map[string]bool)}
	for _, name := range defaultCommands {
		c.enabled[name] = true
	}
	for _, name := range commands {
		delete(c.enabled, name)
	}
	return c
}

// InMemory returns a gate with every default command enabled and no backing
// file. Saving changes on it still succeeds when path is writable.
func InMemory() *Config {
	return Disabled(DefaultFileName)
}
