package utils

import (
	"maps"
	"slices"
	"strconv"
	"strings"
	"sync"
)

// Config is a thread-safe set of string settings, usually seeded from the
// environment and .env files
type Config struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewConfig creates a new Config holding a copy of values
func NewConfig(values map[string]string) *Config {
	config := &Config{
		values: make(map[string]string, len(values)),
	}

	maps.Copy(config.values, values)

	return config
}

// NewConfigFromEnv creates a new Config from the process environment after
// loading the given .env files
func NewConfigFromEnv(files ...string) *Config {
	return NewConfig(LoadEnv(files...))
}

// lookup returns the raw value and whether the key is set
func (c *Config) lookup(key string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	value, ok := c.values[key]
	return value, ok
}

// Get retrieves a configuration value by key, or an empty string
func (c *Config) Get(key string) string {
	value, _ := c.lookup(key)
	return value
}

// GetWithDefault retrieves a configuration value, falling back when it is unset or empty
func (c *Config) GetWithDefault(key, defaultValue string) string {
	if value, _ := c.lookup(key); value != "" {
		return value
	}
	return defaultValue
}

// GetBool parses a value as a boolean. Unset or unparseable values are false
func (c *Config) GetBool(key string) bool {
	value := strings.ToLower(strings.TrimSpace(c.Get(key)))

	switch value {
	case "1", "yes", "on", "enabled":
		return true
	case "0", "no", "off", "disabled", "":
		return false
	}

	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return false
	}
	return parsed
}

// GetIntWithDefault parses a value as an integer, falling back when it is unset or invalid
func (c *Config) GetIntWithDefault(key string, defaultValue int) int {
	value, ok := c.lookup(key)
	if !ok {
		return defaultValue
	}

	parsed, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return defaultValue
	}
	return parsed
}

// GetList splits a comma separated value, trimming blanks. Returns defaultValue when unset
func (c *Config) GetList(key string, defaultValue []string) []string {
	value := c.Get(key)
	if strings.TrimSpace(value) == "" {
		return defaultValue
	}

	var list []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			list = append(list, item)
		}
	}
	return list
}

// Set modifies a configuration value
func (c *Config) Set(key, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.values[key] = value
}

// Has checks if a configuration key exists
func (c *Config) Has(key string) bool {
	_, ok := c.lookup(key)
	return ok
}

// Keys returns all configuration keys in sorted order
func (c *Config) Keys() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return slices.Sorted(maps.Keys(c.values))
}
