// config_keys.go provides key-value access to configuration settings.
//
// Separated from config.go to isolate the key enumeration and string-based
// get/set logic. This separation allows config.go to focus on YAML structure
// and loading, while this file handles the MCP and CLI interface where config
// is accessed by string keys (e.g., "limits.max_count").
//
// Design: Pointers are used for optional fields so we can distinguish between
// "not set" (nil) and "explicitly set to zero/false". This enables proper
// defaulting - we only apply defaults when the user hasn't set a value.

package config

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// ValidKeys returns all valid configuration keys.
func ValidKeys() []string {
	return []string{
		"rg.binary",
		"limits.max_count", "limits.max_filesize", "limits.max_depth",
		"search.case_sensitive", "search.exclude_defaults",
	}
}

// IsValidKey returns true if the key is a valid configuration key.
func IsValidKey(key string) bool {
	return slices.Contains(ValidKeys(), key)
}

// Get returns the value of a configuration key as a string.
func (c *Config) Get(key string) (string, error) {
	switch key {
	case "rg.binary":
		return c.Binary(), nil
	case "limits.max_count":
		return strconv.Itoa(c.MaxCount()), nil
	case "limits.max_filesize":
		return strconv.FormatInt(c.MaxFilesize(), 10), nil
	case "limits.max_depth":
		return strconv.Itoa(c.MaxDepth()), nil
	case "search.case_sensitive":
		return strconv.FormatBool(c.CaseSensitive()), nil
	case "search.exclude_defaults":
		return strconv.FormatBool(c.ExcludeDefaults()), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
}

// Set sets the value of a configuration key.
func (c *Config) Set(key, value string) error {
	switch key {
	case "rg.binary":
		c.RG.Binary = value
	case "limits.max_count":
		n, err := strconv.Atoi(value)
		if err != nil || n <= 0 {
			return fmt.Errorf("%w: limits.max_count must be a positive integer", ErrInvalidValue)
		}
		c.Limits.MaxCount = &n
	case "limits.max_filesize":
		n, err := strconv.ParseInt(value, 10, 64)
		if err != nil || n <= 0 {
			return fmt.Errorf("%w: limits.max_filesize must be a positive integer", ErrInvalidValue)
		}
		c.Limits.MaxFilesize = &n
	case "limits.max_depth":
		n, err := strconv.Atoi(value)
		if err != nil || n <= 0 {
			return fmt.Errorf("%w: limits.max_depth must be a positive integer", ErrInvalidValue)
		}
		c.Limits.MaxDepth = &n
	case "search.case_sensitive":
		b, err := parseBool(value)
		if err != nil {
			return fmt.Errorf("%w: search.case_sensitive must be true or false", ErrInvalidValue)
		}
		c.Search.CaseSensitive = &b
	case "search.exclude_defaults":
		b, err := parseBool(value)
		if err != nil {
			return fmt.Errorf("%w: search.exclude_defaults must be true or false", ErrInvalidValue)
		}
		c.Search.ExcludeDefaults = &b
	default:
		return fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
	return nil
}

// All returns all configuration values as a map.
func (c *Config) All() map[string]string {
	return map[string]string{
		"rg.binary":               c.Binary(),
		"limits.max_count":        strconv.Itoa(c.MaxCount()),
		"limits.max_filesize":     strconv.FormatInt(c.MaxFilesize(), 10),
		"limits.max_depth":        strconv.Itoa(c.MaxDepth()),
		"search.case_sensitive":   strconv.FormatBool(c.CaseSensitive()),
		"search.exclude_defaults": strconv.FormatBool(c.ExcludeDefaults()),
	}
}

// IsSet returns true if the key has an explicit value (not just defaults).
func (c *Config) IsSet(key string) bool {
	switch key {
	case "rg.binary":
		return c.RG.Binary != ""
	case "limits.max_count":
		return c.Limits.MaxCount != nil
	case "limits.max_filesize":
		return c.Limits.MaxFilesize != nil
	case "limits.max_depth":
		return c.Limits.MaxDepth != nil
	case "search.case_sensitive":
		return c.Search.CaseSensitive != nil
	case "search.exclude_defaults":
		return c.Search.ExcludeDefaults != nil
	default:
		return false
	}
}

func parseBool(value string) (bool, error) {
	switch strings.ToLower(value) {
	case "true":
		return true, nil
	case "false":
		return false, nil
	}
	return false, ErrInvalidValue
}
