// File: validation.go
// Title: Configuration Validation Implementation
// Description: Rule based validation of configuration values: required keys,
//              allowed value sets and value types.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-12
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-12 v0.1.0: Initial implementation of validation
// - 2026-10-16 v0.2.0: OneOf rules, result converts to a structured error

package config

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	mdwerror "github.com/msto63/veeks/foundation/core/error"
)

// ValidationRule defines validation criteria for a configuration value
type ValidationRule struct {
	Required bool     // Whether the key must be present
	Type     string   // Expected type: "string", "int", "bool"
	OneOf    []string // Allowed values, compared case-insensitively
}

// ValidationRules maps configuration keys to their validation rules
type ValidationRules map[string]ValidationRule

// ValidationResult contains the results of configuration validation
type ValidationResult struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors,omitempty"`
}

// Err converts a failed result into a structured error, nil when valid
func (r *ValidationResult) Err() error {
	if r.Valid {
		return nil
	}
	return mdwerror.New("configuration validation failed: " + strings.Join(r.Errors, "; ")).
		WithCode(mdwerror.CodeInvalidConfig).
		WithOperation("config.Validate").
		WithDetail("errors", r.Errors)
}

// Validate validates the configuration against the provided rules. Errors are
// reported in key order.
func (c *Config) Validate(rules ValidationRules) *ValidationResult {
	keys := make([]string, 0, len(rules))
	for key := range rules {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	result := &ValidationResult{Valid: true}
	for _, key := range keys {
		if err := c.validateField(key, rules[key]); err != nil {
			result.Valid = false
			result.Errors = append(result.Errors, err.Error())
		}
	}
	return result
}

func (c *Config) validateField(key string, rule ValidationRule) error {
	if !c.Has(key) {
		if rule.Required {
			return fmt.Errorf("required field '%s' is missing", key)
		}
		return nil
	}

	if rule.Type != "" {
		if err := c.validateType(key, rule.Type); err != nil {
			return err
		}
	}

	if len(rule.OneOf) > 0 {
		value := c.GetString(key)
		for _, allowed := range rule.OneOf {
			if strings.EqualFold(value, allowed) {
				return nil
			}
		}
		return fmt.Errorf("field '%s' must be one of [%s], got %q", key, strings.Join(rule.OneOf, ", "), value)
	}
	return nil
}

func (c *Config) validateType(key, expected string) error {
	c.mu.RLock()
	value := c.getValue(key)
	env := c.getEnvValue(key)
	c.mu.RUnlock()

	if env != "" {
		switch expected {
		case "int":
			if _, err := strconv.Atoi(env); err != nil {
				return fmt.Errorf("field '%s' must be an int, got %q", key, env)
			}
		case "bool":
			if _, err := strconv.ParseBool(env); err != nil {
				return fmt.Errorf("field '%s' must be a bool, got %q", key, env)
			}
		}
		return nil
	}

	ok := false
	switch expected {
	case "string":
		_, ok = value.(string)
	case "int":
		switch value.(type) {
		case int, int64:
			ok = true
		}
	case "bool":
		_, ok = value.(bool)
	default:
		return fmt.Errorf("field '%s' has unknown rule type %q", key, expected)
	}
	if !ok {
		return fmt.Errorf("field '%s' must be a %s, got %T", key, expected, value)
	}
	return nil
}
