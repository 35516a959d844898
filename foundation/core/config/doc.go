// File: doc.go
// Title: Configuration Management Package Documentation
// Description: Package config loads TOML and YAML configuration files for the
//              veeks tools, with defaults, dot-path access and environment
//              variable overrides.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-12
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-12 v0.1.0: Initial implementation with TOML/YAML support
// - 2026-10-16 v0.2.0: Deep merge of defaults, file discovery, rule validation

/*
Package config loads configuration for the veeks command line tool.

Files are parsed with github.com/BurntSushi/toml (.toml) or gopkg.in/yaml.v3
(.yaml, .yml). Keys are addressed with dot notation ("output.format") and
every key can be overridden by an environment variable built from the prefix
and the upper-cased path ("VEEKS_OUTPUT_FORMAT").

Example:

	cfg, err := config.LoadWithOptions("veeks.toml", config.LoadOptions{
		EnvPrefix: "VEEKS",
		Defaults: map[string]interface{}{
			"output": map[string]interface{}{"format": "text"},
		},
	})
	if err != nil {
		return err
	}
	format := cfg.GetString("output.format")
*/
package config
