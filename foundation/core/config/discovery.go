// File: discovery.go
// Title: Configuration File Discovery Implementation
// Description: Finds the first existing configuration file across a list of
//              directories, base names and extensions.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-12
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-12 v0.1.0: Initial implementation of file discovery
// - 2026-10-16 v0.2.0: Defaults carried into the discovered config

package config

import (
	"os"
	"path/filepath"
	"strings"

	mdwerror "github.com/msto63/veeks/foundation/core/error"
)

// DiscoveryOptions defines options for automatic configuration file discovery
type DiscoveryOptions struct {
	Paths      []string               // Directories to search for config files
	Filenames  []string               // Base filenames to look for (without extension)
	Extensions []string               // File extensions to try
	EnvPrefix  string                 // Environment variable prefix for overrides
	Defaults   map[string]interface{} // Defaults for the loaded or empty config
	Required   bool                   // Whether finding a config file is required
}

// Discover loads the first configuration file found. Without a file it
// returns a config holding only the defaults, unless Required is set.
func Discover(options DiscoveryOptions) (*Config, error) {
	path, err := FindConfigFile(options)
	if err != nil {
		if options.Required {
			return nil, err
		}
		return FromMap(options.Defaults, options.EnvPrefix), nil
	}

	return LoadWithOptions(path, LoadOptions{
		Format:    FormatAuto,
		EnvPrefix: options.EnvPrefix,
		Defaults:  options.Defaults,
	})
}

// FindConfigFile searches for a configuration file without loading it
func FindConfigFile(options DiscoveryOptions) (string, error) {
	paths := options.Paths
	if len(paths) == 0 {
		paths = []string{"."}
	}
	filenames := options.Filenames
	if len(filenames) == 0 {
		filenames = []string{"config"}
	}
	extensions := options.Extensions
	if len(extensions) == 0 {
		extensions = []string{".toml", ".yaml", ".yml"}
	}

	var searched []string
	for _, dir := range paths {
		for _, name := range filenames {
			for _, ext := range extensions {
				candidate := filepath.Join(dir, name+ext)
				if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
					return candidate, nil
				}
				searched = append(searched, candidate)
			}
		}
	}

	return "", mdwerror.New("no configuration file found in paths: "+strings.Join(searched, ", ")).
		WithCode(mdwerror.CodeNotFound).
		WithOperation("config.FindConfigFile").
		WithDetail("searchPaths", searched)
}
