package config

import (
	"os"
	"path/filepath"
)

const (
	// DirName is the per-project configuration directory
	DirName = ".seqparser"

	// FileName is the configuration file inside DirName
	FileName = "config.yaml"

	// EnvConfig names an explicit configuration file
	EnvConfig = "SEQPARSER_CONFIG"
)

// ResolveConfigPath returns the configuration file to load for start.
// Priority order:
//  1. SEQPARSER_CONFIG environment variable (if set)
//  2. The nearest .seqparser/config.yaml in start or one of its parents
//  3. start/.seqparser/config.yaml, which may not exist (defaults apply)
func ResolveConfigPath(start string) (string, error) {
	if path := os.Getenv(EnvConfig); path != "" {
		return path, nil
	}

	abs, err := filepath.Abs(start)
	if err != nil {
		return "", err
	}

	if found, ok := findConfigUpwards(abs); ok {
		return found, nil
	}
	return filepath.Join(abs, DirName, FileName), nil
}

// findConfigUpwards walks from dir to the filesystem root looking for
// a .seqparser/config.yaml file.
func findConfigUpwards(dir string) (string, bool) {
	current := dir
	for {
		candidate := filepath.Join(current, DirName, FileName)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, true
		}

		parent := filepath.Dir(current)
		if parent == current {
			// Reached filesystem root
			return "", false
		}
		current = parent
	}
}
