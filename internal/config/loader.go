package config

import (
	"os"
	"path/filepath"
)

// GetConfigPath determines the configuration file path.
// Priority:
// 1. the path passed in (returned as-is so a missing file is reported)
// 2. LEGACYURL_CONFIG_PATH environment variable
// 3. legacyurl.yaml, legacyurl.yml or legacyurl.json in the current working directory
// An empty result means no config file applies.
func GetConfigPath(configFilePath string) string {
	if configFilePath != "" {
		return configFilePath
	}

	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if fileExists(envPath) {
			return envPath
		}
	}

	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}
	for _, ext := range []string{".yaml", ".yml", ".json"} {
		path := filepath.Join(cwd, DefaultConfigFileName+ext)
		if fileExists(path) {
			return path
		}
	}
	return ""
}

// Helper function to check if a file exists
func fileExists(filename string) bool {
	info, err := os.Stat(filename)
	if os.IsNotExist(err) {
		return false
	}
	return err == nil && !info.IsDir()
}
