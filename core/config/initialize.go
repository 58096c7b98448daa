package config

import (
	"errors"
	"io/fs"
	"log"
	"os"
	"path/filepath"
)

// Initialize creates a configuration directory at dir with the default
// config.yaml, leaving any existing files in place.
func Initialize(dir string, logger *log.Logger) error {
	logger.Printf("Initializing configuration in %q\n", dir)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return err
	}

	configPath := filepath.Join(dir, ConfigurationName)
	switch _, err := os.Stat(configPath); {
	case err == nil:
		logger.Printf("%s exists, skipping\n", ConfigurationName)
	case errors.Is(err, fs.ErrNotExist):
		logger.Printf("Creating %s\n", ConfigurationName)
		if err := os.WriteFile(configPath, defaultConfigData, 0600); err != nil {
			return err
		}
	default:
		return err
	}

	logger.Printf("Creating %s\n", LogsDirName)
	return os.MkdirAll(filepath.Join(dir, LogsDirName), 0700)
}
