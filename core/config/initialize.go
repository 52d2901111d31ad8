package config

import (
	"errors"
	"io/fs"
	"log"
	"os"

	"github.com/spf13/afero"
)

// Initialize writes the default configuration into the directory, creating
// it if needed, and returns the configuration found there. An existing
// configuration is left untouched.
func Initialize(path string, logger *log.Logger) (*Configuration, error) {
	if err := os.MkdirAll(path, 0700); err != nil {
		return nil, err
	}

	if err := InitializeFs(afero.NewBasePathFs(afero.NewOsFs(), path), logger); err != nil {
		return nil, err
	}

	return Load(path)
}

// InitializeFs writes the default configuration to the root of fsys unless
// one is already present.
func InitializeFs(fsys afero.Fs, logger *log.Logger) error {
	_, err := fsys.Stat(ConfigurationName)
	switch {
	case err == nil:
		logger.Printf("%s already exists, skipping", ConfigurationName)
		return nil
	case !errors.Is(err, fs.ErrNotExist):
		return err
	}

	logger.Printf("Writing %s", ConfigurationName)
	return afero.WriteFile(fsys, ConfigurationName, defaultConfigData, 0600)
}
