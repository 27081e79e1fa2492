package config

import (
	"os"
	"path/filepath"
	"sync"

	"fjacquet/household-tracker/internal/logging"

	"github.com/joho/godotenv"
)

var (
	once      sync.Once
	loadedEnv string
)

// LoadEnv loads environment variables from a .env file in the current or
// parent directory, once per process. It returns the file that was loaded,
// or an empty string when none was found or it could not be parsed.
func LoadEnv() string {
	once.Do(func() {
		envFile := ".env"
		if _, err := os.Stat(envFile); os.IsNotExist(err) {
			envFile = filepath.Join("..", ".env")
			if _, err := os.Stat(envFile); os.IsNotExist(err) {
				return
			}
		}

		if err := godotenv.Load(envFile); err != nil {
			return
		}
		loadedEnv = envFile
	})
	return loadedEnv
}

// NewLogger builds the application logger described by the config.
func NewLogger(config *Config) logging.Logger {
	return logging.NewLogrusAdapter(config.Log.Level, config.Log.Format)
}
