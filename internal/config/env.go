package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// DefaultEnvFile is the .env file loaded from the working directory.
const DefaultEnvFile = ".env"

// LoadEnvFile loads variables from a .env file into the process
// environment. Variables already set in the environment win.
// A missing file is ignored unless path was given explicitly.
func LoadEnvFile(path string) error {
	explicit := path != ""
	if !explicit {
		path = DefaultEnvFile
	}

	if err := godotenv.Load(path); err != nil {
		if errNotExist(err) && !explicit {
			return nil
		}
		return fmt.Errorf("failed to load env file %s: %w", path, err)
	}
	return nil
}

// APIKey returns the Gemini API key from the environment.
func APIKey() string {
	return strings.TrimSpace(os.Getenv(APIKeyEnv))
}
