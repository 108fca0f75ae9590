package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config represents the application configuration
type Config struct {
	// MaxRounds caps a game so two decks that keep tying cannot loop
	// forever; a game that reaches the cap ends in a tie.
	MaxRounds int `toml:"max_rounds"`
	// NoColor disables colored terminal output.
	NoColor bool `toml:"no_color"`
}

// DefaultMaxRounds is used when no config file sets max_rounds.
const DefaultMaxRounds = 1000

// GetXDGDataHome returns XDG_DATA_HOME or default path
func GetXDGDataHome() string {
	if xdgData := os.Getenv("XDG_DATA_HOME"); xdgData != "" {
		return xdgData
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".local", "share")
}

// GetDeckLibraryPath returns the path to the deck library
func GetDeckLibraryPath() string {
	return filepath.Join(GetXDGDataHome(), "wargame", "decks")
}

// GetDeckPath resolves a deck argument: a name in the deck library (with or
// without the .csv extension), or a path to a deck file.
func GetDeckPath(name string) (string, error) {
	libraryPath := GetDeckLibraryPath()

	deckPath := filepath.Join(libraryPath, name)
	if _, err := os.Stat(deckPath); err == nil {
		return deckPath, nil
	}
	if _, err := os.Stat(deckPath + ".csv"); err == nil {
		return deckPath + ".csv", nil
	}

	// If not found in the library, treat as a path
	if _, err := os.Stat(name); err == nil {
		return name, nil
	}

	return "", fmt.Errorf("deck not found: %s", name)
}

// GetXDGConfigHome returns XDG_CONFIG_HOME or default path
func GetXDGConfigHome() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return xdgConfig
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config")
}

// GetConfigFilePath returns the path to the config file
func GetConfigFilePath() string {
	return filepath.Join(GetXDGConfigHome(), "wargame", "config.toml")
}

// LoadConfig loads the config file, creating one with defaults if it
// doesn't exist yet.
func LoadConfig() (*Config, error) {
	return loadConfigFrom(GetConfigFilePath())
}

func loadConfigFrom(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return createDefaultConfig(configPath)
	}

	var config Config
	_, err := toml.DecodeFile(configPath, &config)
	if err != nil {
		return nil, fmt.Errorf("error decoding config file: %v", err)
	}

	if config.MaxRounds <= 0 {
		config.MaxRounds = DefaultMaxRounds
	}

	return &config, nil
}

// createDefaultConfig creates a default config file
func createDefaultConfig(configPath string) (*Config, error) {
	configDir := filepath.Dir(configPath)

	// Ensure the config directory exists
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return nil, fmt.Errorf("error creating config directory: %v", err)
	}

	config := &Config{
		MaxRounds: DefaultMaxRounds,
		NoColor:   false,
	}

	// Create the file
	file, err := os.Create(configPath)
	if err != nil {
		return nil, fmt.Errorf("error creating config file: %v", err)
	}
	defer file.Close()

	// Encode the config to TOML
	encoder := toml.NewEncoder(file)
	if err := encoder.Encode(config); err != nil {
		return nil, fmt.Errorf("error encoding config: %v", err)
	}

	return config, nil
}
