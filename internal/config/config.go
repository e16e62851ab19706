package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/createproject-labs/createproject/internal/branding"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Known configuration keys.
const (
	KeyBasePath       = "base_path"
	KeyLogLevel       = "log_level"
	KeyLogFile        = "log_file"
	KeyNoColor        = "no_color"
	KeySpinner        = "spinner"
	KeyProjectVersion = "project_version"
	KeyPythonRequires = "python_requires"
)

// Keys lists every known key in display order.
var Keys = []string{
	KeyBasePath,
	KeyLogLevel,
	KeyLogFile,
	KeyNoColor,
	KeySpinner,
	KeyProjectVersion,
	KeyPythonRequires,
}

// Settings is the typed view of the loaded configuration.
type Settings struct {
	BasePath       string
	LogLevel       string
	LogFile        string
	NoColor        bool
	Spinner        time.Duration
	ProjectVersion string
	PythonRequires string
}

// Dir returns the path to the config directory (~/.createproject/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.createproject/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

func setDefaults() {
	viper.SetDefault(KeyBasePath, ".")
	viper.SetDefault(KeyLogLevel, "warn")
	viper.SetDefault(KeyLogFile, "")
	viper.SetDefault(KeyNoColor, false)
	viper.SetDefault(KeySpinner, "1s")
	viper.SetDefault(KeyProjectVersion, "0.1.0")
	viper.SetDefault(KeyPythonRequires, ">=3.8")
}

// Load initializes Viper to read from the config file and environment.
func Load() {
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()
	setDefaults()

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Current returns the typed settings from the loaded configuration.
func Current() Settings {
	return Settings{
		BasePath:       viper.GetString(KeyBasePath),
		LogLevel:       viper.GetString(KeyLogLevel),
		LogFile:        viper.GetString(KeyLogFile),
		NoColor:        viper.GetBool(KeyNoColor),
		Spinner:        viper.GetDuration(KeySpinner),
		ProjectVersion: viper.GetString(KeyProjectVersion),
		PythonRequires: viper.GetString(KeyPythonRequires),
	}
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// Set writes a config key-value pair and saves the config file.
func Set(key, value string) error {
	if err := EnsureDir(); err != nil {
		return err
	}

	viper.Set(key, value)

	if err := viper.WriteConfigAs(FilePath()); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
