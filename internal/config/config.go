package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Config holds application configuration
type Config struct {
	// TIDAL application bundle opened by "Open TIDAL"
	// Default: "/Applications/TIDAL.app"
	AppPath string `yaml:"app_path"`

	// Process name as listed by System Events
	ProcessName string `yaml:"process_name"`

	// Window title TIDAL shows when nothing is playing
	SentinelTitle string `yaml:"sentinel_title"`

	// Menu bar menu holding the playback items
	PlaybackMenu string `yaml:"playback_menu"`

	// Refresh interval for the menu and watch commands (in seconds)
	PollInterval int `yaml:"poll_interval"`

	// Bound on a single osascript call (in seconds, 0 disables)
	ScriptTimeout int `yaml:"script_timeout"`

	// Output format template for the now command
	// Default: "{{.Short}}"
	OutputFormat string `yaml:"output_format"`

	// Fixed output width for the now command (0 disables padding)
	OutputWidth int `yaml:"output_width"`
}

// PollDuration returns PollInterval as a time.Duration
func (c *Config) PollDuration() time.Duration {
	return time.Duration(c.PollInterval) * time.Second
}

// ScriptTimeoutDuration returns ScriptTimeout as a time.Duration
func (c *Config) ScriptTimeoutDuration() time.Duration {
	return time.Duration(c.ScriptTimeout) * time.Second
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app_path", "/Applications/TIDAL.app")
	v.SetDefault("process_name", "TIDAL")
	v.SetDefault("sentinel_title", "TIDAL")
	v.SetDefault("playback_menu", "Playback")
	v.SetDefault("poll_interval", 10)
	v.SetDefault("script_timeout", 5)
	v.SetDefault("output_format", "{{.Short}}")
	v.SetDefault("output_width", 0)
}

// Load reads configuration from file and environment
func Load() (*Config, error) {
	v := viper.New()

	// Set config name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	// Config file locations (in order of precedence)
	v.AddConfigPath(getConfigDir())
	v.AddConfigPath(".")

	setDefaults(v)

	// Read config file (optional - don't fail if missing)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	// Read from environment variables
	v.SetEnvPrefix("TIDALBAR")
	v.AutomaticEnv()

	cfg := &Config{
		AppPath:       v.GetString("app_path"),
		ProcessName:   v.GetString("process_name"),
		SentinelTitle: v.GetString("sentinel_title"),
		PlaybackMenu:  v.GetString("playback_menu"),
		PollInterval:  v.GetInt("poll_interval"),
		ScriptTimeout: v.GetInt("script_timeout"),
		OutputFormat:  v.GetString("output_format"),
		OutputWidth:   v.GetInt("output_width"),
	}

	if cfg.PollInterval <= 0 {
		cfg.PollInterval = 10
	}
	if cfg.ScriptTimeout < 0 {
		cfg.ScriptTimeout = 0
	}

	return cfg, nil
}

// getConfigDir returns the configuration directory path
func getConfigDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "."
	}

	return filepath.Join(homeDir, ".config", "tidalbar")
}

// GetConfigDir returns the configuration directory path (public helper)
func GetConfigDir() string {
	return getConfigDir()
}

// GetDataDir returns the directory for logs and other runtime files
func GetDataDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "."
	}

	return filepath.Join(homeDir, ".local", "share", "tidalbar")
}

// Save writes configuration to file
func (c *Config) Save() error {
	v := viper.New()

	// Set config file path
	configDir := getConfigDir()
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return err
	}
	configFile := filepath.Join(configDir, "config.yaml")

	// Set values in viper
	v.Set("app_path", c.AppPath)
	v.Set("process_name", c.ProcessName)
	v.Set("sentinel_title", c.SentinelTitle)
	v.Set("playback_menu", c.PlaybackMenu)
	v.Set("poll_interval", c.PollInterval)
	v.Set("script_timeout", c.ScriptTimeout)
	v.Set("output_format", c.OutputFormat)
	v.Set("output_width", c.OutputWidth)

	// Write to file
	return v.WriteConfigAs(configFile)
}
