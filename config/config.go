// Package config is responsible for setting the program config from the
// config file and command-line arguments
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/pterm/pterm"
	"github.com/spf13/viper"
)

const Version = "v0.1.0"

const (
	keyTimezone             = "timezone"
	keyTickRate             = "tick_rate"
	keyLibrarySeed          = "library.seed"
	keyLibraryCount         = "library.count"
	keyNotificationsEnabled = "notifications.enabled"
	keyDarkTheme            = "display.dark_theme"
	keyTwentyFourHour       = "display.24hr_clock"
	keyFireCmd              = "settings.fire_cmd"
)

const (
	defaultTimezone     = "America/New_York"
	defaultTickRate     = time.Second
	defaultLibrarySeed  = 7
	defaultLibraryCount = 100
)

type (
	// LibraryConfig controls the procedurally generated sound library.
	LibraryConfig struct {
		Seed  int64
		Count int
	}

	// NotificationConfig holds desktop notification settings.
	NotificationConfig struct {
		Enabled bool
	}

	// DisplayConfig holds display-related settings.
	DisplayConfig struct {
		DarkTheme      bool
		TwentyFourHour bool
	}

	// SettingsConfig holds miscellaneous behaviour settings.
	SettingsConfig struct {
		// FireCmd is an arbitrary command executed after each chime fires.
		FireCmd string
	}

	// Config holds all configuration settings.
	Config struct {
		Location      *time.Location
		Timezone      string
		TickRate      time.Duration
		Library       LibraryConfig
		Notifications NotificationConfig
		Display       DisplayConfig
		Settings      SettingsConfig
	}

	// Option is a function that modifies Config.
	Option func(*Config) error
)

var (
	configDir      = "chimes"
	configFileName = "config.yml"
	dbFileName     = "chimes.db"
	statusFileName = "status.json"
	logFileName    = "chimes.log"
	dbFilePath     string
	configFilePath string
	statusFilePath string
	logFilePath    string
)

func Dir() string {
	return configDir
}

func DBFilePath() string {
	return dbFilePath
}

func StatusFilePath() string {
	return statusFilePath
}

func LogFilePath() string {
	return logFilePath
}

func ConfigFilePath() string {
	return configFilePath
}

// InitializePaths computes the config, database, status, and log file paths.
// It must be called once at program startup, before New.
func InitializePaths() {
	chimesEnv := strings.TrimSpace(os.Getenv("CHIMES_ENV"))
	if chimesEnv != "" {
		configFileName = fmt.Sprintf("config_%s.yml", chimesEnv)
		dbFileName = fmt.Sprintf("chimes_%s.db", chimesEnv)
		statusFileName = fmt.Sprintf("status_%s.json", chimesEnv)
		logFileName = fmt.Sprintf("chimes_%s.log", chimesEnv)
	}

	var err error

	relPath := filepath.Join(configDir, configFileName)

	configFilePath, err = xdg.ConfigFile(relPath)
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}

	dataDir, err := xdg.DataFile(configDir)
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}

	dbFilePath = filepath.Join(dataDir, dbFileName)

	statusFilePath = filepath.Join(dataDir, statusFileName)

	logFilePath = filepath.Join(dataDir, "log", logFileName)
}

// New creates a new Config with default values and applies options.
func New(opts ...Option) (*Config, error) {
	cfg := &Config{}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, errConfigOption.Wrap(err)
		}
	}

	if err := cfg.resolve(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// resolve validates the loaded values and computes derived fields.
func (c *Config) resolve() error {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return errInvalidTimezone.Fmt(c.Timezone).Wrap(err)
	}

	c.Location = loc

	if c.TickRate <= 0 {
		return errInvalidTickRate.Fmt(c.TickRate)
	}

	if c.Library.Count < 0 {
		c.Library.Count = 0
	}

	return nil
}

// WithViperConfig returns an Option that loads configuration from the YAML
// config file, writing one with defaults if it does not exist yet.
func WithViperConfig(configPath string) Option {
	return func(c *Config) error {
		v := viper.New()

		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")

		setViperDefaults(v)

		err := v.ReadInConfig()
		if err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok &&
				!os.IsNotExist(err) {
				return errReadConfig.Wrap(err)
			}

			if err := v.WriteConfig(); err != nil {
				return errWriteConfig.Wrap(err)
			}
		}

		return loadViperConfig(v, c)
	}
}

func setViperDefaults(v *viper.Viper) {
	v.SetDefault(keyTimezone, defaultTimezone)
	v.SetDefault(keyTickRate, defaultTickRate.String())
	v.SetDefault(keyLibrarySeed, defaultLibrarySeed)
	v.SetDefault(keyLibraryCount, defaultLibraryCount)
	v.SetDefault(keyNotificationsEnabled, true)
	v.SetDefault(keyDarkTheme, true)
	v.SetDefault(keyTwentyFourHour, false)
	v.SetDefault(keyFireCmd, "")
}

func loadViperConfig(v *viper.Viper, c *Config) error {
	c.Timezone = v.GetString(keyTimezone)
	c.Library.Seed = v.GetInt64(keyLibrarySeed)
	c.Library.Count = v.GetInt(keyLibraryCount)
	c.Notifications.Enabled = v.GetBool(keyNotificationsEnabled)
	c.Display.DarkTheme = v.GetBool(keyDarkTheme)
	c.Display.TwentyFourHour = v.GetBool(keyTwentyFourHour)
	c.Settings.FireCmd = v.GetString(keyFireCmd)

	rate, err := time.ParseDuration(v.GetString(keyTickRate))
	if err != nil {
		return errInvalidTickRate.Fmt(v.GetString(keyTickRate)).Wrap(err)
	}

	c.TickRate = rate

	return nil
}
