package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"

	"lifeplanner/internal/kv"
	"lifeplanner/internal/suggest"
)

const (
	DefaultLocale           = "ru"
	DefaultView             = "dashboard"
	DefaultReminderSchedule = "* * * * *"
)

// Config holds the unified application configuration
type Config struct {
	DataDir          string
	Storage          string
	Model            string
	APIBaseURL       string
	Locale           string
	DefaultView      string
	ReminderSchedule string
	Notifications    bool

	// APIKey comes from the environment only and is never written to disk.
	APIKey string
}

// Settings represents the config file structure
type Settings struct {
	DataDir          string `json:"data_dir,omitempty"`
	Storage          string `json:"storage,omitempty"`
	Model            string `json:"model,omitempty"`
	APIBaseURL       string `json:"api_base_url,omitempty"`
	Locale           string `json:"locale,omitempty"`
	DefaultView      string `json:"default_view,omitempty"`
	ReminderSchedule string `json:"reminder_schedule,omitempty"`
	Notifications    *bool  `json:"notifications,omitempty"`
}

// CLIFlags holds parsed CLI flags
type CLIFlags struct {
	DataDir     string
	Storage     string
	DefaultView string
	Locale      string
}

// Load loads configuration with priority: CLI flags > env vars > config file > default.
// A .env file in the working directory is read first; variables already set
// in the environment win over it.
func Load(flags CLIFlags) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("read .env: %w", err)
	}

	defaultDir, err := GetDefaultDir()
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		DataDir:          defaultDir,
		Storage:          kv.BackendFile,
		Model:            suggest.DefaultModel,
		APIBaseURL:       suggest.DefaultBaseURL,
		Locale:           DefaultLocale,
		DefaultView:      DefaultView,
		ReminderSchedule: DefaultReminderSchedule,
		Notifications:    true,
	}

	// Priority 3: config file
	if configPath, err := getConfigPath(); err == nil {
		fileConfig, err := loadConfigFile(configPath)
		switch {
		case err == nil:
			cfg.applySettings(fileConfig)
		case !errors.Is(err, fs.ErrNotExist):
			return nil, fmt.Errorf("config file %s: %w", configPath, err)
		}
	}

	// Priority 2: Environment variables override config file
	setFromEnv(&cfg.DataDir, "LIFEPLANNER_DATA_DIR")
	setFromEnv(&cfg.Storage, "LIFEPLANNER_STORAGE")
	setFromEnv(&cfg.Model, "LIFEPLANNER_MODEL")
	setFromEnv(&cfg.APIBaseURL, "LIFEPLANNER_API_BASE_URL")
	setFromEnv(&cfg.Locale, "LIFEPLANNER_LOCALE")
	setFromEnv(&cfg.DefaultView, "LIFEPLANNER_DEFAULT_VIEW")
	setFromEnv(&cfg.ReminderSchedule, "LIFEPLANNER_REMINDER_SCHEDULE")
	if v := os.Getenv("LIFEPLANNER_NOTIFICATIONS"); v != "" {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("LIFEPLANNER_NOTIFICATIONS: %w", err)
		}
		cfg.Notifications = enabled
	}
	cfg.APIKey = apiKeyFromEnv()

	// Priority 1: CLI flags override everything
	if flags.DataDir != "" {
		cfg.DataDir = flags.DataDir
	}
	if flags.Storage != "" {
		cfg.Storage = flags.Storage
	}
	if flags.DefaultView != "" {
		cfg.DefaultView = flags.DefaultView
	}
	if flags.Locale != "" {
		cfg.Locale = flags.Locale
	}

	cfg.DataDir = expandPath(cfg.DataDir)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the storage backend and the reminder schedule.
func (c *Config) Validate() error {
	switch c.Storage {
	case kv.BackendFile, kv.BackendSQLite:
	default:
		return fmt.Errorf("unknown storage %q (want file or sqlite)", c.Storage)
	}
	if _, err := cron.ParseStandard(c.ReminderSchedule); err != nil {
		return fmt.Errorf("invalid reminder_schedule %q: %w", c.ReminderSchedule, err)
	}
	return nil
}

func (c *Config) applySettings(s *Settings) {
	if s.DataDir != "" {
		c.DataDir = s.DataDir
	}
	if s.Storage != "" {
		c.Storage = s.Storage
	}
	if s.Model != "" {
		c.Model = s.Model
	}
	if s.APIBaseURL != "" {
		c.APIBaseURL = s.APIBaseURL
	}
	if s.Locale != "" {
		c.Locale = s.Locale
	}
	if s.DefaultView != "" {
		c.DefaultView = s.DefaultView
	}
	if s.ReminderSchedule != "" {
		c.ReminderSchedule = s.ReminderSchedule
	}
	if s.Notifications != nil {
		c.Notifications = *s.Notifications
	}
}

// GetDefaultDir returns the default data directory path
func GetDefaultDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".local", "share", "lifeplanner"), nil
}

// EnsureDataDir creates the data directory if it is missing.
func (c *Config) EnsureDataDir() error {
	return os.MkdirAll(c.DataDir, 0755)
}

// getConfigPath returns the path to the configuration file.
// LIFEPLANNER_CONFIG overrides the default location.
func getConfigPath() (string, error) {
	if p := os.Getenv("LIFEPLANNER_CONFIG"); p != "" {
		return expandPath(p), nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "lifeplanner", "config.json"), nil
}

// loadConfigFile loads configuration from the settings file
func loadConfigFile(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var settings Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, err
	}

	return &settings, nil
}

// EnsureConfigFile creates the config file with defaults if it doesn't exist
func EnsureConfigFile() error {
	configPath, err := getConfigPath()
	if err != nil {
		return err
	}

	if _, err := os.Stat(configPath); err == nil {
		return nil
	}

	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return err
	}

	defaultDir, err := GetDefaultDir()
	if err != nil {
		return err
	}

	notifications := true
	settings := Settings{
		DataDir:          defaultDir,
		Storage:          kv.BackendFile,
		Model:            suggest.DefaultModel,
		Locale:           DefaultLocale,
		DefaultView:      DefaultView,
		ReminderSchedule: DefaultReminderSchedule,
		Notifications:    &notifications,
	}

	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0644)
}

func apiKeyFromEnv() string {
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		return key
	}
	return os.Getenv("API_KEY")
}

func setFromEnv(dst *string, name string) {
	if v := strings.TrimSpace(os.Getenv(name)); v != "" {
		*dst = v
	}
}

func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(homeDir, path[2:])
	}
	return path
}
