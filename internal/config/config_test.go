package config

import (
	"os"
	"path/filepath"
	"testing"
)

var envVars = []string{
	"LIFEPLANNER_DATA_DIR", "LIFEPLANNER_STORAGE", "LIFEPLANNER_MODEL",
	"LIFEPLANNER_API_BASE_URL", "LIFEPLANNER_LOCALE", "LIFEPLANNER_DEFAULT_VIEW",
	"LIFEPLANNER_REMINDER_SCHEDULE", "LIFEPLANNER_NOTIFICATIONS",
	"GEMINI_API_KEY", "API_KEY",
}

// isolate points HOME at a temp dir and clears every variable Load reads.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("LIFEPLANNER_CONFIG", "")
	for _, name := range envVars {
		t.Setenv(name, "")
	}
	return home
}

func writeConfig(t *testing.T, home, content string) {
	t.Helper()
	dir := filepath.Join(home, ".config", "lifeplanner")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.json"), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestLoad_Default(t *testing.T) {
	home := isolate(t)

	cfg, err := Load(CLIFlags{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.DataDir != filepath.Join(home, ".local", "share", "lifeplanner") {
		t.Errorf("unexpected default data dir %q", cfg.DataDir)
	}
	if cfg.Storage != "file" {
		t.Errorf("expected file storage, got %q", cfg.Storage)
	}
	if cfg.Locale != "ru" {
		t.Errorf("expected locale 'ru', got %q", cfg.Locale)
	}
	if cfg.DefaultView != "dashboard" {
		t.Errorf("expected default view 'dashboard', got %q", cfg.DefaultView)
	}
	if cfg.ReminderSchedule != "* * * * *" {
		t.Errorf("expected every-minute schedule, got %q", cfg.ReminderSchedule)
	}
	if !cfg.Notifications {
		t.Error("expected notifications enabled by default")
	}
	if Get() != cfg {
		t.Error("expected Get to return the loaded config")
	}
}

func TestLoad_ConfigFile(t *testing.T) {
	home := isolate(t)
	writeConfig(t, home, `{"storage":"sqlite","locale":"en","default_view":"schedule","notifications":false,"data_dir":"~/planner"}`)

	cfg, err := Load(CLIFlags{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Storage != "sqlite" || cfg.Locale != "en" || cfg.DefaultView != "schedule" {
		t.Errorf("file values not applied: %+v", cfg)
	}
	if cfg.Notifications {
		t.Error("expected notifications disabled by file")
	}
	if cfg.DataDir != filepath.Join(home, "planner") {
		t.Errorf("expected expanded data dir, got %q", cfg.DataDir)
	}
}

func TestLoad_EnvVar(t *testing.T) {
	home := isolate(t)
	writeConfig(t, home, `{"locale":"en","model":"file-model"}`)
	t.Setenv("LIFEPLANNER_LOCALE", "ru")
	t.Setenv("LIFEPLANNER_NOTIFICATIONS", "false")

	cfg, err := Load(CLIFlags{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Locale != "ru" {
		t.Errorf("expected env to override file locale, got %q", cfg.Locale)
	}
	if cfg.Model != "file-model" {
		t.Errorf("expected file model to survive, got %q", cfg.Model)
	}
	if cfg.Notifications {
		t.Error("expected notifications disabled by env")
	}
}

func TestLoad_CLIFlags(t *testing.T) {
	isolate(t)
	t.Setenv("LIFEPLANNER_DATA_DIR", "/tmp/env-dir")
	t.Setenv("LIFEPLANNER_STORAGE", "sqlite")

	cfg, err := Load(CLIFlags{DataDir: "/tmp/cli-dir", DefaultView: "notes"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// CLI flags should override env vars
	if cfg.DataDir != "/tmp/cli-dir" {
		t.Errorf("expected /tmp/cli-dir, got %q", cfg.DataDir)
	}
	if cfg.Storage != "sqlite" {
		t.Errorf("expected env storage to survive, got %q", cfg.Storage)
	}
	if cfg.DefaultView != "notes" {
		t.Errorf("expected notes view, got %q", cfg.DefaultView)
	}
}

func TestLoad_APIKey(t *testing.T) {
	tests := []struct {
		name   string
		gemini string
		apiKey string
		want   string
	}{
		{"gemini wins", "g-key", "a-key", "g-key"},
		{"fallback", "", "a-key", "a-key"},
		{"none", "", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			t.Setenv("GEMINI_API_KEY", tt.gemini)
			t.Setenv("API_KEY", tt.apiKey)

			cfg, err := Load(CLIFlags{})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if cfg.APIKey != tt.want {
				t.Errorf("expected %q, got %q", tt.want, cfg.APIKey)
			}
		})
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		file string
	}{
		{"bad storage", map[string]string{"LIFEPLANNER_STORAGE": "postgres"}, ""},
		{"memory storage", map[string]string{"LIFEPLANNER_STORAGE": "memory"}, ""},
		{"bad schedule", map[string]string{"LIFEPLANNER_REMINDER_SCHEDULE": "every minute"}, ""},
		{"bad bool", map[string]string{"LIFEPLANNER_NOTIFICATIONS": "sometimes"}, ""},
		{"bad json", nil, "{not json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			home := isolate(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			if tt.file != "" {
				writeConfig(t, home, tt.file)
			}
			if _, err := Load(CLIFlags{}); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestEnsureConfigFile(t *testing.T) {
	home := isolate(t)

	if err := EnsureConfigFile(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	path := filepath.Join(home, ".config", "lifeplanner", "config.json")
	settings, err := loadConfigFile(path)
	if err != nil {
		t.Fatalf("config file not readable: %v", err)
	}
	if settings.Locale != "ru" || settings.ReminderSchedule != "* * * * *" {
		t.Errorf("unexpected defaults: %+v", settings)
	}

	// Existing files are left alone.
	writeConfig(t, home, `{"locale":"en"}`)
	if err := EnsureConfigFile(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	settings, _ = loadConfigFile(path)
	if settings.Locale != "en" {
		t.Error("expected existing config to be preserved")
	}
}
