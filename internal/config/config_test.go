package config

import "testing"

func TestNewConfig_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	cfg, err := NewConfig()
	if err != nil {
		t.Fatalf("NewConfig: %v", err)
	}
	if cfg.Port != "5000" {
		t.Errorf("Port = %q, want 5000", cfg.Port)
	}
	if cfg.ReminderSchedule != "0 9 1 * *" {
		t.Errorf("ReminderSchedule = %q, want default monthly schedule", cfg.ReminderSchedule)
	}
}

func TestNewConfig_RequiresJWTSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	if _, err := NewConfig(); err == nil {
		t.Fatal("expected error when JWT_SECRET is empty")
	}
}

func TestNewConfig_EnvOverrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "s")
	t.Setenv("PORT", "9090")
	t.Setenv("LOG_LEVEL", "DEBUG")

	cfg, err := NewConfig()
	if err != nil {
		t.Fatalf("NewConfig: %v", err)
	}
	if cfg.Port != "9090" || cfg.LogLevel != "DEBUG" {
		t.Errorf("overrides not applied: port=%q level=%q", cfg.Port, cfg.LogLevel)
	}
}
