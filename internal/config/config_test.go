package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("TELEGRAM_TOKEN", "")
	t.Setenv("TELEGRAM_CHAT_ID", "")
	t.Setenv("SYNC_INTERVAL_MINUTES", "")
	t.Setenv("REMINDER_POLL_MINUTES", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.DatabaseURL != "property_keeper.db" {
		t.Errorf("expected default database, got %s", cfg.DatabaseURL)
	}
	if cfg.SyncInterval != 15*time.Minute {
		t.Errorf("expected 15m sync interval, got %s", cfg.SyncInterval)
	}
	if cfg.ReminderPoll != time.Minute {
		t.Errorf("expected 1m reminder poll, got %s", cfg.ReminderPoll)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "data/keeper.db")
	t.Setenv("TELEGRAM_TOKEN", "token123")
	t.Setenv("TELEGRAM_CHAT_ID", "987654")
	t.Setenv("SYNC_INTERVAL_MINUTES", "5")
	t.Setenv("REMINDER_POLL_MINUTES", "2")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.DatabaseURL != "data/keeper.db" {
		t.Errorf("database url not applied: %s", cfg.DatabaseURL)
	}
	if cfg.TelegramChatID != 987654 {
		t.Errorf("chat id not applied: %d", cfg.TelegramChatID)
	}
	if cfg.SyncInterval != 5*time.Minute {
		t.Errorf("sync interval not applied: %s", cfg.SyncInterval)
	}
	if cfg.ReminderPoll != 2*time.Minute {
		t.Errorf("reminder poll not applied: %s", cfg.ReminderPoll)
	}
}

func TestLoadRequiresChatIDWithToken(t *testing.T) {
	t.Setenv("TELEGRAM_TOKEN", "token123")
	t.Setenv("TELEGRAM_CHAT_ID", "")

	if _, err := Load(); err == nil {
		t.Fatal("expected error when token is set without chat id")
	}
}

func TestLoadRejectsBadChatID(t *testing.T) {
	t.Setenv("TELEGRAM_TOKEN", "token123")
	t.Setenv("TELEGRAM_CHAT_ID", "not-a-number")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for non-numeric chat id")
	}
}
