package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("SESSION_SLOT", "")
	t.Setenv("SERVER_PORT", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Addr() != ":8080" {
		t.Fatalf("unexpected addr %q", cfg.Addr())
	}
	if cfg.SessionSlot != SlotFile {
		t.Fatalf("expected file slot by default, got %q", cfg.SessionSlot)
	}
	if cfg.JWTTTL() != 24*time.Hour {
		t.Fatalf("unexpected ttl %v", cfg.JWTTTL())
	}
	if cfg.Timezone != "Asia/Tokyo" {
		t.Fatalf("unexpected timezone %q", cfg.Timezone)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("SESSION_SLOT", " Redis ")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test,http://b.test")
	t.Setenv("JWT_TTL_MINUTES", "30")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Addr() != ":9090" {
		t.Fatalf("unexpected addr %q", cfg.Addr())
	}
	if cfg.SessionSlot != SlotRedis {
		t.Fatalf("expected normalized redis slot, got %q", cfg.SessionSlot)
	}
	if len(cfg.CORSOrigins) != 2 || cfg.CORSOrigins[1] != "http://b.test" {
		t.Fatalf("unexpected origins %v", cfg.CORSOrigins)
	}
	if cfg.JWTTTL() != 30*time.Minute {
		t.Fatalf("unexpected ttl %v", cfg.JWTTTL())
	}
}

func TestLoadRejectsUnknownSlot(t *testing.T) {
	t.Setenv("SESSION_SLOT", "cookie")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for unknown slot backend")
	}
}
