package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("ENV", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("SIMPLEMSG_BASE_URL", "")
	t.Setenv("SIMPLEMSG_HTTP_TIMEOUT", "")
	cfg := Load()
	if cfg.Port != "3010" {
		t.Fatalf("expected default port, got %s", cfg.Port)
	}
	if cfg.Env != "development" {
		t.Fatalf("expected default env, got %s", cfg.Env)
	}
	if cfg.APIBaseURL != "http://localhost:3000" {
		t.Fatalf("expected default base url, got %s", cfg.APIBaseURL)
	}
	if cfg.RequestTimeout != 10*time.Second {
		t.Fatalf("expected default timeout, got %s", cfg.RequestTimeout)
	}
	if cfg.FetchMessages {
		t.Fatalf("expected message fetching disabled by default")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("SIMPLEMSG_BASE_URL", "https://api.simplemsg.io")
	t.Setenv("SIMPLEMSG_API_KEY", "sk_live_abc")
	t.Setenv("SIMPLEMSG_WEBHOOK_SECRET", "mySecret")
	t.Setenv("SIMPLEMSG_HTTP_TIMEOUT", "30s")
	t.Setenv("SIMPLEMSG_FETCH_MESSAGES", "true")
	cfg := Load()
	if cfg.Port != "9090" {
		t.Fatalf("expected override port, got %s", cfg.Port)
	}
	if cfg.APIBaseURL != "https://api.simplemsg.io" {
		t.Fatalf("expected base url override, got %s", cfg.APIBaseURL)
	}
	if cfg.APIKey != "sk_live_abc" || cfg.WebhookSecret != "mySecret" {
		t.Fatalf("expected credential overrides")
	}
	if cfg.RequestTimeout != 30*time.Second {
		t.Fatalf("expected timeout override, got %s", cfg.RequestTimeout)
	}
	if !cfg.FetchMessages {
		t.Fatalf("expected message fetching enabled")
	}
}

func TestLoadIgnoresBadValues(t *testing.T) {
	t.Setenv("SIMPLEMSG_HTTP_TIMEOUT", "soon")
	t.Setenv("SIMPLEMSG_FETCH_MESSAGES", "yep")
	cfg := Load()
	if cfg.RequestTimeout != 10*time.Second {
		t.Fatalf("expected bad duration to fall back, got %s", cfg.RequestTimeout)
	}
	if cfg.FetchMessages {
		t.Fatalf("expected bad bool to fall back")
	}
}
