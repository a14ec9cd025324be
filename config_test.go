package chatbot

import (
	"testing"
	"time"
)

func TestValidateRequiresAPIKey(t *testing.T) {
	cfg := &Config{AssistantID: "asst_test"}
	if err := cfg.Validate(); err == nil {
		t.Error("expected error when the API key is missing")
	}
}

func TestValidateRequiresAssistantID(t *testing.T) {
	cfg := &Config{OpenAIAPIKey: "sk-test"}
	if err := cfg.Validate(); err == nil {
		t.Error("expected error when the assistant id is missing")
	}
}

func TestValidatePassesWithCredentials(t *testing.T) {
	cfg := &Config{OpenAIAPIKey: "sk-test", AssistantID: "asst_test"}
	if err := cfg.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("ASSISTANT_ID", "asst_test")

	cfg := LoadConfig()
	if cfg.Addr != DefaultAddr {
		t.Errorf("expected default addr %q, got %q", DefaultAddr, cfg.Addr)
	}
	if cfg.RequestTimeout != DefaultRequestTimeout {
		t.Errorf("expected default request timeout, got %v", cfg.RequestTimeout)
	}
	if cfg.Store != nil {
		t.Error("expected no store configuration by default")
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("ASSISTANT_ID", "asst_test")
	t.Setenv("CHAT_ADDR", ":9090")
	t.Setenv("CHAT_REQUEST_TIMEOUT", "45s")
	t.Setenv("CHAT_POLL_MAX_ATTEMPTS", "10")
	t.Setenv("CHAT_DB_TYPE", "sqlite")
	t.Setenv("CHAT_DB_CONN", "transcripts.sqlite")

	cfg := LoadConfig()
	if cfg.Addr != ":9090" {
		t.Errorf("unexpected addr: %q", cfg.Addr)
	}
	if cfg.RequestTimeout != 45*time.Second {
		t.Errorf("unexpected request timeout: %v", cfg.RequestTimeout)
	}
	if cfg.PollMaxAttempts != 10 {
		t.Errorf("unexpected poll attempts: %d", cfg.PollMaxAttempts)
	}
	if cfg.Store == nil {
		t.Fatal("expected a store configuration")
	}
}

func TestEnvDurationFallsBackOnGarbage(t *testing.T) {
	t.Setenv("CHAT_REQUEST_TIMEOUT", "soon")
	if got := envDuration("CHAT_REQUEST_TIMEOUT", DefaultRequestTimeout); got != DefaultRequestTimeout {
		t.Errorf("expected fallback duration, got %v", got)
	}
}

func TestStoreBuilders(t *testing.T) {
	cfg := (&Config{}).WithSQLiteStore("test.sqlite")
	if cfg.Store == nil {
		t.Fatal("expected sqlite store configuration")
	}
	cfg = (&Config{}).WithPostgresStore("host=localhost")
	if cfg.Store == nil {
		t.Fatal("expected postgres store configuration")
	}
}
