package llm

import "testing"

func clearAPIKeys(t *testing.T) {
	t.Helper()
	for _, k := range []string{"GEMINI_API_KEY", "OPENAI_API_KEY", "ANTHROPIC_API_KEY", "OPENROUTER_API_KEY"} {
		t.Setenv(k, "")
	}
}

func TestDiscoverConfigPriority(t *testing.T) {
	clearAPIKeys(t)
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("ANTHROPIC_API_KEY", "sk-ant-test")

	cfg, ok := DiscoverConfig()
	if !ok {
		t.Fatal("no provider discovered")
	}
	// OpenAI outranks Anthropic in the probe order.
	if cfg.Provider != "openai" {
		t.Errorf("provider = %q, want openai", cfg.Provider)
	}
	if cfg.OpenAI.APIKey != "sk-test" {
		t.Errorf("key = %q", cfg.OpenAI.APIKey)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("discovered config invalid: %v", err)
	}
}

func TestDiscoverConfigNothingSet(t *testing.T) {
	clearAPIKeys(t)

	if _, ok := DiscoverConfig(); ok {
		t.Fatal("discovered a provider with no keys set")
	}
}

func TestConfigValidate(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err == nil {
		t.Error("anthropic config without key validated")
	}

	cfg.Anthropic.APIKey = "sk-ant"
	if err := cfg.Validate(); err != nil {
		t.Errorf("valid config rejected: %v", err)
	}

	cfg.Provider = "carrier-pigeon"
	if err := cfg.Validate(); err == nil {
		t.Error("unknown provider validated")
	}

	cfg.Provider = "mock"
	if err := cfg.Validate(); err != nil {
		t.Errorf("mock provider rejected: %v", err)
	}
}

func TestDefaultRetryIsSingleAttempt(t *testing.T) {
	if got := DefaultConfig().Retry.MaxAttempts; got != 1 {
		t.Errorf("default MaxAttempts = %d, want 1", got)
	}
}
