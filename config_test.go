package goAccount

import (
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"
)

func validTestConfig() Config {
	cfg := defaultConfig()
	cfg.Capability.Secret = testSecret
	return cfg
}

func TestConfigValidate(t *testing.T) {
	if err := validTestConfig().Validate(); err != nil {
		t.Fatalf("valid config rejected: %v", err)
	}

	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"missing secret", func(c *Config) { c.Capability.Secret = nil }},
		{"short secret", func(c *Config) { c.Capability.Secret = []byte("short") }},
		{"zero reset TTL", func(c *Config) { c.Capability.ResetTTL = 0 }},
		{"negative reset TTL", func(c *Config) { c.Capability.ResetTTL = -time.Hour }},
		{"cost below bcrypt minimum", func(c *Config) { c.Password.Cost = bcrypt.MinCost - 1 }},
		{"cost above bcrypt maximum", func(c *Config) { c.Password.Cost = bcrypt.MaxCost + 1 }},
		{"audit enabled without buffer", func(c *Config) { c.Audit.BufferSize = 0 }},
	}
	for _, c := range cases {
		cfg := validTestConfig()
		c.mutate(&cfg)
		if err := cfg.Validate(); err == nil {
			t.Fatalf("%s: expected validation error", c.name)
		}
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := defaultConfig()

	if cfg.Capability.ResetTTL != 3*time.Hour {
		t.Fatalf("default reset TTL = %v, want 3h", cfg.Capability.ResetTTL)
	}
	if cfg.Password.Cost != bcrypt.MinCost {
		t.Fatalf("default cost = %d, want demo cost %d", cfg.Password.Cost, bcrypt.MinCost)
	}
	if !cfg.Audit.Enabled || !cfg.Metrics.Enabled {
		t.Fatal("audit and metrics default on")
	}
}

func TestCloneConfigIsolatesSecret(t *testing.T) {
	cfg := validTestConfig()
	cloned := cloneConfig(cfg)

	cloned.Capability.Secret[0] ^= 0xFF
	if cfg.Capability.Secret[0] == cloned.Capability.Secret[0] {
		t.Fatal("cloneConfig must deep-copy the secret")
	}
}

func TestBuilderSecretIsCopied(t *testing.T) {
	secret := make([]byte, len(testSecret))
	copy(secret, testSecret)

	engine, err := New().WithSecret(secret).Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	t.Cleanup(engine.Close)

	// Scribbling on the caller's slice must not affect the engine.
	for i := range secret {
		secret[i] = 0
	}

	link, err := engine.IssueSignupLink(nil, "alice@example.com")
	if err != nil {
		t.Fatalf("IssueSignupLink failed: %v", err)
	}
	if _, err := engine.CreateAccount(nil, CreateAccountRequest{
		Email:             link.Email,
		Token:             link.Token,
		RequestedName:     "Alice",
		RequestedPassword: "correct-horse",
	}); err != nil {
		t.Fatalf("CreateAccount failed: %v", err)
	}
}
