package goAccount

import (
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Config defines a public type used by goAccount APIs.
//
// Config instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Config struct {
	Capability CapabilityConfig
	Password   PasswordConfig
	Audit      AuditConfig
	Metrics    MetricsConfig
}

/*
====================================
CAPABILITY CONFIG
====================================
*/

// CapabilityConfig defines a public type used by goAccount APIs.
//
// CapabilityConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type CapabilityConfig struct {
	// Secret is the single process-wide keyed-MAC secret, supplied at
	// startup. Rotating it invalidates every outstanding unexpired token.
	Secret []byte

	// ResetTTL bounds the validity of reset links. Defaults to 3h.
	ResetTTL time.Duration
}

/*
====================================
PASSWORD CONFIG
====================================
*/

// PasswordConfig defines a public type used by goAccount APIs.
//
// PasswordConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type PasswordConfig struct {
	// Cost is the bcrypt work factor. The default is intentionally low for
	// demos and must be raised before any real deployment.
	Cost int
}

/*
====================================
AUDIT CONFIG
====================================
*/

// AuditConfig defines a public type used by goAccount APIs.
//
// AuditConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type AuditConfig struct {
	Enabled    bool
	BufferSize int
	DropIfFull bool
}

/*
====================================
METRICS CONFIG
====================================
*/

// MetricsConfig defines a public type used by goAccount APIs.
//
// MetricsConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type MetricsConfig struct {
	Enabled bool
}

func defaultConfig() Config {
	return Config{
		Capability: CapabilityConfig{
			ResetTTL: 3 * time.Hour,
		},
		Password: PasswordConfig{
			Cost: bcrypt.MinCost,
		},
		Audit: AuditConfig{
			Enabled:    true,
			BufferSize: 256,
			DropIfFull: true,
		},
		Metrics: MetricsConfig{
			Enabled: true,
		},
	}
}

func cloneConfig(cfg Config) Config {
	out := cfg
	out.Capability.Secret = cloneBytes(cfg.Capability.Secret)
	return out
}

func cloneBytes(b []byte) []byte {
	if b == nil {
		return nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}

// Validate describes the validate operation and its observable behavior.
//
// Validate may return an error when input validation, dependency calls, or security checks fail.
// Validate does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (c Config) Validate() error {
	if len(c.Capability.Secret) < 16 {
		return errors.New("capability secret must be at least 16 bytes")
	}
	if c.Capability.ResetTTL <= 0 {
		return errors.New("capability reset TTL must be positive")
	}
	if c.Password.Cost < bcrypt.MinCost || c.Password.Cost > bcrypt.MaxCost {
		return errors.New("password cost out of bcrypt bounds")
	}
	if c.Audit.Enabled && c.Audit.BufferSize <= 0 {
		return errors.New("audit buffer size must be positive when audit is enabled")
	}
	return nil
}
