package goAccount

import (
	"errors"
	"time"

	"github.com/spookysoftware/goAccount/capability"
	"github.com/spookysoftware/goAccount/directory"
	"github.com/spookysoftware/goAccount/internal"
	internalaudit "github.com/spookysoftware/goAccount/internal/audit"
	"github.com/spookysoftware/goAccount/password"
)

// Builder defines a public type used by goAccount APIs.
//
// Builder instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Builder struct {
	config Config

	store     *directory.Store
	auditSink AuditSink
	now       func() time.Time

	built bool
}

// New describes the new operation and its observable behavior.
//
// New does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func New() *Builder {
	return &Builder{
		config: defaultConfig(),
	}
}

// WithConfig describes the withconfig operation and its observable behavior.
//
// WithConfig does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Builder) WithConfig(cfg Config) *Builder {
	b.config = cloneConfig(cfg)
	return b
}

// WithSecret sets the process-wide keyed-MAC secret. Rotating the secret
// between processes invalidates every outstanding unexpired token — an
// operational consequence, not a defect.
func (b *Builder) WithSecret(secret []byte) *Builder {
	b.config.Capability.Secret = cloneBytes(secret)
	return b
}

// WithStore supplies a pre-populated account directory. When omitted,
// Build starts from an empty one.
func (b *Builder) WithStore(store *directory.Store) *Builder {
	b.store = store
	return b
}

// WithAuditSink describes the withauditsink operation and its observable behavior.
//
// WithAuditSink does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Builder) WithAuditSink(sink AuditSink) *Builder {
	b.auditSink = sink
	return b
}

// WithClock overrides the engine clock, primarily for expiry tests.
func (b *Builder) WithClock(now func() time.Time) *Builder {
	b.now = now
	return b
}

// WithMetricsEnabled describes the withmetricsenabled operation and its observable behavior.
//
// WithMetricsEnabled does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Builder) WithMetricsEnabled(enabled bool) *Builder {
	b.config.Metrics.Enabled = enabled
	return b
}

// Build describes the build operation and its observable behavior.
//
// Build may return an error when input validation, dependency calls, or security checks fail.
// Build does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Builder) Build() (*Engine, error) {
	if b.built {
		return nil, errors.New("builder already used")
	}

	cfg := cloneConfig(b.config)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	// -------- CAPABILITY MANAGER --------
	manager, err := capability.NewManager(capability.Config{
		Secret:   cfg.Capability.Secret,
		ResetTTL: cfg.Capability.ResetTTL,
		Now:      b.now,
	})
	if err != nil {
		return nil, err
	}

	// -------- PASSWORD HASHER --------
	hasher, err := password.NewHasher(password.Config{
		Cost: cfg.Password.Cost,
	})
	if err != nil {
		return nil, err
	}

	// -------- DIRECTORY --------
	store := b.store
	if store == nil {
		store = directory.NewStore()
	}

	engine := &Engine{
		config:       cfg,
		capabilities: manager,
		store:        store,
		passwordHash: hasher,
		newID:        internal.NewAccountID,
	}

	engine.audit = internalaudit.NewDispatcher(internalaudit.Config{
		Enabled:    cfg.Audit.Enabled,
		BufferSize: cfg.Audit.BufferSize,
		DropIfFull: cfg.Audit.DropIfFull,
	}, b.auditSink)
	engine.metrics = NewMetrics(cfg.Metrics)

	b.built = true

	return engine, nil
}
