package directory

import "errors"

// ErrIncompleteAccount is an exported constant or variable used by the account engine.
var ErrIncompleteAccount = errors.New("account builder missing name, email, or password")

// HashFunc turns a plaintext password into a stored one-way credential.
type HashFunc func(plaintext string) (string, error)

// IDFunc draws a fresh account identifier.
type IDFunc func() (uint64, error)

// Builder defines a public type used by goAccount APIs.
//
// Builder instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
//
// A Builder collects the requested name, email, and plaintext password for a
// new account. [Builder.Build] fails unless all three are present.
type Builder struct {
	requestedName     string
	requestedEmail    string
	requestedPassword string
}

// NewBuilder describes the newbuilder operation and its observable behavior.
//
// NewBuilder does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func NewBuilder() *Builder {
	return &Builder{}
}

// WithName describes the withname operation and its observable behavior.
//
// WithName does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Builder) WithName(name string) *Builder {
	b.requestedName = name
	return b
}

// WithEmail describes the withemail operation and its observable behavior.
//
// WithEmail does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Builder) WithEmail(email string) *Builder {
	b.requestedEmail = email
	return b
}

// WithPassword describes the withpassword operation and its observable behavior.
//
// WithPassword does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Builder) WithPassword(plaintext string) *Builder {
	b.requestedPassword = plaintext
	return b
}

// Build assembles the account: it draws a fresh identifier and hashes the
// plaintext password. Hashing is the slow step and runs here, outside any
// store lock — only the final [Store.Add] needs the critical section.
//
// Build may return an error when input validation, dependency calls, or security checks fail.
func (b *Builder) Build(newID IDFunc, hash HashFunc) (*Account, error) {
	if b.requestedName == "" || b.requestedEmail == "" || b.requestedPassword == "" {
		return nil, ErrIncompleteAccount
	}

	id, err := newID()
	if err != nil {
		return nil, err
	}

	passwordHash, err := hash(b.requestedPassword)
	if err != nil {
		return nil, err
	}

	return &Account{
		ID:           id,
		Name:         b.requestedName,
		Email:        b.requestedEmail,
		PasswordHash: passwordHash,
	}, nil
}
