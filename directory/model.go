package directory

// Account defines a public type used by goAccount APIs.
//
// Account instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
//
// ID and Email are assigned once at creation and never change; PasswordHash
// is the only field mutable after insert (via [Store.Update]). PasswordHash
// is an opaque one-way hash — the plaintext is never stored.
type Account struct {
	ID           uint64
	Name         string
	Email        string
	PasswordHash string
}
