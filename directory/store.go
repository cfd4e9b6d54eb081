package directory

import (
	"errors"
	"sort"
	"sync"
)

// ErrDuplicateEmail is an exported constant or variable used by the account engine.
var ErrDuplicateEmail = errors.New("email already registered")

// ErrDuplicateID is an exported constant or variable used by the account engine.
var ErrDuplicateID = errors.New("identifier already assigned")

// Store defines a public type used by goAccount APIs.
//
// Store instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
//
// All methods are safe for concurrent use. Mutations are serialized by a
// single mutex, so they are linearizable: concurrent [Store.Add] calls for
// the same email resolve to exactly one success.
type Store struct {
	mu       sync.Mutex
	accounts map[uint64]*Account
}

// NewStore describes the newstore operation and its observable behavior.
//
// NewStore does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func NewStore() *Store {
	return &Store{
		accounts: make(map[uint64]*Account),
	}
}

// Add inserts account if no existing account shares its email or identifier.
// The duplicate scan and the insert run in one critical section — this is
// the atomic check-then-insert that upholds the uniqueness invariant under
// concurrent signups. On failure nothing is mutated.
//
// Add may return an error when input validation, dependency calls, or security checks fail.
func (s *Store) Add(account *Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.accounts[account.ID]; exists {
		return ErrDuplicateID
	}
	for _, existing := range s.accounts {
		if existing.Email == account.Email {
			return ErrDuplicateEmail
		}
	}

	stored := *account
	s.accounts[account.ID] = &stored

	return nil
}

// Get returns a copy of the account with the given identifier.
//
// Get does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (s *Store) Get(id uint64) (Account, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	account, ok := s.accounts[id]
	if !ok {
		return Account{}, false
	}

	return *account, true
}

// Update runs fn with exclusive access to the account with the given
// identifier, scoped to the store's critical section. Identifier and email
// are immutable after creation: the credential is the only field a caller
// may change, and rewrites of ID or Email by fn are discarded.
//
// Update does not mutate shared global state beyond the targeted account and can be used concurrently.
func (s *Store) Update(id uint64, fn func(*Account)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	account, ok := s.accounts[id]
	if !ok {
		return false
	}

	frozenID, frozenEmail, frozenName := account.ID, account.Email, account.Name
	fn(account)
	account.ID, account.Email, account.Name = frozenID, frozenEmail, frozenName

	return true
}

// List returns copies of all accounts sorted by identifier ascending —
// a deterministic, repeatable order for presentation.
//
// List does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (s *Store) List() []Account {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Account, 0, len(s.accounts))
	for _, account := range s.accounts {
		out = append(out, *account)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// Len describes the len operation and its observable behavior.
//
// Len does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.accounts)
}
