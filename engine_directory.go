package goAccount

import "github.com/spookysoftware/goAccount/directory"

// GetAccount returns a copy of the account with the given identifier.
//
// GetAccount may return an error when input validation, dependency calls, or security checks fail.
// GetAccount does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (e *Engine) GetAccount(userID uint64) (directory.Account, error) {
	if e == nil || e.store == nil {
		return directory.Account{}, ErrEngineNotReady
	}

	account, ok := e.store.Get(userID)
	if !ok {
		return directory.Account{}, ErrAccountNotFound
	}

	return account, nil
}

// ListAccounts returns copies of all accounts sorted by identifier
// ascending — a deterministic order for presentation.
//
// ListAccounts may return an error when input validation, dependency calls, or security checks fail.
// ListAccounts does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (e *Engine) ListAccounts() ([]directory.Account, error) {
	if e == nil || e.store == nil {
		return nil, ErrEngineNotReady
	}

	return e.store.List(), nil
}
