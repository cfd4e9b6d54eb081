package goAccount

import "errors"

var (
	// ErrVerificationFailed is an exported constant or variable used by the account engine.
	//
	// It is the uniform result for every capability failure cause — forged,
	// expired, or malformed — so callers cannot be used as an oracle
	// distinguishing one from another.
	ErrVerificationFailed = errors.New("capability verification failed")
	// ErrDuplicateEmail is an exported constant or variable used by the account engine.
	ErrDuplicateEmail = errors.New("email already registered")
	// ErrAccountNotFound is an exported constant or variable used by the account engine.
	ErrAccountNotFound = errors.New("account not found")
	// ErrAccountInvalid is an exported constant or variable used by the account engine.
	ErrAccountInvalid = errors.New("invalid account request")
	// ErrPasswordPolicy is an exported constant or variable used by the account engine.
	ErrPasswordPolicy = errors.New("password policy violation")
	// ErrIdentifierExhausted is an exported constant or variable used by the account engine.
	ErrIdentifierExhausted = errors.New("identifier space draw retries exhausted")
	// ErrEngineNotReady is an exported constant or variable used by the account engine.
	ErrEngineNotReady = errors.New("engine not initialized")
)
