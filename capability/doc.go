// Package capability issues and verifies HMAC-SHA3-256 capability tokens that
// authorize account creation and password reset without server-side session state.
//
// # Token construction
//
// A token is the raw MAC of a canonical payload under a single process-wide
// secret, transported as standard base64:
//
//	create: MAC(secret, email)
//	reset:  MAC(secret, decimal(userID) || rfc3339utc(expires))
//
// The reset expiry is part of the MAC input, so editing the transported
// expiry field invalidates the signature. Verification recomputes the MAC
// and compares in constant time.
//
// # Architecture boundaries
//
// This package owns token bytes only. Account lookup, credential mutation,
// and the decision of WHICH identifier to verify against belong to the
// Engine — callers must pass the server-resolved identifier, never a
// client-echoed one.
//
// # What this package must NOT do
//
//   - Distinguish failure causes: every verify returns a bare boolean.
//   - Persist or log issued tokens.
//   - Import any other goAccount package.
package capability
