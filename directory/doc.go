// Package directory provides the authoritative in-memory account collection
// shared by all request handlers.
//
// # Concurrency discipline
//
// One mutex guards the whole collection; every operation holds it for its
// entire duration. Critical sections are cheap map operations — password
// hashing happens in [Builder.Build] BEFORE the store is touched, so slow
// CPU-bound work never blocks other readers or writers. The correctness-
// critical sequence is [Store.Add]: the duplicate-email scan and the insert
// run inside a single critical section, so concurrent signups for the same
// email resolve to exactly one success.
//
// # Architecture boundaries
//
// This package owns account records and their uniqueness invariant. Token
// verification and the decision of WHEN a credential may change belong to
// the Engine.
//
// # What this package must NOT do
//
//   - Accept plaintext passwords — accounts carry only one-way hashes.
//   - Allow identifier or email mutation after insert.
//   - Import any other goAccount package.
package directory
