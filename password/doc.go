// Package password implements one-way password hashing and verification with bcrypt.
//
// # Work factor
//
// The cost parameter is the single tunable: each +1 doubles hashing time.
// [DemoCost] is deliberately low so example flows stay fast; raise it to
// [bcrypt.DefaultCost] or above before any real deployment.
//
// The [Hasher] supports transparent cost upgrades: if a stored hash was
// produced with a lower cost than currently configured, [Hasher.NeedsRehash]
// returns true so the caller can re-hash on the next credential change.
//
// # Architecture boundaries
//
// This package owns hashing and verification only. When and whether a
// credential may be replaced is decided by the Engine after capability
// verification.
//
// # What this package must NOT do
//
//   - Store or retrieve passwords — callers supply plaintext and receive hashes.
//   - Import any other goAccount package.
//   - Log plaintext passwords at runtime.
package password
