// Package goAccount provides a small account-service core: a capability-token
// scheme that signs and verifies action authorization (account-creation and
// password-reset links) and a concurrency-safe user directory that enforces
// email uniqueness under concurrent mutation.
//
// The package is designed for concurrent server workloads: Engine methods are
// safe to call from multiple goroutines after initialization through
// [Builder.Build].
//
// # Architecture boundaries
//
// goAccount is the public surface. It exposes [Engine], [Builder], [Config],
// and value types (SignupLink, ResetLink, MetricsSnapshot, etc.). Token
// mechanics live in [capability], account state in [directory], hashing in
// [password]; async audit dispatch lives under internal/ and is never
// exported directly.
//
// HTML rendering, HTTP routing, and form decoding are external collaborators:
// the boundary layer mints links via IssueSignupLink/IssueResetLink, then
// authorizes incoming requests via CreateAccount/ConfirmPasswordReset.
//
// # What this package must NOT do
//
//   - Distinguish verification failure causes to callers: forged, expired,
//     and malformed all surface as [ErrVerificationFailed].
//   - Trust client-resubmitted identifiers or emails when a signed value is
//     available.
//   - Keep server-side session state — every authorization decision is
//     recomputed from the token and the process-wide secret.
//
// # Performance contract
//
// Store critical sections are O(directory size) map scans with no hashing or
// I/O inside them. Password hashing, the deliberately slow step, always runs
// before the store lock is taken.
package goAccount
