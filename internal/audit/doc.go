// Package audit provides asynchronous audit event dispatch for the account
// engine: a buffered Dispatcher fans events out to a pluggable Sink
// (channel, JSON writer, Redis stream, or no-op).
//
// Events carry a uuid event id, the flow outcome, and never any secret
// material — no tokens, no plaintext passwords, no credential hashes.
package audit
