package goAccount

import (
	"io"

	"github.com/redis/go-redis/v9"
	internalaudit "github.com/spookysoftware/goAccount/internal/audit"
)

// SignupLink carries the fields of a create action link: the email the
// capability is bound to and the base64 transport form of the raw MAC bytes.
type SignupLink struct {
	Email string
	Token string
}

// ResetLink carries the fields of a reset action link: the account
// identifier, the expiry in ISO-8601 UTC form, and the base64 transport
// form of the raw MAC bytes. The expiry is inside the MAC input, so editing
// the transported field invalidates the signature.
type ResetLink struct {
	UserID  uint64
	Expires string
	Token   string
}

// CreateAccountRequest is the input for [Engine.CreateAccount]. Email and
// Token come from the signup link; the email used for the new account is
// the signed one, never a value separately resubmitted by the client.
type CreateAccountRequest struct {
	Email             string
	Token             string
	RequestedName     string
	RequestedPassword string
}

// CreateAccountResult is returned by [Engine.CreateAccount].
type CreateAccountResult struct {
	UserID uint64
	Email  string
	Name   string
}

// ResetPasswordRequest is the input for [Engine.ConfirmPasswordReset].
// UserID, Expires, and Token come from the reset link; RequestedPassword is
// the submitted plaintext replacement.
type ResetPasswordRequest struct {
	UserID            uint64
	Expires           string
	Token             string
	RequestedPassword string
}

// AuditEvent is a structured audit record emitted by the engine.
type AuditEvent = internalaudit.Event

// AuditSink receives [AuditEvent] values from the engine’s audit dispatcher.
type AuditSink = internalaudit.Sink

// NoOpSink is an [AuditSink] that silently discards all events.
type NoOpSink = internalaudit.NoOpSink

// ChannelSink is a buffered channel-based [AuditSink].
type ChannelSink = internalaudit.ChannelSink

// JSONWriterSink is an [AuditSink] that writes JSON-encoded events to an
// [io.Writer].
type JSONWriterSink = internalaudit.JSONWriterSink

// RedisStreamSink is an [AuditSink] that appends events to a Redis stream.
type RedisStreamSink = internalaudit.RedisStreamSink

// NewChannelSink creates a [ChannelSink] with the given buffer capacity.
func NewChannelSink(buffer int) *ChannelSink {
	return internalaudit.NewChannelSink(buffer)
}

// NewJSONWriterSink creates a [JSONWriterSink] that writes to w.
func NewJSONWriterSink(w io.Writer) *JSONWriterSink {
	return internalaudit.NewJSONWriterSink(w)
}

// NewRedisStreamSink creates a [RedisStreamSink] appending to the named
// stream, trimmed to approximately maxLen entries when maxLen > 0.
func NewRedisStreamSink(client redis.UniversalClient, stream string, maxLen int64) *RedisStreamSink {
	return internalaudit.NewRedisStreamSink(client, stream, maxLen)
}
