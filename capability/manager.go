package capability

import (
	"crypto/hmac"
	"encoding/base64"
	"errors"
	"strconv"
	"time"

	"golang.org/x/crypto/sha3"
)

const (
	minSecretLength = 16
	defaultResetTTL = 3 * time.Hour
)

// Config defines a public type used by goAccount APIs.
//
// Config instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Config struct {
	// Secret is the process-wide keyed-MAC secret. Rotating it invalidates
	// every outstanding token.
	Secret []byte

	// ResetTTL is the validity window of reset tokens. Defaults to 3h.
	ResetTTL time.Duration

	// Now overrides the clock. Nil means time.Now.
	Now func() time.Time
}

// Manager defines a public type used by goAccount APIs.
//
// Manager instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Manager struct {
	config Config
}

// CreateParams carries a create capability: the email it is bound to and
// the raw MAC bytes authorizing creation of exactly that email.
type CreateParams struct {
	Email string
	Token []byte
}

// ResetParams carries a reset capability: the account identifier, the UTC
// expiry, and the raw MAC bytes covering both.
type ResetParams struct {
	UserID  uint64
	Expires time.Time
	Token   []byte
}

// NewManager describes the newmanager operation and its observable behavior.
//
// NewManager may return an error when input validation, dependency calls, or security checks fail.
// NewManager does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func NewManager(cfg Config) (*Manager, error) {
	if len(cfg.Secret) < minSecretLength {
		return nil, errors.New("capability secret must be at least 16 bytes")
	}
	if cfg.ResetTTL == 0 {
		cfg.ResetTTL = defaultResetTTL
	}
	if cfg.ResetTTL < 0 {
		return nil, errors.New("invalid reset TTL configuration")
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}

	secret := make([]byte, len(cfg.Secret))
	copy(secret, cfg.Secret)
	cfg.Secret = secret

	return &Manager{config: cfg}, nil
}

// IssueCreate describes the issuecreate operation and its observable behavior.
//
// IssueCreate does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (m *Manager) IssueCreate(email string) CreateParams {
	return CreateParams{
		Email: email,
		Token: m.createMAC(email),
	}
}

// VerifyCreate reports whether token authorizes creation of an account for
// email. The email MUST be the one the caller intends to authorize — the
// signed value, not client-resubmitted form data.
//
// VerifyCreate does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (m *Manager) VerifyCreate(email string, token []byte) bool {
	if len(token) == 0 {
		return false
	}
	return hmac.Equal(m.createMAC(email), token)
}

// IssueReset describes the issuereset operation and its observable behavior.
//
// IssueReset does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (m *Manager) IssueReset(userID uint64) ResetParams {
	expires := CanonicalExpiry(m.config.Now().Add(m.config.ResetTTL))
	return ResetParams{
		UserID:  userID,
		Expires: expires,
		Token:   m.resetMAC(userID, expires),
	}
}

// VerifyReset reports whether params authorizes a password reset for the
// account identified by userID. The identifier MUST be the server-resolved
// one from the account record, never a client-supplied value; a valid
// token for account A therefore fails against account B.
//
// An expiry at or before the current instant fails closed.
//
// VerifyReset does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (m *Manager) VerifyReset(userID uint64, params ResetParams) bool {
	if len(params.Token) == 0 {
		return false
	}
	if !m.config.Now().Before(params.Expires) {
		return false
	}
	return hmac.Equal(m.resetMAC(userID, params.Expires), params.Token)
}

func (m *Manager) createMAC(email string) []byte {
	mac := hmac.New(sha3.New256, m.config.Secret)
	mac.Write([]byte(email))
	return mac.Sum(nil)
}

func (m *Manager) resetMAC(userID uint64, expires time.Time) []byte {
	mac := hmac.New(sha3.New256, m.config.Secret)
	mac.Write([]byte(strconv.FormatUint(userID, 10)))
	mac.Write([]byte(FormatExpiry(expires)))
	return mac.Sum(nil)
}

// CanonicalExpiry normalizes t to the form that is both MACed and
// transported: UTC, truncated to whole seconds. Issue and verify must agree
// byte for byte on the expiry serialization, so every expiry passes through
// here before it is signed.
func CanonicalExpiry(t time.Time) time.Time {
	return t.UTC().Truncate(time.Second)
}

// FormatExpiry renders an expiry in the canonical RFC 3339 UTC form used
// both on the wire and inside the MAC input.
func FormatExpiry(t time.Time) string {
	return CanonicalExpiry(t).Format(time.RFC3339)
}

// ParseExpiry parses a transported expiry string. Unparsable input is a
// verification failure at the caller, never a fatal condition.
func ParseExpiry(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, err
	}
	return CanonicalExpiry(t), nil
}

// EncodeToken renders raw MAC bytes in the standard base64 transport form.
func EncodeToken(token []byte) string {
	return base64.StdEncoding.EncodeToString(token)
}

// DecodeToken decodes a transported token. Undecodable input is a
// verification failure at the caller, never a fatal condition.
func DecodeToken(s string) ([]byte, error) {
	return base64.StdEncoding.DecodeString(s)
}
