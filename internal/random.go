package internal

import (
	"crypto/rand"
	"encoding/binary"
)

// NewAccountID draws an account identifier uniformly at random from the
// full 64-bit space. Callers own collision handling: the draw is not
// checked against existing identifiers here.
func NewAccountID() (uint64, error) {
	var raw [8]byte
	if _, err := rand.Read(raw[:]); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(raw[:]), nil
}

// NewSecret draws a fresh keyed-MAC secret of the given size. Used by
// examples and tests; real deployments provision the secret at startup,
// since a fresh secret invalidates every outstanding token.
func NewSecret(size int) ([]byte, error) {
	secret := make([]byte, size)
	if _, err := rand.Read(secret); err != nil {
		return nil, err
	}
	return secret, nil
}
