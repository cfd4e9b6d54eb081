package password

import (
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func newTestHasher(t *testing.T, cost int) *Hasher {
	t.Helper()

	h, err := NewHasher(Config{Cost: cost})
	if err != nil {
		t.Fatalf("NewHasher failed: %v", err)
	}
	return h
}

func TestNewHasherRejectsOutOfBoundsCost(t *testing.T) {
	if _, err := NewHasher(Config{Cost: bcrypt.MinCost - 1}); err == nil {
		t.Fatal("expected error for cost below bcrypt minimum")
	}
	if _, err := NewHasher(Config{Cost: bcrypt.MaxCost + 1}); err == nil {
		t.Fatal("expected error for cost above bcrypt maximum")
	}
}

func TestHashAndVerify(t *testing.T) {
	h := newTestHasher(t, DemoCost)

	hash, err := h.Hash("correct-horse")
	if err != nil {
		t.Fatalf("Hash failed: %v", err)
	}
	if hash == "correct-horse" {
		t.Fatal("hash must not be the plaintext")
	}

	ok, err := h.Verify("correct-horse", hash)
	if err != nil {
		t.Fatalf("Verify failed: %v", err)
	}
	if !ok {
		t.Fatal("correct password must verify")
	}

	ok, err = h.Verify("wrong-horse", hash)
	if err != nil {
		t.Fatalf("Verify failed: %v", err)
	}
	if ok {
		t.Fatal("wrong password must not verify")
	}
}

func TestHashesAreSalted(t *testing.T) {
	h := newTestHasher(t, DemoCost)

	h1, err := h.Hash("same-password")
	if err != nil {
		t.Fatalf("Hash failed: %v", err)
	}
	h2, err := h.Hash("same-password")
	if err != nil {
		t.Fatalf("Hash failed: %v", err)
	}
	if h1 == h2 {
		t.Fatal("two hashes of the same password must differ")
	}
}

func TestHashRejectsEmptyAndOversized(t *testing.T) {
	h := newTestHasher(t, DemoCost)

	if _, err := h.Hash(""); err == nil {
		t.Fatal("expected error for empty password")
	}
	if _, err := h.Hash(strings.Repeat("x", 73)); err == nil {
		t.Fatal("expected error for password beyond bcrypt input limit")
	}
}

func TestVerifyMalformedHash(t *testing.T) {
	h := newTestHasher(t, DemoCost)

	if _, err := h.Verify("anything", "not-a-bcrypt-hash"); err == nil {
		t.Fatal("expected error for malformed stored hash")
	}
}

func TestNeedsRehash(t *testing.T) {
	low := newTestHasher(t, bcrypt.MinCost)
	high := newTestHasher(t, bcrypt.MinCost+2)

	hash, err := low.Hash("correct-horse")
	if err != nil {
		t.Fatalf("Hash failed: %v", err)
	}

	needs, err := high.NeedsRehash(hash)
	if err != nil {
		t.Fatalf("NeedsRehash failed: %v", err)
	}
	if !needs {
		t.Fatal("hash below configured cost must need rehash")
	}

	needs, err = low.NeedsRehash(hash)
	if err != nil {
		t.Fatalf("NeedsRehash failed: %v", err)
	}
	if needs {
		t.Fatal("hash at configured cost must not need rehash")
	}
}
