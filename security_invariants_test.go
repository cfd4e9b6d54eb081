package goAccount

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

// Every capability failure cause must surface as the same sentinel so the
// engine cannot be used as an oracle separating "forged" from "expired"
// from "malformed".
func TestVerificationFailuresAreIndistinguishable(t *testing.T) {
	issued := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	now := issued
	engine := newTestEngineWithClock(t, func() time.Time { return now })
	ctx := context.Background()

	created := mustCreateAccount(t, engine, "alice@example.com", "Alice", "old-password")
	link, err := engine.IssueResetLink(ctx, created.UserID)
	if err != nil {
		t.Fatalf("IssueResetLink failed: %v", err)
	}

	forged := ResetPasswordRequest{
		UserID: link.UserID, Expires: link.Expires,
		Token: "QUFBQUFBQUFBQUFBQUFBQUFBQUFBQUFBQUFBQQ==", RequestedPassword: "x",
	}
	malformed := ResetPasswordRequest{
		UserID: link.UserID, Expires: link.Expires,
		Token: "not base64", RequestedPassword: "x",
	}

	errForged := engine.ConfirmPasswordReset(ctx, forged)
	errMalformed := engine.ConfirmPasswordReset(ctx, malformed)

	now = issued.Add(4 * time.Hour)
	errExpired := engine.ConfirmPasswordReset(ctx, ResetPasswordRequest{
		UserID: link.UserID, Expires: link.Expires,
		Token: link.Token, RequestedPassword: "x",
	})

	for name, got := range map[string]error{
		"forged":    errForged,
		"malformed": errMalformed,
		"expired":   errExpired,
	} {
		if !errors.Is(got, ErrVerificationFailed) {
			t.Fatalf("%s: expected ErrVerificationFailed, got %v", name, got)
		}
		if got.Error() != ErrVerificationFailed.Error() {
			t.Fatalf("%s: failure message leaks cause: %q", name, got.Error())
		}
	}
}

// Audit events may carry emails and ids for attribution, but never token
// bytes or password material.
func TestAuditEventsCarryNoSecretMaterial(t *testing.T) {
	sink := NewChannelSink(64)
	engine, err := New().WithSecret(testSecret).WithAuditSink(sink).Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	ctx := context.Background()

	link, err := engine.IssueSignupLink(ctx, "alice@example.com")
	if err != nil {
		t.Fatalf("IssueSignupLink failed: %v", err)
	}
	result, err := engine.CreateAccount(ctx, CreateAccountRequest{
		Email:             link.Email,
		Token:             link.Token,
		RequestedName:     "Alice",
		RequestedPassword: "hunter2-hunter2",
	})
	if err != nil {
		t.Fatalf("CreateAccount failed: %v", err)
	}
	reset, err := engine.IssueResetLink(ctx, result.UserID)
	if err != nil {
		t.Fatalf("IssueResetLink failed: %v", err)
	}
	if err := engine.ConfirmPasswordReset(ctx, ResetPasswordRequest{
		UserID:            reset.UserID,
		Expires:           reset.Expires,
		Token:             reset.Token,
		RequestedPassword: "hunter3-hunter3",
	}); err != nil {
		t.Fatalf("ConfirmPasswordReset failed: %v", err)
	}
	engine.Close() // drains the dispatcher

	drained := 0
	for {
		select {
		case event := <-sink.Events():
			drained++
			for _, secret := range []string{link.Token, reset.Token, "hunter2-hunter2", "hunter3-hunter3"} {
				if strings.Contains(event.Error, secret) {
					t.Fatalf("event %q error leaks secret material", event.EventType)
				}
				for k, v := range event.Metadata {
					if strings.Contains(v, secret) {
						t.Fatalf("event %q metadata %q leaks secret material", event.EventType, k)
					}
				}
			}
		default:
			if drained == 0 {
				t.Fatal("expected audited flow events")
			}
			return
		}
	}
}

// The process-wide secret lives in the engine, not in any package-level
// state: two engines with different secrets must not honor each other's
// links.
func TestNoAmbientSecretSharing(t *testing.T) {
	engineA := newTestEngine(t)
	engineB, err := New().WithSecret([]byte("fedcba9876543210fedcba9876543210")).Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	t.Cleanup(engineB.Close)

	ctx := context.Background()
	link, err := engineA.IssueSignupLink(ctx, "alice@example.com")
	if err != nil {
		t.Fatalf("IssueSignupLink failed: %v", err)
	}

	_, err = engineB.CreateAccount(ctx, CreateAccountRequest{
		Email:             link.Email,
		Token:             link.Token,
		RequestedName:     "Alice",
		RequestedPassword: "correct-horse",
	})
	if !errors.Is(err, ErrVerificationFailed) {
		t.Fatalf("expected ErrVerificationFailed across secrets, got %v", err)
	}
}

func TestBuilderIsOneShot(t *testing.T) {
	b := New().WithSecret(testSecret)
	if _, err := b.Build(); err != nil {
		t.Fatalf("first Build failed: %v", err)
	}
	if _, err := b.Build(); err == nil {
		t.Fatal("second Build on the same builder must fail")
	}
}

func TestBuildFailsClosedWithoutSecret(t *testing.T) {
	if _, err := New().Build(); err == nil {
		t.Fatal("Build without a secret must fail")
	}
	if _, err := New().WithSecret([]byte("short")).Build(); err == nil {
		t.Fatal("Build with an undersized secret must fail")
	}
}
