package goAccount

import (
	"context"

	"github.com/spookysoftware/goAccount/capability"
	"github.com/spookysoftware/goAccount/directory"
)

// IssueResetLink mints a time-bounded reset capability for an existing
// account. The expiry is part of the MAC input, so the transported expiry
// field cannot be extended without invalidating the signature.
//
// IssueResetLink may return an error when input validation, dependency calls, or security checks fail.
// IssueResetLink does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (e *Engine) IssueResetLink(ctx context.Context, userID uint64) (*ResetLink, error) {
	if e == nil || e.capabilities == nil || e.store == nil {
		return nil, ErrEngineNotReady
	}

	account, ok := e.store.Get(userID)
	if !ok {
		e.metricInc(MetricAccountNotFound)
		e.emitAudit(ctx, auditEventResetLinkDenied, false, userID, "", ErrAccountNotFound, nil)
		return nil, ErrAccountNotFound
	}

	params := e.capabilities.IssueReset(account.ID)

	e.metricInc(MetricResetLinkIssued)
	e.emitAudit(ctx, auditEventResetLinkIssued, true, account.ID, account.Email, nil, nil)

	return &ResetLink{
		UserID:  params.UserID,
		Expires: capability.FormatExpiry(params.Expires),
		Token:   capability.EncodeToken(params.Token),
	}, nil
}

// ConfirmPasswordReset authorizes and performs a credential replacement.
// The MAC is recomputed against the looked-up account's own identifier —
// never the client-echoed one — so a valid token for account A cannot be
// replayed against account B. An expiry at or before now fails closed.
//
// Every verification failure cause — forged, expired, undecodable token,
// unparsable expiry — collapses to [ErrVerificationFailed]. The new
// password is hashed before the store lock is taken; only the credential
// swap holds it.
//
// ConfirmPasswordReset may return an error when input validation, dependency calls, or security checks fail.
// ConfirmPasswordReset does not mutate shared global state beyond the targeted credential and can be used concurrently.
func (e *Engine) ConfirmPasswordReset(ctx context.Context, req ResetPasswordRequest) error {
	if e == nil || e.capabilities == nil || e.store == nil || e.passwordHash == nil {
		return ErrEngineNotReady
	}

	account, ok := e.store.Get(req.UserID)
	if !ok {
		e.metricInc(MetricAccountNotFound)
		e.emitAudit(ctx, auditEventPasswordResetDenied, false, req.UserID, "", ErrAccountNotFound, nil)
		return ErrAccountNotFound
	}

	token, err := capability.DecodeToken(req.Token)
	if err != nil {
		return e.denyReset(ctx, account.ID, account.Email, "malformed_token")
	}
	expires, err := capability.ParseExpiry(req.Expires)
	if err != nil {
		return e.denyReset(ctx, account.ID, account.Email, "malformed_expiry")
	}

	params := capability.ResetParams{
		UserID:  req.UserID,
		Expires: expires,
		Token:   token,
	}
	if !e.capabilities.VerifyReset(account.ID, params) {
		return e.denyReset(ctx, account.ID, account.Email, "")
	}

	if req.RequestedPassword == "" {
		e.emitAudit(ctx, auditEventPasswordResetDenied, false, account.ID, account.Email, ErrPasswordPolicy, func() map[string]string {
			return map[string]string{
				"reason": "empty_password",
			}
		})
		return ErrPasswordPolicy
	}

	// Hash outside the critical section; the lock covers only the swap.
	newHash, err := e.passwordHash.Hash(req.RequestedPassword)
	if err != nil {
		e.emitAudit(ctx, auditEventPasswordResetDenied, false, account.ID, account.Email, ErrPasswordPolicy, func() map[string]string {
			return map[string]string{
				"reason": "hash_policy",
			}
		})
		return ErrPasswordPolicy
	}

	if !e.store.Update(account.ID, func(a *directory.Account) {
		a.PasswordHash = newHash
	}) {
		// Accounts are never deleted, but fail closed if the id vanished.
		e.metricInc(MetricAccountNotFound)
		return ErrAccountNotFound
	}

	e.metricInc(MetricResetConfirmSuccess)
	e.emitAudit(ctx, auditEventPasswordResetConfirm, true, account.ID, account.Email, nil, nil)

	return nil
}

func (e *Engine) denyReset(ctx context.Context, userID uint64, email, reason string) error {
	e.metricInc(MetricResetConfirmDenied)

	var metadataFn func() map[string]string
	if reason != "" {
		metadataFn = func() map[string]string {
			return map[string]string{
				"reason": reason,
			}
		}
	}
	e.emitAudit(ctx, auditEventPasswordResetDenied, false, userID, email, ErrVerificationFailed, metadataFn)

	return ErrVerificationFailed
}
