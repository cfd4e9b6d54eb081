package goAccount

import (
	"context"
	"errors"

	"github.com/spookysoftware/goAccount/capability"
	"github.com/spookysoftware/goAccount/directory"
)

const maxIDDraws = 4

// IssueSignupLink mints a create capability bound to exactly one email. The
// capability has no expiry; it authorizes creating an account for that email
// and nothing else.
//
// IssueSignupLink may return an error when input validation, dependency calls, or security checks fail.
// IssueSignupLink does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (e *Engine) IssueSignupLink(ctx context.Context, email string) (*SignupLink, error) {
	if e == nil || e.capabilities == nil {
		return nil, ErrEngineNotReady
	}
	if email == "" {
		return nil, ErrAccountInvalid
	}

	params := e.capabilities.IssueCreate(email)

	e.metricInc(MetricSignupLinkIssued)
	e.emitAudit(ctx, auditEventSignupLinkIssued, true, 0, email, nil, nil)

	return &SignupLink{
		Email: params.Email,
		Token: capability.EncodeToken(params.Token),
	}, nil
}

// CreateAccount authorizes and performs account creation. The email/token
// pair must come from a signup link: the signed email is the sole source of
// truth for which address the account gets — a client cannot substitute a
// different one. Password hashing runs before the store lock is acquired;
// only the final insert holds it.
//
// Every token failure cause — undecodable transport encoding, forged MAC —
// collapses to [ErrVerificationFailed].
//
// CreateAccount may return an error when input validation, dependency calls, or security checks fail.
// CreateAccount does not mutate shared global state beyond the directory insert and can be used concurrently.
func (e *Engine) CreateAccount(ctx context.Context, req CreateAccountRequest) (*CreateAccountResult, error) {
	if e == nil || e.capabilities == nil || e.store == nil || e.passwordHash == nil {
		return nil, ErrEngineNotReady
	}

	token, err := capability.DecodeToken(req.Token)
	if err != nil {
		e.metricInc(MetricAccountCreationDenied)
		e.emitAudit(ctx, auditEventAccountCreationDenied, false, 0, req.Email, ErrVerificationFailed, func() map[string]string {
			return map[string]string{
				"reason": "malformed_token",
			}
		})
		return nil, ErrVerificationFailed
	}
	if !e.capabilities.VerifyCreate(req.Email, token) {
		e.metricInc(MetricAccountCreationDenied)
		e.emitAudit(ctx, auditEventAccountCreationDenied, false, 0, req.Email, ErrVerificationFailed, nil)
		return nil, ErrVerificationFailed
	}

	if req.RequestedName == "" {
		e.emitAudit(ctx, auditEventAccountCreationFailure, false, 0, req.Email, ErrAccountInvalid, func() map[string]string {
			return map[string]string{
				"reason": "empty_name",
			}
		})
		return nil, ErrAccountInvalid
	}
	if req.RequestedPassword == "" {
		e.emitAudit(ctx, auditEventAccountCreationFailure, false, 0, req.Email, ErrPasswordPolicy, func() map[string]string {
			return map[string]string{
				"reason": "empty_password",
			}
		})
		return nil, ErrPasswordPolicy
	}

	// Builder.Build hashes here, outside the store's critical section.
	account, err := directory.NewBuilder().
		WithName(req.RequestedName).
		WithEmail(req.Email).
		WithPassword(req.RequestedPassword).
		Build(e.newID, e.passwordHash.Hash)
	if err != nil {
		e.emitAudit(ctx, auditEventAccountCreationFailure, false, 0, req.Email, ErrPasswordPolicy, func() map[string]string {
			return map[string]string{
				"reason": "hash_policy",
			}
		})
		return nil, ErrPasswordPolicy
	}

	if err := e.insertWithFreshID(account); err != nil {
		if errors.Is(err, ErrDuplicateEmail) {
			e.metricInc(MetricAccountCreationDuplicate)
			e.emitAudit(ctx, auditEventAccountCreationFailure, false, 0, req.Email, err, func() map[string]string {
				return map[string]string{
					"reason": "duplicate_email",
				}
			})
			return nil, err
		}
		e.emitAudit(ctx, auditEventAccountCreationFailure, false, 0, req.Email, err, nil)
		return nil, err
	}

	e.metricInc(MetricAccountCreationSuccess)
	e.emitAudit(ctx, auditEventAccountCreationSuccess, true, account.ID, account.Email, nil, nil)

	return &CreateAccountResult{
		UserID: account.ID,
		Email:  account.Email,
		Name:   account.Name,
	}, nil
}

// insertWithFreshID inserts the built account, redrawing the random
// identifier on the statistically negligible collision, bounded so a
// pathological id source cannot loop forever.
func (e *Engine) insertWithFreshID(account *directory.Account) error {
	for draws := 0; draws < maxIDDraws; draws++ {
		err := e.store.Add(account)
		if !errors.Is(err, directory.ErrDuplicateID) {
			if errors.Is(err, directory.ErrDuplicateEmail) {
				return ErrDuplicateEmail
			}
			return err
		}

		id, err := e.newID()
		if err != nil {
			return err
		}
		account.ID = id
	}

	return ErrIdentifierExhausted
}
