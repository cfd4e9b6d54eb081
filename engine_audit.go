package goAccount

import (
	"context"
	"strconv"
	"time"

	internalaudit "github.com/spookysoftware/goAccount/internal/audit"
)

const (
	auditEventSignupLinkIssued       = "signup_link_issued"
	auditEventAccountCreationSuccess = "account_creation_success"
	auditEventAccountCreationFailure = "account_creation_failure"
	auditEventAccountCreationDenied  = "account_creation_denied"
	auditEventResetLinkIssued        = "reset_link_issued"
	auditEventResetLinkDenied        = "reset_link_denied"
	auditEventPasswordResetConfirm   = "password_reset_confirm"
	auditEventPasswordResetDenied    = "password_reset_denied"
)

// emitAudit forwards one flow outcome to the audit dispatcher. metadataFn is
// lazy so failure paths that are never audited pay nothing for map building.
func (e *Engine) emitAudit(
	ctx context.Context,
	eventType string,
	success bool,
	userID uint64,
	email string,
	flowErr error,
	metadataFn func() map[string]string,
) {
	if e == nil || e.audit == nil {
		return
	}

	event := internalaudit.Event{
		Timestamp: time.Now().UTC(),
		EventType: eventType,
		Email:     email,
		IP:        clientIPFromContext(ctx),
		Success:   success,
	}
	if userID != 0 {
		event.UserID = strconv.FormatUint(userID, 10)
	}
	if flowErr != nil {
		event.Error = flowErr.Error()
	}
	if metadataFn != nil {
		event.Metadata = metadataFn()
	}

	e.audit.Emit(ctx, event)
}
