package interfaces

import (
	"context"

	"github.com/customeros/unsublink/internal/models"
)

// MailSender performs the send-mail unsubscribe action.
type MailSender interface {
	SendUnsubscribeEmail(ctx context.Context, toAddress, subject, body string) error
}

// ActionService executes the primary action of a finished extraction: email
// actions go out through the MailSender, browser actions are either performed
// directly or handed back for the OS default browser, depending on the
// blacklist routing policy.
type ActionService interface {
	ExecutePrimary(ctx context.Context, result *models.ExtractionResult) (*models.ActionOutcome, error)
}
