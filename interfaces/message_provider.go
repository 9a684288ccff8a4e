package interfaces

import (
	"context"

	"github.com/customeros/unsublink/internal/models"
)

// MessageProvider fetches and materializes one message for extraction. It
// signals non-fetchable messages with the typed errors in internal/errors:
// ErrSentMailNotApplicable for the account's own sent mail and
// ErrDraftNotSupported for drafts. Retry policy, if any, lives behind this
// interface.
type MessageProvider interface {
	FetchMessage(ctx context.Context, mailboxID, messageID string) (*models.Message, error)
}
