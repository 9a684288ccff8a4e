package interfaces

import (
	"context"

	"github.com/customeros/unsublink/internal/models"
)

// ExtractionService decides whether an automated unsubscribe action is
// possible for a message and produces the ordered candidate actions.
type ExtractionService interface {
	// Extract runs the pipeline over a fully materialized message. It never
	// returns an error: every failure is absorbed into the result's terminal
	// condition.
	Extract(ctx context.Context, msg *models.Message) *models.ExtractionResult

	// ExtractByID fetches the message through the configured provider first.
	// The returned message is nil when fetching failed; the result always
	// carries a terminal condition.
	ExtractByID(ctx context.Context, mailboxID, messageID string) (*models.Message, *models.ExtractionResult)
}
