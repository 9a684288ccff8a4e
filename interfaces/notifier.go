package interfaces

import (
	"context"

	"github.com/customeros/unsublink/internal/enum"
)

// ConditionNotifier receives the one-shot state-change notification emitted
// when an extraction moves from loading to its terminal condition. Delivery is
// best effort; the pipeline never fails because of a notifier.
type ConditionNotifier interface {
	NotifyConditionChange(ctx context.Context, messageID string, condition enum.ExtractionCondition)
}
