package dto

import (
	"time"

	"github.com/customeros/unsublink/internal/enum"
)

// ExtractionConditionChanged is published once per extraction, when the
// result reaches its terminal condition.
type ExtractionConditionChanged struct {
	MessageID  string                   `json:"messageId"`
	Condition  enum.ExtractionCondition `json:"condition"`
	OccurredAt time.Time                `json:"occurredAt"`
}
