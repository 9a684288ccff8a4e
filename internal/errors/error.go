package errors

import "github.com/pkg/errors"

var (
	// eligibility errors, absorbed into the extraction condition
	ErrSentMailNotApplicable = errors.New("message is in the account's sent folder")
	ErrDraftNotSupported     = errors.New("draft messages are not supported")
	ErrNoMessageContent      = errors.New("message has no header or body content")

	// fetch errors
	ErrMessageNotFound   = errors.New("message not found")
	ErrConnectionTimeout = errors.New("connection timeout")

	// action errors
	ErrNoPrimaryAction    = errors.New("extraction has no primary action")
	ErrInvalidMailTarget  = errors.New("unsubscribe mail target is not a valid address")
	ErrExtractionNotFound = errors.New("extraction not found")
)
