package extractor

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/customeros/unsublink/internal/enum"
	apperrors "github.com/customeros/unsublink/internal/errors"
	"github.com/customeros/unsublink/internal/logger"
	"github.com/customeros/unsublink/internal/models"
	"github.com/customeros/unsublink/services/blacklist"
)

type fakeProvider struct {
	msg *models.Message
	err error
}

func (p *fakeProvider) FetchMessage(ctx context.Context, mailboxID, messageID string) (*models.Message, error) {
	return p.msg, p.err
}

type spyNotifier struct {
	messageIDs []string
	conditions []enum.ExtractionCondition
}

func (n *spyNotifier) NotifyConditionChange(ctx context.Context, messageID string, condition enum.ExtractionCondition) {
	n.messageIDs = append(n.messageIDs, messageID)
	n.conditions = append(n.conditions, condition)
}

func newTestService(t *testing.T, provider *fakeProvider, notifier *spyNotifier) *extractionService {
	t.Helper()
	appLogger := logger.NewAppLogger(&logger.Config{DevMode: true})
	appLogger.InitLogger()

	bl, err := blacklist.NewBlacklistService(blacklist.DefaultRules())
	require.NoError(t, err)

	svc := NewExtractionService(appLogger, bl, provider, notifier)
	return svc.(*extractionService)
}

func newsletterMessage() *models.Message {
	return &models.Message{
		ID:        "msg-1",
		MailboxID: "mbx-1",
		Subject:   "Weekly digest",
		Category:  "Inbox",
		Headers: map[string]string{
			models.HeaderListUnsubscribe: "<mailto:list@example.com>, <https://example.com/unsub>",
		},
		BodyHTML: `<p><a href="https://example.com/unsub?u=1">Unsubscribe</a></p>`,
	}
}

func TestExtract_Done(t *testing.T) {
	// Arrange
	notifier := &spyNotifier{}
	svc := newTestService(t, &fakeProvider{}, notifier)
	msg := newsletterMessage()

	// Act
	result := svc.Extract(context.Background(), msg)

	// Assert
	assert.Equal(t, enum.ConditionDone, result.Condition)
	assert.True(t, result.HasLinks)
	require.NotEmpty(t, result.Links)

	// email action first, normalized target
	primary, ok := result.PrimaryAction()
	require.True(t, ok)
	assert.Equal(t, enum.ActionEmail, primary.ActionType)
	assert.Equal(t, "list@example.com", primary.Target)

	assert.False(t, result.IsForwarded)
	assert.Equal(t, confirmText, result.ConfirmText)

	require.Len(t, notifier.conditions, 1)
	assert.Equal(t, enum.ConditionDone, notifier.conditions[0])
	assert.Equal(t, "msg-1", notifier.messageIDs[0])
}

func TestExtract_SentMailDisabledBeforeParsing(t *testing.T) {
	// Arrange
	notifier := &spyNotifier{}
	svc := newTestService(t, &fakeProvider{}, notifier)
	msg := newsletterMessage()
	msg.Category = "Sent Mail"

	// Act
	result := svc.Extract(context.Background(), msg)

	// Assert: disabled without any extraction; confirm text is never set
	assert.Equal(t, enum.ConditionDisabled, result.Condition)
	assert.False(t, result.HasLinks)
	assert.Empty(t, result.Links)
	assert.Empty(t, result.ConfirmText)
	require.Len(t, notifier.conditions, 1)
	assert.Equal(t, enum.ConditionDisabled, notifier.conditions[0])
}

func TestExtract_DraftErrored(t *testing.T) {
	// Arrange
	svc := newTestService(t, &fakeProvider{}, &spyNotifier{})
	msg := newsletterMessage()
	msg.IsDraft = true

	// Act
	result := svc.Extract(context.Background(), msg)

	// Assert
	assert.Equal(t, enum.ConditionErrored, result.Condition)
	assert.False(t, result.HasLinks)
	assert.Empty(t, result.Links)
}

func TestExtract_NoContentErrored(t *testing.T) {
	// Arrange
	svc := newTestService(t, &fakeProvider{}, &spyNotifier{})
	msg := &models.Message{ID: "msg-2", Category: "Inbox"}

	// Act
	result := svc.Extract(context.Background(), msg)

	// Assert
	assert.Equal(t, enum.ConditionErrored, result.Condition)
	assert.False(t, result.HasLinks)
}

func TestExtract_NoLinksDisabled(t *testing.T) {
	// Arrange
	svc := newTestService(t, &fakeProvider{}, &spyNotifier{})
	msg := &models.Message{
		ID:       "msg-3",
		Category: "Inbox",
		Headers:  map[string]string{"Subject": "hello"},
		BodyHTML: `<p>Read our latest <a href="https://example.com/a">article</a> today.</p>`,
	}

	// Act
	result := svc.Extract(context.Background(), msg)

	// Assert
	assert.Equal(t, enum.ConditionDisabled, result.Condition)
	assert.False(t, result.HasLinks)

	_, ok := result.PrimaryAction()
	assert.False(t, ok)
}

func TestExtract_ForwardedSubject(t *testing.T) {
	tests := []struct {
		subject   string
		forwarded bool
	}{
		{"Fwd: Weekly digest", true},
		{"FW: Weekly digest", true},
		{"fw[2]: Weekly digest", true},
		{"Weekly digest", false},
		{"Forward planning", false},
	}

	svc := newTestService(t, &fakeProvider{}, &spyNotifier{})

	for _, tt := range tests {
		t.Run(tt.subject, func(t *testing.T) {
			// Arrange
			msg := newsletterMessage()
			msg.Subject = tt.subject

			// Act
			result := svc.Extract(context.Background(), msg)

			// Assert
			assert.Equal(t, tt.forwarded, result.IsForwarded)
			if tt.forwarded {
				assert.Equal(t, confirmTextForwarded, result.ConfirmText)
			} else {
				assert.Equal(t, confirmText, result.ConfirmText)
			}
		})
	}
}

func TestExtract_Idempotent(t *testing.T) {
	// Arrange
	svc := newTestService(t, &fakeProvider{}, &spyNotifier{})
	msg := newsletterMessage()

	// Act
	first := svc.Extract(context.Background(), msg)
	second := svc.Extract(context.Background(), msg)

	// Assert
	assert.Equal(t, first, second)
}

func TestExtract_HasLinksMatchesLinkCount(t *testing.T) {
	// Arrange
	svc := newTestService(t, &fakeProvider{}, &spyNotifier{})
	messages := []*models.Message{
		newsletterMessage(),
		{ID: "empty", Category: "Inbox", Headers: map[string]string{"X": "y"}},
		{ID: "sent", Category: "Sent Mail"},
	}

	for _, msg := range messages {
		// Act
		result := svc.Extract(context.Background(), msg)

		// Assert
		assert.Equal(t, len(result.Links) > 0, result.HasLinks, "message %s", msg.ID)
		if !result.HasLinks {
			_, ok := result.PrimaryAction()
			assert.False(t, ok)
		}
	}
}

func TestExtractByID_SentMailDisabled(t *testing.T) {
	// Arrange
	notifier := &spyNotifier{}
	provider := &fakeProvider{err: apperrors.ErrSentMailNotApplicable}
	svc := newTestService(t, provider, notifier)

	// Act
	msg, result := svc.ExtractByID(context.Background(), "mbx-1", "msg-9")

	// Assert
	assert.Nil(t, msg)
	assert.Equal(t, enum.ConditionDisabled, result.Condition)
	require.Len(t, notifier.conditions, 1)
	assert.Equal(t, enum.ConditionDisabled, notifier.conditions[0])
}

func TestExtractByID_FetchFailureErrored(t *testing.T) {
	// Arrange
	provider := &fakeProvider{err: apperrors.ErrConnectionTimeout}
	svc := newTestService(t, provider, &spyNotifier{})

	// Act
	msg, result := svc.ExtractByID(context.Background(), "mbx-1", "msg-9")

	// Assert
	assert.Nil(t, msg)
	assert.Equal(t, enum.ConditionErrored, result.Condition)
	assert.False(t, result.HasLinks)
}

func TestExtractByID_DelegatesToExtract(t *testing.T) {
	// Arrange
	provider := &fakeProvider{msg: newsletterMessage()}
	svc := newTestService(t, provider, &spyNotifier{})

	// Act
	msg, result := svc.ExtractByID(context.Background(), "mbx-1", "msg-1")

	// Assert
	require.NotNil(t, msg)
	assert.Equal(t, enum.ConditionDone, result.Condition)
	assert.True(t, result.HasLinks)
}
