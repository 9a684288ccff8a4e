package extractor

import (
	"context"

	"github.com/opentracing/opentracing-go"
	"github.com/pkg/errors"

	"github.com/customeros/unsublink/interfaces"
	"github.com/customeros/unsublink/internal/enum"
	apperrors "github.com/customeros/unsublink/internal/errors"
	"github.com/customeros/unsublink/internal/logger"
	"github.com/customeros/unsublink/internal/models"
	"github.com/customeros/unsublink/internal/tracing"
	"github.com/customeros/unsublink/internal/utils"
)

const (
	confirmText          = "Are you sure you want to unsubscribe from this mailing list?"
	confirmTextForwarded = "This message was forwarded to you. Unsubscribing may cancel the original recipient's subscription. Continue?"
)

type extractionService struct {
	log        logger.Logger
	provider   interfaces.MessageProvider
	notifier   interfaces.ConditionNotifier
	header     *HeaderLinkExtractor
	body       *BodyLinkExtractor
	classifier *LinkClassifier
}

// NewExtractionService wires the extraction pipeline. The notifier may be
// nil when nothing subscribes to condition changes.
func NewExtractionService(
	log logger.Logger,
	blacklist interfaces.BlacklistService,
	provider interfaces.MessageProvider,
	notifier interfaces.ConditionNotifier,
) interfaces.ExtractionService {
	return &extractionService{
		log:        log,
		provider:   provider,
		notifier:   notifier,
		header:     NewHeaderLinkExtractor(blacklist),
		body:       NewBodyLinkExtractor(),
		classifier: NewLinkClassifier(),
	}
}

func (s *extractionService) Extract(ctx context.Context, msg *models.Message) *models.ExtractionResult {
	span, ctx := opentracing.StartSpanFromContext(ctx, "extractionService.Extract")
	defer span.Finish()
	tracing.SetDefaultServiceSpanTags(ctx, span)
	tracing.TagMessage(span, msg.ID)
	tracing.TagMailbox(span, msg.MailboxID)

	result := &models.ExtractionResult{Condition: enum.ConditionLoading}

	// Outgoing mail is never a candidate for unsubscription; bail out before
	// any parsing.
	if msg.IsSentMail() {
		return s.finish(ctx, msg.ID, result, enum.ConditionDisabled)
	}
	if msg.IsDraft {
		tracing.TraceErr(span, apperrors.ErrDraftNotSupported)
		return s.finish(ctx, msg.ID, result, enum.ConditionErrored)
	}
	if !msg.HasContent() {
		tracing.TraceErr(span, apperrors.ErrNoMessageContent)
		return s.finish(ctx, msg.ID, result, enum.ConditionErrored)
	}

	result.IsForwarded = utils.IsForwardedSubject(msg.Subject)
	if result.IsForwarded {
		result.ConfirmText = confirmTextForwarded
	} else {
		result.ConfirmText = confirmText
	}

	candidates := s.header.Extract(msg.Header(models.HeaderListUnsubscribe))

	bodyCandidates, err := s.body.Extract(msg.BodyHTML)
	if err != nil {
		tracing.TraceErr(span, err)
		s.log.Errorf("failed to parse message body for %s: %v", msg.ID, err)
		return s.finish(ctx, msg.ID, result, enum.ConditionErrored)
	}
	candidates = append(candidates, bodyCandidates...)

	classification := s.classifier.Classify(candidates)
	result.Links = classification.Links
	result.HasLinks = len(result.Links) > 0
	span.LogKV("result.links", len(result.Links), "result.hasEmailAction", classification.HasEmail)

	if result.HasLinks {
		return s.finish(ctx, msg.ID, result, enum.ConditionDone)
	}
	return s.finish(ctx, msg.ID, result, enum.ConditionDisabled)
}

func (s *extractionService) ExtractByID(ctx context.Context, mailboxID, messageID string) (*models.Message, *models.ExtractionResult) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "extractionService.ExtractByID")
	defer span.Finish()
	tracing.SetDefaultServiceSpanTags(ctx, span)
	tracing.TagMessage(span, messageID)
	tracing.TagMailbox(span, mailboxID)

	msg, err := s.provider.FetchMessage(ctx, mailboxID, messageID)
	if err != nil {
		result := &models.ExtractionResult{Condition: enum.ConditionLoading}
		switch {
		case errors.Is(err, apperrors.ErrSentMailNotApplicable):
			return nil, s.finish(ctx, messageID, result, enum.ConditionDisabled)
		default:
			// draft, missing content or a fetch failure; the cause stays in
			// the trace only
			tracing.TraceErr(span, err)
			s.log.Errorf("failed to fetch message %s: %v", messageID, err)
			return nil, s.finish(ctx, messageID, result, enum.ConditionErrored)
		}
	}

	return msg, s.Extract(ctx, msg)
}

// finish moves the result to its terminal condition and fires the one-shot
// notification. Results are immutable afterwards.
func (s *extractionService) finish(ctx context.Context, messageID string, result *models.ExtractionResult, condition enum.ExtractionCondition) *models.ExtractionResult {
	result.Condition = condition
	if s.notifier != nil {
		s.notifier.NotifyConditionChange(ctx, messageID, condition)
	}
	return result
}
