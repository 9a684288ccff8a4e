package actions

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/opentracing/opentracing-go"
	"github.com/pkg/errors"

	"github.com/customeros/unsublink/interfaces"
	"github.com/customeros/unsublink/internal/enum"
	apperrors "github.com/customeros/unsublink/internal/errors"
	"github.com/customeros/unsublink/internal/logger"
	"github.com/customeros/unsublink/internal/models"
	"github.com/customeros/unsublink/internal/tracing"
)

const (
	unsubscribeSubject = "Unsubscribe"
	unsubscribeBody    = "Please remove this address from your mailing list."

	browserRequestTimeout = 15 * time.Second
)

type actionService struct {
	log       logger.Logger
	mailer    interfaces.MailSender
	blacklist interfaces.BlacklistService
	client    *http.Client
}

// NewActionService wires the collaborators that perform unsubscribe actions.
// Email actions go out through the mailer; browser actions are requested
// in-process unless the blacklist routes the site to a real browser.
func NewActionService(log logger.Logger, mailer interfaces.MailSender, blacklist interfaces.BlacklistService) interfaces.ActionService {
	return &actionService{
		log:       log,
		mailer:    mailer,
		blacklist: blacklist,
		client:    &http.Client{Timeout: browserRequestTimeout},
	}
}

func (s *actionService) ExecutePrimary(ctx context.Context, result *models.ExtractionResult) (*models.ActionOutcome, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "actionService.ExecutePrimary")
	defer span.Finish()
	tracing.SetDefaultServiceSpanTags(ctx, span)

	primary, ok := result.PrimaryAction()
	if !ok {
		tracing.TraceErr(span, apperrors.ErrNoPrimaryAction)
		return nil, apperrors.ErrNoPrimaryAction
	}
	span.SetTag("action_type", primary.ActionType.String())

	switch primary.ActionType {
	case enum.ActionEmail:
		return s.executeEmail(ctx, primary)
	case enum.ActionBrowser:
		return s.executeBrowser(ctx, primary)
	default:
		err := errors.Errorf("unknown action type %s", primary.ActionType)
		tracing.TraceErr(span, err)
		return nil, err
	}
}

func (s *actionService) executeEmail(ctx context.Context, link models.ClassifiedLink) (*models.ActionOutcome, error) {
	err := s.mailer.SendUnsubscribeEmail(ctx, link.Target, unsubscribeSubject, unsubscribeBody)
	if err != nil {
		return nil, err
	}
	return &models.ActionOutcome{
		ActionType: enum.ActionEmail,
		Target:     link.Target,
		Performed:  true,
	}, nil
}

func (s *actionService) executeBrowser(ctx context.Context, link models.ClassifiedLink) (*models.ActionOutcome, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "actionService.executeBrowser")
	defer span.Finish()
	tracing.SetDefaultServiceSpanTags(ctx, span)

	// Sites on the browser blacklist break outside a full browser; hand the
	// URL back instead of requesting it ourselves.
	if s.blacklist.RequiresDefaultBrowser(link.Target) {
		span.SetTag("route", enum.BrowserRouteDefault.String())
		return &models.ActionOutcome{
			ActionType: enum.ActionBrowser,
			Target:     link.Target,
			Performed:  false,
			Route:      enum.BrowserRouteDefault,
		}, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, link.Target, nil)
	if err != nil {
		tracing.TraceErr(span, err)
		return nil, errors.Wrap(err, "build unsubscribe request")
	}

	resp, err := s.client.Do(req)
	if err != nil {
		tracing.TraceErr(span, err)
		return nil, errors.Wrap(err, "request unsubscribe link")
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		err = fmt.Errorf("unsubscribe link returned status %d", resp.StatusCode)
		tracing.TraceErr(span, err)
		return nil, err
	}

	span.SetTag("route", enum.BrowserRouteEmbedded.String())
	return &models.ActionOutcome{
		ActionType: enum.ActionBrowser,
		Target:     link.Target,
		Performed:  true,
		Route:      enum.BrowserRouteEmbedded,
	}, nil
}
