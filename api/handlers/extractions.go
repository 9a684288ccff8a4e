package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/customeros/unsublink/internal/models"
	"github.com/customeros/unsublink/internal/repository"
	"github.com/customeros/unsublink/internal/tracing"
	"github.com/customeros/unsublink/services"
)

type ExtractionsHandler struct {
	services     *services.Services
	repositories *repository.Repositories
}

func NewExtractionsHandler(s *services.Services, r *repository.Repositories) *ExtractionsHandler {
	return &ExtractionsHandler{
		services:     s,
		repositories: r,
	}
}

type CreateExtractionRequest struct {
	MailboxID string `json:"mailboxId"`
	MessageID string `json:"messageId"`

	// Inline message content. When headers or a body are provided the message
	// is extracted as-is instead of being fetched.
	Subject  string            `json:"subject"`
	Headers  map[string]string `json:"headers"`
	BodyHTML string            `json:"bodyHtml"`
	Category string            `json:"category"`
	IsDraft  bool              `json:"isDraft"`
}

type ExtractionResponse struct {
	ID     string                   `json:"id"`
	Result *models.ExtractionResult `json:"result"`
}

// Create runs the extraction pipeline over one message and records the
// outcome.
func (h *ExtractionsHandler) Create() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, span := tracing.StartHttpServerTracerSpanWithHeader(c.Request.Context(), "ExtractionsHandler.Create", c.Request.Header)
		defer span.Finish()
		tracing.TagComponentRest(span)

		var request CreateExtractionRequest
		if err := c.ShouldBindJSON(&request); err != nil {
			tracing.TraceErr(span, err)
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		msg := &models.Message{
			ID:        request.MessageID,
			MailboxID: request.MailboxID,
			Subject:   request.Subject,
			Headers:   request.Headers,
			BodyHTML:  request.BodyHTML,
			Category:  request.Category,
			IsDraft:   request.IsDraft,
		}

		var result *models.ExtractionResult
		switch {
		case len(request.Headers) > 0 || request.BodyHTML != "":
			result = h.services.ExtractionService.Extract(ctx, msg)
		case request.MessageID != "":
			fetched, fetchedResult := h.services.ExtractionService.ExtractByID(ctx, request.MailboxID, request.MessageID)
			if fetched != nil {
				msg = fetched
			}
			result = fetchedResult
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": "either message content or a messageId is required"})
			return
		}

		id, err := h.repositories.ExtractionRecordRepository.Create(ctx, models.NewExtractionRecord(msg, result))
		if err != nil {
			tracing.TraceErr(span, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, ExtractionResponse{ID: id, Result: result})
	}
}

// Get returns a previously recorded extraction.
func (h *ExtractionsHandler) Get() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, span := tracing.StartHttpServerTracerSpanWithHeader(c.Request.Context(), "ExtractionsHandler.Get", c.Request.Header)
		defer span.Finish()
		tracing.TagComponentRest(span)

		record, err := h.repositories.ExtractionRecordRepository.GetByID(ctx, c.Param("id"))
		if err != nil {
			tracing.TraceErr(span, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if record == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "extraction not found"})
			return
		}

		c.JSON(http.StatusOK, record)
	}
}

// Execute performs the primary action of a recorded extraction.
func (h *ExtractionsHandler) Execute() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, span := tracing.StartHttpServerTracerSpanWithHeader(c.Request.Context(), "ExtractionsHandler.Execute", c.Request.Header)
		defer span.Finish()
		tracing.TagComponentRest(span)

		record, err := h.repositories.ExtractionRecordRepository.GetByID(ctx, c.Param("id"))
		if err != nil {
			tracing.TraceErr(span, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if record == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "extraction not found"})
			return
		}
		if !record.HasLinks {
			c.JSON(http.StatusConflict, gin.H{"error": "extraction has no primary action"})
			return
		}

		result := &models.ExtractionResult{
			Condition: record.Condition,
			HasLinks:  record.HasLinks,
			Links: []models.ClassifiedLink{
				{Target: record.PrimaryTarget, ActionType: record.PrimaryAction},
			},
		}

		outcome, err := h.services.ActionService.ExecutePrimary(ctx, result)
		if err != nil {
			tracing.TraceErr(span, err)
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, outcome)
	}
}
