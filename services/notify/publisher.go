package notify

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/opentracing/opentracing-go"
	"github.com/pkg/errors"
	"github.com/rabbitmq/amqp091-go"

	"github.com/customeros/unsublink/dto"
	"github.com/customeros/unsublink/interfaces"
	"github.com/customeros/unsublink/internal/enum"
	"github.com/customeros/unsublink/internal/logger"
	"github.com/customeros/unsublink/internal/tracing"
	"github.com/customeros/unsublink/internal/utils"
)

const (
	ExchangeExtractionNotifications = "unsublink-notifications"

	publishTimeout = 5 * time.Second
)

// RabbitMQNotifier publishes extraction condition changes on a fanout
// exchange. Publishing is best effort: failures are logged and traced but
// never surfaced to the pipeline.
type RabbitMQNotifier struct {
	connection     *amqp091.Connection
	publishChannel *amqp091.Channel
	publishMutex   sync.Mutex
	logger         logger.Logger
}

func NewRabbitMQNotifier(rabbitmqURL string, logger logger.Logger) (*RabbitMQNotifier, error) {
	connection, err := amqp091.Dial(rabbitmqURL)
	if err != nil {
		return nil, errors.Wrap(err, "Failed to connect to RabbitMQ")
	}

	channel, err := connection.Channel()
	if err != nil {
		connection.Close()
		return nil, errors.Wrap(err, "Failed to open publish channel")
	}

	err = channel.ExchangeDeclare(
		ExchangeExtractionNotifications,
		"fanout",
		true,  // durable
		false, // auto-deleted
		false, // internal
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		channel.Close()
		connection.Close()
		return nil, errors.Wrap(err, "Failed to declare notifications exchange")
	}

	return &RabbitMQNotifier{
		connection:     connection,
		publishChannel: channel,
		logger:         logger,
	}, nil
}

func (r *RabbitMQNotifier) NotifyConditionChange(ctx context.Context, messageID string, condition enum.ExtractionCondition) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "RabbitMQNotifier.NotifyConditionChange")
	defer span.Finish()
	tracing.TagMessage(span, messageID)
	span.SetTag(tracing.SpanTagCondition, condition.String())

	event := dto.ExtractionConditionChanged{
		MessageID:  messageID,
		Condition:  condition,
		OccurredAt: utils.Now(),
	}

	payload, err := json.Marshal(event)
	if err != nil {
		tracing.TraceErr(span, err)
		r.logger.Errorf("Failed to marshal condition change event: %v", err)
		return
	}

	publishCtx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	r.publishMutex.Lock()
	defer r.publishMutex.Unlock()

	err = r.publishChannel.PublishWithContext(
		publishCtx,
		ExchangeExtractionNotifications,
		"",    // routing key, ignored by fanout
		false, // mandatory
		false, // immediate
		amqp091.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp091.Persistent,
			Timestamp:    time.Now(),
			Body:         payload,
		},
	)
	if err != nil {
		tracing.TraceErr(span, err)
		r.logger.Errorf("Failed to publish condition change for %s: %v", messageID, err)
	}
}

func (r *RabbitMQNotifier) Close() {
	if r.publishChannel != nil {
		r.publishChannel.Close()
	}
	if r.connection != nil {
		r.connection.Close()
	}
}

// NoopNotifier is used when no broker is configured.
type NoopNotifier struct{}

func NewNoopNotifier() interfaces.ConditionNotifier {
	return &NoopNotifier{}
}

func (n *NoopNotifier) NotifyConditionChange(ctx context.Context, messageID string, condition enum.ExtractionCondition) {
}
