package interfaces

import (
	"context"
	"time"

	"github.com/customeros/unsublink/internal/models"
)

type ExtractionRecordRepository interface {
	Create(ctx context.Context, record *models.ExtractionRecord) (string, error)
	GetByID(ctx context.Context, id string) (*models.ExtractionRecord, error)
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}
