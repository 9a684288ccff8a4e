package repository

import (
	"context"
	"errors"
	"time"

	"github.com/opentracing/opentracing-go"
	"gorm.io/gorm"

	"github.com/customeros/unsublink/interfaces"
	"github.com/customeros/unsublink/internal/models"
	"github.com/customeros/unsublink/internal/tracing"
)

type extractionRecordRepository struct {
	db *gorm.DB
}

func NewExtractionRecordRepository(db *gorm.DB) interfaces.ExtractionRecordRepository {
	return &extractionRecordRepository{
		db: db,
	}
}

func (r *extractionRecordRepository) Create(ctx context.Context, record *models.ExtractionRecord) (string, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "extractionRecordRepository.Create")
	defer span.Finish()
	tracing.TagComponentPostgresRepository(span)

	if record == nil {
		return "", nil
	}

	result := r.db.WithContext(ctx).Create(record)
	if result.Error != nil {
		tracing.TraceErr(span, result.Error)
		return "", result.Error
	}

	return record.ID, nil
}

func (r *extractionRecordRepository) GetByID(ctx context.Context, id string) (*models.ExtractionRecord, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "extractionRecordRepository.GetByID")
	defer span.Finish()
	tracing.TagComponentPostgresRepository(span)

	var record models.ExtractionRecord
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		tracing.TraceErr(span, err)
		return nil, err
	}

	return &record, nil
}

func (r *extractionRecordRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "extractionRecordRepository.DeleteOlderThan")
	defer span.Finish()
	tracing.TagComponentPostgresRepository(span)
	span.SetTag("cutoff", cutoff)

	result := r.db.WithContext(ctx).
		Where("created_at < ?", cutoff).
		Delete(&models.ExtractionRecord{})
	if result.Error != nil {
		tracing.TraceErr(span, result.Error)
		return 0, result.Error
	}

	return result.RowsAffected, nil
}
