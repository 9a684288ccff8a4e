package models

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/customeros/unsublink/internal/enum"
	"github.com/customeros/unsublink/internal/utils"
)

// ExtractionRecord is the persisted audit trail of one extraction performed
// through the API. The core pipeline itself never writes these.
type ExtractionRecord struct {
	ID        string `gorm:"column:id;type:varchar(50);primaryKey"`
	MessageID string `gorm:"column:message_id;type:varchar(255);index"`
	MailboxID string `gorm:"column:mailbox_id;type:varchar(50);index"`

	Subject      string  `gorm:"column:subject;type:varchar(500)"`
	SenderDomain string  `gorm:"column:sender_domain;type:varchar(255);index"`
	Headers      JSONMap `gorm:"column:headers;type:jsonb"`

	Condition   enum.ExtractionCondition `gorm:"column:condition;type:varchar(20);index;not null"`
	HasLinks    bool                     `gorm:"column:has_links;default:false"`
	Links       pq.StringArray           `gorm:"column:links;type:text[]"`
	IsForwarded bool                     `gorm:"column:is_forwarded;default:false"`

	PrimaryTarget string          `gorm:"column:primary_target;type:text"`
	PrimaryAction enum.ActionType `gorm:"column:primary_action;type:varchar(20)"`

	CreatedAt time.Time `gorm:"column:created_at;type:timestamp;default:current_timestamp;index"`
}

func (ExtractionRecord) TableName() string {
	return "extraction_records"
}

func (r *ExtractionRecord) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = utils.GenerateNanoIdWithPrefix("extr", 24)
	}
	r.CreatedAt = utils.Now()
	return nil
}

// NewExtractionRecord flattens an ExtractionResult for storage.
func NewExtractionRecord(msg *Message, result *ExtractionResult) *ExtractionRecord {
	record := &ExtractionRecord{
		MessageID:    msg.ID,
		MailboxID:    msg.MailboxID,
		Subject:      utils.NormalizeSubject(msg.Subject),
		SenderDomain: utils.ExtractDomainFromEmail(msg.From),
		Condition:    result.Condition,
		HasLinks:     result.HasLinks,
		IsForwarded:  result.IsForwarded,
	}
	if len(msg.Headers) > 0 {
		record.Headers = make(JSONMap, len(msg.Headers))
		for k, v := range msg.Headers {
			record.Headers[k] = v
		}
	}
	for _, link := range result.Links {
		record.Links = append(record.Links, link.ActionType.String()+":"+link.Target)
	}
	if primary, ok := result.PrimaryAction(); ok {
		record.PrimaryTarget = primary.Target
		record.PrimaryAction = primary.ActionType
	}
	return record
}
