package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Payment is an append-only record of a single payment applied against an
// invoice. The invoice's remaining balance stays the source of truth for the
// outstanding debt; payments exist for the audit trail.
type Payment struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	InvoiceID     uuid.UUID `gorm:"type:uuid;not null;index" json:"invoice_id"`
	InvoiceNumber string    `gorm:"size:50;not null;index" json:"invoice_number"`
	Amount        float64   `gorm:"type:numeric;not null" json:"amount"`
	RecordedAt    time.Time `gorm:"not null" json:"recorded_at"`
	CreatedAt     time.Time `json:"created_at"`
}

// BeforeCreate generates a UUID before creating a new payment
func (p *Payment) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Payment model
func (Payment) TableName() string {
	return "payments"
}
