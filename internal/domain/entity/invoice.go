package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/alsyedgraphics/printshop-api/internal/domain/enum"
)

// Invoice represents a saved invoice. Totals are computed once at save time;
// RemainingBalance is the only field mutated afterwards, exclusively through
// payment application.
type Invoice struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	InvoiceNumber  string    `gorm:"size:50;uniqueIndex;not null" json:"invoice_number"`
	CustomerName   string    `gorm:"size:255;not null" json:"customer_name"`
	Contact        string    `gorm:"size:50" json:"contact"`
	Date           time.Time `gorm:"type:date;not null" json:"date"`
	SubTotal       float64   `gorm:"type:numeric;not null" json:"sub_total"`
	Discount       float64   `gorm:"type:numeric;not null;default:0" json:"discount"`
	TotalAmount    float64   `gorm:"type:numeric;not null" json:"total_amount"`
	PaidAtCreation float64   `gorm:"type:numeric;not null;default:0" json:"paid_at_creation"`
	// May start negative when overpaid at creation; only payment application
	// enforces the non-overpayment invariant.
	RemainingBalance float64   `gorm:"type:numeric;not null" json:"remaining_balance"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`

	// Relationships
	Items    []InvoiceItem `gorm:"foreignKey:InvoiceID" json:"items,omitempty"`
	Payments []Payment     `gorm:"foreignKey:InvoiceID" json:"-"`
}

// Status derives the invoice state from the remaining balance
func (i *Invoice) Status() enum.InvoiceStatus {
	return enum.StatusForBalance(i.RemainingBalance)
}

// MarshalJSON adds the derived status to API responses
func (i Invoice) MarshalJSON() ([]byte, error) {
	type Alias Invoice
	return json.Marshal(&struct {
		Alias
		Status enum.InvoiceStatus `json:"status"`
	}{
		Alias:  Alias(i),
		Status: i.Status(),
	})
}

// BeforeCreate generates a UUID before creating a new invoice
func (i *Invoice) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Invoice model
func (Invoice) TableName() string {
	return "invoices"
}

// InvoiceItem represents a single priced line on an invoice. Items are
// immutable once appended: corrections are remove-then-reappend, never an
// in-place edit.
type InvoiceItem struct {
	ID          uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	InvoiceID   uuid.UUID        `gorm:"type:uuid;not null;index" json:"invoice_id"`
	Position    int              `gorm:"not null" json:"position"`
	ProductType enum.ProductType `gorm:"not null" json:"product_type"`
	Width       *float64         `gorm:"type:numeric" json:"width,omitempty"`
	Height      *float64         `gorm:"type:numeric" json:"height,omitempty"`
	TotalFeet   *float64         `gorm:"type:numeric" json:"total_feet,omitempty"`
	Rate        *float64         `gorm:"type:numeric" json:"rate,omitempty"`
	Quantity    int              `gorm:"not null" json:"quantity"`
	Amount      float64          `gorm:"type:numeric;not null" json:"amount"`
	CreatedAt   time.Time        `json:"created_at"`

	// Relationships
	Invoice Invoice `gorm:"foreignKey:InvoiceID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new invoice item
func (it *InvoiceItem) BeforeCreate(tx *gorm.DB) error {
	if it.ID == uuid.Nil {
		it.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the InvoiceItem model
func (InvoiceItem) TableName() string {
	return "invoice_items"
}
