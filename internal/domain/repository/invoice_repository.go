package repository

import (
	"context"

	"github.com/alsyedgraphics/printshop-api/internal/domain/entity"
	"github.com/alsyedgraphics/printshop-api/pkg/pagination"
)

// InvoiceFilterParams holds filtering options for invoice listings
type InvoiceFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
	// OpenOnly restricts the listing to invoices with a positive balance
	OpenOnly bool
}

// InvoiceRepository defines the interface for invoice data operations
type InvoiceRepository interface {
	// Create persists the invoice together with its item sequence
	Create(ctx context.Context, invoice *entity.Invoice) error
	GetByInvoiceNumber(ctx context.Context, invoiceNumber string) (*entity.Invoice, error)
	Delete(ctx context.Context, invoiceNumber string) error
	// List returns invoices with their items, filtered and paginated
	List(ctx context.Context, params *InvoiceFilterParams) ([]entity.Invoice, int64, error)
	// ListAll returns every invoice without items, for aggregation
	ListAll(ctx context.Context) ([]entity.Invoice, error)
	// ListInvoiceNumbers returns all existing invoice numbers
	ListInvoiceNumbers(ctx context.Context) ([]string, error)
	// ApplyPayment atomically decrements the remaining balance and records
	// the payment event. The decrement is conditional on the stored balance
	// still covering the amount, so two racing payments cannot jointly
	// overpay. Returns the updated invoice.
	ApplyPayment(ctx context.Context, invoiceNumber string, amount float64) (*entity.Invoice, error)
}

// PaymentRepository defines the interface for the append-only payment log
type PaymentRepository interface {
	ListByInvoiceNumber(ctx context.Context, invoiceNumber string) ([]entity.Payment, error)
}
