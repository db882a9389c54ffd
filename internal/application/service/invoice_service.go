package service

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/alsyedgraphics/printshop-api/internal/domain/billing"
	"github.com/alsyedgraphics/printshop-api/internal/domain/entity"
	"github.com/alsyedgraphics/printshop-api/internal/domain/enum"
	"github.com/alsyedgraphics/printshop-api/internal/domain/repository"
	"github.com/alsyedgraphics/printshop-api/pkg/apperror"
	"github.com/alsyedgraphics/printshop-api/pkg/pagination"
)

// InvoiceService handles invoice creation, listing and payment application
type InvoiceService struct {
	invoiceRepo repository.InvoiceRepository
	paymentRepo repository.PaymentRepository
}

// NewInvoiceService creates a new invoice service
func NewInvoiceService(invoiceRepo repository.InvoiceRepository, paymentRepo repository.PaymentRepository) *InvoiceService {
	return &InvoiceService{
		invoiceRepo: invoiceRepo,
		paymentRepo: paymentRepo,
	}
}

// InvoiceItemInput is one line of the invoice draft: a product selection
// plus the raw form inputs to price it from
type InvoiceItemInput struct {
	ProductType string
	Form        billing.ItemForm
}

// CreateInvoiceInput represents the create invoice input
type CreateInvoiceInput struct {
	CustomerName string
	Contact      string
	// InvoiceNumber, when set, is a manual override and is used verbatim;
	// when empty the next sequential number is generated
	InvoiceNumber string
	Date          time.Time
	Items         []InvoiceItemInput
	Discount      float64
	Paid          float64
}

// CreateInvoice prices the draft items, derives the totals and persists the
// invoice under the next sequential number. Totals are always recomputed
// here from the item sequence; client-sent totals are never trusted.
func (s *InvoiceService) CreateInvoice(ctx context.Context, input *CreateInvoiceInput) (*entity.Invoice, error) {
	if strings.TrimSpace(input.CustomerName) == "" {
		return nil, apperror.NewValidationError("Customer name is required")
	}

	draft := billing.Draft{
		CustomerName:  input.CustomerName,
		Contact:       input.Contact,
		InvoiceNumber: input.InvoiceNumber,
		Date:          input.Date,
		Discount:      input.Discount,
		Paid:          input.Paid,
	}
	for _, itemInput := range input.Items {
		product, err := enum.ParseProductType(itemInput.ProductType)
		if err != nil {
			return nil, apperror.NewValidationError(err.Error())
		}
		if err := draft.AddItem(product, itemInput.Form); err != nil {
			return nil, err
		}
	}

	invoiceNumber := draft.InvoiceNumber
	if invoiceNumber == "" {
		invoiceNumber = s.nextInvoiceNumber(ctx)
	}

	existing, err := s.invoiceRepo.GetByInvoiceNumber(ctx, invoiceNumber)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("An invoice with this number already exists")
	}

	totals := draft.Totals()
	invoice := &entity.Invoice{
		InvoiceNumber:    invoiceNumber,
		CustomerName:     draft.CustomerName,
		Contact:          draft.Contact,
		Date:             draft.Date,
		SubTotal:         totals.SubTotal,
		Discount:         draft.Discount,
		TotalAmount:      totals.TotalAmount,
		PaidAtCreation:   draft.Paid,
		RemainingBalance: totals.RemainingBalance,
		Items:            draft.Items,
	}

	if err := s.invoiceRepo.Create(ctx, invoice); err != nil {
		return nil, err
	}

	return invoice, nil
}

// nextInvoiceNumber derives the next sequential number from the stored
// collection. When the collection cannot be listed, invoice creation still
// proceeds under the fixed fallback number rather than blocking; the unique
// index catches the duplicate if two failures race.
func (s *InvoiceService) nextInvoiceNumber(ctx context.Context) string {
	numbers, err := s.invoiceRepo.ListInvoiceNumbers(ctx)
	if err != nil {
		log.Printf("Warning: could not list invoice numbers, falling back to %s: %v",
			billing.FallbackInvoiceNumber, err)
		return billing.FallbackInvoiceNumber
	}
	return billing.NextInvoiceNumber(numbers)
}

// GetInvoice retrieves an invoice by its number
func (s *InvoiceService) GetInvoice(ctx context.Context, invoiceNumber string) (*entity.Invoice, error) {
	invoice, err := s.invoiceRepo.GetByInvoiceNumber(ctx, invoiceNumber)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, apperror.NewNotFoundError("Invoice")
	}
	return invoice, nil
}

// ListInvoices lists invoices with filtering and pagination
func (s *InvoiceService) ListInvoices(ctx context.Context, params *repository.InvoiceFilterParams) (*pagination.PaginatedResult[entity.Invoice], error) {
	invoices, total, err := s.invoiceRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(invoices, pag), nil
}

// ApplyPayment applies a payment against an invoice's remaining balance.
// The amount must be positive and must not exceed the balance; a violation
// rejects the payment without touching the invoice. The repository applies
// the decrement atomically, so a concurrent payment racing past this check
// is still rejected at the persistence boundary.
func (s *InvoiceService) ApplyPayment(ctx context.Context, invoiceNumber string, amount float64) (*entity.Invoice, error) {
	invoice, err := s.invoiceRepo.GetByInvoiceNumber(ctx, invoiceNumber)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, apperror.NewNotFoundError("Invoice")
	}

	if err := billing.ValidatePayment(amount, invoice.RemainingBalance); err != nil {
		return nil, err
	}

	return s.invoiceRepo.ApplyPayment(ctx, invoiceNumber, amount)
}

// ListPayments returns the payment history of an invoice, oldest first
func (s *InvoiceService) ListPayments(ctx context.Context, invoiceNumber string) ([]entity.Payment, error) {
	invoice, err := s.invoiceRepo.GetByInvoiceNumber(ctx, invoiceNumber)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, apperror.NewNotFoundError("Invoice")
	}

	return s.paymentRepo.ListByInvoiceNumber(ctx, invoiceNumber)
}

// DeleteInvoice deletes an invoice and its items by invoice number
func (s *InvoiceService) DeleteInvoice(ctx context.Context, invoiceNumber string) error {
	invoice, err := s.invoiceRepo.GetByInvoiceNumber(ctx, invoiceNumber)
	if err != nil {
		return err
	}
	if invoice == nil {
		return apperror.NewNotFoundError("Invoice")
	}

	return s.invoiceRepo.Delete(ctx, invoiceNumber)
}
