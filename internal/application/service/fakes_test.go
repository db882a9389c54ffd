package service

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/alsyedgraphics/printshop-api/internal/domain/entity"
	domainRepo "github.com/alsyedgraphics/printshop-api/internal/domain/repository"
	"github.com/alsyedgraphics/printshop-api/pkg/apperror"
	"github.com/alsyedgraphics/printshop-api/pkg/pagination"
)

// In-memory repository fakes backing the service tests. ApplyPayment mirrors
// the conditional-update semantics of the real GORM implementation.

type fakeClientRepo struct {
	clients map[string]entity.Client
	err     error
}

func newFakeClientRepo() *fakeClientRepo {
	return &fakeClientRepo{clients: make(map[string]entity.Client)}
}

func (r *fakeClientRepo) Create(ctx context.Context, client *entity.Client) error {
	if r.err != nil {
		return r.err
	}
	r.clients[client.MobileNumber] = *client
	return nil
}

func (r *fakeClientRepo) GetByMobileNumber(ctx context.Context, mobileNumber string) (*entity.Client, error) {
	if r.err != nil {
		return nil, r.err
	}
	client, ok := r.clients[mobileNumber]
	if !ok {
		return nil, nil
	}
	return &client, nil
}

func (r *fakeClientRepo) Update(ctx context.Context, client *entity.Client) error {
	r.clients[client.MobileNumber] = *client
	return nil
}

func (r *fakeClientRepo) Delete(ctx context.Context, mobileNumber string) error {
	delete(r.clients, mobileNumber)
	return nil
}

func (r *fakeClientRepo) List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Client, int64, error) {
	if r.err != nil {
		return nil, 0, r.err
	}
	out := make([]entity.Client, 0, len(r.clients))
	for _, c := range r.clients {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, int64(len(out)), nil
}

func (r *fakeClientRepo) Count(ctx context.Context) (int64, error) {
	if r.err != nil {
		return 0, r.err
	}
	return int64(len(r.clients)), nil
}

type fakeInvoiceRepo struct {
	invoices       map[string]*entity.Invoice
	payments       []entity.Payment
	listNumbersErr error
}

func newFakeInvoiceRepo() *fakeInvoiceRepo {
	return &fakeInvoiceRepo{invoices: make(map[string]*entity.Invoice)}
}

func (r *fakeInvoiceRepo) Create(ctx context.Context, invoice *entity.Invoice) error {
	if _, exists := r.invoices[invoice.InvoiceNumber]; exists {
		return errors.New("duplicate key value violates unique constraint")
	}
	if invoice.ID == uuid.Nil {
		invoice.ID = uuid.New()
	}
	stored := *invoice
	r.invoices[invoice.InvoiceNumber] = &stored
	return nil
}

func (r *fakeInvoiceRepo) GetByInvoiceNumber(ctx context.Context, invoiceNumber string) (*entity.Invoice, error) {
	invoice, ok := r.invoices[invoiceNumber]
	if !ok {
		return nil, nil
	}
	copied := *invoice
	return &copied, nil
}

func (r *fakeInvoiceRepo) Delete(ctx context.Context, invoiceNumber string) error {
	if _, ok := r.invoices[invoiceNumber]; !ok {
		return apperror.NewNotFoundError("Invoice")
	}
	delete(r.invoices, invoiceNumber)
	return nil
}

func (r *fakeInvoiceRepo) List(ctx context.Context, params *domainRepo.InvoiceFilterParams) ([]entity.Invoice, int64, error) {
	all, err := r.ListAll(ctx)
	if err != nil {
		return nil, 0, err
	}
	return all, int64(len(all)), nil
}

func (r *fakeInvoiceRepo) ListAll(ctx context.Context) ([]entity.Invoice, error) {
	out := make([]entity.Invoice, 0, len(r.invoices))
	for _, inv := range r.invoices {
		out = append(out, *inv)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].InvoiceNumber < out[j].InvoiceNumber })
	return out, nil
}

func (r *fakeInvoiceRepo) ListInvoiceNumbers(ctx context.Context) ([]string, error) {
	if r.listNumbersErr != nil {
		return nil, r.listNumbersErr
	}
	numbers := make([]string, 0, len(r.invoices))
	for number := range r.invoices {
		numbers = append(numbers, number)
	}
	sort.Strings(numbers)
	return numbers, nil
}

func (r *fakeInvoiceRepo) ApplyPayment(ctx context.Context, invoiceNumber string, amount float64) (*entity.Invoice, error) {
	invoice, ok := r.invoices[invoiceNumber]
	if !ok {
		return nil, apperror.NewNotFoundError("Invoice")
	}
	if invoice.RemainingBalance < amount {
		return nil, apperror.NewValidationError("Payment amount cannot exceed the remaining balance")
	}
	invoice.RemainingBalance -= amount
	r.payments = append(r.payments, entity.Payment{
		ID:            uuid.New(),
		InvoiceID:     invoice.ID,
		InvoiceNumber: invoiceNumber,
		Amount:        amount,
		RecordedAt:    time.Now(),
	})
	copied := *invoice
	return &copied, nil
}

func (r *fakeInvoiceRepo) ListByInvoiceNumber(ctx context.Context, invoiceNumber string) ([]entity.Payment, error) {
	var out []entity.Payment
	for _, p := range r.payments {
		if p.InvoiceNumber == invoiceNumber {
			out = append(out, p)
		}
	}
	return out, nil
}
