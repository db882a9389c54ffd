package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/alsyedgraphics/printshop-api/internal/domain/entity"
	domainRepo "github.com/alsyedgraphics/printshop-api/internal/domain/repository"
	"github.com/alsyedgraphics/printshop-api/pkg/apperror"
)

type invoiceRepository struct {
	db *gorm.DB
}

// NewInvoiceRepository creates a new invoice repository
func NewInvoiceRepository(db *gorm.DB) domainRepo.InvoiceRepository {
	return &invoiceRepository{db: db}
}

func (r *invoiceRepository) Create(ctx context.Context, invoice *entity.Invoice) error {
	// The item sequence is inserted in the same transaction via the
	// association; a failure leaves no partial invoice behind
	return r.db.WithContext(ctx).Create(invoice).Error
}

func (r *invoiceRepository) GetByInvoiceNumber(ctx context.Context, invoiceNumber string) (*entity.Invoice, error) {
	var invoice entity.Invoice
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		First(&invoice, "invoice_number = ?", invoiceNumber).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &invoice, err
}

func (r *invoiceRepository) Delete(ctx context.Context, invoiceNumber string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var invoice entity.Invoice
		if err := tx.First(&invoice, "invoice_number = ?", invoiceNumber).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperror.NewNotFoundError("Invoice")
			}
			return err
		}
		if err := tx.Delete(&entity.InvoiceItem{}, "invoice_id = ?", invoice.ID).Error; err != nil {
			return err
		}
		if err := tx.Delete(&entity.Payment{}, "invoice_id = ?", invoice.ID).Error; err != nil {
			return err
		}
		return tx.Delete(&invoice).Error
	})
}

func (r *invoiceRepository) List(ctx context.Context, params *domainRepo.InvoiceFilterParams) ([]entity.Invoice, int64, error) {
	var invoices []entity.Invoice
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Invoice{})

	if params.Search != "" {
		query = query.Where("customer_name ILIKE ? OR contact ILIKE ? OR invoice_number ILIKE ?",
			"%"+params.Search+"%", "%"+params.Search+"%", "%"+params.Search+"%")
	}
	if params.OpenOnly {
		query = query.Where("remaining_balance > 0")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Order("created_at DESC").
		Find(&invoices).Error

	return invoices, total, err
}

func (r *invoiceRepository) ListAll(ctx context.Context) ([]entity.Invoice, error) {
	var invoices []entity.Invoice
	err := r.db.WithContext(ctx).Order("created_at ASC").Find(&invoices).Error
	return invoices, err
}

func (r *invoiceRepository) ListInvoiceNumbers(ctx context.Context) ([]string, error) {
	var numbers []string
	err := r.db.WithContext(ctx).Model(&entity.Invoice{}).
		Pluck("invoice_number", &numbers).Error
	return numbers, err
}

// ApplyPayment decrements the remaining balance with a conditional UPDATE so
// the check against the stored balance and the decrement are one atomic
// statement. A concurrent payment that would jointly overpay loses the race
// and is rejected. The payment event is logged in the same transaction.
func (r *invoiceRepository) ApplyPayment(ctx context.Context, invoiceNumber string, amount float64) (*entity.Invoice, error) {
	var updated *entity.Invoice

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&entity.Invoice{}).
			Where("invoice_number = ? AND remaining_balance >= ?", invoiceNumber, amount).
			Update("remaining_balance", gorm.Expr("remaining_balance - ?", amount))
		if res.Error != nil {
			return res.Error
		}

		if res.RowsAffected == 0 {
			// Distinguish a missing invoice from a stale-balance rejection
			var exists int64
			if err := tx.Model(&entity.Invoice{}).
				Where("invoice_number = ?", invoiceNumber).
				Count(&exists).Error; err != nil {
				return err
			}
			if exists == 0 {
				return apperror.NewNotFoundError("Invoice")
			}
			return apperror.NewValidationError("Payment amount cannot exceed the remaining balance")
		}

		var invoice entity.Invoice
		if err := tx.
			Preload("Items", func(db *gorm.DB) *gorm.DB {
				return db.Order("position ASC")
			}).
			First(&invoice, "invoice_number = ?", invoiceNumber).Error; err != nil {
			return err
		}

		payment := entity.Payment{
			InvoiceID:     invoice.ID,
			InvoiceNumber: invoice.InvoiceNumber,
			Amount:        amount,
			RecordedAt:    time.Now(),
		}
		if err := tx.Create(&payment).Error; err != nil {
			return err
		}

		updated = &invoice
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

type paymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository creates a new payment repository
func NewPaymentRepository(db *gorm.DB) domainRepo.PaymentRepository {
	return &paymentRepository{db: db}
}

func (r *paymentRepository) ListByInvoiceNumber(ctx context.Context, invoiceNumber string) ([]entity.Payment, error) {
	var payments []entity.Payment
	err := r.db.WithContext(ctx).
		Where("invoice_number = ?", invoiceNumber).
		Order("recorded_at ASC").
		Find(&payments).Error
	return payments, err
}
