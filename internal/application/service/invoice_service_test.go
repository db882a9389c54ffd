package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alsyedgraphics/printshop-api/internal/domain/billing"
	"github.com/alsyedgraphics/printshop-api/internal/domain/enum"
	"github.com/alsyedgraphics/printshop-api/pkg/apperror"
)

func testDate() time.Time {
	return time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
}

func createInput(items ...InvoiceItemInput) *CreateInvoiceInput {
	return &CreateInvoiceInput{
		CustomerName: "Ahmed Raza",
		Contact:      "0300-1234567",
		Date:         testDate(),
		Items:        items,
	}
}

func panaFlexItem() InvoiceItemInput {
	return InvoiceItemInput{
		ProductType: "Pana Flex",
		Form:        billing.ItemForm{Width: "4", Height: "3", Quantity: "2", Rate: "50"},
	}
}

func TestCreateInvoice_PricesItemsAndDerivesTotals(t *testing.T) {
	repo := newFakeInvoiceRepo()
	svc := NewInvoiceService(repo, repo)

	input := createInput(
		panaFlexItem(),
		InvoiceItemInput{ProductType: "Business Card", Form: billing.ItemForm{Quantity: "500", Amount: "800"}},
	)
	input.Discount = 100
	input.Paid = 400

	invoice, err := svc.CreateInvoice(context.Background(), input)
	require.NoError(t, err)

	assert.Equal(t, "INV-001", invoice.InvoiceNumber)
	require.Len(t, invoice.Items, 2)
	assert.Equal(t, enum.ProductPanaFlex, invoice.Items[0].ProductType)
	assert.InDelta(t, 1200, invoice.Items[0].Amount, 1e-9)
	assert.InDelta(t, 2000, invoice.SubTotal, 1e-9)
	assert.InDelta(t, 1900, invoice.TotalAmount, 1e-9)
	assert.InDelta(t, 400, invoice.PaidAtCreation, 1e-9)
	assert.InDelta(t, 1500, invoice.RemainingBalance, 1e-9)
	assert.Equal(t, enum.InvoiceStatusOpen, invoice.Status())
}

func TestCreateInvoice_SequentialNumbering(t *testing.T) {
	repo := newFakeInvoiceRepo()
	svc := NewInvoiceService(repo, repo)
	ctx := context.Background()

	first, err := svc.CreateInvoice(ctx, createInput(panaFlexItem()))
	require.NoError(t, err)
	assert.Equal(t, "INV-001", first.InvoiceNumber)

	second, err := svc.CreateInvoice(ctx, createInput(panaFlexItem()))
	require.NoError(t, err)
	assert.Equal(t, "INV-002", second.InvoiceNumber)
}

func TestCreateInvoice_NumberingSkipsUnparseable(t *testing.T) {
	repo := newFakeInvoiceRepo()
	svc := NewInvoiceService(repo, repo)
	ctx := context.Background()

	for _, number := range []string{"INV-001", "INV-007", "INV-XYZ"} {
		input := createInput(panaFlexItem())
		input.InvoiceNumber = number
		_, err := svc.CreateInvoice(ctx, input)
		require.NoError(t, err)
	}

	invoice, err := svc.CreateInvoice(ctx, createInput(panaFlexItem()))
	require.NoError(t, err)
	assert.Equal(t, "INV-008", invoice.InvoiceNumber)
}

func TestCreateInvoice_FallsBackWhenListingFails(t *testing.T) {
	repo := newFakeInvoiceRepo()
	repo.listNumbersErr = errors.New("connection refused")
	svc := NewInvoiceService(repo, repo)

	invoice, err := svc.CreateInvoice(context.Background(), createInput(panaFlexItem()))
	require.NoError(t, err)
	assert.Equal(t, billing.FallbackInvoiceNumber, invoice.InvoiceNumber)
}

func TestCreateInvoice_ManualOverrideUsedVerbatim(t *testing.T) {
	repo := newFakeInvoiceRepo()
	svc := NewInvoiceService(repo, repo)

	input := createInput(panaFlexItem())
	input.InvoiceNumber = "INV-777"

	invoice, err := svc.CreateInvoice(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, "INV-777", invoice.InvoiceNumber)
}

func TestCreateInvoice_DuplicateNumberRejected(t *testing.T) {
	repo := newFakeInvoiceRepo()
	svc := NewInvoiceService(repo, repo)
	ctx := context.Background()

	input := createInput(panaFlexItem())
	input.InvoiceNumber = "INV-010"
	_, err := svc.CreateInvoice(ctx, input)
	require.NoError(t, err)

	dup := createInput(panaFlexItem())
	dup.InvoiceNumber = "INV-010"
	_, err = svc.CreateInvoice(ctx, dup)
	require.Error(t, err)
	assert.Equal(t, 409, apperror.GetAppError(err).Code)
}

func TestCreateInvoice_RejectsBadItemInput(t *testing.T) {
	repo := newFakeInvoiceRepo()
	svc := NewInvoiceService(repo, repo)
	ctx := context.Background()

	_, err := svc.CreateInvoice(ctx, createInput(InvoiceItemInput{
		ProductType: "Pana Flex",
		Form:        billing.ItemForm{Width: "wide", Height: "3", Quantity: "2", Rate: "50"},
	}))
	require.Error(t, err)
	assert.True(t, apperror.IsValidationError(err))

	_, err = svc.CreateInvoice(ctx, createInput(InvoiceItemInput{
		ProductType: "Hologram",
		Form:        billing.ItemForm{Quantity: "1", Amount: "100"},
	}))
	require.Error(t, err)
	assert.True(t, apperror.IsValidationError(err))

	// Nothing was persisted
	numbers, _ := repo.ListInvoiceNumbers(ctx)
	assert.Empty(t, numbers)
}

func TestCreateInvoice_RequiresCustomerName(t *testing.T) {
	repo := newFakeInvoiceRepo()
	svc := NewInvoiceService(repo, repo)

	input := createInput(panaFlexItem())
	input.CustomerName = "  "
	_, err := svc.CreateInvoice(context.Background(), input)
	require.Error(t, err)
	assert.True(t, apperror.IsValidationError(err))
}

func TestCreateInvoice_OverpaidAtCreationAccepted(t *testing.T) {
	repo := newFakeInvoiceRepo()
	svc := NewInvoiceService(repo, repo)

	input := createInput(InvoiceItemInput{ProductType: "Stamp", Form: billing.ItemForm{Quantity: "1", Amount: "500"}})
	input.Paid = 700

	invoice, err := svc.CreateInvoice(context.Background(), input)
	require.NoError(t, err)
	assert.InDelta(t, -200, invoice.RemainingBalance, 1e-9)
	assert.Equal(t, enum.InvoiceStatusSettled, invoice.Status())
}

func TestApplyPayment_SettlesExactly(t *testing.T) {
	repo := newFakeInvoiceRepo()
	svc := NewInvoiceService(repo, repo)
	ctx := context.Background()

	input := createInput(InvoiceItemInput{ProductType: "Others", Form: billing.ItemForm{Quantity: "1", Amount: "300"}})
	created, err := svc.CreateInvoice(ctx, input)
	require.NoError(t, err)

	updated, err := svc.ApplyPayment(ctx, created.InvoiceNumber, 300)
	require.NoError(t, err)
	assert.InDelta(t, 0, updated.RemainingBalance, 1e-9)
	assert.Equal(t, enum.InvoiceStatusSettled, updated.Status())

	payments, err := svc.ListPayments(ctx, created.InvoiceNumber)
	require.NoError(t, err)
	require.Len(t, payments, 1)
	assert.InDelta(t, 300, payments[0].Amount, 1e-9)
}

func TestApplyPayment_OverpaymentRejected(t *testing.T) {
	repo := newFakeInvoiceRepo()
	svc := NewInvoiceService(repo, repo)
	ctx := context.Background()

	input := createInput(InvoiceItemInput{ProductType: "Others", Form: billing.ItemForm{Quantity: "1", Amount: "300"}})
	created, err := svc.CreateInvoice(ctx, input)
	require.NoError(t, err)

	_, err = svc.ApplyPayment(ctx, created.InvoiceNumber, 301)
	require.Error(t, err)
	assert.True(t, apperror.IsValidationError(err))

	// The invoice is untouched
	invoice, err := svc.GetInvoice(ctx, created.InvoiceNumber)
	require.NoError(t, err)
	assert.InDelta(t, 300, invoice.RemainingBalance, 1e-9)
}

func TestApplyPayment_SecondCallCannotOverdraw(t *testing.T) {
	repo := newFakeInvoiceRepo()
	svc := NewInvoiceService(repo, repo)
	ctx := context.Background()

	input := createInput(InvoiceItemInput{ProductType: "Others", Form: billing.ItemForm{Quantity: "1", Amount: "500"}})
	created, err := svc.CreateInvoice(ctx, input)
	require.NoError(t, err)

	_, err = svc.ApplyPayment(ctx, created.InvoiceNumber, 400)
	require.NoError(t, err)

	// Replaying the same amount would overdraw; the call fails and the
	// balance stays exactly where the first call left it
	_, err = svc.ApplyPayment(ctx, created.InvoiceNumber, 400)
	require.Error(t, err)
	assert.True(t, apperror.IsValidationError(err))

	invoice, err := svc.GetInvoice(ctx, created.InvoiceNumber)
	require.NoError(t, err)
	assert.InDelta(t, 100, invoice.RemainingBalance, 1e-9)
}

func TestApplyPayment_RejectsNonPositiveAmounts(t *testing.T) {
	repo := newFakeInvoiceRepo()
	svc := NewInvoiceService(repo, repo)
	ctx := context.Background()

	input := createInput(InvoiceItemInput{ProductType: "Others", Form: billing.ItemForm{Quantity: "1", Amount: "300"}})
	created, err := svc.CreateInvoice(ctx, input)
	require.NoError(t, err)

	for _, amount := range []float64{0, -50} {
		_, err := svc.ApplyPayment(ctx, created.InvoiceNumber, amount)
		require.Error(t, err)
		assert.True(t, apperror.IsValidationError(err))
	}
}

func TestApplyPayment_UnknownInvoice(t *testing.T) {
	repo := newFakeInvoiceRepo()
	svc := NewInvoiceService(repo, repo)

	_, err := svc.ApplyPayment(context.Background(), "INV-404", 100)
	require.Error(t, err)
	assert.True(t, apperror.IsNotFoundError(err))
}

func TestDeleteInvoice(t *testing.T) {
	repo := newFakeInvoiceRepo()
	svc := NewInvoiceService(repo, repo)
	ctx := context.Background()

	created, err := svc.CreateInvoice(ctx, createInput(panaFlexItem()))
	require.NoError(t, err)

	require.NoError(t, svc.DeleteInvoice(ctx, created.InvoiceNumber))

	err = svc.DeleteInvoice(ctx, created.InvoiceNumber)
	require.Error(t, err)
	assert.True(t, apperror.IsNotFoundError(err))
}
