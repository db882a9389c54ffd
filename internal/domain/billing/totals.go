package billing

import "github.com/alsyedgraphics/printshop-api/internal/domain/entity"

// Totals holds the derived monetary figures of an invoice
type Totals struct {
	SubTotal         float64 `json:"sub_total"`
	TotalAmount      float64 `json:"total_amount"`
	RemainingBalance float64 `json:"remaining_balance"`
}

// ComputeTotals reduces an ordered item sequence plus discount and paid
// scalars into invoice totals. A discount exceeding the subtotal yields a
// negative total, and paying more than the total at creation yields a
// negative balance; neither is clamped here.
func ComputeTotals(items []entity.InvoiceItem, discount, paid float64) Totals {
	var subTotal float64
	for _, item := range items {
		subTotal += item.Amount
	}

	totalAmount := subTotal - discount
	return Totals{
		SubTotal:         subTotal,
		TotalAmount:      totalAmount,
		RemainingBalance: totalAmount - paid,
	}
}
