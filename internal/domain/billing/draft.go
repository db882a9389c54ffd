package billing

import (
	"time"

	"github.com/alsyedgraphics/printshop-api/internal/domain/entity"
	"github.com/alsyedgraphics/printshop-api/internal/domain/enum"
	"github.com/alsyedgraphics/printshop-api/pkg/apperror"
)

// Draft is the working state of an invoice being built: header fields, the
// ordered item sequence and the discount/paid scalars. Totals are always
// derived from the current items, never stored on the draft.
type Draft struct {
	CustomerName  string
	Contact       string
	InvoiceNumber string
	Date          time.Time
	Items         []entity.InvoiceItem
	Discount      float64
	Paid          float64
}

// AddItem prices the form inputs for the selected product and appends the
// result to the item sequence
func (d *Draft) AddItem(product enum.ProductType, form ItemForm) error {
	item, err := PriceItem(product, form)
	if err != nil {
		return err
	}
	item.Position = len(d.Items)
	d.Items = append(d.Items, item)
	return nil
}

// RemoveItem drops the item at the given position. Items carry no in-place
// edit: a correction is a removal followed by a fresh AddItem.
func (d *Draft) RemoveItem(index int) error {
	if index < 0 || index >= len(d.Items) {
		return apperror.NewBadRequestError("No such line item")
	}
	d.Items = append(d.Items[:index], d.Items[index+1:]...)
	for i := range d.Items {
		d.Items[i].Position = i
	}
	return nil
}

// Totals derives the current invoice totals from the item sequence
func (d *Draft) Totals() Totals {
	return ComputeTotals(d.Items, d.Discount, d.Paid)
}
