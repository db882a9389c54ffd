package billing

import (
	"math"
	"strconv"

	"github.com/alsyedgraphics/printshop-api/internal/domain/entity"
	"github.com/alsyedgraphics/printshop-api/internal/domain/enum"
	"github.com/alsyedgraphics/printshop-api/pkg/apperror"
)

// ItemForm holds the raw form inputs for one line item, exactly as typed.
// Which fields matter depends on whether the product is area-priced.
type ItemForm struct {
	Width    string `json:"width"`
	Height   string `json:"height"`
	Quantity string `json:"quantity"`
	Rate     string `json:"rate"`
	Amount   string `json:"amount"`
}

// PriceItem turns a product selection plus raw form inputs into a priced
// line item. Area-priced products derive amount = width*height*quantity*rate;
// flat-priced products take the amount directly. Only failed numeric parsing
// is rejected: zero quantity or zero rate is allowed and simply prices to
// zero.
func PriceItem(product enum.ProductType, form ItemForm) (entity.InvoiceItem, error) {
	item := entity.InvoiceItem{ProductType: product}

	if product.IsAreaPriced() {
		var fieldErrs []apperror.FieldError
		width, err := parseNumber(form.Width)
		if err != nil {
			fieldErrs = append(fieldErrs, apperror.FieldError{Field: "width", Message: "must be a number"})
		}
		height, err := parseNumber(form.Height)
		if err != nil {
			fieldErrs = append(fieldErrs, apperror.FieldError{Field: "height", Message: "must be a number"})
		}
		quantity, err := strconv.Atoi(form.Quantity)
		if err != nil {
			fieldErrs = append(fieldErrs, apperror.FieldError{Field: "quantity", Message: "must be an integer"})
		}
		rate, err := parseNumber(form.Rate)
		if err != nil {
			fieldErrs = append(fieldErrs, apperror.FieldError{Field: "rate", Message: "must be a number"})
		}
		if len(fieldErrs) > 0 {
			return entity.InvoiceItem{}, apperror.NewFieldValidationError(fieldErrs)
		}

		totalFeet := width * height
		item.Width = &width
		item.Height = &height
		item.TotalFeet = &totalFeet
		item.Rate = &rate
		item.Quantity = quantity
		item.Amount = totalFeet * float64(quantity) * rate
		return item, nil
	}

	var fieldErrs []apperror.FieldError
	quantity, err := strconv.Atoi(form.Quantity)
	if err != nil {
		fieldErrs = append(fieldErrs, apperror.FieldError{Field: "quantity", Message: "must be an integer"})
	}
	amount, err := parseNumber(form.Amount)
	if err != nil {
		fieldErrs = append(fieldErrs, apperror.FieldError{Field: "amount", Message: "must be a number"})
	}
	if len(fieldErrs) > 0 {
		return entity.InvoiceItem{}, apperror.NewFieldValidationError(fieldErrs)
	}

	item.Quantity = quantity
	item.Amount = amount
	return item, nil
}

// parseNumber parses a float and rejects NaN, which strconv accepts
func parseNumber(s string) (float64, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(f) {
		return 0, strconv.ErrSyntax
	}
	return f, nil
}
