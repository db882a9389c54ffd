package billing

import (
	"math"

	"github.com/alsyedgraphics/printshop-api/pkg/apperror"
)

// ValidatePayment checks a payment amount against an invoice's remaining
// balance: the amount must be a finite positive number no greater than the
// balance. Any violation rejects the whole payment; nothing is mutated.
func ValidatePayment(amount, remainingBalance float64) error {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return apperror.NewValidationError("Payment amount must be a valid number")
	}
	if amount <= 0 {
		return apperror.NewValidationError("Payment amount must be greater than zero")
	}
	if amount > remainingBalance {
		return apperror.NewValidationError("Payment amount cannot exceed the remaining balance")
	}
	return nil
}
