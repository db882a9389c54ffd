package billing

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alsyedgraphics/printshop-api/pkg/apperror"
)

func TestValidatePayment(t *testing.T) {
	tests := []struct {
		name      string
		amount    float64
		remaining float64
		wantErr   bool
	}{
		{"partial payment", 100, 300, false},
		{"exact settlement", 300, 300, false},
		{"overpayment by one", 301, 300, true},
		{"zero amount", 0, 300, true},
		{"negative amount", -50, 300, true},
		{"nan amount", math.NaN(), 300, true},
		{"infinite amount", math.Inf(1), 300, true},
		{"any payment against settled invoice", 1, 0, true},
		{"payment against negative balance", 10, -20, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePayment(tt.amount, tt.remaining)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, apperror.IsValidationError(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
