package billing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alsyedgraphics/printshop-api/internal/domain/enum"
	"github.com/alsyedgraphics/printshop-api/pkg/apperror"
)

func TestPriceItem_AreaPriced(t *testing.T) {
	tests := []struct {
		name          string
		product       enum.ProductType
		form          ItemForm
		wantTotalFeet float64
		wantAmount    float64
	}{
		{
			name:          "pana flex banner",
			product:       enum.ProductPanaFlex,
			form:          ItemForm{Width: "4", Height: "3", Quantity: "2", Rate: "50"},
			wantTotalFeet: 12,
			wantAmount:    1200,
		},
		{
			name:          "fractional dimensions",
			product:       enum.ProductVinyl,
			form:          ItemForm{Width: "2.5", Height: "1.5", Quantity: "3", Rate: "80"},
			wantTotalFeet: 3.75,
			wantAmount:    900,
		},
		{
			name:          "zero rate prices to zero",
			product:       enum.ProductPaperPoster,
			form:          ItemForm{Width: "4", Height: "3", Quantity: "2", Rate: "0"},
			wantTotalFeet: 12,
			wantAmount:    0,
		},
		{
			name:          "zero quantity prices to zero",
			product:       enum.ProductPanaFlex,
			form:          ItemForm{Width: "4", Height: "3", Quantity: "0", Rate: "50"},
			wantTotalFeet: 12,
			wantAmount:    0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item, err := PriceItem(tt.product, tt.form)
			require.NoError(t, err)

			assert.Equal(t, tt.product, item.ProductType)
			require.NotNil(t, item.TotalFeet)
			assert.InDelta(t, tt.wantTotalFeet, *item.TotalFeet, 1e-9)
			assert.InDelta(t, tt.wantAmount, item.Amount, 1e-9)
		})
	}
}

func TestPriceItem_AreaPricedExactFormula(t *testing.T) {
	form := ItemForm{Width: "3.3", Height: "2.7", Quantity: "4", Rate: "65.5"}
	item, err := PriceItem(enum.ProductVinyl, form)
	require.NoError(t, err)

	want := 3.3 * 2.7 * 4 * 65.5
	assert.InDelta(t, want, item.Amount, 1e-9)
}

func TestPriceItem_FlatPriced(t *testing.T) {
	item, err := PriceItem(enum.ProductBusinessCard, ItemForm{Quantity: "500", Amount: "1500"})
	require.NoError(t, err)

	assert.Equal(t, enum.ProductBusinessCard, item.ProductType)
	assert.Equal(t, 500, item.Quantity)
	assert.InDelta(t, 1500, item.Amount, 1e-9)
	assert.Nil(t, item.Width)
	assert.Nil(t, item.Height)
	assert.Nil(t, item.Rate)
	assert.Nil(t, item.TotalFeet)
}

func TestPriceItem_RejectsBadInput(t *testing.T) {
	tests := []struct {
		name    string
		product enum.ProductType
		form    ItemForm
	}{
		{"garbage width", enum.ProductPanaFlex, ItemForm{Width: "abc", Height: "3", Quantity: "2", Rate: "50"}},
		{"empty height", enum.ProductVinyl, ItemForm{Width: "4", Height: "", Quantity: "2", Rate: "50"}},
		{"fractional quantity", enum.ProductPanaFlex, ItemForm{Width: "4", Height: "3", Quantity: "1.5", Rate: "50"}},
		{"nan rate", enum.ProductPaperPoster, ItemForm{Width: "4", Height: "3", Quantity: "2", Rate: "NaN"}},
		{"garbage flat amount", enum.ProductMugPrint, ItemForm{Quantity: "2", Amount: "free"}},
		{"empty flat quantity", enum.ProductStamp, ItemForm{Quantity: "", Amount: "200"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := PriceItem(tt.product, tt.form)
			require.Error(t, err)
			assert.True(t, apperror.IsValidationError(err))
		})
	}
}

func TestPriceItem_NegativeInputsAccepted(t *testing.T) {
	// Only parse failures are rejected; business-nonsense values pass through
	item, err := PriceItem(enum.ProductPanaFlex, ItemForm{Width: "-4", Height: "3", Quantity: "2", Rate: "50"})
	require.NoError(t, err)
	assert.InDelta(t, -1200, item.Amount, 1e-9)
}
