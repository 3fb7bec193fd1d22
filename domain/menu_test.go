package domain_test

import (
	"github.com/google/uuid"
	"github.com/reuben-baek/kitchenpos/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestMenu(t *testing.T) {
	chicken := domain.NewProduct("후라이드", decimal.NewFromInt(16000))
	coke := domain.NewProduct("콜라", decimal.NewFromInt(2000))
	menuProducts := []domain.MenuProduct{
		{ProductID: chicken.ID, Quantity: 2},
		{ProductID: coke.ID, Quantity: 1},
		{ProductID: chicken.ID, Quantity: 1},
	}

	t.Run("product ids", func(t *testing.T) {
		menu := domain.NewMenu("두마리치킨", decimal.NewFromInt(30000), uuid.New(), true, menuProducts)
		assert.Equal(t, []uuid.UUID{chicken.ID, coke.ID}, menu.ProductIDs())
	})

	t.Run("product price sum", func(t *testing.T) {
		menu := domain.NewMenu("두마리치킨", decimal.NewFromInt(30000), uuid.New(), true, menuProducts)
		sum, err := menu.ProductPriceSum([]domain.Product{chicken, coke})
		assert.Nil(t, err)
		assert.True(t, decimal.NewFromInt(50000).Equal(sum), sum.String())
	})

	t.Run("product price sum with missing product", func(t *testing.T) {
		menu := domain.NewMenu("두마리치킨", decimal.NewFromInt(30000), uuid.New(), true, menuProducts)
		_, err := menu.ProductPriceSum([]domain.Product{chicken})
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("sellable", func(t *testing.T) {
		menu := domain.NewMenu("치킨", decimal.NewFromInt(16000), uuid.New(), true, nil)
		assert.True(t, menu.Sellable(decimal.NewFromInt(16000)))
		assert.True(t, menu.Sellable(decimal.NewFromInt(16001)))
		assert.False(t, menu.Sellable(decimal.NewFromInt(15999)))
	})

	tests := []struct {
		name      string
		price     int64
		displayed bool
		want      bool
		changed   bool
	}{
		{name: "stays displayed when price equals sum", price: 50000, displayed: true, want: true, changed: false},
		{name: "hidden when price exceeds sum", price: 50010, displayed: true, want: false, changed: true},
		{name: "displayed again when sum covers price", price: 40000, displayed: false, want: true, changed: true},
		{name: "stays hidden when price exceeds sum", price: 60000, displayed: false, want: false, changed: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			menu := domain.NewMenu("두마리치킨", decimal.NewFromInt(tt.price), uuid.New(), tt.displayed, menuProducts)
			changed, err := menu.Reevaluate([]domain.Product{chicken, coke})
			require.Nil(t, err)
			assert.Equal(t, tt.want, menu.Displayed)
			assert.Equal(t, tt.changed, changed)
		})
	}
}
