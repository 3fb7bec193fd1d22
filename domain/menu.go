package domain

import (
	"fmt"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Menu struct {
	ID           uuid.UUID       `json:"id"`
	Name         string          `json:"name"`
	Price        decimal.Decimal `json:"price"`
	MenuGroupID  uuid.UUID       `json:"menuGroupId"`
	Displayed    bool            `json:"displayed"`
	MenuProducts []MenuProduct   `json:"menuProducts"`
}

// MenuProduct refers to its product by id. Seq is assigned by storage.
type MenuProduct struct {
	Seq       int64     `json:"seq"`
	ProductID uuid.UUID `json:"productId"`
	Quantity  int64     `json:"quantity"`
}

func NewMenu(name string, price decimal.Decimal, menuGroupID uuid.UUID, displayed bool, menuProducts []MenuProduct) Menu {
	return Menu{
		ID:           uuid.New(),
		Name:         name,
		Price:        price,
		MenuGroupID:  menuGroupID,
		Displayed:    displayed,
		MenuProducts: menuProducts,
	}
}

// ProductIDs returns the distinct product ids in menu product order.
func (m Menu) ProductIDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(m.MenuProducts))
	seen := make(map[uuid.UUID]bool, len(m.MenuProducts))
	for _, mp := range m.MenuProducts {
		if !seen[mp.ProductID] {
			seen[mp.ProductID] = true
			ids = append(ids, mp.ProductID)
		}
	}
	return ids
}

// ProductPriceSum is Σ price × quantity over the menu products. Every
// product must be present in products.
func (m Menu) ProductPriceSum(products []Product) (decimal.Decimal, error) {
	prices := make(map[uuid.UUID]decimal.Decimal, len(products))
	for _, p := range products {
		prices[p.ID] = p.Price
	}
	sum := decimal.Zero
	for _, mp := range m.MenuProducts {
		price, ok := prices[mp.ProductID]
		if !ok {
			return decimal.Zero, fmt.Errorf("%w: product %s of menu %s", ErrNotFound, mp.ProductID, m.ID)
		}
		sum = sum.Add(price.Mul(decimal.NewFromInt(mp.Quantity)))
	}
	return sum, nil
}

// Sellable reports whether the menu price does not exceed sum.
func (m Menu) Sellable(sum decimal.Decimal) bool {
	return m.Price.LessThanOrEqual(sum)
}

// Reevaluate sets Displayed from the current product prices and reports
// whether it changed.
func (m *Menu) Reevaluate(products []Product) (bool, error) {
	sum, err := m.ProductPriceSum(products)
	if err != nil {
		return false, err
	}
	displayed := m.Sellable(sum)
	changed := displayed != m.Displayed
	m.Displayed = displayed
	return changed, nil
}
