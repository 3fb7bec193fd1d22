package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Product struct {
	ID    uuid.UUID       `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

func NewProduct(name string, price decimal.Decimal) Product {
	return Product{
		ID:    uuid.New(),
		Name:  name,
		Price: price,
	}
}

type MenuGroup struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

func NewMenuGroup(name string) MenuGroup {
	return MenuGroup{
		ID:   uuid.New(),
		Name: name,
	}
}
