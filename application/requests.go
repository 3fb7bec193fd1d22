package application

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ProductRequest struct {
	Name  string              `json:"name"`
	Price decimal.NullDecimal `json:"price"`
}

type MenuGroupRequest struct {
	Name string `json:"name"`
}

type MenuRequest struct {
	Name         string               `json:"name"`
	Price        decimal.NullDecimal  `json:"price"`
	MenuGroupID  uuid.UUID            `json:"menuGroupId"`
	Displayed    bool                 `json:"displayed"`
	MenuProducts []MenuProductRequest `json:"menuProducts"`
}

type MenuProductRequest struct {
	ProductID uuid.UUID `json:"productId"`
	Quantity  int64     `json:"quantity"`
}
