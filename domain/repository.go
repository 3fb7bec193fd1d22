package domain

import (
	"context"
	"github.com/google/uuid"
	"github.com/reuben-baek/kitchenpos/data"
)

type ProductRepository interface {
	data.Repository[Product, uuid.UUID]
}

type MenuGroupRepository interface {
	data.Repository[MenuGroup, uuid.UUID]
}

type MenuRepository interface {
	data.Repository[Menu, uuid.UUID]
	FindAllByProductID(ctx context.Context, productID uuid.UUID) ([]Menu, error)
}
