package infra

import (
	"context"
	"github.com/google/uuid"
	"github.com/reuben-baek/kitchenpos/data"
	"github.com/reuben-baek/kitchenpos/domain"
)

type ProductRepository struct {
	data.Repository[domain.Product, uuid.UUID]
}

type MenuGroupRepository struct {
	data.Repository[domain.MenuGroup, uuid.UUID]
}

type MenuRepository struct {
	data.Repository[domain.Menu, uuid.UUID]
	data.FindByRepository[domain.Menu]
}

func (m *MenuRepository) FindAllByProductID(ctx context.Context, productID uuid.UUID) ([]domain.Menu, error) {
	return m.FindBy(ctx, "ProductID", productID)
}

type dtoRepository[D any] interface {
	data.Repository[D, uuid.UUID]
	data.FindByRepository[D]
}

func newProductRepository(dtos data.Repository[Product, uuid.UUID]) *ProductRepository {
	return &ProductRepository{Repository: data.NewDtoWrapRepository[Product, domain.Product, uuid.UUID](dtos)}
}

func newMenuGroupRepository(dtos data.Repository[MenuGroup, uuid.UUID]) *MenuGroupRepository {
	return &MenuGroupRepository{Repository: data.NewDtoWrapRepository[MenuGroup, domain.MenuGroup, uuid.UUID](dtos)}
}

func newMenuRepository(dtos dtoRepository[Menu]) *MenuRepository {
	return &MenuRepository{
		Repository:       data.NewDtoWrapRepository[Menu, domain.Menu, uuid.UUID](dtos),
		FindByRepository: data.NewDtoWrapFindByRepository[Menu, domain.Menu](dtos),
	}
}

func NewGormProductRepository(transactionManager *data.GormTransactionManager) *ProductRepository {
	return newProductRepository(data.NewGormRepository[Product, uuid.UUID](transactionManager))
}

func NewGormMenuGroupRepository(transactionManager *data.GormTransactionManager) *MenuGroupRepository {
	return newMenuGroupRepository(data.NewGormRepository[MenuGroup, uuid.UUID](transactionManager))
}

func NewGormMenuRepository(transactionManager *data.GormTransactionManager) *MenuRepository {
	return newMenuRepository(data.NewGormRepository[Menu, uuid.UUID](transactionManager))
}

func NewInMemoryProductRepository(transactionManager data.TransactionManager) *ProductRepository {
	return newProductRepository(data.NewInMemoryRepository[Product, uuid.UUID](transactionManager))
}

func NewInMemoryMenuGroupRepository(transactionManager data.TransactionManager) *MenuGroupRepository {
	return newMenuGroupRepository(data.NewInMemoryRepository[MenuGroup, uuid.UUID](transactionManager))
}

func NewInMemoryMenuRepository(transactionManager data.TransactionManager) *MenuRepository {
	return newMenuRepository(data.NewInMemoryRepository[Menu, uuid.UUID](transactionManager))
}
