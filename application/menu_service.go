package application

import (
	"context"
	"fmt"
	"github.com/google/uuid"
	"github.com/reuben-baek/kitchenpos/domain"
	"github.com/shopspring/decimal"
)

type MenuService struct {
	menuRepository      domain.MenuRepository
	menuGroupRepository domain.MenuGroupRepository
	productRepository   domain.ProductRepository
	profanityChecker    domain.ProfanityChecker
}

func NewMenuService(
	menuRepository domain.MenuRepository,
	menuGroupRepository domain.MenuGroupRepository,
	productRepository domain.ProductRepository,
	profanityChecker domain.ProfanityChecker,
) *MenuService {
	return &MenuService{
		menuRepository:      menuRepository,
		menuGroupRepository: menuGroupRepository,
		productRepository:   productRepository,
		profanityChecker:    profanityChecker,
	}
}

func (s *MenuService) Create(ctx context.Context, request MenuRequest) (domain.Menu, error) {
	if err := validatePrice(request.Price); err != nil {
		return domain.Menu{}, err
	}
	menuGroup, err := s.menuGroupRepository.FindOne(ctx, request.MenuGroupID)
	if err != nil {
		return domain.Menu{}, notFound(err, "menu group", request.MenuGroupID)
	}
	if len(request.MenuProducts) == 0 {
		return domain.Menu{}, fmt.Errorf("%w: menu products are required", domain.ErrInvalidArgument)
	}

	menuProducts := make([]domain.MenuProduct, 0, len(request.MenuProducts))
	for _, mp := range request.MenuProducts {
		if mp.Quantity < 1 {
			return domain.Menu{}, fmt.Errorf("%w: quantity %d of product %s must be at least 1", domain.ErrInvalidArgument, mp.Quantity, mp.ProductID)
		}
		menuProducts = append(menuProducts, domain.MenuProduct{ProductID: mp.ProductID, Quantity: mp.Quantity})
	}
	menu := domain.NewMenu(request.Name, request.Price.Decimal, menuGroup.ID, request.Displayed, menuProducts)

	productIDs := menu.ProductIDs()
	products, err := s.productRepository.FindAllByIDIn(ctx, productIDs)
	if err != nil {
		return domain.Menu{}, err
	}
	if len(products) != len(productIDs) {
		return domain.Menu{}, fmt.Errorf("%w: %d of %d products exist", domain.ErrInvalidArgument, len(products), len(productIDs))
	}
	sum, err := menu.ProductPriceSum(products)
	if err != nil {
		return domain.Menu{}, err
	}
	if !menu.Sellable(sum) {
		return domain.Menu{}, fmt.Errorf("%w: price %s exceeds product sum %s", domain.ErrInvalidArgument, menu.Price, sum)
	}
	if err := validateName(ctx, s.profanityChecker, request.Name); err != nil {
		return domain.Menu{}, err
	}
	return s.menuRepository.Save(ctx, menu)
}

func (s *MenuService) ChangePrice(ctx context.Context, menuID uuid.UUID, request MenuRequest) (domain.Menu, error) {
	if err := validatePrice(request.Price); err != nil {
		return domain.Menu{}, err
	}
	menu, sum, err := s.findWithSum(ctx, menuID)
	if err != nil {
		return domain.Menu{}, err
	}
	menu.Price = request.Price.Decimal
	if !menu.Sellable(sum) {
		return domain.Menu{}, fmt.Errorf("%w: price %s exceeds product sum %s", domain.ErrInvalidArgument, menu.Price, sum)
	}
	return s.menuRepository.Save(ctx, menu)
}

func (s *MenuService) Display(ctx context.Context, menuID uuid.UUID) (domain.Menu, error) {
	menu, sum, err := s.findWithSum(ctx, menuID)
	if err != nil {
		return domain.Menu{}, err
	}
	if !menu.Sellable(sum) {
		return domain.Menu{}, fmt.Errorf("%w: price %s exceeds product sum %s", domain.ErrIllegalState, menu.Price, sum)
	}
	menu.Displayed = true
	return s.menuRepository.Save(ctx, menu)
}

func (s *MenuService) Hide(ctx context.Context, menuID uuid.UUID) (domain.Menu, error) {
	menu, err := s.menuRepository.FindOne(ctx, menuID)
	if err != nil {
		return domain.Menu{}, notFound(err, "menu", menuID)
	}
	menu.Displayed = false
	return s.menuRepository.Save(ctx, menu)
}

func (s *MenuService) FindAll(ctx context.Context) ([]domain.Menu, error) {
	return s.menuRepository.FindAll(ctx)
}

func (s *MenuService) findWithSum(ctx context.Context, menuID uuid.UUID) (domain.Menu, decimal.Decimal, error) {
	menu, err := s.menuRepository.FindOne(ctx, menuID)
	if err != nil {
		return domain.Menu{}, decimal.Zero, notFound(err, "menu", menuID)
	}
	products, err := s.productRepository.FindAllByIDIn(ctx, menu.ProductIDs())
	if err != nil {
		return domain.Menu{}, decimal.Zero, err
	}
	sum, err := menu.ProductPriceSum(products)
	if err != nil {
		return domain.Menu{}, decimal.Zero, err
	}
	return menu, sum, nil
}
