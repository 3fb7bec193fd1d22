package application

import (
	"context"
	"github.com/google/uuid"
	"github.com/reuben-baek/kitchenpos/data"
	"github.com/reuben-baek/kitchenpos/domain"
	"github.com/sirupsen/logrus"
)

type ProductService struct {
	productRepository  domain.ProductRepository
	menuRepository     domain.MenuRepository
	profanityChecker   domain.ProfanityChecker
	transactionManager data.TransactionManager
}

func NewProductService(
	productRepository domain.ProductRepository,
	menuRepository domain.MenuRepository,
	profanityChecker domain.ProfanityChecker,
	transactionManager data.TransactionManager,
) *ProductService {
	return &ProductService{
		productRepository:  productRepository,
		menuRepository:     menuRepository,
		profanityChecker:   profanityChecker,
		transactionManager: transactionManager,
	}
}

func (s *ProductService) Create(ctx context.Context, request ProductRequest) (domain.Product, error) {
	if err := validatePrice(request.Price); err != nil {
		return domain.Product{}, err
	}
	if err := validateName(ctx, s.profanityChecker, request.Name); err != nil {
		return domain.Product{}, err
	}
	return s.productRepository.Save(ctx, domain.NewProduct(request.Name, request.Price.Decimal))
}

// ChangePrice updates the product price and re-evaluates the display flag of
// every menu containing the product, all in one transaction.
func (s *ProductService) ChangePrice(ctx context.Context, productID uuid.UUID, request ProductRequest) (domain.Product, error) {
	if err := validatePrice(request.Price); err != nil {
		return domain.Product{}, err
	}

	var changed domain.Product
	err := s.transactionManager.Do(ctx, func(ctx context.Context) error {
		product, err := s.productRepository.FindOne(ctx, productID)
		if err != nil {
			return notFound(err, "product", productID)
		}
		product.Price = request.Price.Decimal
		if changed, err = s.productRepository.Save(ctx, product); err != nil {
			return err
		}
		return s.reevaluateMenus(ctx, productID)
	})
	if err != nil {
		return domain.Product{}, err
	}
	return changed, nil
}

func (s *ProductService) reevaluateMenus(ctx context.Context, productID uuid.UUID) error {
	menus, err := s.menuRepository.FindAllByProductID(ctx, productID)
	if err != nil {
		return err
	}
	toggled := 0
	for _, menu := range menus {
		products, err := s.productRepository.FindAllByIDIn(ctx, menu.ProductIDs())
		if err != nil {
			return err
		}
		changed, err := menu.Reevaluate(products)
		if err != nil {
			return err
		}
		if changed {
			toggled++
		}
		if _, err := s.menuRepository.Save(ctx, menu); err != nil {
			return err
		}
	}
	logrus.Infof("ProductService.ChangePrice: product [%s] menus [%d] toggled [%d]", productID, len(menus), toggled)
	return nil
}

func (s *ProductService) FindAll(ctx context.Context) ([]domain.Product, error) {
	return s.productRepository.FindAll(ctx)
}
