package application_test

import (
	"context"
	"errors"
	"github.com/reuben-baek/kitchenpos/data"
	"github.com/reuben-baek/kitchenpos/domain"
	"github.com/reuben-baek/kitchenpos/infra"
	"github.com/shopspring/decimal"
)

type fixture struct {
	transactionManager  data.TransactionManager
	productRepository   domain.ProductRepository
	menuGroupRepository domain.MenuGroupRepository
	menuRepository      domain.MenuRepository
	profanityChecker    domain.ProfanityChecker
}

func newInMemoryFixture() fixture {
	transactionManager := data.NewDummyTransactionManager()
	return fixture{
		transactionManager:  transactionManager,
		productRepository:   infra.NewInMemoryProductRepository(transactionManager),
		menuGroupRepository: infra.NewInMemoryMenuGroupRepository(transactionManager),
		menuRepository:      infra.NewInMemoryMenuRepository(transactionManager),
		profanityChecker:    infra.NewWordListChecker([]string{"비속어", "욕설"}),
	}
}

func price(v int64) decimal.NullDecimal {
	return decimal.NewNullDecimal(decimal.NewFromInt(v))
}

var noPrice = decimal.NullDecimal{}

type failingChecker struct{}

var errCheckerDown = errors.New("profanity service is down")

func (failingChecker) ContainsProfanity(ctx context.Context, text string) (bool, error) {
	return false, errCheckerDown
}
