package cli

import (
	"context"
	"github.com/reuben-baek/kitchenpos/application"
	"github.com/reuben-baek/kitchenpos/config"
	"github.com/reuben-baek/kitchenpos/data"
	"github.com/reuben-baek/kitchenpos/domain"
	"github.com/reuben-baek/kitchenpos/infra"
	"github.com/reuben-baek/kitchenpos/infra/mongo"
	"github.com/sirupsen/logrus"
)

type app struct {
	products   *application.ProductService
	menuGroups *application.MenuGroupService
	menus      *application.MenuService
	migrate    func(ctx context.Context) error
	close      func(ctx context.Context) error
	closed     bool
}

func (a *app) shutdown(ctx context.Context) error {
	if a.closed {
		return nil
	}
	a.closed = true
	return a.close(ctx)
}

type backend struct {
	transactionManager  data.TransactionManager
	productRepository   domain.ProductRepository
	menuGroupRepository domain.MenuGroupRepository
	menuRepository      domain.MenuRepository
	migrate             func(ctx context.Context) error
	close               func(ctx context.Context) error
}

func newApp(ctx context.Context, cfg *config.Config) (*app, error) {
	profanityChecker, err := infra.NewProfanityChecker(cfg.Profanity)
	if err != nil {
		return nil, err
	}
	b, err := newBackend(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}
	logrus.Debugf("cli.newApp: driver [%s] profanity checker [%s]", cfg.Database.Driver, cfg.Profanity.Checker)
	return &app{
		products:   application.NewProductService(b.productRepository, b.menuRepository, profanityChecker, b.transactionManager),
		menuGroups: application.NewMenuGroupService(b.menuGroupRepository),
		menus:      application.NewMenuService(b.menuRepository, b.menuGroupRepository, b.productRepository, profanityChecker),
		migrate:    b.migrate,
		close:      b.close,
	}, nil
}

func newBackend(ctx context.Context, cfg config.DatabaseConfig) (*backend, error) {
	if cfg.Driver == config.DriverMongo {
		store, err := mongo.Connect(ctx, cfg.MongoURL, cfg.MongoName)
		if err != nil {
			return nil, err
		}
		// multi-document transactions need a replica set
		return &backend{
			transactionManager:  data.NewDummyTransactionManager(),
			productRepository:   store.ProductRepository(),
			menuGroupRepository: store.MenuGroupRepository(),
			menuRepository:      store.MenuRepository(),
			migrate:             store.Migrate,
			close:               store.Close,
		}, nil
	}

	db, err := infra.OpenGormDB(cfg)
	if err != nil {
		return nil, err
	}
	transactionManager := data.NewGormTransactionManager(db)
	return &backend{
		transactionManager:  transactionManager,
		productRepository:   infra.NewGormProductRepository(transactionManager),
		menuGroupRepository: infra.NewGormMenuGroupRepository(transactionManager),
		menuRepository:      infra.NewGormMenuRepository(transactionManager),
		migrate: func(ctx context.Context) error {
			return infra.Migrate(db.WithContext(ctx))
		},
		close: func(ctx context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.Close()
		},
	}, nil
}
