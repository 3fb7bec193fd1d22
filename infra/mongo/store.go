package mongo

import (
	"context"
	"fmt"
	"github.com/reuben-baek/kitchenpos/domain"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"time"
)

const (
	productCollection   = "products"
	menuGroupCollection = "menu_groups"
	menuCollection      = "menus"
)

type Store struct {
	client *mongo.Client
	db     *mongo.Database
}

func Connect(ctx context.Context, url, name string) (*Store, error) {
	clientOptions := options.Client().ApplyURI(url).
		SetConnectTimeout(10 * time.Second).
		SetServerSelectionTimeout(10 * time.Second)

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("cannot connect to MongoDB: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("cannot ping MongoDB: %w", err)
	}
	logrus.Infof("mongo.Connect: database [%s]", name)
	return &Store{client: client, db: client.Database(name)}, nil
}

// Migrate creates the index used to find menus by product.
func (s *Store) Migrate(ctx context.Context) error {
	index := mongo.IndexModel{
		Keys: bson.D{{Key: "menu_products.product_id", Value: 1}},
	}
	if _, err := s.db.Collection(menuCollection).Indexes().CreateOne(ctx, index); err != nil {
		return fmt.Errorf("cannot create menu_products.product_id index: %w", err)
	}
	return nil
}

func (s *Store) Drop(ctx context.Context) error {
	return s.db.Drop(ctx)
}

func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

func (s *Store) ProductRepository() domain.ProductRepository {
	return newRepository[productDocument, domain.Product](s.db.Collection(productCollection))
}

func (s *Store) MenuGroupRepository() domain.MenuGroupRepository {
	return newRepository[menuGroupDocument, domain.MenuGroup](s.db.Collection(menuGroupCollection))
}

func (s *Store) MenuRepository() domain.MenuRepository {
	return &MenuRepository{Repository: newRepository[menuDocument, domain.Menu](s.db.Collection(menuCollection))}
}
