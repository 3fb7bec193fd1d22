package mongo

import (
	"context"
	"errors"
	"fmt"
	"github.com/google/uuid"
	"github.com/reuben-baek/kitchenpos/data"
	"github.com/reuben-baek/kitchenpos/domain"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// document is stored as is. model fails on malformed stored values instead of panicking.
type document[M any] interface {
	From(m M) any
	model() (M, error)
	key() string
}

// Repository keeps one document per model keyed by the model's uuid.
type Repository[D document[M], M any] struct {
	collection *mongo.Collection
}

func newRepository[D document[M], M any](collection *mongo.Collection) *Repository[D, M] {
	return &Repository[D, M]{collection: collection}
}

func (r *Repository[D, M]) FindOne(ctx context.Context, id uuid.UUID) (M, error) {
	var doc D
	err := r.collection.FindOne(ctx, bson.M{"_id": id.String()}).Decode(&doc)
	if err != nil {
		var zero M
		if errors.Is(err, mongo.ErrNoDocuments) {
			return zero, data.NotFoundError
		}
		return zero, fmt.Errorf("find %s %s: %w", r.collection.Name(), id, err)
	}
	model, err := doc.model()
	if err != nil {
		var zero M
		return zero, fmt.Errorf("decode %s %s: %w", r.collection.Name(), id, err)
	}
	return model, nil
}

func (r *Repository[D, M]) FindAll(ctx context.Context) ([]M, error) {
	return r.find(ctx, bson.M{})
}

func (r *Repository[D, M]) FindAllByIDIn(ctx context.Context, ids []uuid.UUID) ([]M, error) {
	if len(ids) == 0 {
		return []M{}, nil
	}
	keys := make([]string, 0, len(ids))
	for _, id := range ids {
		keys = append(keys, id.String())
	}
	return r.find(ctx, bson.M{"_id": bson.M{"$in": keys}})
}

func (r *Repository[D, M]) Save(ctx context.Context, model M) (M, error) {
	var doc D
	doc = doc.From(model).(D)
	id := doc.key()
	opts := options.Replace().SetUpsert(true)
	if _, err := r.collection.ReplaceOne(ctx, bson.M{"_id": id}, doc, opts); err != nil {
		var zero M
		return zero, fmt.Errorf("save %s %s: %w", r.collection.Name(), id, err)
	}
	logrus.Debugf("mongo.Repository.Save: collection [%s] id [%s]", r.collection.Name(), id)
	return doc.model()
}

func (r *Repository[D, M]) find(ctx context.Context, filter any) ([]M, error) {
	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("find %s: %w", r.collection.Name(), err)
	}
	defer cursor.Close(ctx)

	var docs []D
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode %s: %w", r.collection.Name(), err)
	}
	return toModels[D, M](r.collection.Name(), docs)
}

func toModels[D document[M], M any](collection string, docs []D) ([]M, error) {
	models := make([]M, 0, len(docs))
	for _, doc := range docs {
		model, err := doc.model()
		if err != nil {
			return nil, fmt.Errorf("decode %s %s: %w", collection, doc.key(), err)
		}
		models = append(models, model)
	}
	return models, nil
}

type MenuRepository struct {
	*Repository[menuDocument, domain.Menu]
}

func (m *MenuRepository) FindAllByProductID(ctx context.Context, productID uuid.UUID) ([]domain.Menu, error) {
	return m.find(ctx, bson.M{"menu_products.product_id": productID.String()})
}
