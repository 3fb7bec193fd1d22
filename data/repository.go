package data

import "context"

type Repository[T any, ID comparable] interface {
	FindOne(ctx context.Context, id ID) (T, error)
	FindAll(ctx context.Context) ([]T, error)
	FindAllByIDIn(ctx context.Context, ids []ID) ([]T, error)
	Save(ctx context.Context, entity T) (T, error)
}

// FindByRepository finds entities whose field, or a field of one of their
// has-many children, equals key.
type FindByRepository[T any] interface {
	FindBy(ctx context.Context, name string, key any) ([]T, error)
}
