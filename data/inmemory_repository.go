package data

import (
	"context"
	"github.com/sirupsen/logrus"
	"sync"
)

// InMemoryRepository keeps entities by their ID field and returns them in
// insertion order.
type InMemoryRepository[T any, ID comparable] struct {
	mu                 sync.RWMutex
	database           map[ID]T
	order              []ID
	transactionManager TransactionManager
}

func NewInMemoryRepository[T any, ID comparable](transactionManager TransactionManager) *InMemoryRepository[T, ID] {
	return &InMemoryRepository[T, ID]{
		database:           make(map[ID]T),
		transactionManager: transactionManager,
	}
}

func (u *InMemoryRepository[T, ID]) FindOne(ctx context.Context, id ID) (T, error) {
	u.mu.RLock()
	defer u.mu.RUnlock()
	if v, ok := u.database[id]; ok {
		return v, nil
	}
	var zero T
	return zero, NotFoundError
}

func (u *InMemoryRepository[T, ID]) FindAll(ctx context.Context) ([]T, error) {
	return u.filter(func(T) bool { return true }), nil
}

func (u *InMemoryRepository[T, ID]) FindAllByIDIn(ctx context.Context, ids []ID) ([]T, error) {
	if len(ids) == 0 {
		return []T{}, nil
	}
	u.mu.RLock()
	defer u.mu.RUnlock()
	entities := make([]T, 0, len(ids))
	seen := make(map[ID]bool, len(ids))
	for _, id := range ids {
		if v, ok := u.database[id]; ok && !seen[id] {
			seen[id] = true
			entities = append(entities, v)
		}
	}
	return entities, nil
}

func (u *InMemoryRepository[T, ID]) FindBy(ctx context.Context, name string, key any) ([]T, error) {
	return u.filter(func(entity T) bool { return hasFieldValue(entity, name, key) }), nil
}

func (u *InMemoryRepository[T, ID]) Save(ctx context.Context, entity T) (T, error) {
	transaction := u.transactionManager.Get(ctx)
	logrus.Debugf("InMemoryRepository.Save: transaction [%v] entity [%+v]", transaction, entity)
	id, zero := findID[T, ID](entity)
	if zero {
		panic("entity.ID is missing")
	}
	u.mu.Lock()
	defer u.mu.Unlock()
	if _, ok := u.database[id]; !ok {
		u.order = append(u.order, id)
	}
	u.database[id] = entity
	return entity, nil
}

func (u *InMemoryRepository[T, ID]) filter(match func(T) bool) []T {
	u.mu.RLock()
	defer u.mu.RUnlock()
	entities := make([]T, 0, len(u.order))
	for _, id := range u.order {
		if v := u.database[id]; match(v) {
			entities = append(entities, v)
		}
	}
	return entities
}
