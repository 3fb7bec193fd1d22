package data_test

import (
	"context"
	"errors"
	"github.com/google/uuid"
	"github.com/reuben-baek/kitchenpos/data"
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestDummyTransactionManager(t *testing.T) {
	transactionManager := data.NewDummyTransactionManager()
	repository := data.NewInMemoryRepository[User, string](transactionManager)
	ctx := context.Background()

	t.Run("do", func(t *testing.T) {
		err := transactionManager.Do(ctx, func(ctx context.Context) error {
			_, err := repository.Save(ctx, User{ID: "reuben.b", Name: "reuben baek"})
			return err
		})
		assert.Nil(t, err)

		_, err = repository.FindOne(ctx, "reuben.b")
		assert.Nil(t, err)
	})

	t.Run("transaction id is shared by nested do", func(t *testing.T) {
		var outer, inner any
		err := transactionManager.Do(ctx, func(ctx context.Context) error {
			outer = transactionManager.Get(ctx)
			return transactionManager.Do(ctx, func(ctx context.Context) error {
				inner = transactionManager.Get(ctx)
				return nil
			})
		})
		assert.Nil(t, err)
		assert.NotEqual(t, uuid.Nil, outer)
		assert.Equal(t, outer, inner)
	})

	t.Run("get without transaction", func(t *testing.T) {
		assert.Equal(t, uuid.Nil, transactionManager.Get(ctx))
	})

	t.Run("error is returned", func(t *testing.T) {
		failure := errors.New("fail")
		err := transactionManager.Do(ctx, func(ctx context.Context) error {
			return failure
		})
		assert.ErrorIs(t, err, failure)
	})
}
