package mongo_test

import (
	"context"
	"github.com/google/uuid"
	"github.com/reuben-baek/kitchenpos/data"
	"github.com/reuben-baek/kitchenpos/domain"
	"github.com/reuben-baek/kitchenpos/infra/mongo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"os"
	"testing"
)

func getStore(t *testing.T) *mongo.Store {
	url := os.Getenv("KITCHENPOS_TEST_MONGO_URL")
	if url == "" {
		t.Skip("KITCHENPOS_TEST_MONGO_URL is not set")
	}
	ctx := context.Background()
	store, err := mongo.Connect(ctx, url, "kitchenpos_test_"+uuid.NewString()[:8])
	require.Nil(t, err)
	require.Nil(t, store.Migrate(ctx))
	t.Cleanup(func() {
		_ = store.Drop(ctx)
		_ = store.Close(ctx)
	})
	return store
}

func TestStore(t *testing.T) {
	store := getStore(t)
	ctx := context.Background()
	products := store.ProductRepository()
	menuGroups := store.MenuGroupRepository()
	menus := store.MenuRepository()

	chicken := domain.NewProduct("후라이드", decimal.RequireFromString("16000.50"))
	coke := domain.NewProduct("콜라", decimal.NewFromInt(2000))
	group := domain.NewMenuGroup("두마리메뉴")

	t.Run("product", func(t *testing.T) {
		for _, p := range []domain.Product{chicken, coke} {
			_, err := products.Save(ctx, p)
			require.Nil(t, err)
		}
		found, err := products.FindOne(ctx, chicken.ID)
		assert.Nil(t, err)
		assert.True(t, chicken.Price.Equal(found.Price), found.Price.String())

		_, err = products.FindOne(ctx, uuid.New())
		assert.ErrorIs(t, err, data.NotFoundError)

		byIDs, err := products.FindAllByIDIn(ctx, []uuid.UUID{coke.ID})
		assert.Nil(t, err)
		assert.Len(t, byIDs, 1)

		byIDs, err = products.FindAllByIDIn(ctx, nil)
		assert.Nil(t, err)
		assert.Empty(t, byIDs)
	})

	t.Run("menu group", func(t *testing.T) {
		_, err := menuGroups.Save(ctx, group)
		require.Nil(t, err)
		all, err := menuGroups.FindAll(ctx)
		assert.Nil(t, err)
		assert.Equal(t, []domain.MenuGroup{group}, all)
	})

	t.Run("menu", func(t *testing.T) {
		menu := domain.NewMenu("후라이드+콜라", decimal.NewFromInt(18000), group.ID, true, []domain.MenuProduct{
			{ProductID: chicken.ID, Quantity: 1},
			{ProductID: coke.ID, Quantity: 1},
		})
		_, err := menus.Save(ctx, menu)
		require.Nil(t, err)

		withCoke, err := menus.FindAllByProductID(ctx, coke.ID)
		assert.Nil(t, err)
		require.Len(t, withCoke, 1)
		assert.Len(t, withCoke[0].MenuProducts, 2)

		menu.Displayed = false
		_, err = menus.Save(ctx, menu)
		require.Nil(t, err)
		found, err := menus.FindOne(ctx, menu.ID)
		assert.Nil(t, err)
		assert.False(t, found.Displayed)

		none, err := menus.FindAllByProductID(ctx, uuid.New())
		assert.Nil(t, err)
		assert.Empty(t, none)
	})
}
