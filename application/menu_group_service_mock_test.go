package application_test

import (
	"context"
	"github.com/google/uuid"
	"github.com/reuben-baek/kitchenpos/application"
	"github.com/reuben-baek/kitchenpos/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"testing"
)

type mockMenuGroupRepository struct {
	mock.Mock
}

func (m *mockMenuGroupRepository) FindOne(ctx context.Context, id uuid.UUID) (domain.MenuGroup, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.MenuGroup), args.Error(1)
}

func (m *mockMenuGroupRepository) FindAll(ctx context.Context) ([]domain.MenuGroup, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.MenuGroup), args.Error(1)
}

func (m *mockMenuGroupRepository) FindAllByIDIn(ctx context.Context, ids []uuid.UUID) ([]domain.MenuGroup, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).([]domain.MenuGroup), args.Error(1)
}

func (m *mockMenuGroupRepository) Save(ctx context.Context, entity domain.MenuGroup) (domain.MenuGroup, error) {
	args := m.Called(ctx, entity)
	if fn, ok := args.Get(0).(func(context.Context, domain.MenuGroup) domain.MenuGroup); ok {
		return fn(ctx, entity), args.Error(1)
	}
	return args.Get(0).(domain.MenuGroup), args.Error(1)
}

func TestMenuGroupServiceWithMock(t *testing.T) {
	ctx := context.Background()

	t.Run("create saves a new menu group", func(t *testing.T) {
		repository := &mockMenuGroupRepository{}
		repository.On("Save", ctx, mock.MatchedBy(func(g domain.MenuGroup) bool {
			return g.Name == "두마리메뉴" && g.ID != uuid.Nil
		})).Return(func(ctx context.Context, g domain.MenuGroup) domain.MenuGroup { return g }, nil)
		service := application.NewMenuGroupService(repository)

		created, err := service.Create(ctx, application.MenuGroupRequest{Name: "두마리메뉴"})
		require.Nil(t, err)
		assert.Equal(t, "두마리메뉴", created.Name)
		repository.AssertExpectations(t)
	})

	t.Run("create without name does not save", func(t *testing.T) {
		repository := &mockMenuGroupRepository{}
		service := application.NewMenuGroupService(repository)

		_, err := service.Create(ctx, application.MenuGroupRequest{Name: ""})
		assert.ErrorIs(t, err, domain.ErrInvalidArgument)
		repository.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("find all", func(t *testing.T) {
		groups := []domain.MenuGroup{domain.NewMenuGroup("두마리메뉴"), domain.NewMenuGroup("한마리메뉴")}
		repository := &mockMenuGroupRepository{}
		repository.On("FindAll", ctx).Return(groups, nil).Once()
		service := application.NewMenuGroupService(repository)

		all, err := service.FindAll(ctx)
		assert.Nil(t, err)
		assert.Equal(t, groups, all)
		repository.AssertExpectations(t)
	})
}
