package application

import (
	"context"
	"fmt"
	"github.com/reuben-baek/kitchenpos/domain"
)

type MenuGroupService struct {
	menuGroupRepository domain.MenuGroupRepository
}

func NewMenuGroupService(menuGroupRepository domain.MenuGroupRepository) *MenuGroupService {
	return &MenuGroupService{menuGroupRepository: menuGroupRepository}
}

func (s *MenuGroupService) Create(ctx context.Context, request MenuGroupRequest) (domain.MenuGroup, error) {
	if request.Name == "" {
		return domain.MenuGroup{}, fmt.Errorf("%w: name is required", domain.ErrInvalidArgument)
	}
	return s.menuGroupRepository.Save(ctx, domain.NewMenuGroup(request.Name))
}

func (s *MenuGroupService) FindAll(ctx context.Context) ([]domain.MenuGroup, error) {
	return s.menuGroupRepository.FindAll(ctx)
}
