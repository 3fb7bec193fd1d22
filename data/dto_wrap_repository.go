package data

import (
	"context"
)

// DTO maps a storage representation to and from its model M.
type DTO[M any] interface {
	To() M
	From(m M) any
}

type DtoWrapRepository[D DTO[M], M any, ID comparable] struct {
	dtoRepository Repository[D, ID]
}

func NewDtoWrapRepository[D DTO[M], M any, ID comparable](dtoRepository Repository[D, ID]) *DtoWrapRepository[D, M, ID] {
	return &DtoWrapRepository[D, M, ID]{
		dtoRepository: dtoRepository,
	}
}

func (d *DtoWrapRepository[D, M, ID]) FindOne(ctx context.Context, id ID) (M, error) {
	dto, err := d.dtoRepository.FindOne(ctx, id)
	if err != nil {
		var zero M
		return zero, err
	}
	return dto.To(), nil
}

func (d *DtoWrapRepository[D, M, ID]) FindAll(ctx context.Context) ([]M, error) {
	dtos, err := d.dtoRepository.FindAll(ctx)
	return ToModels[D, M](dtos), err
}

func (d *DtoWrapRepository[D, M, ID]) FindAllByIDIn(ctx context.Context, ids []ID) ([]M, error) {
	dtos, err := d.dtoRepository.FindAllByIDIn(ctx, ids)
	return ToModels[D, M](dtos), err
}

func (d *DtoWrapRepository[D, M, ID]) Save(ctx context.Context, entity M) (M, error) {
	var dto D
	dto = dto.From(entity).(D)
	saved, err := d.dtoRepository.Save(ctx, dto)
	if err != nil {
		var zero M
		return zero, err
	}
	return saved.To(), nil
}

type DtoWrapFindByRepository[D DTO[M], M any] struct {
	dtoRepository FindByRepository[D]
}

func NewDtoWrapFindByRepository[D DTO[M], M any](dtoRepository FindByRepository[D]) *DtoWrapFindByRepository[D, M] {
	return &DtoWrapFindByRepository[D, M]{dtoRepository: dtoRepository}
}

func (d *DtoWrapFindByRepository[D, M]) FindBy(ctx context.Context, name string, key any) ([]M, error) {
	dtos, err := d.dtoRepository.FindBy(ctx, name, key)
	return ToModels[D, M](dtos), err
}

func ToModels[D DTO[M], M any](dtos []D) []M {
	models := make([]M, 0, len(dtos))
	for _, v := range dtos {
		models = append(models, v.To())
	}
	return models
}
