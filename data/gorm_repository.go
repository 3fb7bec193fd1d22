package data

import (
	"context"
	"errors"
	"fmt"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"reflect"
)

// GormRepository stores T through the session of the current transaction.
// Fields tagged `fetch:"eager"` are preloaded on every read and saved with
// their parent.
type GormRepository[T any, ID comparable] struct {
	transactionManager *GormTransactionManager
}

func NewGormRepository[T any, ID comparable](transactionManager *GormTransactionManager) *GormRepository[T, ID] {
	return &GormRepository[T, ID]{transactionManager: transactionManager}
}

func (u *GormRepository[T, ID]) db(ctx context.Context) *gorm.DB {
	var entity T
	db := u.transactionManager.session(ctx).Model(&entity)
	for _, name := range findEagerAssociations(entity) {
		db = db.Preload(name)
	}
	return db
}

func (u *GormRepository[T, ID]) FindOne(ctx context.Context, id ID) (T, error) {
	var entity T
	if err := u.db(ctx).First(&entity, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entity, NotFoundError
		}
		return entity, err
	}
	return entity, nil
}

func (u *GormRepository[T, ID]) FindAll(ctx context.Context) ([]T, error) {
	entities := []T{}
	if err := u.db(ctx).Find(&entities).Error; err != nil {
		return nil, err
	}
	return entities, nil
}

func (u *GormRepository[T, ID]) FindAllByIDIn(ctx context.Context, ids []ID) ([]T, error) {
	entities := []T{}
	if len(ids) == 0 {
		return entities, nil
	}
	if err := u.db(ctx).Find(&entities, "id IN ?", ids).Error; err != nil {
		return nil, err
	}
	return entities, nil
}

// FindBy matches a column of T, or a column of a has-many child of T joined
// back through the child's <T>ID foreign key.
func (u *GormRepository[T, ID]) FindBy(ctx context.Context, name string, key any) ([]T, error) {
	var entity T
	entities := []T{}
	db := u.db(ctx)
	entityType := reflect.TypeOf(entity)
	owner, _ := findField(entityType, name)
	column := db.NamingStrategy.ColumnName("", name)

	if owner == "" {
		db = db.Where(fmt.Sprintf("%s = ?", column), key)
	} else {
		ownerField, _ := entityType.FieldByName(owner)
		child := reflect.New(ownerField.Type.Elem()).Interface()
		foreignKey := db.NamingStrategy.ColumnName("", entityType.Name()+"ID")
		subQuery := u.transactionManager.session(ctx).Model(child).
			Select(foreignKey).
			Where(fmt.Sprintf("%s = ?", column), key)
		db = db.Where("id IN (?)", subQuery)
	}
	if err := db.Find(&entities).Error; err != nil {
		return nil, err
	}
	logrus.Debugf("GormRepository.FindBy: %s = [%v] found [%d]", name, key, len(entities))
	return entities, nil
}

// Save inserts entity when its ID is new and updates it, associations
// included, otherwise.
func (u *GormRepository[T, ID]) Save(ctx context.Context, entity T) (T, error) {
	var zero T
	id, missing := findID[T, ID](entity)
	if missing {
		panic("entity.ID is missing")
	}
	db := u.transactionManager.session(ctx).Session(&gorm.Session{FullSaveAssociations: true})

	var count int64
	if err := db.Model(&zero).Where("id = ?", id).Count(&count).Error; err != nil {
		return zero, err
	}
	if count == 0 {
		if err := db.Create(&entity).Error; err != nil {
			return zero, err
		}
		return entity, nil
	}
	if err := db.Save(&entity).Error; err != nil {
		return zero, err
	}
	return entity, nil
}
