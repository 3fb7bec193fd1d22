package data

import (
	"errors"
	"fmt"
	"reflect"
)

var NotFoundError = errors.New("not found")

const (
	fetchTag       = "fetch"
	FetchEagerMode = "eager"
)

func findID[T any, ID comparable](entity T) (ID, bool) {
	valueOfEntity := reflect.Indirect(reflect.ValueOf(entity))
	value := valueOfEntity.FieldByName("ID")
	if !value.IsValid() {
		panic(fmt.Sprintf("Entity '%s' has not ID field", valueOfEntity.Type()))
	}
	if !value.Comparable() {
		panic(fmt.Sprintf("ID field type '%s' of '%s' is not comparable", value.Type(), valueOfEntity.Type()))
	}
	switch id := value.Interface().(type) {
	case ID:
		return id, value.IsZero()
	default:
		panic(fmt.Sprintf("ID field type '%s' of '%s' is different from ID type constraint", value.Type(), valueOfEntity.Type()))
	}
}

// findField resolves name on entityType. When the field lives on the element
// of a has-many slice, owner is that slice field's name.
func findField(entityType reflect.Type, name string) (owner string, field reflect.StructField) {
	if entityType.Kind() == reflect.Pointer {
		entityType = entityType.Elem()
	}
	if f, ok := entityType.FieldByName(name); ok {
		return "", f
	}
	for i := 0; i < entityType.NumField(); i++ {
		f := entityType.Field(i)
		if !f.IsExported() || f.Type.Kind() != reflect.Slice || f.Type.Elem().Kind() != reflect.Struct {
			continue
		}
		if child, ok := f.Type.Elem().FieldByName(name); ok {
			return f.Name, child
		}
	}
	panic(fmt.Sprintf("Entity '%s' has not %s field", entityType, name))
}

func hasFieldValue(entity any, name string, key any) bool {
	valueOfEntity := reflect.Indirect(reflect.ValueOf(entity))
	owner, _ := findField(valueOfEntity.Type(), name)
	if owner == "" {
		return valueOfEntity.FieldByName(name).Interface() == key
	}
	children := valueOfEntity.FieldByName(owner)
	for i := 0; i < children.Len(); i++ {
		if children.Index(i).FieldByName(name).Interface() == key {
			return true
		}
	}
	return false
}

func findEagerAssociations(entity any) []string {
	entityType := reflect.TypeOf(entity)
	if entityType.Kind() == reflect.Pointer {
		entityType = entityType.Elem()
	}
	var names []string
	for i := 0; i < entityType.NumField(); i++ {
		field := entityType.Field(i)
		if field.Tag.Get(fetchTag) == FetchEagerMode {
			names = append(names, field.Name)
		}
	}
	return names
}
