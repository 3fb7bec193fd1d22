package mongo

import (
	"fmt"
	"github.com/google/uuid"
	"github.com/reuben-baek/kitchenpos/domain"
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type productDocument struct {
	ID    string               `bson:"_id"`
	Name  string               `bson:"name"`
	Price primitive.Decimal128 `bson:"price"`
}

func (p productDocument) key() string { return p.ID }

func (p productDocument) model() (domain.Product, error) {
	id, err := parseID("_id", p.ID)
	if err != nil {
		return domain.Product{}, err
	}
	price, err := fromDecimal128(p.Price)
	if err != nil {
		return domain.Product{}, err
	}
	return domain.Product{ID: id, Name: p.Name, Price: price}, nil
}

func (p productDocument) From(m domain.Product) any {
	return productDocument{
		ID:    m.ID.String(),
		Name:  m.Name,
		Price: toDecimal128(m.Price),
	}
}

type menuGroupDocument struct {
	ID   string `bson:"_id"`
	Name string `bson:"name"`
}

func (g menuGroupDocument) key() string { return g.ID }

func (g menuGroupDocument) model() (domain.MenuGroup, error) {
	id, err := parseID("_id", g.ID)
	if err != nil {
		return domain.MenuGroup{}, err
	}
	return domain.MenuGroup{ID: id, Name: g.Name}, nil
}

func (g menuGroupDocument) From(m domain.MenuGroup) any {
	return menuGroupDocument{
		ID:   m.ID.String(),
		Name: m.Name,
	}
}

type menuDocument struct {
	ID           string                `bson:"_id"`
	Name         string                `bson:"name"`
	Price        primitive.Decimal128  `bson:"price"`
	MenuGroupID  string                `bson:"menu_group_id"`
	Displayed    bool                  `bson:"displayed"`
	MenuProducts []menuProductDocument `bson:"menu_products"`
}

type menuProductDocument struct {
	Seq       int64  `bson:"seq"`
	ProductID string `bson:"product_id"`
	Quantity  int64  `bson:"quantity"`
}

func (m menuDocument) key() string { return m.ID }

func (m menuDocument) model() (domain.Menu, error) {
	id, err := parseID("_id", m.ID)
	if err != nil {
		return domain.Menu{}, err
	}
	menuGroupID, err := parseID("menu_group_id", m.MenuGroupID)
	if err != nil {
		return domain.Menu{}, err
	}
	price, err := fromDecimal128(m.Price)
	if err != nil {
		return domain.Menu{}, err
	}
	menuProducts := make([]domain.MenuProduct, 0, len(m.MenuProducts))
	for _, mp := range m.MenuProducts {
		productID, err := parseID("menu_products.product_id", mp.ProductID)
		if err != nil {
			return domain.Menu{}, err
		}
		menuProducts = append(menuProducts, domain.MenuProduct{
			Seq:       mp.Seq,
			ProductID: productID,
			Quantity:  mp.Quantity,
		})
	}
	return domain.Menu{
		ID:           id,
		Name:         m.Name,
		Price:        price,
		MenuGroupID:  menuGroupID,
		Displayed:    m.Displayed,
		MenuProducts: menuProducts,
	}, nil
}

// From numbers menu products by position since documents embed them.
func (m menuDocument) From(menu domain.Menu) any {
	menuProducts := make([]menuProductDocument, 0, len(menu.MenuProducts))
	for i, mp := range menu.MenuProducts {
		menuProducts = append(menuProducts, menuProductDocument{
			Seq:       int64(i + 1),
			ProductID: mp.ProductID.String(),
			Quantity:  mp.Quantity,
		})
	}
	return menuDocument{
		ID:           menu.ID.String(),
		Name:         menu.Name,
		Price:        toDecimal128(menu.Price),
		MenuGroupID:  menu.MenuGroupID.String(),
		Displayed:    menu.Displayed,
		MenuProducts: menuProducts,
	}
}

func toDecimal128(d decimal.Decimal) primitive.Decimal128 {
	v, err := primitive.ParseDecimal128(d.String())
	if err != nil {
		panic(err)
	}
	return v
}

func fromDecimal128(v primitive.Decimal128) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(v.String())
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("price %s: %w", v, err)
	}
	return d, nil
}

func parseID(field, value string) (uuid.UUID, error) {
	id, err := uuid.Parse(value)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s %q: %w", field, value, err)
	}
	return id, nil
}
