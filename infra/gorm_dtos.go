package infra

import (
	"github.com/google/uuid"
	"github.com/reuben-baek/kitchenpos/domain"
	"github.com/shopspring/decimal"
)

type Product struct {
	ID    uuid.UUID       `gorm:"type:char(36);primaryKey;column:id"`
	Name  string          `gorm:"not null;column:name"`
	Price decimal.Decimal `gorm:"type:text;not null;column:price"`
}

func (Product) TableName() string { return "product" }

func (p Product) To() domain.Product {
	return domain.Product{
		ID:    p.ID,
		Name:  p.Name,
		Price: p.Price,
	}
}

func (p Product) From(m domain.Product) any {
	return Product{
		ID:    m.ID,
		Name:  m.Name,
		Price: m.Price,
	}
}

type MenuGroup struct {
	ID   uuid.UUID `gorm:"type:char(36);primaryKey;column:id"`
	Name string    `gorm:"not null;column:name"`
}

func (MenuGroup) TableName() string { return "menu_group" }

func (g MenuGroup) To() domain.MenuGroup {
	return domain.MenuGroup{
		ID:   g.ID,
		Name: g.Name,
	}
}

func (g MenuGroup) From(m domain.MenuGroup) any {
	return MenuGroup{
		ID:   m.ID,
		Name: m.Name,
	}
}

type Menu struct {
	ID           uuid.UUID       `gorm:"type:char(36);primaryKey;column:id"`
	Name         string          `gorm:"not null;column:name"`
	Price        decimal.Decimal `gorm:"type:text;not null;column:price"`
	MenuGroupID  uuid.UUID       `gorm:"type:char(36);not null;index;column:menu_group_id"`
	Displayed    bool            `gorm:"not null;column:displayed"`
	MenuProducts []MenuProduct   `gorm:"foreignKey:MenuID" fetch:"eager"`
}

func (Menu) TableName() string { return "menu" }

func (m Menu) To() domain.Menu {
	menuProducts := make([]domain.MenuProduct, 0, len(m.MenuProducts))
	for _, mp := range m.MenuProducts {
		menuProducts = append(menuProducts, mp.To())
	}
	return domain.Menu{
		ID:           m.ID,
		Name:         m.Name,
		Price:        m.Price,
		MenuGroupID:  m.MenuGroupID,
		Displayed:    m.Displayed,
		MenuProducts: menuProducts,
	}
}

func (m Menu) From(menu domain.Menu) any {
	menuProducts := make([]MenuProduct, 0, len(menu.MenuProducts))
	for _, mp := range menu.MenuProducts {
		menuProducts = append(menuProducts, MenuProduct{
			Seq:       mp.Seq,
			MenuID:    menu.ID,
			ProductID: mp.ProductID,
			Quantity:  mp.Quantity,
		})
	}
	return Menu{
		ID:           menu.ID,
		Name:         menu.Name,
		Price:        menu.Price,
		MenuGroupID:  menu.MenuGroupID,
		Displayed:    menu.Displayed,
		MenuProducts: menuProducts,
	}
}

type MenuProduct struct {
	Seq       int64     `gorm:"primaryKey;autoIncrement;column:seq"`
	MenuID    uuid.UUID `gorm:"type:char(36);not null;index;column:menu_id"`
	ProductID uuid.UUID `gorm:"type:char(36);not null;index;column:product_id"`
	Quantity  int64     `gorm:"not null;column:quantity"`
}

func (MenuProduct) TableName() string { return "menu_product" }

func (mp MenuProduct) To() domain.MenuProduct {
	return domain.MenuProduct{
		Seq:       mp.Seq,
		ProductID: mp.ProductID,
		Quantity:  mp.Quantity,
	}
}

// Models lists the tables to migrate.
func Models() []any {
	return []any{&Product{}, &MenuGroup{}, &Menu{}, &MenuProduct{}}
}
