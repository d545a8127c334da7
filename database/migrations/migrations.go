// Package migrations holds the schema history of the store.
package migrations

import (
	"gorm.io/gorm"

	"github.com/morehouse/pizzashack/app/models"
	"github.com/morehouse/pizzashack/pkg/migration"
)

// All returns every migration in application order.
func All() []migration.Entry {
	return []migration.Entry{
		{Name: "20240101000000_create_user_table", Migration: &CreateUserTable{}},
		{Name: "20240101000001_create_orders_table", Migration: &CreateOrdersTable{}},
	}
}

type CreateUserTable struct{}

func (m *CreateUserTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.User{})
}

func (m *CreateUserTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable(&models.User{})
}

// CreateOrdersTable creates orders with its two foreign keys into user.
type CreateOrdersTable struct{}

func (m *CreateOrdersTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.Order{})
}

func (m *CreateOrdersTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable(&models.Order{})
}
