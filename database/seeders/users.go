package seeders

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/morehouse/pizzashack/app/models"
	"github.com/morehouse/pizzashack/pkg/logger"
	"github.com/morehouse/pizzashack/pkg/metrics"
)

func init() {
	Register("users", SeedUsers)
}

var seedNames = []string{
	"alice", "bob", "charlie", "david", "eve",
	"frank", "grace", "hannah", "ian", "jane",
}

// DemoUsers returns the ten demo accounts, alternating customer and employee
// starting with alice.
func DemoUsers() []models.User {
	users := make([]models.User, 0, len(seedNames))
	for i, name := range seedNames {
		kind := models.TypeCustomer
		if i%2 == 1 {
			kind = models.TypeEmployee
		}
		users = append(users, models.User{
			Email:    name + "@example.com",
			Password: name + "123",
			Type:     kind,
		})
	}
	return users
}

// SeedUsers inserts each demo account on its own. A row that conflicts with
// existing data is logged and skipped.
func SeedUsers(ctx context.Context, db *gorm.DB) error {
	var errs []error
	for _, u := range DemoUsers() {
		if err := db.WithContext(ctx).Create(&u).Error; err != nil {
			metrics.SeedRows.WithLabelValues("failed").Inc()
			logger.Warn("seed: insert user", "email", u.Email, "error", err)
			errs = append(errs, fmt.Errorf("%s: %w", u.Email, err))
			continue
		}
		metrics.SeedRows.WithLabelValues("inserted").Inc()
	}
	return errors.Join(errs...)
}
