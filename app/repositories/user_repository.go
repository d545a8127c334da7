package repositories

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/morehouse/pizzashack/app/models"
	"github.com/morehouse/pizzashack/pkg/metrics"
)

// UserChanges carries a full-record user update. A nil field is written as
// NULL.
type UserChanges struct {
	Email    *string
	Password *string
	Type     *string
}

// UserRepository handles database operations for User.
type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create persists a new user and sets its ID.
func (r *UserRepository) Create(ctx context.Context, user *models.User) (err error) {
	defer metrics.ObserveDBQuery("user", "insert", time.Now(), &err)
	return r.db.WithContext(ctx).Create(user).Error
}

// FindByID looks up a user by primary key. It returns nil, nil when no row
// matches.
func (r *UserRepository) FindByID(ctx context.Context, id int64) (_ *models.User, err error) {
	defer metrics.ObserveDBQuery("user", "select", time.Now(), &err)
	return takeUser(r.db.WithContext(ctx).Where(map[string]any{"userID": id}))
}

// FindByEmail looks up a user by email address. It returns nil, nil when no
// row matches.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (_ *models.User, err error) {
	defer metrics.ObserveDBQuery("user", "select", time.Now(), &err)
	return takeUser(r.db.WithContext(ctx).Where(map[string]any{"userEmail": email}))
}

// Update overwrites every column of the user and returns the number of rows
// changed.
func (r *UserRepository) Update(ctx context.Context, id int64, c UserChanges) (_ int64, err error) {
	defer metrics.ObserveDBQuery("user", "update", time.Now(), &err)
	res := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where(map[string]any{"userID": id}).
		Updates(map[string]any{
			"userEmail":    nullable(c.Email),
			"userPassword": nullable(c.Password),
			"userType":     nullable(c.Type),
		})
	return res.RowsAffected, res.Error
}

// Delete removes the user; orders naming it as employee go with it.
func (r *UserRepository) Delete(ctx context.Context, id int64) (_ int64, err error) {
	defer metrics.ObserveDBQuery("user", "delete", time.Now(), &err)
	res := r.db.WithContext(ctx).Where(map[string]any{"userID": id}).Delete(&models.User{})
	return res.RowsAffected, res.Error
}

func takeUser(q *gorm.DB) (*models.User, error) {
	var user models.User
	err := q.Take(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// nullable turns a nil pointer into an untyped nil so the column is set to
// NULL.
func nullable[T any](p *T) any {
	if p == nil {
		return nil
	}
	return *p
}
