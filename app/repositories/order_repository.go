package repositories

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/morehouse/pizzashack/app/models"
	"github.com/morehouse/pizzashack/pkg/metrics"
)

// OrderRepository handles database operations for Order.
type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

func (r *OrderRepository) Create(ctx context.Context, order *models.Order) (err error) {
	defer metrics.ObserveDBQuery("orders", "insert", time.Now(), &err)
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(order).Error
}

// FindOneByCustomer returns the customer's order with the lowest orderID, or
// nil when the customer has none.
func (r *OrderRepository) FindOneByCustomer(ctx context.Context, customerID int64) (_ *models.Order, err error) {
	defer metrics.ObserveDBQuery("orders", "select", time.Now(), &err)

	var order models.Order
	err = r.db.WithContext(ctx).
		Where(map[string]any{"userIDCustomer": customerID}).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "orderID"}}).
		Take(&order).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// All returns every order. The slice is never nil.
func (r *OrderRepository) All(ctx context.Context) (_ []models.Order, err error) {
	defer metrics.ObserveDBQuery("orders", "select", time.Now(), &err)

	orders := make([]models.Order, 0)
	if err = r.db.WithContext(ctx).Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// Update overwrites every mutable column of the order and returns the number
// of rows changed. userName is fixed at checkout and never rewritten.
func (r *OrderRepository) Update(ctx context.Context, id int64, o *models.Order) (_ int64, err error) {
	defer metrics.ObserveDBQuery("orders", "update", time.Now(), &err)
	res := r.db.WithContext(ctx).
		Model(&models.Order{}).
		Where(map[string]any{"orderID": id}).
		Updates(map[string]any{
			"orderStatus":           o.Status,
			"orderPaymentType":      o.PaymentType,
			"orderCreditCardNumber": nullable(o.CreditCardNumber),
			"orderDeliveryAddress":  o.DeliveryAddress,
			"orderPizza":            o.Pizza,
			"orderComment":          nullable(o.Comment),
			"userIDCustomer":        nullable(o.CustomerUserID),
			"userIDEmployee":        nullable(o.EmployeeUserID),
		})
	return res.RowsAffected, res.Error
}

func (r *OrderRepository) Delete(ctx context.Context, id int64) (_ int64, err error) {
	defer metrics.ObserveDBQuery("orders", "delete", time.Now(), &err)
	res := r.db.WithContext(ctx).Where(map[string]any{"orderID": id}).Delete(&models.Order{})
	return res.RowsAffected, res.Error
}
