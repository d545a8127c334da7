package services

import (
	"context"

	"github.com/morehouse/pizzashack/app/models"
	"github.com/morehouse/pizzashack/pkg/apperror"
	"github.com/morehouse/pizzashack/pkg/validate"
)

const (
	MsgIncompleteOrder = "Please provide full order data"
	MsgOrderUpdated    = "Order updated successfully"
	MsgOrderDeleted    = "Order deleted successfully"
)

type OrderStore interface {
	Create(ctx context.Context, order *models.Order) error
	FindOneByCustomer(ctx context.Context, customerID int64) (*models.Order, error)
	All(ctx context.Context) ([]models.Order, error)
	Update(ctx context.Context, id int64, order *models.Order) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

// OrderInput is the body of order create and update. Optional fields left
// out are stored as NULL.
type OrderInput struct {
	Status           string  `json:"orderStatus"           validate:"required"`
	PaymentType      string  `json:"orderPaymentType"      validate:"required"`
	CreditCardNumber *string `json:"orderCreditCardNumber"`
	DeliveryAddress  string  `json:"orderDeliveryAddress"  validate:"required"`
	Pizza            string  `json:"orderPizza"            validate:"required"`
	Comment          *string `json:"orderComment"`
	CustomerName     *string `json:"userName"`
	CustomerUserID   *int64  `json:"userIDCustomer"`
	EmployeeUserID   *int64  `json:"userIDEmployee"`
}

func (in OrderInput) model() *models.Order {
	return &models.Order{
		Status:           in.Status,
		PaymentType:      in.PaymentType,
		CreditCardNumber: in.CreditCardNumber,
		DeliveryAddress:  in.DeliveryAddress,
		Pizza:            in.Pizza,
		Comment:          in.Comment,
		CustomerName:     in.CustomerName,
		CustomerUserID:   in.CustomerUserID,
		EmployeeUserID:   in.EmployeeUserID,
	}
}

func (in OrderInput) check() error {
	if errs := validate.Struct(in); validate.HasErrors(errs) {
		return apperror.NewValidation(MsgIncompleteOrder, errs)
	}
	return nil
}

type OrderService struct {
	orders OrderStore
}

func NewOrderService(orders OrderStore) *OrderService {
	return &OrderService{orders: orders}
}

func (s *OrderService) Create(ctx context.Context, in OrderInput) (int64, error) {
	if err := in.check(); err != nil {
		return 0, err
	}
	order := in.model()
	if err := s.orders.Create(ctx, order); err != nil {
		return 0, err
	}
	return order.ID, nil
}

// FindByCustomer returns one order placed by the customer, the one with the
// lowest id, or nil.
func (s *OrderService) FindByCustomer(ctx context.Context, customerID int64) (*models.Order, error) {
	return s.orders.FindOneByCustomer(ctx, customerID)
}

func (s *OrderService) All(ctx context.Context) ([]models.Order, error) {
	return s.orders.All(ctx)
}

// Update overwrites every mutable field of the order.
func (s *OrderService) Update(ctx context.Context, id int64, in OrderInput) (int64, error) {
	if err := in.check(); err != nil {
		return 0, err
	}
	return s.orders.Update(ctx, id, in.model())
}

func (s *OrderService) Delete(ctx context.Context, id int64) (int64, error) {
	return s.orders.Delete(ctx, id)
}
