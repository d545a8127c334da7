package models

// Order is a pizza order. Deleting the assigned employee deletes the order;
// the customer reference has no delete action.
type Order struct {
	ID               int64   `gorm:"column:orderID;primaryKey;autoIncrement" json:"orderID"`
	Status           string  `gorm:"column:orderStatus;not null"             json:"orderStatus"`
	PaymentType      string  `gorm:"column:orderPaymentType;not null"        json:"orderPaymentType"`
	CreditCardNumber *string `gorm:"column:orderCreditCardNumber"            json:"orderCreditCardNumber"`
	DeliveryAddress  string  `gorm:"column:orderDeliveryAddress;not null"    json:"orderDeliveryAddress"`
	Pizza            string  `gorm:"column:orderPizza;not null"              json:"orderPizza"`
	Comment          *string `gorm:"column:orderComment"                     json:"orderComment"`
	CustomerName     *string `gorm:"column:userName"                         json:"userName"`
	CustomerUserID   *int64  `gorm:"column:userIDCustomer"                   json:"userIDCustomer"`
	EmployeeUserID   *int64  `gorm:"column:userIDEmployee"                   json:"userIDEmployee"`

	Customer *User `gorm:"foreignKey:CustomerUserID;references:ID"                             json:"-"`
	Employee *User `gorm:"foreignKey:EmployeeUserID;references:ID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Order) TableName() string { return "orders" }
