package models

// User is an account in the `user` relation. Passwords are stored and
// returned as plain text.
type User struct {
	ID       int64  `gorm:"column:userID;primaryKey;autoIncrement" json:"userID"`
	Email    string `gorm:"column:userEmail;unique;not null"       json:"userEmail"`
	Password string `gorm:"column:userPassword;unique;not null"    json:"userPassword"`
	Type     string `gorm:"column:userType;not null"               json:"userType"`
}

func (User) TableName() string { return "user" }

// User types seen in the seed data. The column itself is free-form.
const (
	TypeCustomer = "customer"
	TypeEmployee = "employee"
)
