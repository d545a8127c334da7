package services

import (
	"context"

	"github.com/morehouse/pizzashack/app/models"
	"github.com/morehouse/pizzashack/app/repositories"
	"github.com/morehouse/pizzashack/pkg/apperror"
	"github.com/morehouse/pizzashack/pkg/validate"
)

const (
	MsgIncompleteUser = "Please provide full user data"
	MsgUserCreated    = "User created"
	MsgUserUpdated    = "User updated"
	MsgUserDeleted    = "User deleted"
)

// UserStore is the store access UserService and AuthService need.
type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	FindByID(ctx context.Context, id int64) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Update(ctx context.Context, id int64, c repositories.UserChanges) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

type CreateUserInput struct {
	Email    string `json:"userEmail"    validate:"required"`
	Password string `json:"userPassword" validate:"required"`
	Type     string `json:"userType"     validate:"required"`
}

// UpdateUserInput is a full-record overwrite. Omitted fields are sent to the
// store as NULL.
type UpdateUserInput struct {
	Email    *string `json:"userEmail"`
	Password *string `json:"userPassword"`
	Type     *string `json:"userType"`
}

type UserService struct {
	users UserStore
}

func NewUserService(users UserStore) *UserService {
	return &UserService{users: users}
}

// Create stores a new user and returns its id.
func (s *UserService) Create(ctx context.Context, in CreateUserInput) (int64, error) {
	if errs := validate.Struct(in); validate.HasErrors(errs) {
		return 0, apperror.NewValidation(MsgIncompleteUser, errs)
	}

	user := &models.User{Email: in.Email, Password: in.Password, Type: in.Type}
	if err := s.users.Create(ctx, user); err != nil {
		return 0, err
	}
	return user.ID, nil
}

// Find returns the user or nil when id is unknown.
func (s *UserService) Find(ctx context.Context, id int64) (*models.User, error) {
	return s.users.FindByID(ctx, id)
}

// Update returns the number of rows changed; 0 means id is unknown.
func (s *UserService) Update(ctx context.Context, id int64, in UpdateUserInput) (int64, error) {
	return s.users.Update(ctx, id, repositories.UserChanges{
		Email:    in.Email,
		Password: in.Password,
		Type:     in.Type,
	})
}

func (s *UserService) Delete(ctx context.Context, id int64) (int64, error) {
	return s.users.Delete(ctx, id)
}
