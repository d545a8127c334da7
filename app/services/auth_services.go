package services

import (
	"context"

	"github.com/morehouse/pizzashack/app/models"
	"github.com/morehouse/pizzashack/pkg/apperror"
	"github.com/morehouse/pizzashack/pkg/logger"
	"github.com/morehouse/pizzashack/pkg/validate"
)

const (
	MsgIncompleteLogin = "Please provide email and password."
	MsgLoginOK         = "Authentication successful!"
	MsgLoginFailed     = "Incorrect email or password."
)

type LoginInput struct {
	Email    string `json:"userEmail"    validate:"required"`
	Password string `json:"userPassword" validate:"required"`
}

// LoginResult is the outcome of a credential check. User is set only on
// success.
type LoginResult struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	User    *models.User `json:"user,omitempty"`
}

type AuthService struct {
	users UserStore
}

func NewAuthService(users UserStore) *AuthService {
	return &AuthService{users: users}
}

// Login compares the stored password with the supplied one. Unknown email and
// wrong password produce the same result.
func (s *AuthService) Login(ctx context.Context, in LoginInput) (LoginResult, error) {
	if errs := validate.Struct(in); validate.HasErrors(errs) {
		return LoginResult{}, apperror.NewValidation(MsgIncompleteLogin, errs)
	}

	user, err := s.users.FindByEmail(ctx, in.Email)
	if err != nil {
		return LoginResult{}, err
	}
	if user == nil || user.Password != in.Password {
		logger.WithCtx(ctx).Info("login rejected", "email", in.Email)
		return LoginResult{Success: false, Message: MsgLoginFailed}, nil
	}

	return LoginResult{Success: true, Message: MsgLoginOK, User: user}, nil
}
