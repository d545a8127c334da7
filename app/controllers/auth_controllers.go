package controllers

import (
	"net/http"

	"github.com/morehouse/pizzashack/app/services"
	"github.com/morehouse/pizzashack/pkg/ctx"
)

type AuthController struct {
	service *services.AuthService
}

func NewAuthController(service *services.AuthService) *AuthController {
	return &AuthController{service: service}
}

// Login handles POST /auth/login. A failed check is still a 200 with
// success=false.
func (h *AuthController) Login(c *ctx.Context) {
	var in services.LoginInput
	if !c.BindJSON(&in) {
		return
	}

	res, err := h.service.Login(c.Context(), in)
	if err != nil {
		c.Fail(err, http.StatusInternalServerError)
		return
	}
	c.OK(res)
}
