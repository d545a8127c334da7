package controllers

import (
	"net/http"

	"github.com/morehouse/pizzashack/app/services"
	"github.com/morehouse/pizzashack/pkg/ctx"
)

// User endpoints report store failures as 500.
type UserController struct {
	service *services.UserService
}

func NewUserController(service *services.UserService) *UserController {
	return &UserController{service: service}
}

// Store handles POST /user.
func (h *UserController) Store(c *ctx.Context) {
	var in services.CreateUserInput
	if !c.BindJSON(&in) {
		return
	}

	id, err := h.service.Create(c.Context(), in)
	if err != nil {
		c.Fail(err, http.StatusInternalServerError)
		return
	}
	c.OK(map[string]any{"message": services.MsgUserCreated, "userID": id})
}

// Show handles GET /user/{id}. An unknown id yields null.
func (h *UserController) Show(c *ctx.Context) {
	id, err := c.ParamID("id")
	if err != nil {
		c.Fail(err, http.StatusInternalServerError)
		return
	}

	user, err := h.service.Find(c.Context(), id)
	if err != nil {
		c.Fail(err, http.StatusInternalServerError)
		return
	}
	c.OK(user)
}

// Update handles PUT /user/{id}.
func (h *UserController) Update(c *ctx.Context) {
	id, err := c.ParamID("id")
	if err != nil {
		c.Fail(err, http.StatusInternalServerError)
		return
	}

	var in services.UpdateUserInput
	if !c.BindJSON(&in) {
		return
	}

	changes, err := h.service.Update(c.Context(), id, in)
	if err != nil {
		c.Fail(err, http.StatusInternalServerError)
		return
	}
	c.OK(map[string]any{"message": services.MsgUserUpdated, "changes": changes})
}

// Destroy handles DELETE /user/{id}.
func (h *UserController) Destroy(c *ctx.Context) {
	id, err := c.ParamID("id")
	if err != nil {
		c.Fail(err, http.StatusInternalServerError)
		return
	}

	changes, err := h.service.Delete(c.Context(), id)
	if err != nil {
		c.Fail(err, http.StatusInternalServerError)
		return
	}
	c.OK(map[string]any{"message": services.MsgUserDeleted, "changes": changes})
}
