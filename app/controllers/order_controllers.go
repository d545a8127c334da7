package controllers

import (
	"net/http"

	"github.com/morehouse/pizzashack/app/services"
	"github.com/morehouse/pizzashack/pkg/ctx"
)

// Order endpoints report store failures as 400.
type OrderController struct {
	service *services.OrderService
}

func NewOrderController(service *services.OrderService) *OrderController {
	return &OrderController{service: service}
}

// Store handles POST /orders.
func (h *OrderController) Store(c *ctx.Context) {
	var in services.OrderInput
	if !c.BindJSON(&in) {
		return
	}

	id, err := h.service.Create(c.Context(), in)
	if err != nil {
		c.Fail(err, http.StatusBadRequest)
		return
	}
	c.OK(map[string]int64{"orderID": id})
}

// Show handles GET /orders/{id}, where id is a customer's userID.
func (h *OrderController) Show(c *ctx.Context) {
	customerID, err := c.ParamID("id")
	if err != nil {
		c.Fail(err, http.StatusBadRequest)
		return
	}

	order, err := h.service.FindByCustomer(c.Context(), customerID)
	if err != nil {
		c.Fail(err, http.StatusBadRequest)
		return
	}
	c.OK(order)
}

// Index handles GET /orders.
func (h *OrderController) Index(c *ctx.Context) {
	orders, err := h.service.All(c.Context())
	if err != nil {
		c.Fail(err, http.StatusBadRequest)
		return
	}
	c.OK(orders)
}

// Update handles PUT /orders/{id}.
func (h *OrderController) Update(c *ctx.Context) {
	id, err := c.ParamID("id")
	if err != nil {
		c.Fail(err, http.StatusBadRequest)
		return
	}

	var in services.OrderInput
	if !c.BindJSON(&in) {
		return
	}

	if _, err := h.service.Update(c.Context(), id, in); err != nil {
		c.Fail(err, http.StatusBadRequest)
		return
	}
	c.OK(map[string]string{"message": services.MsgOrderUpdated})
}

// Destroy handles DELETE /orders/{id}.
func (h *OrderController) Destroy(c *ctx.Context) {
	id, err := c.ParamID("id")
	if err != nil {
		c.Fail(err, http.StatusBadRequest)
		return
	}

	if _, err := h.service.Delete(c.Context(), id); err != nil {
		c.Fail(err, http.StatusBadRequest)
		return
	}
	c.OK(map[string]string{"message": services.MsgOrderDeleted})
}
