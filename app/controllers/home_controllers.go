package controllers

import (
	"net/http"

	"github.com/morehouse/pizzashack/pkg/ctx"
)

const Greeting = "Hello from the Morehouse Pizza Shack website!"

type HomeController struct{}

func NewHomeController() *HomeController {
	return &HomeController{}
}

func (h *HomeController) Index(c *ctx.Context) {
	c.String(http.StatusOK, Greeting)
}
