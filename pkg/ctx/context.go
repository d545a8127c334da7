// Package ctx provides the request context handed to controllers.
//
//	func (c *OrderController) Show(x *ctx.Context) {
//	    id, err := x.ParamID("id")
//	    ...
//	    x.OK(order)
//	}
//
//	r.Get("/orders/{id}", "orders.show", ctx.Wrap(c.Show))
package ctx

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"sync"

	"github.com/go-chi/chi/v5"

	"github.com/morehouse/pizzashack/pkg/apperror"
	"github.com/morehouse/pizzashack/pkg/bind"
	"github.com/morehouse/pizzashack/pkg/logger"
	"github.com/morehouse/pizzashack/pkg/response"
)

// HandlerFunc is the controller handler signature.
type HandlerFunc func(c *Context)

// Wrap adapts a HandlerFunc to http.HandlerFunc.
func Wrap(h HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := acquire(w, r)
		defer release(c)
		h(c)
	}
}

// Context wraps a request/response pair.
type Context struct {
	W      http.ResponseWriter
	R      *http.Request
	status int
}

var pool = sync.Pool{
	New: func() any { return &Context{} },
}

func acquire(w http.ResponseWriter, r *http.Request) *Context {
	c := pool.Get().(*Context)
	c.W = w
	c.R = r
	c.status = 0
	return c
}

func release(c *Context) {
	c.W = nil
	c.R = nil
	pool.Put(c)
}

// Param returns a URL path parameter.
func (c *Context) Param(key string) string {
	return chi.URLParam(c.R, key)
}

// ParamID parses a path parameter as a decimal identifier.
func (c *Context) ParamID(key string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(key), 10, 64)
	if err != nil {
		return 0, apperror.ErrInvalidID
	}
	return id, nil
}

func (c *Context) Context() context.Context { return c.R.Context() }

// Log returns the request-scoped logger.
func (c *Context) Log() *slog.Logger { return logger.WithCtx(c.R.Context()) }

// BindJSON decodes the body into dest. A malformed body gets a 400 and
// BindJSON returns false.
func (c *Context) BindJSON(dest any) bool {
	if err := bind.JSON(c.R, dest); err != nil {
		c.Error(http.StatusBadRequest, err.Error())
		return false
	}
	return true
}

func (c *Context) JSON(code int, v any) {
	c.status = code
	response.JSON(c.W, code, v)
}

// OK writes v with status 200.
func (c *Context) OK(v any) {
	c.JSON(http.StatusOK, v)
}

func (c *Context) String(code int, format string, args ...any) {
	c.status = code
	response.Text(c.W, code, format, args...)
}

func (c *Context) Error(code int, message string) {
	c.status = code
	response.Error(c.W, code, message)
}

// Fail writes err. Boundary errors become 400; anything else is treated as a
// store error and written with storeStatus and its message unchanged.
func (c *Context) Fail(err error, storeStatus int) {
	if ve, ok := apperror.AsValidation(err); ok {
		c.status = http.StatusBadRequest
		response.ValidationError(c.W, http.StatusBadRequest, ve.Message, ve.Fields)
		return
	}
	if errors.Is(err, apperror.ErrInvalidID) {
		c.Error(http.StatusBadRequest, err.Error())
		return
	}

	c.Log().Warn("store error", "path", c.R.URL.Path, "error", err)
	c.Error(storeStatus, err.Error())
}

// WrittenStatus returns the status written so far, or 0.
func (c *Context) WrittenStatus() int { return c.status }
