package routes_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/morehouse/pizzashack/app/models"
	"github.com/morehouse/pizzashack/app/routes"
	"github.com/morehouse/pizzashack/database/seeders"
	"github.com/morehouse/pizzashack/pkg/app"
	"github.com/morehouse/pizzashack/pkg/testkit"
)

func seededHandler(t *testing.T) http.Handler {
	t.Helper()
	application := app.New(testkit.NewDB(t)).
		Routes(routes.RegisterAPI).
		Seeders(seeders.RunAll)
	require.NoError(t, application.Seed(context.Background()))
	return application.Handler()
}

func TestAPIScenarios(t *testing.T) {
	testkit.RunDir(t, seededHandler(t), "testdata")
}

func TestListOrdersReturnsEveryRow(t *testing.T) {
	h := seededHandler(t)

	for _, body := range []string{
		`{"orderStatus":"pending","orderPaymentType":"cash","orderDeliveryAddress":"a","orderPizza":"margherita","userIDCustomer":1,"userIDEmployee":2}`,
		`{"orderStatus":"pending","orderPaymentType":"cash","orderDeliveryAddress":"b","orderPizza":"pepperoni","userIDCustomer":3,"userIDEmployee":4}`,
		`{"orderStatus":"pending","orderPaymentType":"card","orderDeliveryAddress":"c","orderPizza":"veggie","userIDCustomer":5,"userIDEmployee":6}`,
	} {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(body)))
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/orders", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var orders []models.Order
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &orders))

	pizzas := make([]string, 0, len(orders))
	for _, o := range orders {
		pizzas = append(pizzas, o.Pizza)
	}
	assert.ElementsMatch(t, []string{"margherita", "pepperoni", "veggie"}, pizzas)
}

func TestListOrdersEmptyIsArray(t *testing.T) {
	rec := httptest.NewRecorder()
	seededHandler(t).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/orders", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestTrailingSlashIsIgnored(t *testing.T) {
	h := seededHandler(t)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/user/",
		strings.NewReader(`{"userEmail":"kim@example.com","userPassword":"kim123","userType":"customer"}`)))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.JSONEq(t, `{"message":"User created","userID":11}`, rec.Body.String())

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/orders/", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/user/1/", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"userEmail":"alice@example.com"`)
}

func TestWhitespaceEmailIsStored(t *testing.T) {
	h := seededHandler(t)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/user",
		strings.NewReader(`{"userEmail":"   ","userPassword":"blank123","userType":"customer"}`)))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/user/11", nil))
	assert.Contains(t, rec.Body.String(), `"userEmail":"   "`)
}

func TestRouteTable(t *testing.T) {
	application := app.New(testkit.NewDB(t)).Routes(routes.RegisterAPI)

	var got []string
	for _, ri := range application.RouteList() {
		got = append(got, ri.Method+" "+ri.Path)
	}
	assert.Subset(t, got, []string{
		"GET /",
		"POST /user",
		"GET /user/{id}",
		"PUT /user/{id}",
		"DELETE /user/{id}",
		"POST /auth/login",
		"POST /orders",
		"GET /orders",
		"GET /orders/{id}",
		"PUT /orders/{id}",
		"DELETE /orders/{id}",
		"GET /health",
	})
}
