package bind_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/morehouse/pizzashack/pkg/bind"
)

type loginInput struct {
	Email    string `json:"userEmail"`
	Password string `json:"userPassword"`
}

func TestJSONValid(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"userEmail":"bob@example.com","userPassword":"bob123"}`))

	var in loginInput
	require.NoError(t, bind.JSON(req, &in))
	assert.Equal(t, "bob@example.com", in.Email)
	assert.Equal(t, "bob123", in.Password)
}

func TestJSONEmptyBodyLeavesZeroValue(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/auth/login", http.NoBody)

	var in loginInput
	require.NoError(t, bind.JSON(req, &in))
	assert.Equal(t, loginInput{}, in)
}

func TestJSONPartialBodyIsNotChecked(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"userEmail":"bob@example.com"}`))

	var in loginInput
	require.NoError(t, bind.JSON(req, &in))
	assert.Empty(t, in.Password)
}

func TestJSONMalformed(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"userEmail":`))

	var in loginInput
	assert.ErrorContains(t, bind.JSON(req, &in), "invalid JSON")
}

func TestJSONTooLarge(t *testing.T) {
	big := `{"userEmail":"` + strings.Repeat("a", 2<<20) + `"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(big))

	var in loginInput
	assert.ErrorContains(t, bind.JSON(req, &in), "too large")
}
