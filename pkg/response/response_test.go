package response_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/morehouse/pizzashack/pkg/response"
)

func TestNilIsNull(t *testing.T) {
	rec := httptest.NewRecorder()
	response.JSON(rec, http.StatusOK, nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `null`, rec.Body.String())
}

func TestErrorEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	response.Error(rec, http.StatusInternalServerError, "UNIQUE constraint failed: user.userEmail")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"UNIQUE constraint failed: user.userEmail"}`, rec.Body.String())
}

func TestValidationErrorFields(t *testing.T) {
	rec := httptest.NewRecorder()
	response.ValidationError(rec, http.StatusBadRequest, "Please provide full user data", map[string]string{
		"userType": "The userType field is required.",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Please provide full user data","fields":{"userType":"The userType field is required."}}`, rec.Body.String())
}
