package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio.dev/internal/services"
)

func post(t *testing.T, h http.Handler, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	h.ServeHTTP(rec, req)
	return rec
}

func TestContactAccepted(t *testing.T) {
	rec := post(t, newTestRouter(t), "/api/contact",
		`{"name":"Ada","email":"ada@example.com","message":"Let's build something."}`)
	require.Equal(t, http.StatusOK, rec.Code)

	res := decode[services.ContactResult](t, rec)
	require.NotNil(t, res.Receipt)
	assert.NotEmpty(t, res.Receipt.ID)
	assert.True(t, res.Errors.Empty())
}

func TestContactRejected(t *testing.T) {
	rec := post(t, newTestRouter(t), "/api/contact",
		`{"name":" A ","email":"ada@","message":"hi"}`)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	res := decode[services.ContactResult](t, rec)
	assert.Nil(t, res.Receipt)
	assert.Equal(t, services.ContactErrors{
		Name:    "Name must be at least 2 characters",
		Email:   "Please enter a valid email address",
		Message: "Message must be at least 10 characters",
	}, res.Errors)
}

func TestContactBadBody(t *testing.T) {
	rec := post(t, newTestRouter(t), "/api/contact", `{"name":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid request body")
}

func TestContactWrongMethod(t *testing.T) {
	rec := get(t, newTestRouter(t), "/api/contact")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
