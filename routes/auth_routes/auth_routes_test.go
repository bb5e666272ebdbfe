package auth_routes_test

import (
	"net/http"
	"testing"

	"github.com/Modeva-Ecommerce/storefront-api/models"
	"github.com/Modeva-Ecommerce/storefront-api/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterThenLogin(t *testing.T) {
	env := testutil.Setup(t)

	w := env.Do(http.MethodPost, "/api/v1/auth/register", map[string]any{
		"email":      "Jane@Example.com",
		"password":   "s3cret-pass",
		"first_name": "Jane",
	}, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var registered models.AuthResponse
	testutil.Decode(t, w, &registered)
	assert.Equal(t, "jane@example.com", registered.User.Email)
	assert.NotEmpty(t, registered.Token)

	// Registration also creates the customer profile
	w = env.Do(http.MethodGet, "/api/v1/store/customers/me", nil, registered.Token)
	assert.Equal(t, http.StatusOK, w.Code)

	w = env.Do(http.MethodPost, "/api/v1/auth/register", map[string]any{
		"email": "jane@example.com", "password": "another-pass",
	}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = env.Do(http.MethodPost, "/api/v1/auth/login", map[string]any{
		"email": "jane@example.com", "password": "wrong-pass",
	}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = env.Do(http.MethodPost, "/api/v1/auth/login", map[string]any{
		"email": "jane@example.com", "password": "s3cret-pass",
	}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var loggedIn models.AuthResponse
	testutil.Decode(t, w, &loggedIn)
	assert.Equal(t, registered.User.ID, loggedIn.User.ID)
	assert.NotEmpty(t, w.Header().Get("Set-Cookie"))
}

func TestRegisterValidation(t *testing.T) {
	env := testutil.Setup(t)

	w := env.Do(http.MethodPost, "/api/v1/auth/register", map[string]any{
		"email": "not-an-email", "password": "short",
	}, "")
	require.Equal(t, http.StatusBadRequest, w.Code)

	var fields map[string]string
	testutil.Decode(t, w, &fields)
	assert.Contains(t, fields, "email")
	assert.Contains(t, fields, "password")
}

func TestLogoutRevokesToken(t *testing.T) {
	env := testutil.Setup(t)
	env.UseMiniredis()
	user, token := env.CreateUser("jane@example.com", false)
	env.CreateCustomer(user)

	w := env.Do(http.MethodGet, "/api/v1/store/customers/me", nil, token)
	require.Equal(t, http.StatusOK, w.Code)

	w = env.Do(http.MethodPost, "/api/v1/auth/logout", nil, token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = env.Do(http.MethodGet, "/api/v1/store/customers/me", nil, token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = env.Do(http.MethodPost, "/api/v1/auth/logout", nil, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
