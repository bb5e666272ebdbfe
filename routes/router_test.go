package routes_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Modeva-Ecommerce/storefront-api/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealth_WithoutBackends(t *testing.T) {
	env := testutil.Setup(t)

	w := env.Do(http.MethodGet, "/health", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	var checks map[string]string
	testutil.Decode(t, w, &checks)
	assert.Equal(t, "not_configured", checks["database"])
	assert.Equal(t, "not_configured", checks["redis"])
}

func TestCORS_ExposesDownloadHeaders(t *testing.T) {
	env := testutil.Setup(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/store/collections", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	w := httptest.NewRecorder()
	env.Router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, w.Header().Get("Access-Control-Expose-Headers"), "Content-Disposition")
}

func TestEnvelope_CarriesRequestedEntity(t *testing.T) {
	env := testutil.Setup(t)

	w := env.Do(http.MethodGet, "/api/v1/store/collections", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	resp := testutil.Decode(t, w, nil)
	assert.Equal(t, "GET /api/v1/store/collections", resp.RequestedEntity)
}
