package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Modeva-Ecommerce/storefront-api/models"
	"github.com/Modeva-Ecommerce/storefront-api/services"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func staffRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	require.NoError(t, services.InitJWTService("middleware-test-secret", time.Hour))

	r := gin.New()
	r.GET("/me", AuthMiddleware(), func(c *gin.Context) {
		userID, _ := GetUserIDFromContext(c)
		c.String(http.StatusOK, userID.String())
	})
	r.POST("/admin", AuthMiddleware(), RequireStaff(), func(c *gin.Context) {
		c.Status(http.StatusCreated)
	})
	return r
}

func TestAuthMiddleware(t *testing.T) {
	r := staffRouter(t)
	userID := uuid.New()
	token, err := services.GenerateUserJWT(userID.String(), "jane@example.com", false)
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
		cookie string
		want   int
	}{
		{name: "missing credentials", want: http.StatusUnauthorized},
		{name: "malformed header", header: "Token " + token, want: http.StatusUnauthorized},
		{name: "garbage token", header: "Bearer not-a-jwt", want: http.StatusUnauthorized},
		{name: "bearer token", header: "Bearer " + token, want: http.StatusOK},
		{name: "cookie token", cookie: token, want: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: "auth_token", Value: tt.cookie})
			}

			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, tt.want, w.Code)
			if tt.want == http.StatusOK {
				assert.Equal(t, userID.String(), w.Body.String())
			}
		})
	}
}

func TestRequireStaff(t *testing.T) {
	r := staffRouter(t)

	customer, err := services.GenerateUserJWT(uuid.NewString(), "jane@example.com", false)
	require.NoError(t, err)
	staff, err := services.GenerateUserJWT(uuid.NewString(), "staff@example.com", true)
	require.NoError(t, err)

	for token, want := range map[string]int{customer: http.StatusForbidden, staff: http.StatusCreated} {
		req := httptest.NewRequest(http.MethodPost, "/admin", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, want, w.Code)
	}
}

func TestResolveResource(t *testing.T) {
	tests := []struct {
		path         string
		resourceType string
		idParam      string
	}{
		{"/api/v1/store/products", models.ResourceTypeProduct, ""},
		{"/api/v1/store/products/:id", models.ResourceTypeProduct, "id"},
		{"/api/v1/store/products/:id/reviews/:review_id", models.ResourceTypeReview, "review_id"},
		{"/api/v1/store/products/:id/reviews", models.ResourceTypeReview, ""},
		{"/api/v1/store/collections/:id", models.ResourceTypeCollection, "id"},
		{"/api/v1/store/customers/me", models.ResourceTypeCustomer, ""},
		{"/api/v1/store/orders/:id", models.ResourceTypeOrder, "id"},
		{"/api/v1/store/carts/:id", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			resourceType, idParam := resolveResource(tt.path)
			assert.Equal(t, tt.resourceType, resourceType)
			assert.Equal(t, tt.idParam, idParam)
		})
	}
}
