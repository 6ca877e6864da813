package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PerryB-GIT/sweetmeadow-bakery/auth"
	"github.com/PerryB-GIT/sweetmeadow-bakery/models"
)

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/client/ping", RequireAuth, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": UserID(c)})
	})
	r.GET("/admin/ping", RequireAdmin, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": UserID(c)})
	})
	r.GET("/public/ping", OptionalAuth, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": UserID(c)})
	})
	return r
}

func do(r *gin.Engine, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequireAuthRejectsMissingToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r := newRouter()

	w := do(r, "/client/ping", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuthRejectsGarbageToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r := newRouter()

	w := do(r, "/client/ping", "not-a-jwt")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuthAcceptsValidToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r := newRouter()

	token, err := auth.IssueToken("user-1", models.RoleCustomer)
	require.NoError(t, err)

	w := do(r, "/client/ping", token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "user-1")
}

func TestRequireAdminRejectsCustomerToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r := newRouter()

	token, err := auth.IssueToken("user-1", models.RoleCustomer)
	require.NoError(t, err)

	w := do(r, "/admin/ping", token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Unauthorized")
}

func TestRequireAdminRejectsMissingToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r := newRouter()

	w := do(r, "/admin/ping", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAdminAcceptsAdminToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r := newRouter()

	token, err := auth.IssueToken("admin-1", models.RoleAdmin)
	require.NoError(t, err)

	w := do(r, "/admin/ping", token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "admin-1")
}

func TestRequireAuthRejectsTokenSignedWithWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	token, err := auth.IssueToken("user-1", models.RoleCustomer)
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "rotated-secret")
	r := newRouter()

	w := do(r, "/client/ping", token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestOptionalAuthPassesGuestsThrough(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r := newRouter()

	w := do(r, "/public/ping", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user_id":""`)
}

func TestOptionalAuthAttachesIdentity(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r := newRouter()

	token, err := auth.IssueToken("user-1", models.RoleCustomer)
	require.NoError(t, err)

	w := do(r, "/public/ping", token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "user-1")
}
