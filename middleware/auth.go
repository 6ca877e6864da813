package middleware

import (
	"errors"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/PerryB-GIT/sweetmeadow-bakery/models"
)

// Context keys set by the auth middleware. Every handler reads its caller
// identity from these instead of any process-wide session state.
const (
	CtxUserID = "user_id"
	CtxRole   = "role"
)

func parseToken(tokenString string) (userID string, role models.Role, err error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid token signing method")
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		return "", "", errors.New("invalid or expired token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", "", errors.New("invalid token claims")
	}
	userID, _ = claims["user_id"].(string)
	roleStr, _ := claims["role"].(string)
	if userID == "" {
		return "", "", errors.New("invalid token claims")
	}
	return userID, models.Role(roleStr), nil
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return header
}

// RequireAuth rejects unauthenticated callers and stores the caller identity
// on the request context.
func RequireAuth(c *gin.Context) {
	tokenString := bearerToken(c)
	if tokenString == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is missing"})
		return
	}

	userID, role, err := parseToken(tokenString)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
		return
	}

	c.Set(CtxUserID, userID)
	c.Set(CtxRole, role)
	c.Next()
}

// RequireAdmin additionally checks the ADMIN role.
func RequireAdmin(c *gin.Context) {
	tokenString := bearerToken(c)
	if tokenString == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is missing"})
		return
	}

	userID, role, err := parseToken(tokenString)
	if err != nil || role != models.RoleAdmin {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	c.Set(CtxUserID, userID)
	c.Set(CtxRole, role)
	c.Next()
}

// OptionalAuth attaches the caller identity when a valid token is present
// and lets anonymous requests through. Public storefront endpoints use it to
// branch between guest and member behavior.
func OptionalAuth(c *gin.Context) {
	if tokenString := bearerToken(c); tokenString != "" {
		if userID, role, err := parseToken(tokenString); err == nil {
			c.Set(CtxUserID, userID)
			c.Set(CtxRole, role)
		}
	}
	c.Next()
}

// UserID returns the authenticated caller's id, or "" for guests.
func UserID(c *gin.Context) string {
	v, ok := c.Get(CtxUserID)
	if !ok {
		return ""
	}
	id, _ := v.(string)
	return id
}
