// Package middleware carries the gin middlewares for the HTTP surface.
package middleware

import (
	"net/http"
	"strings"

	"hostelhelper/backend/internal/session"

	"github.com/gin-gonic/gin"
)

// Context keys set by the auth middleware.
const (
	CtxStudentID = "student_id"
	CtxIsAdmin   = "is_admin"
)

// RequireStudent validates the bearer token and checks that the session
// pointer is still alive. Requests without a live session get 401.
func RequireStudent(provider *session.Provider) gin.HandlerFunc {
	return func(c *gin.Context) {
		studentID, isAdmin, ok := authenticate(c, provider)
		if !ok {
			return
		}

		if _, err := provider.Current(studentID); err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "session expired, please log in again"})
			return
		}

		c.Set(CtxStudentID, studentID)
		c.Set(CtxIsAdmin, isAdmin)
		c.Next()
	}
}

// RequireAdmin additionally gates on the admin claim.
func RequireAdmin(provider *session.Provider) gin.HandlerFunc {
	return func(c *gin.Context) {
		studentID, isAdmin, ok := authenticate(c, provider)
		if !ok {
			return
		}
		if !isAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin access required"})
			return
		}

		c.Set(CtxStudentID, studentID)
		c.Set(CtxIsAdmin, true)
		c.Next()
	}
}

// authenticate extracts and verifies the bearer token. On failure it
// aborts the request and returns ok=false.
func authenticate(c *gin.Context, provider *session.Provider) (string, bool, bool) {
	header := c.GetHeader("Authorization")
	if header == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization header is missing"})
		return "", false, false
	}

	tokenString := strings.TrimPrefix(header, "Bearer ")
	if tokenString == header {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization header must be a bearer token"})
		return "", false, false
	}

	studentID, isAdmin, err := provider.ParseToken(tokenString)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
		return "", false, false
	}
	return studentID, isAdmin, true
}
