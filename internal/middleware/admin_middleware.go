package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	apperrors "readingtimer/internal/errors"
	"readingtimer/internal/service"
)

// AdminCookie carries the admin token between requests.
const AdminCookie = "admin_token"

// Admin rejects requests that do not carry a valid admin token, either in the
// session cookie or as a Bearer header.
func Admin(adminService *service.AdminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := Token(c)
		if token == "" {
			writeError(c, apperrors.Unauthorized("admin login required"))
			return
		}

		if apiErr := adminService.ParseToken(token); apiErr != nil {
			writeError(c, apiErr)
			return
		}

		c.Next()
	}
}

// Token extracts the admin token from the request. The cookie wins; a Bearer
// header is accepted for non-browser clients.
func Token(c *gin.Context) string {
	if cookie, err := c.Cookie(AdminCookie); err == nil && cookie != "" {
		return cookie
	}

	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
	}
	return ""
}

func writeError(c *gin.Context, apiErr *apperrors.APIError) {
	c.AbortWithStatusJSON(apiErr.Status, gin.H{
		"error": gin.H{
			"code":    apiErr.Code,
			"message": apiErr.Message,
		},
	})
}
