package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ieadaj/church-orders-api/config"
	"github.com/ieadaj/church-orders-api/models"
)

// AuthError represents an authentication-related error
type AuthError struct {
	Code    string
	Message string
}

// Error implements the error interface
func (e *AuthError) Error() string {
	return e.Message
}

// RequireSession is a middleware that validates the bearer session token on
// every protected route. It rejects the request before the handler runs when
// the token is missing, unknown or expired, and stores the authenticated
// admin identity in the Gin context on success.
func RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractBearerToken(c.GetHeader("Authorization"))
		if token == "" {
			unauthorized(c, "Sessão ausente ou inválida")
			return
		}

		db := config.GetDB()

		var session models.Session
		if err := db.Where("token = ?", token).First(&session).Error; err != nil {
			unauthorized(c, "Sessão ausente ou inválida")
			return
		}

		if session.Expired(time.Now()) {
			// Expired rows are dead weight, remove them on sight
			db.Delete(&session)
			unauthorized(c, "Sessão expirada, faça login novamente")
			return
		}

		var admin models.Admin
		if err := db.First(&admin, session.AdminID).Error; err != nil {
			unauthorized(c, "Sessão ausente ou inválida")
			return
		}

		c.Set("admin_id", admin.ID)
		c.Set("admin_name", admin.Name)
		c.Set("session_token", session.Token)

		c.Next()
	}
}

// unauthorized writes the standard 401 envelope and aborts the request
func unauthorized(c *gin.Context, message string) {
	c.JSON(http.StatusUnauthorized, gin.H{
		"success": false,
		"error": gin.H{
			"code":    "UNAUTHORIZED",
			"message": message,
		},
	})
	c.Abort()
}

// extractBearerToken pulls the token out of an "Authorization: Bearer x" header
func extractBearerToken(header string) string {
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// GetAdminID extracts the authenticated admin ID from the Gin context
func GetAdminID(c *gin.Context) (uint, error) {
	adminID, exists := c.Get("admin_id")
	if !exists {
		return 0, &AuthError{Code: "MISSING_ADMIN_ID", Message: "Admin ID not found in context"}
	}

	id, ok := adminID.(uint)
	if !ok {
		return 0, &AuthError{Code: "INVALID_ADMIN_ID", Message: "Admin ID is not a uint"}
	}

	return id, nil
}

// GetAdminName extracts the authenticated admin name from the Gin context
func GetAdminName(c *gin.Context) (string, error) {
	adminName, exists := c.Get("admin_name")
	if !exists {
		return "", &AuthError{Code: "MISSING_ADMIN_NAME", Message: "Admin name not found in context"}
	}

	name, ok := adminName.(string)
	if !ok {
		return "", &AuthError{Code: "INVALID_ADMIN_NAME", Message: "Admin name is not a string"}
	}

	return name, nil
}

// GetSessionToken extracts the current session token from the Gin context
func GetSessionToken(c *gin.Context) (string, error) {
	token, exists := c.Get("session_token")
	if !exists {
		return "", &AuthError{Code: "MISSING_SESSION_TOKEN", Message: "Session token not found in context"}
	}

	tokenStr, ok := token.(string)
	if !ok {
		return "", &AuthError{Code: "INVALID_SESSION_TOKEN", Message: "Session token is not a string"}
	}

	return tokenStr, nil
}
