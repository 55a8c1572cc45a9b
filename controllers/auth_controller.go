package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/ieadaj/church-orders-api/config"
	"github.com/ieadaj/church-orders-api/middleware"
	"github.com/ieadaj/church-orders-api/models"
	"golang.org/x/crypto/bcrypt"
)

// LoginRequest represents the request body for logging in
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login handles POST /api/v1/auth/login - exchanges admin credentials for a session token
func Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": "Informe email e senha",
				"details": err.Error(),
			},
		})
		return
	}

	db := config.GetDB()

	var admin models.Admin
	err := db.Where("email = ?", req.Email).First(&admin).Error

	// Run the bcrypt comparison even when the email is unknown so both
	// failure paths answer with the same error and similar timing.
	hash := admin.PasswordHash
	if err != nil {
		hash = "$2a$10$invalidinvalidinvalidinvalidinvalidinvalidinvalidinvali"
	}
	compareErr := bcrypt.CompareHashAndPassword([]byte(hash), []byte(req.Password))

	if err != nil || compareErr != nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_CREDENTIALS",
				"message": "Email ou senha incorretos",
			},
		})
		return
	}

	ttl := 12 * time.Hour
	if cfg := config.GetConfig(); cfg != nil {
		ttl = time.Duration(cfg.SessionTTLHours) * time.Hour
	}

	session := models.Session{
		Token:     uuid.NewString(),
		AdminID:   admin.ID,
		ExpiresAt: time.Now().Add(ttl),
	}

	if err := db.Create(&session).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Falha ao criar a sessão",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"token":      session.Token,
			"expires_at": session.ExpiresAt,
			"admin": gin.H{
				"name":  admin.Name,
				"email": admin.Email,
			},
		},
	})
}

// Logout handles POST /api/v1/auth/logout - invalidates the current session token
func Logout(c *gin.Context) {
	token, err := middleware.GetSessionToken(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "UNAUTHORIZED",
				"message": "Sessão ausente ou inválida",
			},
		})
		return
	}

	db := config.GetDB()
	if err := db.Where("token = ?", token).Delete(&models.Session{}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Falha ao encerrar a sessão",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Logout realizado com sucesso",
	})
}
