package controllers

import (
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/ieadaj/church-orders-api/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB opens an in-memory sqlite database with every model migrated
func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}

	if err := db.AutoMigrate(
		&models.Admin{},
		&models.Session{},
		&models.Order{},
		&models.Lot{},
		&models.Size{},
		&models.TShirtModel{},
	); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	return db
}

// setupTestRouter creates a Gin engine in test mode
func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

// mockSessionMiddleware simulates the RequireSession middleware by setting
// the admin identity directly in the context
func mockSessionMiddleware(adminID uint, adminName, token string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("admin_id", adminID)
		c.Set("admin_name", adminName)
		c.Set("session_token", token)
		c.Next()
	}
}

// createTestAdmin inserts an admin with a real bcrypt hash for the password
func createTestAdmin(t *testing.T, db *gorm.DB, name, email, password string) models.Admin {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("Failed to hash test password: %v", err)
	}

	admin := models.Admin{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
	}
	if err := db.Create(&admin).Error; err != nil {
		t.Fatalf("Failed to create test admin: %v", err)
	}

	return admin
}
