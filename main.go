package main

import (
	"log"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/ieadaj/church-orders-api/config"
	"github.com/ieadaj/church-orders-api/controllers"
	"github.com/ieadaj/church-orders-api/middleware"
	"github.com/ieadaj/church-orders-api/models"
	"github.com/ieadaj/church-orders-api/services"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func main() {
	// Basic logging
	log.Println("Starting Church Orders API server...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Connect to database
	if err := config.ConnectDatabase(); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Auto-migrate database models
	db := config.GetDB()
	if err := db.AutoMigrate(
		&models.Admin{},
		&models.Session{},
		&models.Order{},
		&models.Lot{},
		&models.Size{},
		&models.TShirtModel{},
	); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("Database migration completed successfully")

	// Seed the admin account from the environment, if configured
	if err := seedAdmin(db, cfg); err != nil {
		log.Fatalf("Failed to seed admin account: %v", err)
	}

	// Initialize the report archive when a bucket is configured
	if cfg.ArchiveEnabled() {
		if _, err := services.InitArchiveService(); err != nil {
			log.Fatalf("Failed to initialize report archive: %v", err)
		}
		log.Printf("Report archive enabled (bucket: %s)", cfg.AWSS3Bucket)
	}

	// Set up router and start serving
	router := setupRouter()

	port := ":" + cfg.Port
	log.Printf("Server is running on http://localhost%s", port)
	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// setupRouter builds the Gin engine with CORS and all API routes
func setupRouter() *gin.Engine {
	router := gin.Default()
	router.Use(cors.Default())

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Public endpoints
		v1.GET("/health", healthCheck)
		v1.POST("/auth/login", controllers.Login)

		// Everything else requires an authenticated admin session
		authenticated := v1.Group("")
		authenticated.Use(middleware.RequireSession())
		{
			authenticated.POST("/auth/logout", controllers.Logout)

			authenticated.GET("/dashboard", controllers.GetDashboard)

			authenticated.GET("/orders", controllers.GetOrders)
			authenticated.POST("/orders", controllers.CreateOrder)
			authenticated.GET("/orders/filters", controllers.GetOrderFilters)
			authenticated.GET("/orders/report", controllers.GenerateOrdersReport)
			authenticated.GET("/orders/:id", controllers.GetOrder)
			authenticated.PUT("/orders/:id", controllers.UpdateOrder)
			authenticated.DELETE("/orders/:id", controllers.DeleteOrder)

			authenticated.GET("/lots", controllers.GetLots)
			authenticated.POST("/lots", controllers.AddLot)
			authenticated.GET("/sizes", controllers.GetSizes)
			authenticated.POST("/sizes", controllers.AddSize)
			authenticated.GET("/models", controllers.GetModels)
			authenticated.POST("/models", controllers.AddModel)
		}
	}

	return router
}

// seedAdmin creates the operator account from ADMIN_* environment variables.
// Seeding is skipped when the credentials are not configured, and an existing
// admin with the same email is never overwritten.
func seedAdmin(db *gorm.DB, cfg *config.Config) error {
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		log.Println("ADMIN_EMAIL/ADMIN_PASSWORD not set, skipping admin seed")
		return nil
	}

	var existing models.Admin
	if err := db.Where("email = ?", cfg.AdminEmail).First(&existing).Error; err == nil {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := models.Admin{
		Name:         cfg.AdminName,
		Email:        cfg.AdminEmail,
		PasswordHash: string(hash),
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}

	log.Printf("Admin account created for %s", cfg.AdminEmail)
	return nil
}

// healthCheck handles the health check endpoint
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Church Orders API is running",
	})
}
