package main

import (
	"fmt"
	"os"

	"github.com/arbipangestu/Jubeli/database"
	"github.com/arbipangestu/Jubeli/models"
	"github.com/arbipangestu/Jubeli/routes"
	"github.com/arbipangestu/Jubeli/services"
	"github.com/arbipangestu/Jubeli/utils"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

func main() {
	// Load .env if present
	if err := godotenv.Load(); err != nil {
		logrus.Infof("No .env file found, using default environment variables: %v", err)
	}

	// Initialize the JWT secret
	utils.InitJWTSecret()

	// Initialize the database
	database.InitDB()

	// Run schema migration
	if err := database.DB.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Vehicle{},
		&models.VehicleImage{},
	); err != nil {
		logrus.Fatalf("Failed to run database migration: %v", err)
	}
	logrus.Info("Database migration completed")

	// Bootstrap the default admin and stock categories
	ensureAdminExists()
	if err := services.EnsureDefaultCategories(); err != nil {
		logrus.Fatalf("Failed to ensure default categories: %v", err)
	}

	// Gin defaults to release mode
	ginMode := os.Getenv("GIN_MODE")
	if ginMode == "" {
		ginMode = gin.ReleaseMode
	}
	gin.SetMode(ginMode)
	logrus.Infof("Gin mode set to %s", ginMode)

	r := gin.Default()

	api := r.Group("/api")
	{
		routes.Path(api)
	}

	// Periodic listing stats (every 10 minutes, read-only)
	c := cron.New()
	_, err := c.AddFunc("*/10 * * * *", func() {
		counts, err := services.CountVehiclesByStatus()
		if err != nil {
			logrus.Errorf("Failed to count vehicles by status: %v", err)
			return
		}
		logrus.Infof("Listing stats: pending=%d active=%d rejected=%d sold=%d",
			counts[models.StatusPending], counts[models.StatusActive],
			counts[models.StatusRejected], counts[models.StatusSold])
	})
	if err != nil {
		logrus.Fatalf("Failed to schedule listing stats cron job: %v", err)
	}

	c.Start()
	logrus.Info("Cron jobs started")

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	logrus.Infof("Starting server on :%s", port)
	if err := r.Run(":" + port); err != nil {
		logrus.Fatalf("Failed to start server: %v", err)
	}
}

// resolveAdminPassword picks the bootstrap admin password. The
// development fallback only applies outside release mode; a release
// boot without ADMIN_PASSWORD refuses to start.
func resolveAdminPassword(ginMode, password string) (string, error) {
	if password != "" {
		return password, nil
	}
	if ginMode == "release" {
		return "", fmt.Errorf("ADMIN_PASSWORD must be set when GIN_MODE is release")
	}
	return "admin1234", nil
}

// ensureAdminExists creates the moderation admin on first boot. Status
// transitions require an admin, so one has to exist.
func ensureAdminExists() {
	var admin models.User
	if err := database.DB.Where("role = ?", models.RoleAdmin).First(&admin).Error; err == nil {
		logrus.Infof("Admin already exists: email=%s", admin.Email)
		return
	}

	email := os.Getenv("ADMIN_EMAIL")
	if email == "" {
		email = "admin@jubeli.id"
	}
	password, err := resolveAdminPassword(os.Getenv("GIN_MODE"), os.Getenv("ADMIN_PASSWORD"))
	if err != nil {
		logrus.Fatalf("Failed to bootstrap admin: %v", err)
	}
	if os.Getenv("ADMIN_PASSWORD") == "" {
		logrus.Warn("ADMIN_PASSWORD not set, using insecure development password")
	}

	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		logrus.Fatalf("Failed to hash admin password: %v", err)
	}

	admin = models.User{
		Name:         "Admin",
		Email:        email,
		PasswordHash: hashedPassword,
		Role:         models.RoleAdmin,
	}

	if err := database.DB.Create(&admin).Error; err != nil {
		logrus.Fatalf("Failed to create default admin: %v", err)
	}

	logrus.Infof("Default admin created: email=%s", admin.Email)
}
