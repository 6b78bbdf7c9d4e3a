package services

import (
	"fmt"
	"testing"

	"github.com/arbipangestu/Jubeli/database"
	"github.com/arbipangestu/Jubeli/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB points the service layer at a fresh in-memory database.
// Each test gets its own named shared-cache DB so connections from the
// pool all see the same data.
func setupTestDB(t *testing.T) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Vehicle{},
		&models.VehicleImage{},
	))

	database.DB = db
}

func seedUser(t *testing.T, name, email, role string) *models.User {
	t.Helper()
	user := models.User{
		Name:         name,
		Email:        email,
		PasswordHash: "$2a$10$notarealhashbutlongenoughtolookli",
		PhoneNumber:  "081234567890",
		Role:         role,
	}
	require.NoError(t, database.DB.Create(&user).Error)
	return &user
}

func seedCategory(t *testing.T, name, slug string) *models.Category {
	t.Helper()
	category := models.Category{Name: name, Slug: slug}
	require.NoError(t, database.DB.Create(&category).Error)
	return &category
}

func seedVehicle(t *testing.T, ownerID, categoryID int, status models.Status, mutate func(*models.Vehicle)) *models.Vehicle {
	t.Helper()
	vehicle := models.Vehicle{
		UserID:       ownerID,
		CategoryID:   categoryID,
		Title:        "Toyota Avanza 2020 Type G",
		Brand:        "Toyota",
		Model:        "Avanza",
		Year:         2020,
		Transmission: "Automatic",
		Mileage:      25000,
		Price:        decimal.NewFromInt(185000000),
		Status:       status,
	}
	if mutate != nil {
		mutate(&vehicle)
	}
	require.NoError(t, database.DB.Create(&vehicle).Error)
	return &vehicle
}
