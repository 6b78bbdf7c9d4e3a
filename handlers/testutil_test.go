package handlers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/arbipangestu/Jubeli/database"
	"github.com/arbipangestu/Jubeli/models"
	"github.com/arbipangestu/Jubeli/routes"
	"github.com/arbipangestu/Jubeli/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupRouter wires a fresh in-memory database and the real route
// table, so handler tests exercise the same middleware chain as
// production.
func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)
	utils.InitJWTSecret()

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

	r := gin.New()
	api := r.Group("/api")
	routes.Path(api)
	return r
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

func seedCategory(t *testing.T) *models.Category {
	t.Helper()
	category := models.Category{Name: "Mobil", Slug: "mobil"}
	require.NoError(t, database.DB.Create(&category).Error)
	return &category
}

func seedVehicle(t *testing.T, ownerID, categoryID int, status models.Status) *models.Vehicle {
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
	require.NoError(t, database.DB.Create(&vehicle).Error)
	return &vehicle
}

func bearerFor(t *testing.T, user *models.User) string {
	t.Helper()
	token, err := utils.GenerateToken(user.ID, user.Role)
	require.NoError(t, err)
	return "Bearer " + token
}

// envelope mirrors handlers.APIResponse for decoding in tests.
type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Meta    *struct {
		Total    int64 `json:"total"`
		Page     int   `json:"page"`
		LastPage int   `json:"last_page"`
	} `json:"meta"`
	Error string `json:"error"`
}

func doRequest(t *testing.T, r *gin.Engine, method, path, token, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	if w.Body.Len() > 0 && w.Code != http.StatusNoContent {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	}
	return w, env
}
