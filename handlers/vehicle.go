package handlers

import (
	"net/http"
	"strconv"

	"github.com/arbipangestu/Jubeli/models"
	"github.com/arbipangestu/Jubeli/services"
	"github.com/arbipangestu/Jubeli/utils"
	"github.com/gin-gonic/gin"
)

// parsePositiveInt parses a query value, falling back to def on
// anything non-numeric or < 1. Browsing stays resilient to malformed
// input instead of erroring.
func parsePositiveInt(raw string, def int) int {
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return def
	}
	return n
}

// parseOptionalInt parses an optional numeric filter; malformed values
// are treated as absent.
func parseOptionalInt(raw string) *int {
	if raw == "" {
		return nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &n
}

// ListVehicles handles the public search/browse query. The admin query
// flag is only honored when the caller is an authenticated admin;
// everyone else gets the ACTIVE-only view no matter what they send.
func ListVehicles(c *gin.Context) {
	isAdmin := c.Query("admin") == "true" && c.GetString("role") == models.RoleAdmin

	filter := services.VehicleFilter{
		Brand:        c.Query("brand"),
		YearMin:      parseOptionalInt(c.Query("year_min")),
		YearMax:      parseOptionalInt(c.Query("year_max")),
		Transmission: c.Query("transmission"),
		Admin:        isAdmin,
		Page:         parsePositiveInt(c.Query("page"), 1),
		Limit:        parsePositiveInt(c.Query("limit"), services.DefaultPageSize),
	}

	result, err := services.ListVehicles(filter)
	if err != nil {
		ServiceErrorResponse(c, "Failed to list vehicles", err)
		return
	}

	SuccessListResponse(c, "Vehicles retrieved successfully", result.Items, Pagination{
		Total:    result.Total,
		Page:     result.Page,
		LastPage: result.LastPage,
	})
}

// CreateVehicle handles a seller submission. The owner is always the
// authenticated user; a user_id or status in the body is ignored.
func CreateVehicle(c *gin.Context) {
	userID := c.GetInt("user_id")

	var input services.VehicleCreateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		ErrorResponse(c, http.StatusBadRequest, "Invalid vehicle payload", err.Error())
		return
	}

	vehicle, err := services.CreateVehicle(userID, input)
	if err != nil {
		ServiceErrorResponse(c, "Failed to create vehicle", err)
		return
	}

	SuccessResponse(c, http.StatusCreated, "Vehicle submitted for review", vehicle)
}

// GetVehicle returns the full detail view: all images, the seller's
// public fields and the category.
func GetVehicle(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		ErrorResponse(c, http.StatusBadRequest, "Invalid vehicle ID", err.Error())
		return
	}

	vehicle, err := services.GetVehicleByID(id)
	if err != nil {
		ServiceErrorResponse(c, "Failed to get vehicle", err)
		return
	}

	SuccessResponse(c, http.StatusOK, "Vehicle retrieved successfully", vehicle.ToDetailResponse())
}

// UpdateVehicle applies an allow-listed update. Status changes go
// through the transition table; the service enforces who may trigger
// which edge.
func UpdateVehicle(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		ErrorResponse(c, http.StatusBadRequest, "Invalid vehicle ID", err.Error())
		return
	}

	var input services.VehicleUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		ErrorResponse(c, http.StatusBadRequest, "Invalid update payload", err.Error())
		return
	}

	vehicle, err := services.UpdateVehicle(id, c.GetInt("user_id"), c.GetString("role"), input)
	if err != nil {
		ServiceErrorResponse(c, "Failed to update vehicle", err)
		return
	}

	SuccessResponse(c, http.StatusOK, "Vehicle updated successfully", vehicle.ToDetailResponse())
}

// ContactResponse carries the pre-filled WhatsApp deep link for a
// listing.
type ContactResponse struct {
	Phone        string `json:"phone"`
	WhatsAppLink string `json:"whatsapp_link"`
}

// GetVehicleContact builds the wa.me link to the seller for a listing.
func GetVehicleContact(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		ErrorResponse(c, http.StatusBadRequest, "Invalid vehicle ID", err.Error())
		return
	}

	vehicle, err := services.GetVehicleByID(id)
	if err != nil {
		ServiceErrorResponse(c, "Failed to get vehicle", err)
		return
	}

	SuccessResponse(c, http.StatusOK, "Contact link generated", ContactResponse{
		Phone:        utils.NormalizePhone(vehicle.User.PhoneNumber),
		WhatsAppLink: utils.GenerateWALink(vehicle.User.PhoneNumber, vehicle.Title, vehicle.Price),
	})
}
