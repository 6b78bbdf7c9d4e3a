package services

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/arbipangestu/Jubeli/database"
	"github.com/arbipangestu/Jubeli/models"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const DefaultPageSize = 20

// preloadImages orders the image set so index 0 is always the primary
// image: flagged one first, then insertion order.
func preloadImages(db *gorm.DB) *gorm.DB {
	return db.Order("is_primary DESC, id ASC")
}

// VehicleFilter carries the search criteria for ListVehicles. All
// filters are optional; Admin lifts the ACTIVE-only restriction and
// attaches the seller name to each result.
type VehicleFilter struct {
	Brand        string
	YearMin      *int
	YearMax      *int
	Transmission string
	Admin        bool
	Page         int
	Limit        int
}

// VehicleList is one page of results plus the pagination metadata the
// caller needs to render page controls.
type VehicleList struct {
	Items    []models.VehicleListItem
	Total    int64
	Page     int
	LastPage int
}

// ListVehicles runs the filter query, paginated newest-first. Unless
// the caller is in admin mode the result set is restricted to ACTIVE
// listings no matter what other filters say.
func ListVehicles(f VehicleFilter) (*VehicleList, error) {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 {
		f.Limit = DefaultPageSize
	}

	q := database.DB.Model(&models.Vehicle{})
	if !f.Admin {
		q = q.Where("status = ?", models.StatusActive)
	}
	if f.Brand != "" {
		q = q.Where("LOWER(brand) LIKE ?", "%"+strings.ToLower(f.Brand)+"%")
	}
	if f.YearMin != nil {
		q = q.Where("year >= ?", *f.YearMin)
	}
	if f.YearMax != nil {
		q = q.Where("year <= ?", *f.YearMax)
	}
	if f.Transmission != "" {
		q = q.Where("LOWER(transmission) = ?", strings.ToLower(f.Transmission))
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		logrus.Errorf("Failed to count vehicles: %v", err)
		return nil, fmt.Errorf("failed to count vehicles: %w", err)
	}

	page := q.Preload("Images", preloadImages).
		Order("created_at DESC, id ASC").
		Offset((f.Page - 1) * f.Limit).
		Limit(f.Limit)
	if f.Admin {
		page = page.Preload("User")
	}

	var vehicles []models.Vehicle
	if err := page.Find(&vehicles).Error; err != nil {
		logrus.Errorf("Failed to query vehicles: %v", err)
		return nil, fmt.Errorf("failed to query vehicles: %w", err)
	}

	items := make([]models.VehicleListItem, len(vehicles))
	for i := range vehicles {
		items[i] = vehicles[i].ToListItem(f.Admin)
	}

	lastPage := int(math.Ceil(float64(total) / float64(f.Limit)))

	logrus.Infof("Listed %d/%d vehicles (page %d, admin=%v)", len(items), total, f.Page, f.Admin)
	return &VehicleList{
		Items:    items,
		Total:    total,
		Page:     f.Page,
		LastPage: lastPage,
	}, nil
}

// VehicleCreateInput is the seller-supplied listing payload. Status is
// deliberately absent: new listings always start PENDING.
type VehicleCreateInput struct {
	CategoryID       int             `json:"category_id" binding:"required"`
	Title            string          `json:"title" binding:"required"`
	Brand            string          `json:"brand"`
	Model            string          `json:"model"`
	Year             int             `json:"year"`
	Transmission     string          `json:"transmission"`
	FuelType         string          `json:"fuel_type"`
	EngineSize       *float64        `json:"engine_size"`
	Mileage          int             `json:"mileage"`
	Color            string          `json:"color"`
	Price            decimal.Decimal `json:"price"`
	Description      string          `json:"description"`
	LocationProvince string          `json:"location_province"`
	LocationCity     string          `json:"location_city"`
	Images           []string        `json:"images"`
}

// CreateVehicle persists a new listing and its images in one
// transaction. The first supplied image becomes the primary one.
// Sellers cannot self-approve: the status is forced to PENDING.
func CreateVehicle(ownerID int, in VehicleCreateInput) (*models.Vehicle, error) {
	if strings.TrimSpace(in.Title) == "" {
		return nil, fmt.Errorf("%w: title is required", ErrValidation)
	}
	if in.Price.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: price must be greater than zero", ErrValidation)
	}

	var category models.Category
	if err := database.DB.First(&category, in.CategoryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: category with ID %d not found", ErrValidation, in.CategoryID)
		}
		logrus.Errorf("Failed to verify category: %v", err)
		return nil, fmt.Errorf("failed to verify category: %w", err)
	}

	vehicle := models.Vehicle{
		UserID:           ownerID,
		CategoryID:       in.CategoryID,
		Title:            in.Title,
		Brand:            in.Brand,
		Model:            in.Model,
		Year:             in.Year,
		Transmission:     in.Transmission,
		FuelType:         in.FuelType,
		EngineSize:       in.EngineSize,
		Mileage:          in.Mileage,
		Color:            in.Color,
		Price:            in.Price,
		Description:      in.Description,
		LocationProvince: in.LocationProvince,
		LocationCity:     in.LocationCity,
		Status:           models.StatusPending,
	}

	tx := database.DB.Begin()

	if err := tx.Create(&vehicle).Error; err != nil {
		tx.Rollback()
		logrus.Errorf("Failed to create vehicle: %v", err)
		return nil, fmt.Errorf("failed to create vehicle: %w", err)
	}

	for i, url := range in.Images {
		image := models.VehicleImage{
			VehicleID: vehicle.ID,
			ImageURL:  url,
			IsPrimary: i == 0,
		}
		if err := tx.Create(&image).Error; err != nil {
			tx.Rollback()
			logrus.Errorf("Failed to create vehicle image: %v", err)
			return nil, fmt.Errorf("failed to create vehicle image: %w", err)
		}
		vehicle.Images = append(vehicle.Images, image)
	}

	if err := tx.Commit().Error; err != nil {
		logrus.Errorf("Failed to commit vehicle creation: %v", err)
		return nil, fmt.Errorf("failed to commit vehicle creation: %w", err)
	}

	logrus.Infof("Created vehicle %d for user %d with %d images", vehicle.ID, ownerID, len(vehicle.Images))
	return &vehicle, nil
}

// GetVehicleByID fetches a listing with its full image set, the
// seller's public fields and the category.
func GetVehicleByID(id int) (*models.Vehicle, error) {
	var vehicle models.Vehicle
	if err := database.DB.
		Preload("Images", preloadImages).
		Preload("User").
		Preload("Category").
		First(&vehicle, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: vehicle with ID %d", ErrNotFound, id)
		}
		logrus.Errorf("Failed to get vehicle by ID %d: %v", id, err)
		return nil, fmt.Errorf("failed to get vehicle by ID %d: %w", id, err)
	}
	return &vehicle, nil
}

// VehicleUpdateInput is the update allow-list. Anything not in this
// struct (owner, category, created_at, ...) simply cannot be sent;
// unknown JSON fields are dropped at bind time.
type VehicleUpdateInput struct {
	Title            *string          `json:"title"`
	Price            *decimal.Decimal `json:"price"`
	Description      *string          `json:"description"`
	Status           *string          `json:"status"`
	IsSold           *bool            `json:"is_sold"`
	Mileage          *int             `json:"mileage"`
	LocationProvince *string          `json:"location_province"`
	LocationCity     *string          `json:"location_city"`
}

// targetStatus resolves the status the update is asking for, folding
// the legacy is_sold flag into the status machine. Returns the current
// status when no change is requested.
func targetStatus(current models.Status, in VehicleUpdateInput) (models.Status, error) {
	target := current
	if in.Status != nil {
		parsed, err := models.ParseStatus(*in.Status)
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrValidation, err)
		}
		target = parsed
	}
	if in.IsSold != nil {
		if *in.IsSold {
			if in.Status != nil && target != models.StatusSold {
				return "", fmt.Errorf("%w: is_sold conflicts with status %s", ErrValidation, target)
			}
			target = models.StatusSold
		} else if target == models.StatusSold {
			return "", fmt.Errorf("%w: a sold listing cannot be un-sold", ErrValidation)
		}
	}
	return target, nil
}

// UpdateVehicle applies an allow-listed update on behalf of actor.
// Only the owner or an admin may touch a listing at all; status
// changes are additionally validated against the transition table and
// the actor's capability.
func UpdateVehicle(id, actorID int, actorRole string, in VehicleUpdateInput) (*models.Vehicle, error) {
	var vehicle models.Vehicle
	if err := database.DB.First(&vehicle, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: vehicle with ID %d", ErrNotFound, id)
		}
		logrus.Errorf("Failed to find vehicle %d: %v", id, err)
		return nil, fmt.Errorf("failed to find vehicle with ID %d: %w", id, err)
	}

	isOwner := vehicle.UserID == actorID
	if actorRole != models.RoleAdmin && !isOwner {
		return nil, fmt.Errorf("%w: only the owner or an admin may update a listing", ErrForbidden)
	}

	updates := make(map[string]interface{})

	if in.Title != nil {
		if strings.TrimSpace(*in.Title) == "" {
			return nil, fmt.Errorf("%w: title cannot be empty", ErrValidation)
		}
		updates["title"] = *in.Title
	}
	if in.Price != nil {
		if in.Price.LessThanOrEqual(decimal.Zero) {
			return nil, fmt.Errorf("%w: price must be greater than zero", ErrValidation)
		}
		updates["price"] = *in.Price
	}
	if in.Description != nil {
		updates["description"] = *in.Description
	}
	if in.Mileage != nil {
		if *in.Mileage < 0 {
			return nil, fmt.Errorf("%w: mileage cannot be negative", ErrValidation)
		}
		updates["mileage"] = *in.Mileage
	}
	if in.LocationProvince != nil {
		updates["location_province"] = *in.LocationProvince
	}
	if in.LocationCity != nil {
		updates["location_city"] = *in.LocationCity
	}

	target, err := targetStatus(vehicle.Status, in)
	if err != nil {
		return nil, err
	}
	if target != vehicle.Status {
		if !models.CanTransition(vehicle.Status, target) {
			return nil, fmt.Errorf("%w: invalid status transition %s -> %s", ErrValidation, vehicle.Status, target)
		}
		if err := models.AuthorizeTransition(vehicle.Status, target, actorRole, isOwner); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrForbidden, err)
		}
		updates["status"] = target
	}

	if len(updates) == 0 {
		// Nothing allow-listed in the payload. Unknown fields are
		// silently ignored, so hand back the unchanged record.
		return GetVehicleByID(id)
	}

	if err := database.DB.Model(&vehicle).Updates(updates).Error; err != nil {
		logrus.Errorf("Failed to update vehicle %d: %v", id, err)
		return nil, fmt.Errorf("failed to update vehicle with ID %d: %w", id, err)
	}

	logrus.Infof("Updated vehicle %d (%d fields) by user %d", id, len(updates), actorID)
	return GetVehicleByID(id)
}

// CountVehiclesByStatus feeds the periodic stats log.
func CountVehiclesByStatus() (map[models.Status]int64, error) {
	type statusCount struct {
		Status models.Status
		Count  int64
	}

	var rows []statusCount
	if err := database.DB.Model(&models.Vehicle{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to count vehicles by status: %w", err)
	}

	counts := make(map[models.Status]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}
