package models

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// Prices serialize as plain JSON numbers, not quoted strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// Vehicle is one listing. created_at is set once and never updated;
// status is the single source of truth for the lifecycle (is_sold in
// responses is derived from it).
type Vehicle struct {
	ID               int             `json:"id" gorm:"primaryKey;autoIncrement;type:INT"`
	UserID           int             `json:"user_id" gorm:"index;not null;type:INT"`
	CategoryID       int             `json:"category_id" gorm:"index;not null;type:INT"`
	Title            string          `json:"title" gorm:"type:varchar(150);not null"`
	Brand            string          `json:"brand" gorm:"type:varchar(50)"`
	Model            string          `json:"model" gorm:"type:varchar(50)"`
	Year             int             `json:"year" gorm:"type:INT"`
	Transmission     string          `json:"transmission" gorm:"type:varchar(20)"`
	FuelType         string          `json:"fuel_type,omitempty" gorm:"type:varchar(20)"`
	EngineSize       *float64        `json:"engine_size,omitempty" gorm:"type:decimal(8,1)"`
	Mileage          int             `json:"mileage" gorm:"type:INT"`
	Color            string          `json:"color,omitempty" gorm:"type:varchar(30)"`
	Price            decimal.Decimal `json:"price" gorm:"type:decimal(14,2);not null"`
	Description      string          `json:"description,omitempty" gorm:"type:text"`
	LocationProvince string          `json:"location_province" gorm:"type:varchar(50)"`
	LocationCity     string          `json:"location_city" gorm:"type:varchar(50)"`
	Status           Status          `json:"status" gorm:"type:varchar(10);not null;default:'PENDING';index"`
	CreatedAt        time.Time       `json:"created_at" gorm:"column:created_at;<-:create"`
	Images           []VehicleImage  `json:"images,omitempty" gorm:"foreignKey:VehicleID;references:ID;constraint:OnDelete:CASCADE"`
	User             User            `json:"-" gorm:"foreignKey:UserID;references:ID"`
	Category         Category        `json:"-" gorm:"foreignKey:CategoryID;references:ID"`
}

func (Vehicle) TableName() string {
	return "vehicles"
}

// IsSold derives the legacy boolean flag from the status enum.
func (v *Vehicle) IsSold() bool {
	return v.Status == StatusSold
}

// PrimaryImage picks the representative image: the one flagged
// is_primary, otherwise the first by insertion order. Nil when the
// listing has no images.
func (v *Vehicle) PrimaryImage() *VehicleImage {
	if len(v.Images) == 0 {
		return nil
	}
	for i := range v.Images {
		if v.Images[i].IsPrimary {
			return &v.Images[i]
		}
	}
	return &v.Images[0]
}

// VehicleListItem is the list-view projection: only the primary image
// is attached, and the seller name only shows up in admin mode.
type VehicleListItem struct {
	ID               int                   `json:"id"`
	Title            string                `json:"title"`
	Brand            string                `json:"brand"`
	Model            string                `json:"model"`
	Year             int                   `json:"year"`
	Transmission     string                `json:"transmission"`
	Mileage          int                   `json:"mileage"`
	Price            decimal.Decimal       `json:"price"`
	LocationProvince string                `json:"location_province"`
	LocationCity     string                `json:"location_city"`
	Status           Status                `json:"status"`
	IsSold           bool                  `json:"is_sold"`
	CreatedAt        time.Time             `json:"created_at"`
	PrimaryImage     *VehicleImageResponse `json:"primary_image,omitempty"`
	SellerName       string                `json:"seller_name,omitempty"`
}

func (v *Vehicle) ToListItem(includeSeller bool) VehicleListItem {
	item := VehicleListItem{
		ID:               v.ID,
		Title:            v.Title,
		Brand:            v.Brand,
		Model:            v.Model,
		Year:             v.Year,
		Transmission:     v.Transmission,
		Mileage:          v.Mileage,
		Price:            v.Price,
		LocationProvince: v.LocationProvince,
		LocationCity:     v.LocationCity,
		Status:           v.Status,
		IsSold:           v.IsSold(),
		CreatedAt:        v.CreatedAt,
	}
	if img := v.PrimaryImage(); img != nil {
		resp := img.ToResponse()
		item.PrimaryImage = &resp
	}
	if includeSeller {
		item.SellerName = v.User.Name
	}
	return item
}

// VehicleDetailResponse is the detail-view projection: full image set,
// the seller's public fields and the category.
type VehicleDetailResponse struct {
	ID               int                    `json:"id"`
	UserID           int                    `json:"user_id"`
	CategoryID       int                    `json:"category_id"`
	Title            string                 `json:"title"`
	Brand            string                 `json:"brand"`
	Model            string                 `json:"model"`
	Year             int                    `json:"year"`
	Transmission     string                 `json:"transmission"`
	FuelType         string                 `json:"fuel_type,omitempty"`
	EngineSize       *float64               `json:"engine_size,omitempty"`
	Mileage          int                    `json:"mileage"`
	Color            string                 `json:"color,omitempty"`
	Price            decimal.Decimal        `json:"price"`
	Description      string                 `json:"description,omitempty"`
	LocationProvince string                 `json:"location_province"`
	LocationCity     string                 `json:"location_city"`
	Status           Status                 `json:"status"`
	IsSold           bool                   `json:"is_sold"`
	CreatedAt        time.Time              `json:"created_at"`
	Images           []VehicleImageResponse `json:"images"`
	Seller           SellerResponse         `json:"seller"`
	Category         CategoryResponse       `json:"category"`
}

func (v *Vehicle) ToDetailResponse() VehicleDetailResponse {
	images := make([]VehicleImageResponse, len(v.Images))
	for i, img := range v.Images {
		images[i] = img.ToResponse()
	}

	return VehicleDetailResponse{
		ID:               v.ID,
		UserID:           v.UserID,
		CategoryID:       v.CategoryID,
		Title:            v.Title,
		Brand:            v.Brand,
		Model:            v.Model,
		Year:             v.Year,
		Transmission:     v.Transmission,
		FuelType:         v.FuelType,
		EngineSize:       v.EngineSize,
		Mileage:          v.Mileage,
		Color:            v.Color,
		Price:            v.Price,
		Description:      v.Description,
		LocationProvince: v.LocationProvince,
		LocationCity:     v.LocationCity,
		Status:           v.Status,
		IsSold:           v.IsSold(),
		CreatedAt:        v.CreatedAt,
		Images:           images,
		Seller:           v.User.ToSellerResponse(),
		Category:         v.Category.ToResponse(),
	}
}
