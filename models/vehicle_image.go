package models

type VehicleImage struct {
	ID        int    `json:"id" gorm:"primaryKey;autoIncrement;type:INT"`
	VehicleID int    `json:"vehicle_id" gorm:"index;not null;type:INT"`
	ImageURL  string `json:"image_url" gorm:"type:text;not null"`
	IsPrimary bool   `json:"is_primary" gorm:"not null;default:false"`
}

func (VehicleImage) TableName() string {
	return "vehicle_images"
}

type VehicleImageResponse struct {
	ID        int    `json:"id"`
	ImageURL  string `json:"image_url"`
	IsPrimary bool   `json:"is_primary"`
}

func (i *VehicleImage) ToResponse() VehicleImageResponse {
	return VehicleImageResponse{
		ID:        i.ID,
		ImageURL:  i.ImageURL,
		IsPrimary: i.IsPrimary,
	}
}
