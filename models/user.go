package models

import "time"

const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

type User struct {
	ID           int       `json:"id" gorm:"primaryKey;autoIncrement;type:INT"`
	Name         string    `json:"name" gorm:"type:varchar(100);not null"`
	Email        string    `json:"email" gorm:"type:varchar(100);uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"type:varchar(100);not null;column:password_hash"`
	PhoneNumber  string    `json:"phone_number" gorm:"type:varchar(20)"`
	Role         string    `json:"role" gorm:"type:varchar(10);not null;default:'USER'"`
	CreatedAt    time.Time `json:"created_at" gorm:"column:created_at"`
	Vehicles     []Vehicle `json:"-" gorm:"foreignKey:UserID;references:ID"`
}

func (User) TableName() string {
	return "users"
}

// SellerResponse is the public projection attached to a vehicle detail:
// enough to contact the seller, nothing more.
type SellerResponse struct {
	Name        string    `json:"name"`
	PhoneNumber string    `json:"phone_number"`
	CreatedAt   time.Time `json:"created_at"`
}

type UserResponse struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	PhoneNumber string    `json:"phone_number"`
	Role        string    `json:"role"`
	CreatedAt   time.Time `json:"created_at"`
}

func (u *User) ToSellerResponse() SellerResponse {
	return SellerResponse{
		Name:        u.Name,
		PhoneNumber: u.PhoneNumber,
		CreatedAt:   u.CreatedAt,
	}
}

func (u *User) ToResponse() UserResponse {
	return UserResponse{
		ID:          u.ID,
		Name:        u.Name,
		Email:       u.Email,
		PhoneNumber: u.PhoneNumber,
		Role:        u.Role,
		CreatedAt:   u.CreatedAt,
	}
}
