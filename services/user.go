package services

import (
	"errors"
	"fmt"

	"github.com/arbipangestu/Jubeli/database"
	"github.com/arbipangestu/Jubeli/models"
	"github.com/arbipangestu/Jubeli/utils"
	"github.com/go-sql-driver/mysql"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// isDuplicateEntry reports whether err is a MySQL duplicate-key
// violation (error 1062), e.g. a racing insert on the unique email
// index that slipped past the pre-check.
func isDuplicateEntry(err error) bool {
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == 1062
}

// RegisterUser creates a seller/buyer account. Role is always USER;
// admins are only ever created by the bootstrap in main.
func RegisterUser(name, email, password, phoneNumber string) (*models.User, error) {
	var existing models.User
	if err := database.DB.Where("email = ?", email).First(&existing).Error; err == nil {
		return nil, fmt.Errorf("%w: email %s is already in use", ErrDuplicate, email)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		logrus.Errorf("Failed to check for duplicate email: %v", err)
		return nil, fmt.Errorf("failed to check for duplicate email: %w", err)
	}

	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		logrus.Errorf("Failed to hash password: %v", err)
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		Name:         name,
		Email:        email,
		PasswordHash: hashedPassword,
		PhoneNumber:  phoneNumber,
		Role:         models.RoleUser,
	}

	if err := database.DB.Create(&user).Error; err != nil {
		if isDuplicateEntry(err) {
			return nil, fmt.Errorf("%w: email %s is already in use", ErrDuplicate, email)
		}
		logrus.Errorf("Failed to register user: %v", err)
		return nil, fmt.Errorf("failed to register user: %w", err)
	}

	logrus.Infof("Successfully registered user with ID %d", user.ID)
	return &user, nil
}

// LoginUser checks credentials and returns the account. The same
// message is returned for an unknown email and a wrong password.
func LoginUser(email, password string) (*models.User, error) {
	var user models.User
	if err := database.DB.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logrus.Infof("Login failed: user with email %s not found", email)
			return nil, fmt.Errorf("%w: invalid email or password", ErrValidation)
		}
		logrus.Errorf("Failed to login user: %v", err)
		return nil, fmt.Errorf("failed to login user: %w", err)
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		logrus.Infof("Login failed: invalid password for email %s", email)
		return nil, fmt.Errorf("%w: invalid email or password", ErrValidation)
	}

	logrus.Infof("User with ID %d logged in successfully", user.ID)
	return &user, nil
}

// GetUserByID fetches an account by primary key.
func GetUserByID(id int) (*models.User, error) {
	var user models.User
	if err := database.DB.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user with ID %d", ErrNotFound, id)
		}
		logrus.Errorf("Failed to get user by ID %d: %v", id, err)
		return nil, fmt.Errorf("failed to get user by ID %d: %w", id, err)
	}
	return &user, nil
}
