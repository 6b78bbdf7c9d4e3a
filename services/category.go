package services

import (
	"errors"
	"fmt"

	"github.com/arbipangestu/Jubeli/database"
	"github.com/arbipangestu/Jubeli/models"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// GetAllCategories lists every category, stable by id.
func GetAllCategories() ([]models.Category, error) {
	var categories []models.Category
	if err := database.DB.Order("id ASC").Find(&categories).Error; err != nil {
		logrus.Errorf("Failed to query categories: %v", err)
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	return categories, nil
}

// EnsureDefaultCategories creates the two stock categories on first
// boot so listings always have something to attach to.
func EnsureDefaultCategories() error {
	defaults := []models.Category{
		{Name: "Mobil", Slug: "mobil"},
		{Name: "Motor", Slug: "motor"},
	}

	for _, cat := range defaults {
		var existing models.Category
		err := database.DB.Where("slug = ?", cat.Slug).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to check category %s: %w", cat.Slug, err)
		}
		if err := database.DB.Create(&cat).Error; err != nil {
			return fmt.Errorf("failed to create category %s: %w", cat.Slug, err)
		}
		logrus.Infof("Created default category: %s", cat.Name)
	}
	return nil
}
