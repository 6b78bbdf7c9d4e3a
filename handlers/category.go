package handlers

import (
	"net/http"

	"github.com/arbipangestu/Jubeli/models"
	"github.com/arbipangestu/Jubeli/services"
	"github.com/gin-gonic/gin"
)

// GetCategories lists the classification categories.
func GetCategories(c *gin.Context) {
	categories, err := services.GetAllCategories()
	if err != nil {
		ServiceErrorResponse(c, "Failed to list categories", err)
		return
	}

	resp := make([]models.CategoryResponse, len(categories))
	for i, cat := range categories {
		resp[i] = cat.ToResponse()
	}

	SuccessResponse(c, http.StatusOK, "Categories retrieved successfully", resp)
}
