package handlers

import (
	"errors"
	"net/http"

	"github.com/arbipangestu/Jubeli/services"
	"github.com/arbipangestu/Jubeli/utils"
	"github.com/gin-gonic/gin"
)

// RegisterUser creates a seller/buyer account.
func RegisterUser(c *gin.Context) {
	var input struct {
		Name        string `json:"name" binding:"required"`
		Email       string `json:"email" binding:"required,email"`
		Password    string `json:"password" binding:"required,min=8"`
		PhoneNumber string `json:"phone_number"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		ErrorResponse(c, http.StatusBadRequest, "Invalid registration payload", err.Error())
		return
	}

	user, err := services.RegisterUser(input.Name, input.Email, input.Password, input.PhoneNumber)
	if err != nil {
		ServiceErrorResponse(c, "Failed to register user", err)
		return
	}

	SuccessResponse(c, http.StatusCreated, "User registered successfully", user.ToResponse())
}

// LoginUser checks credentials and returns a signed token.
func LoginUser(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		ErrorResponse(c, http.StatusBadRequest, "Invalid login payload", err.Error())
		return
	}

	user, err := services.LoginUser(input.Email, input.Password)
	if err != nil {
		// Credential failures come back as ErrValidation; answer 401
		// rather than 400 so clients can distinguish them from a
		// malformed request.
		if errors.Is(err, services.ErrValidation) {
			ErrorResponse(c, http.StatusUnauthorized, "Login failed", "invalid email or password")
			return
		}
		ServiceErrorResponse(c, "Failed to login", err)
		return
	}

	token, err := utils.GenerateToken(user.ID, user.Role)
	if err != nil {
		ServiceErrorResponse(c, "Failed to generate token", err)
		return
	}

	SuccessResponse(c, http.StatusOK, "Login successful", gin.H{
		"token": token,
		"user":  user.ToResponse(),
	})
}

// GetProfile returns the authenticated user's own account.
func GetProfile(c *gin.Context) {
	user, err := services.GetUserByID(c.GetInt("user_id"))
	if err != nil {
		ServiceErrorResponse(c, "Failed to get profile", err)
		return
	}

	SuccessResponse(c, http.StatusOK, "Profile retrieved successfully", user.ToResponse())
}
