package routes

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/arbipangestu/Jubeli/handlers"
	"github.com/arbipangestu/Jubeli/models"
	"github.com/arbipangestu/Jubeli/utils"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// RequestIDMiddleware tags every request with an id for log
// correlation and echoes it back to the client.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set("request_id", requestID)
		c.Header("X-Request-ID", requestID)
		c.Next()
	}
}

// parseToken verifies a bearer token and extracts the identity claims.
func parseToken(tokenString string) (userID int, role string, err error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return utils.JWTSecret, nil
	}, jwt.WithExpirationRequired())
	if err != nil {
		return 0, "", err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return 0, "", errors.New("invalid token claims")
	}

	id, ok := claims["user_id"].(float64)
	if !ok {
		return 0, "", errors.New("invalid user_id in token")
	}

	roleClaim, ok := claims["role"].(string)
	if !ok || (roleClaim != models.RoleUser && roleClaim != models.RoleAdmin) {
		return 0, "", errors.New("invalid role in token")
	}

	return int(id), roleClaim, nil
}

// AuthMiddleware verifies the JWT token and stores user_id and role in
// the request context.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"status":  false,
				"message": "Missing Authorization header",
				"error":   "Authorization header is required",
				"code":    "ERR_NO_AUTH_HEADER",
			})
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"status":  false,
				"message": "Invalid Authorization format",
				"error":   "Authorization header must be in the format 'Bearer <token>'",
				"code":    "ERR_INVALID_AUTH_FORMAT",
			})
			c.Abort()
			return
		}

		userID, role, err := parseToken(parts[1])
		if err != nil {
			logrus.Infof("Token verification failed: %v", err)
			if errors.Is(err, jwt.ErrTokenExpired) {
				c.JSON(http.StatusUnauthorized, gin.H{
					"status":  false,
					"message": "Token has expired",
					"error":   "Token has expired",
					"code":    "ERR_TOKEN_EXPIRED",
				})
			} else {
				c.JSON(http.StatusUnauthorized, gin.H{
					"status":  false,
					"message": "Invalid token",
					"error":   err.Error(),
					"code":    "ERR_INVALID_TOKEN",
				})
			}
			c.Abort()
			return
		}

		logrus.Debugf("Token verified for user_id %d, role %s at %v", userID, role, time.Now().Unix())
		c.Set("user_id", userID)
		c.Set("role", role)
		c.Next()
	}
}

// OptionalAuthMiddleware extracts the identity when a valid bearer
// token is present but lets the request through anonymously otherwise.
// Public endpoints use it so an admin flag can be honored only for a
// verified admin and silently ignored for everyone else.
func OptionalAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		parts := strings.Split(authHeader, " ")
		if len(parts) == 2 && parts[0] == "Bearer" {
			if userID, role, err := parseToken(parts[1]); err == nil {
				c.Set("user_id", userID)
				c.Set("role", role)
			}
		}
		c.Next()
	}
}

// RoleMiddleware restricts an endpoint to the given roles. Admin
// passes everywhere.
func RoleMiddleware(allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString("role")
		if role == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"status":  false,
				"message": "Role not found in context",
				"error":   "Role not found in context",
				"code":    "ERR_ROLE_NOT_FOUND",
			})
			c.Abort()
			return
		}

		if role == models.RoleAdmin {
			c.Next()
			return
		}

		for _, allowed := range allowedRoles {
			if role == allowed {
				c.Next()
				return
			}
		}

		c.JSON(http.StatusForbidden, gin.H{
			"status":  false,
			"message": "Insufficient role permissions",
			"error":   "Insufficient role permissions",
			"code":    "ERR_INSUFFICIENT_PERMISSIONS",
		})
		c.Abort()
	}
}

func Path(router *gin.RouterGroup) {
	v1 := router.Group("/v1")
	v1.Use(RequestIDMiddleware())
	{
		v1.GET("/ping", func(c *gin.Context) {
			c.JSON(200, gin.H{"message": "pong"})
		})

		users := v1.Group("/users")
		{
			users.POST("/register", handlers.RegisterUser)
			users.POST("/login", handlers.LoginUser)

			usersWithAuth := users.Group("")
			usersWithAuth.Use(AuthMiddleware())
			{
				usersWithAuth.GET("/profile", handlers.GetProfile)
			}
		}

		v1.GET("/categories", handlers.GetCategories)

		vehicles := v1.Group("/vehicles")
		{
			// Public browse/detail; admin mode on the list endpoint
			// only kicks in for an authenticated admin.
			vehicles.GET("", OptionalAuthMiddleware(), handlers.ListVehicles)
			vehicles.GET("/:id", handlers.GetVehicle)
			vehicles.GET("/:id/contact", handlers.GetVehicleContact)

			vehiclesWithAuth := vehicles.Group("")
			vehiclesWithAuth.Use(AuthMiddleware())
			{
				vehiclesWithAuth.POST("", RoleMiddleware(models.RoleUser), handlers.CreateVehicle)
				vehiclesWithAuth.PUT("/:id", RoleMiddleware(models.RoleUser), handlers.UpdateVehicle)
			}
		}
	}
}
