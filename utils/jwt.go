package utils

import (
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
)

// JWTSecret signs and verifies access tokens. Loaded once at startup.
var JWTSecret []byte

const defaultTokenTTL = 24 * time.Hour

// resolveJWTSecret picks the signing secret. The development fallback
// only applies outside release mode; a release boot without
// JWT_SECRET refuses to start.
func resolveJWTSecret(ginMode, secret string) (string, error) {
	if secret != "" {
		return secret, nil
	}
	if ginMode == "release" {
		return "", fmt.Errorf("JWT_SECRET must be set when GIN_MODE is release")
	}
	return "jubeli-dev-secret", nil
}

// InitJWTSecret loads JWT_SECRET from the environment. A development
// fallback is used when unset so local boots keep working.
func InitJWTSecret() {
	secret, err := resolveJWTSecret(os.Getenv("GIN_MODE"), os.Getenv("JWT_SECRET"))
	if err != nil {
		logrus.Fatalf("Failed to initialize JWT secret: %v", err)
	}
	if os.Getenv("JWT_SECRET") == "" {
		logrus.Warn("JWT_SECRET not set, using insecure development secret")
	}
	JWTSecret = []byte(secret)
}

// GenerateToken mints an access token carrying the user identity and
// role claim checked by the auth middleware.
func GenerateToken(userID int, role string) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"role":    role,
		"exp":     time.Now().Add(defaultTokenTTL).Unix(),
		"iat":     time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(JWTSecret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}
