package utils

import (
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/mataxelle/BilMo/internal/models"
)

// JWTSecret retourne le secret de signature. Le défaut n'est là que pour le
// développement local.
func JWTSecret() []byte {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "super_secret"
	}
	return []byte(secret)
}

func GenerateJWT(client models.Client) (string, error) {
	claims := jwt.MapClaims{
		"client_id": client.ID,
		"email":     client.Email,
		"role":      client.Role,
		"exp":       time.Now().Add(24 * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(JWTSecret())
}
