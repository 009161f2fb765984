package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const issuer = "quizifai"

var jwtSecret []byte

// Init sets the signing key. It panics on an empty secret.
func Init(secret string) {
	if secret == "" {
		panic("auth: JWT secret is empty")
	}
	jwtSecret = []byte(secret)
}

// Identity is what a session token says about the signed-in user.
type Identity struct {
	UserID  string
	Role    string
	Name    string
	Picture string
}

type Claims struct {
	UserID  string `json:"user_id"`
	Role    string `json:"role"`
	Name    string `json:"name,omitempty"`
	Picture string `json:"picture,omitempty"`
	jwt.RegisteredClaims
}

func (c *Claims) Identity() Identity {
	return Identity{UserID: c.UserID, Role: c.Role, Name: c.Name, Picture: c.Picture}
}

func GenerateJWT(id Identity, ttl time.Duration) (string, error) {
	if len(jwtSecret) == 0 {
		return "", errors.New("auth not initialized")
	}

	now := time.Now()
	claims := &Claims{
		UserID:  id.UserID,
		Role:    id.Role,
		Name:    id.Name,
		Picture: id.Picture,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   id.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret)
}

func ValidateJWT(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (any, error) {
		return jwtSecret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
	)
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, fmt.Errorf("token is invalid")
	}
	return claims, nil
}
