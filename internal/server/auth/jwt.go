// Package auth issues and parses the HS256 access tokens that carry a
// caller's account id and role.
package auth

import (
	"errors"
	"time"

	"github.com/dmitrijs2005/unielect/internal/common"
	"github.com/dmitrijs2005/unielect/internal/server/models"
	"github.com/golang-jwt/jwt/v5"
)

// Claims extends the registered claims with the account id and role.
type Claims struct {
	jwt.RegisteredClaims
	UserID string      `json:"uid"`
	Role   models.Role `json:"role"`
}

func GenerateToken(userID string, role models.Role, secretKey []byte, validityDuration time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(validityDuration)),
		},
		UserID: userID,
		Role:   role,
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// ParseToken validates tokenString and returns the caller it names. Any
// failure, expiry included, yields common.ErrInvalidToken.
func ParseToken(tokenString string, secretKey []byte) (models.Actor, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return models.Actor{}, common.ErrInvalidToken
		}
		return models.Actor{}, errors.Join(common.ErrInvalidToken, err)
	}

	if !token.Valid || claims.UserID == "" || !claims.Role.Valid() {
		return models.Actor{}, common.ErrInvalidToken
	}

	return models.Actor{UserID: claims.UserID, Role: claims.Role}, nil
}
