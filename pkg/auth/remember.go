package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/grocerly/grocerly/config"
)

// rememberClaims is the payload of a remember-me cookie: just enough to
// re-establish the session after the session cookie expires.
type rememberClaims struct {
	UserID uint `json:"user_id"`
	jwt.RegisteredClaims
}

func secret() []byte {
	return []byte(config.AppKey())
}

// GenerateRememberToken creates a signed token identifying userID, valid for ttl.
func GenerateRememberToken(userID uint, ttl time.Duration) (string, error) {
	claims := rememberClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret())
}

// ParseRememberToken validates a remember token and returns the user ID it names.
func ParseRememberToken(t string) (uint, error) {
	token, err := jwt.ParseWithClaims(t, &rememberClaims{}, func(*jwt.Token) (interface{}, error) {
		return secret(), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return 0, fmt.Errorf("auth: parse remember token: %w", err)
	}

	claims, ok := token.Claims.(*rememberClaims)
	if !ok || !token.Valid || claims.UserID == 0 {
		return 0, jwt.ErrTokenInvalidClaims
	}

	return claims.UserID, nil
}
