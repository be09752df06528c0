package services

import (
	"fmt"
	"time"

	"chatbox/config"
	"chatbox/errors"

	"github.com/dgrijalva/jwt-go"
)

type UserInfo struct {
	UserID   uint   `json:"userid"`
	Username string `json:"username"`
}

type Claims struct {
	UserInfo UserInfo `json:"userinfo"`
	jwt.StandardClaims
}

func jwtSecret() []byte {
	return []byte(config.GetEnvDefault("JWT_SECRET", "chatbox-dev-secret"))
}

// GenerateToken signs a bearer token for API clients that cannot hold a
// session cookie.
func GenerateToken(info UserInfo, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		UserInfo: info,
		StandardClaims: jwt.StandardClaims{
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(ttl).Unix(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret())
}

// ParseToken validates a bearer token and returns the identity it carries.
func ParseToken(tokenString string) (UserInfo, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return jwtSecret(), nil
	})
	if err != nil {
		return UserInfo{}, errors.NewAppError(errors.ErrCodeInvalidToken, "Invalid token", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return UserInfo{}, errors.NewAppError(errors.ErrCodeInvalidToken, "Invalid token", nil)
	}

	return claims.UserInfo, nil
}
