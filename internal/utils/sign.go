package utils

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the decoded identity attached to every authenticated request.
// Role and Permissions drive the authorization gates; both may be absent.
type Claims struct {
	Sub         string   `json:"sub"`
	Role        string   `json:"role,omitempty"`
	Permissions []string `json:"permissions,omitempty"`
	jwt.RegisteredClaims
}

func NewUserClaims(userId, role string, permissions []string, ttl time.Duration) *Claims {
	now := time.Now()
	return &Claims{
		Sub:         userId,
		Role:        role,
		Permissions: permissions,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
}

func GenerateSign(claims *Claims, secret []byte) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

func ParseAndVerifySign(token string, secret []byte) (*Claims, error) {
	parsedToken, err := jwt.ParseWithClaims(token, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method")
		}
		return secret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := parsedToken.Claims.(*Claims)
	if !ok || !parsedToken.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}

	return claims, nil
}

// HasPermissions reports whether the claim set carries every required
// permission. Order is irrelevant; the match is a logical AND.
func (c *Claims) HasPermissions(required ...string) bool {
	if len(c.Permissions) == 0 {
		return false
	}

	owned := make(map[string]struct{}, len(c.Permissions))
	for _, p := range c.Permissions {
		owned[p] = struct{}{}
	}

	for _, p := range required {
		if _, ok := owned[p]; !ok {
			return false
		}
	}
	return true
}
