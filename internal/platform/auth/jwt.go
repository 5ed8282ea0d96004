package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
)

const (
	RoleUser  = "USER"
	RoleStaff = "STAFF"
	RoleAdmin = "ADMIN"
)

type Claims struct {
	Sub   string `json:"sub"`
	Role  string `json:"role"`
	Phone string `json:"phone"`
	jwt.RegisteredClaims
}

// IsStaff reports whether the role may use the operator endpoints.
func (c *Claims) IsStaff() bool {
	switch strings.ToUpper(c.Role) {
	case RoleStaff, RoleAdmin:
		return true
	}
	return false
}

// Verifier checks HS256 bearer tokens issued by the identity provider.
type Verifier struct {
	secret []byte
}

func NewVerifier(secret string) *Verifier {
	return &Verifier{secret: []byte(secret)}
}

func (v *Verifier) ParseValidate(tokenStr string) (*Claims, error) {
	t, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return v.secret, nil
	})
	if err != nil {
		return nil, err
	}
	c, ok := t.Claims.(*Claims)
	if !ok || !t.Valid {
		return nil, errors.New("invalid token")
	}
	if c.Sub == "" {
		return nil, errors.New("token has no subject")
	}
	return c, nil
}

// Sign issues a token with the verifier's secret. Used by tooling and tests.
func (v *Verifier) Sign(sub, role, phone string, ttl time.Duration) (string, error) {
	claims := Claims{Sub: sub, Role: role, Phone: phone, RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl))}}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(v.secret)
}
