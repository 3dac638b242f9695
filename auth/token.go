package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/ramyaaaa4/sign-language-recognition/domain"
)

// Claims defines the structure of the data the identity collaborator signs
// into a JWT. The core trusts these fields as given.
type Claims struct {
	UserID         string      `json:"user_id"`
	Name           string      `json:"name"`
	Role           domain.Role `json:"role"`
	Specialization string      `json:"specialization,omitempty"`
	jwt.RegisteredClaims
}

func (c Claims) Identity() domain.Identity {
	return domain.Identity{
		UserID:         c.UserID,
		Name:           c.Name,
		Role:           c.Role,
		Specialization: c.Specialization,
	}
}

// GenerateToken creates a signed JWT for a participant. Only test harnesses
// and the probe client call this in-process; in production the identity
// service issues tokens.
func GenerateToken(identity domain.Identity, secret []byte, duration time.Duration) (string, error) {
	claims := &Claims{
		UserID:         identity.UserID,
		Name:           identity.Name,
		Role:           identity.Role,
		Specialization: identity.Specialization,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(duration)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "sign-language-recognition",
		},
	}

	// HS256: HMAC with SHA256, same scheme the identity service uses.
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// ValidateToken parses and validates the signature and expiration of a JWT
// string.
func ValidateToken(tokenString string, secret []byte) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return secret, nil
	})
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}
	return nil, jwt.ErrSignatureInvalid
}
