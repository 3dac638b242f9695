package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/ramyaaaa4/sign-language-recognition/domain"
)

var secret = []byte("unit-test-secret")

func TestToken_RoundTrip(t *testing.T) {
	req := require.New(t)
	identity := domain.Identity{
		UserID:         "d-42",
		Name:           "Dr. Smith",
		Role:           domain.RoleDoctor,
		Specialization: "ASL Interpretation",
	}

	// When a token is issued and validated
	token, err := GenerateToken(identity, secret, time.Hour)
	req.NoError(err)
	claims, err := ValidateToken(token, secret)
	req.NoError(err)

	// Then the identity survives the round trip
	req.Equal(identity, claims.Identity())
	req.Equal("sign-language-recognition", claims.Issuer)
}

func TestToken_WrongSecret_Is_Rejected(t *testing.T) {
	req := require.New(t)
	identity := domain.Identity{UserID: "p-1", Name: "Alice", Role: domain.RolePatient}

	token, err := GenerateToken(identity, secret, time.Hour)
	req.NoError(err)

	// When validation uses another secret
	_, err = ValidateToken(token, []byte("someone-else"))

	// Then the signature check fails
	req.Error(err)
}

func TestToken_Expired_Is_Rejected(t *testing.T) {
	req := require.New(t)
	identity := domain.Identity{UserID: "p-1", Name: "Alice", Role: domain.RolePatient}

	// Given a token that expired an hour ago
	token, err := GenerateToken(identity, secret, -time.Hour)
	req.NoError(err)

	// Then validation reports the expiration
	_, err = ValidateToken(token, secret)
	req.ErrorIs(err, jwt.ErrTokenExpired)
}

func TestToken_Garbage_Is_Rejected(t *testing.T) {
	req := require.New(t)
	_, err := ValidateToken("not.a.token", secret)
	req.Error(err)
}
