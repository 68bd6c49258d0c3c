// Package auth implements the credential and token primitives of the server:
// bcrypt password hashing and HS-family JWT issuance/verification.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/skorolev/taskkeeper/internal/common"
)

// Claims is the identity payload embedded in every access token. UserID is
// serialized as "id" to match the public token format.
type Claims struct {
	UserID   int64  `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	ImageURL string `json:"image_url"`
	jwt.RegisteredClaims
}

// ErrNoSigningKey is returned when token operations are attempted without a
// configured secret or algorithm. Config validation rejects this at startup,
// so hitting it at runtime means broken wiring.
var ErrNoSigningKey = errors.New("jwt secret or algorithm is not configured")

// GenerateToken signs a token carrying the given identity claims, valid for
// validityDuration from now.
func GenerateToken(claims Claims, secretKey []byte, method jwt.SigningMethod, validityDuration time.Duration) (string, error) {
	if len(secretKey) == 0 || method == nil {
		return "", ErrNoSigningKey
	}

	claims.RegisteredClaims = jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().UTC().Add(validityDuration)),
	}
	token := jwt.NewWithClaims(method, claims)

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// ParseToken verifies signature, algorithm, and expiry, and returns the
// embedded claims. Only the configured algorithm is accepted, so a token
// signed with a different method fails even under the same key. A payload
// without a user id is rejected despite a valid signature.
func ParseToken(tokenString string, secretKey []byte, alg string) (*Claims, error) {
	if len(secretKey) == 0 || alg == "" {
		return nil, ErrNoSigningKey
	}

	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	}, jwt.WithValidMethods([]string{alg}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, common.ErrTokenExpired
		}
		return nil, common.ErrInvalidToken
	}

	if !token.Valid || claims.UserID == 0 {
		return nil, common.ErrInvalidToken
	}

	return claims, nil
}
