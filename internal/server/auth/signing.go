package auth

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// SigningMethod resolves a configured algorithm name to a jwt.SigningMethod.
// Only HMAC methods are supported; an unknown name returns an error so the
// process can refuse to start instead of signing with a bogus method.
func SigningMethod(alg string) (jwt.SigningMethod, error) {
	switch alg {
	case "HS256":
		return jwt.SigningMethodHS256, nil
	case "HS384":
		return jwt.SigningMethodHS384, nil
	case "HS512":
		return jwt.SigningMethodHS512, nil
	}
	return nil, fmt.Errorf("unsupported jwt algorithm: %q", alg)
}
