package utils

import (
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/openair/aqimon/internal/pkg/constants"
	"github.com/spf13/viper"
)

// AuthTokenWrapper is the claim set carried by the auth cookie.
type AuthTokenWrapper struct {
	Username string `json:"username"`
	jwt.StandardClaims
}

// GenerateAuthToken signs a token for the given user with the configured
// secret.
func GenerateAuthToken(w *AuthTokenWrapper) (string, error) {
	ttl := viper.GetDuration(constants.ViperAuthTTL)
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	w.ExpiresAt = time.Now().Add(ttl).Unix()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, w)
	return token.SignedString([]byte(viper.GetString(constants.ViperAuthSecret)))
}

// ParseAuthToken validates a signed token and returns its claims. Any
// failure maps to an unauthorized coded error.
func ParseAuthToken(raw string) (*AuthTokenWrapper, error) {
	wrapper := &AuthTokenWrapper{}
	token, err := jwt.ParseWithClaims(raw, wrapper, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, constants.ErrUnauthorized
		}
		return []byte(viper.GetString(constants.ViperAuthSecret)), nil
	})
	if err != nil || !token.Valid {
		return nil, constants.ErrUnauthorized
	}

	return wrapper, nil
}
