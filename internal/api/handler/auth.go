package handler

import (
	"errors"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"

	"hostelhub/backend/internal/config"
	"hostelhub/backend/internal/models"
)

// generateSessionToken mints a JWT carrying the session identity. The token
// is identity transport for clients, not an authorization boundary: the role
// inside it is whatever the user asserted at login.
func (h *Handler) generateSessionToken(sess *models.Session) (string, error) {
	claims := jwt.MapClaims{
		"name": sess.Name,
		"room": sess.Room,
		"role": string(sess.Role),
		"exp":  time.Now().Add(config.TokenTTL).Unix(),
		"iss":  config.TokenIssuer,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(h.JWTSecret)
}

// validateSessionToken parses the token and returns the name claim.
func (h *Handler) validateSessionToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return h.JWTSecret, nil
	})
	if err != nil || !token.Valid {
		return "", errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", errors.New("invalid claims")
	}
	name, _ := claims["name"].(string)
	if name == "" {
		return "", errors.New("missing name claim")
	}
	return name, nil
}
