package serverutils

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	SessionCookieName = "predator_session"
	SessionLocalKey   = "session_id"
	sessionLifetime   = 30 * 24 * time.Hour
)

type SessionConfig struct {
	Secret string
	Secure bool
}

// SessionMiddleware identifies the browser session from a signed cookie,
// issuing a fresh one when the cookie is missing or invalid.
func SessionMiddleware(cfg SessionConfig) fiber.Handler {
	secret := []byte(cfg.Secret)

	return func(ctx *fiber.Ctx) error {
		if id, ok := parseSessionToken(ctx.Cookies(SessionCookieName), secret); ok {
			ctx.Locals(SessionLocalKey, id)
			return ctx.Next()
		}

		id := uuid.NewString()
		token, err := signSessionToken(id, secret)
		if err != nil {
			return fmt.Errorf("sign session: %w", err)
		}

		ctx.Cookie(&fiber.Cookie{
			Name:     SessionCookieName,
			Value:    token,
			Path:     "/",
			Expires:  time.Now().Add(sessionLifetime),
			HTTPOnly: true,
			Secure:   cfg.Secure,
			SameSite: fiber.CookieSameSiteLaxMode,
		})
		ctx.Locals(SessionLocalKey, id)
		return ctx.Next()
	}
}

// SessionID returns the id set by SessionMiddleware.
func SessionID(ctx *fiber.Ctx) string {
	id, _ := ctx.Locals(SessionLocalKey).(string)
	return id
}

func signSessionToken(id string, secret []byte) (string, error) {
	claims := jwt.MapClaims{
		"session_id": id,
		"iat":        time.Now().Unix(),
		"exp":        time.Now().Add(sessionLifetime).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

func parseSessionToken(tokenStr string, secret []byte) (string, bool) {
	if tokenStr == "" {
		return "", false
	}

	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return "", false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", false
	}
	id, ok := claims["session_id"].(string)
	if !ok || id == "" {
		return "", false
	}
	return id, true
}
