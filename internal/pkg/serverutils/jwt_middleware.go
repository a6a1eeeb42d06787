package serverutils

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var ErrUnauthorized = errors.New("unauthorized")

// ParseToken verifies an HS256 token and returns its user_id claim. Tokens are
// issued elsewhere; this service only verifies them.
func ParseToken(secret, tokenStr string) (uuid.UUID, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrUnauthorized
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return uuid.Nil, ErrUnauthorized
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, ErrUnauthorized
	}

	userIdStr, ok := claims["user_id"].(string)
	if !ok {
		return uuid.Nil, ErrUnauthorized
	}

	userId, err := uuid.Parse(userIdStr)
	if err != nil {
		return uuid.Nil, ErrUnauthorized
	}
	return userId, nil
}

func bearerToken(ctx *fiber.Ctx) string {
	authHeader := ctx.Get("Authorization")
	if len(authHeader) < 7 || !strings.EqualFold(authHeader[:7], "Bearer ") {
		return ""
	}
	return strings.TrimSpace(authHeader[7:])
}

// JwtMiddleware rejects requests without a valid bearer token and stores the
// user id string in Locals("user_id").
func JwtMiddleware(secret string) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		tokenStr := bearerToken(ctx)
		if tokenStr == "" {
			return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse(fiber.StatusUnauthorized, "Missing token"))
		}

		userId, err := ParseToken(secret, tokenStr)
		if err != nil {
			return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse(fiber.StatusUnauthorized, "Invalid token"))
		}

		ctx.Locals("user_id", userId.String())
		return ctx.Next()
	}
}

// OptionalJwtMiddleware lets anonymous requests through. A present but
// invalid token is still rejected.
func OptionalJwtMiddleware(secret string) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		tokenStr := bearerToken(ctx)
		if tokenStr == "" {
			return ctx.Next()
		}

		userId, err := ParseToken(secret, tokenStr)
		if err != nil {
			return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse(fiber.StatusUnauthorized, "Invalid token"))
		}

		ctx.Locals("user_id", userId.String())
		return ctx.Next()
	}
}

// CurrentUserId returns the authenticated user, or nil for anonymous requests.
func CurrentUserId(ctx *fiber.Ctx) *uuid.UUID {
	userIdStr, ok := ctx.Locals("user_id").(string)
	if !ok || userIdStr == "" {
		return nil
	}
	userId, err := uuid.Parse(userIdStr)
	if err != nil {
		return nil
	}
	return &userId
}
