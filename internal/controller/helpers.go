package controller

import (
	"time"

	"ai-journal-be/internal/pkg/serverutils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

func validDate(s string) bool {
	_, err := time.Parse(dateLayout, s)
	return err == nil
}

// requireUser is for routes behind JwtMiddleware.
func requireUser(ctx *fiber.Ctx) (uuid.UUID, error) {
	userId := serverutils.CurrentUserId(ctx)
	if userId == nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
	}
	return *userId, nil
}
