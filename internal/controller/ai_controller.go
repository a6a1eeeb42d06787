package controller

import (
	"errors"

	"ai-journal-be/internal/dto"
	"ai-journal-be/internal/pkg/serverutils"
	"ai-journal-be/internal/service"
	"ai-journal-be/pkg/ai/enrich"

	"github.com/gofiber/fiber/v2"
)

type IAiController interface {
	RegisterRoutes(r fiber.Router)
	Summary(ctx *fiber.Ctx) error
}

type aiController struct {
	aiSummaryService service.IAiSummaryService
	jwtSecret        string
}

func NewAiController(aiSummaryService service.IAiSummaryService, jwtSecret string) IAiController {
	return &aiController{
		aiSummaryService: aiSummaryService,
		jwtSecret:        jwtSecret,
	}
}

func (c *aiController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/ai/v1")
	h.Use(serverutils.JwtMiddleware(c.jwtSecret))
	h.Post("summary", c.Summary)
}

func (c *aiController) Summary(ctx *fiber.Ctx) error {
	var req dto.AiSummaryRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.aiSummaryService.Summarize(ctx.UserContext(), &req)
	if err != nil {
		if errors.Is(err, enrich.ErrNoProvider) {
			return fiber.NewError(fiber.StatusServiceUnavailable, "AI summary is not configured")
		}
		return fiber.NewError(fiber.StatusBadGateway, "AI summary failed")
	}

	return ctx.JSON(serverutils.SuccessResponse("Success generate summary", res))
}
