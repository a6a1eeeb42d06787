package controller

import (
	"ai-journal-be/internal/dto"
	"ai-journal-be/internal/pkg/serverutils"
	"ai-journal-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IMoodController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	Trends(ctx *fiber.Ctx) error
}

type moodController struct {
	moodService service.IMoodService
	jwtSecret   string
}

func NewMoodController(moodService service.IMoodService, jwtSecret string) IMoodController {
	return &moodController{
		moodService: moodService,
		jwtSecret:   jwtSecret,
	}
}

func (c *moodController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/mood/v1")
	h.Use(serverutils.JwtMiddleware(c.jwtSecret))
	h.Post("", c.Create)
	h.Get("trends", c.Trends)
}

func (c *moodController) Create(ctx *fiber.Ctx) error {
	userId, err := requireUser(ctx)
	if err != nil {
		return err
	}

	var req dto.CreateMoodRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.moodService.Create(ctx.UserContext(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.CreatedResponse("Success create mood", res))
}

func (c *moodController) Trends(ctx *fiber.Ctx) error {
	userId, err := requireUser(ctx)
	if err != nil {
		return err
	}

	res, err := c.moodService.Trends(ctx.UserContext(), userId, ctx.QueryInt("range", 7))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get mood trends", res))
}
