package controller

import (
	"ai-journal-be/internal/dto"
	"ai-journal-be/internal/pkg/serverutils"
	"ai-journal-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IProfileController interface {
	RegisterRoutes(r fiber.Router)
	GetPersona(ctx *fiber.Ctx) error
	UpsertPersona(ctx *fiber.Ctx) error
}

type profileController struct {
	profileService service.IProfileService
	jwtSecret      string
}

func NewProfileController(profileService service.IProfileService, jwtSecret string) IProfileController {
	return &profileController{
		profileService: profileService,
		jwtSecret:      jwtSecret,
	}
}

func (c *profileController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/profile/v1")
	h.Use(serverutils.JwtMiddleware(c.jwtSecret))
	h.Get("", c.GetPersona)
	h.Put("", c.UpsertPersona)
}

func (c *profileController) GetPersona(ctx *fiber.Ctx) error {
	userId, err := requireUser(ctx)
	if err != nil {
		return err
	}

	res, err := c.profileService.GetPersona(ctx.UserContext(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get persona", res))
}

func (c *profileController) UpsertPersona(ctx *fiber.Ctx) error {
	userId, err := requireUser(ctx)
	if err != nil {
		return err
	}

	var req dto.UpsertPersonaRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.profileService.UpsertPersona(ctx.UserContext(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update persona", res))
}
