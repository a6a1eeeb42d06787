package controller

import (
	"ai-journal-be/internal/dto"
	"ai-journal-be/internal/pkg/serverutils"
	"ai-journal-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type INoteController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	ListByDate(ctx *fiber.Ctx) error
	Insights(ctx *fiber.Ctx) error
}

type noteController struct {
	noteService service.INoteService
	jwtSecret   string
}

func NewNoteController(noteService service.INoteService, jwtSecret string) INoteController {
	return &noteController{
		noteService: noteService,
		jwtSecret:   jwtSecret,
	}
}

func (c *noteController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/note/v1")
	// login optional: anonymous notes are stored but never enriched
	h.Use(serverutils.OptionalJwtMiddleware(c.jwtSecret))
	h.Post("", c.Create)
	h.Get("", c.ListByDate)
	h.Get(":id/insights", c.Insights)
}

func (c *noteController) Create(ctx *fiber.Ctx) error {
	userId := serverutils.CurrentUserId(ctx)

	var req dto.CreateNoteRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.noteService.Create(ctx.UserContext(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.CreatedResponse("Success create note", res))
}

func (c *noteController) ListByDate(ctx *fiber.Ctx) error {
	userId := serverutils.CurrentUserId(ctx)

	date := ctx.Query("date")
	if !validDate(date) {
		return fiber.NewError(fiber.StatusBadRequest, "date query param is required (YYYY-MM-DD)")
	}

	res, err := c.noteService.ListByDate(ctx.UserContext(), userId, date)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list notes", res))
}

func (c *noteController) Insights(ctx *fiber.Ctx) error {
	userId := serverutils.CurrentUserId(ctx)

	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid note id")
	}

	res, err := c.noteService.Insights(ctx.UserContext(), userId, id)
	if err != nil {
		return err
	}
	if res == nil {
		return fiber.NewError(fiber.StatusNotFound, "Insights not found")
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get note insights", res))
}
