package controller

import (
	"errors"

	"ai-journal-be/internal/pkg/serverutils"
	"ai-journal-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IReportController interface {
	RegisterRoutes(r fiber.Router)
	Daily(ctx *fiber.Ctx) error
	Weekly(ctx *fiber.Ctx) error
}

type reportController struct {
	reportService service.IReportService
	jwtSecret     string
}

func NewReportController(reportService service.IReportService, jwtSecret string) IReportController {
	return &reportController{
		reportService: reportService,
		jwtSecret:     jwtSecret,
	}
}

func (c *reportController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/report/v1")
	h.Use(serverutils.JwtMiddleware(c.jwtSecret))
	h.Get("daily", c.Daily)
	h.Get("weekly", c.Weekly)
}

func (c *reportController) Daily(ctx *fiber.Ctx) error {
	userId, err := requireUser(ctx)
	if err != nil {
		return err
	}

	date := ctx.Query("date")
	if date == "" {
		return fiber.NewError(fiber.StatusBadRequest, "date query param is required (YYYY-MM-DD)")
	}

	res, err := c.reportService.Daily(ctx.UserContext(), userId, date)
	if err != nil {
		return reportError(err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get daily report", res))
}

func (c *reportController) Weekly(ctx *fiber.Ctx) error {
	userId, err := requireUser(ctx)
	if err != nil {
		return err
	}

	res, err := c.reportService.Weekly(ctx.UserContext(), userId, ctx.Query("end"))
	if err != nil {
		return reportError(err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get weekly report", res))
}

func reportError(err error) error {
	if errors.Is(err, service.ErrInvalidDate) {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	return err
}
