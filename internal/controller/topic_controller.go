package controller

import (
	"ai-journal-be/internal/pkg/serverutils"
	"ai-journal-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ITopicController interface {
	RegisterRoutes(r fiber.Router)
	Topics(ctx *fiber.Ctx) error
}

type topicController struct {
	topicService service.ITopicService
	jwtSecret    string
}

func NewTopicController(topicService service.ITopicService, jwtSecret string) ITopicController {
	return &topicController{
		topicService: topicService,
		jwtSecret:    jwtSecret,
	}
}

func (c *topicController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/topic/v1")
	h.Use(serverutils.JwtMiddleware(c.jwtSecret))
	h.Get("", c.Topics)
}

func (c *topicController) Topics(ctx *fiber.Ctx) error {
	userId, err := requireUser(ctx)
	if err != nil {
		return err
	}

	res, err := c.topicService.Topics(ctx.UserContext(), userId, ctx.QueryInt("range", 30))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get topics", res))
}
