package controller

import (
	"errors"

	"rag-assessment-be/internal/dto"
	"rag-assessment-be/internal/pkg/serverutils"
	"rag-assessment-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IChatController interface {
	RegisterRoutes(r fiber.Router)
	Chat(ctx *fiber.Ctx) error
	History(ctx *fiber.Ctx) error
}

type chatController struct {
	chatService service.IChatService
}

func NewChatController(chatService service.IChatService) IChatController {
	return &chatController{
		chatService: chatService,
	}
}

func (c *chatController) RegisterRoutes(r fiber.Router) {
	r.Post("/chat", c.Chat)
	r.Get("/chat-history/:session_id", c.History)
}

func (c *chatController) Chat(ctx *fiber.Ctx) error {
	var req dto.ChatRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewBadRequest("Invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.chatService.Chat(ctx.Context(), &req)
	if err != nil {
		var intentErr *service.BookingIntentError
		if errors.As(err, &intentErr) {
			return ctx.Status(fiber.StatusBadRequest).JSON(dto.BookingIntentResponse{
				Error:         "booking_intent_detected",
				Message:       intentErr.Message,
				Suggestion:    "Please use the /book-interview endpoint with complete booking details",
				ExtractedInfo: intentErr.Extracted,
			})
		}
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success process chat", res))
}

func (c *chatController) History(ctx *fiber.Ctx) error {
	sessionId := ctx.Params("session_id")
	if sessionId == "" {
		return serverutils.NewBadRequest("Session id is required")
	}
	limit := ctx.QueryInt("limit", 20)

	res, err := c.chatService.GetChatHistory(ctx.Context(), sessionId, limit)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get chat history", res))
}
