package handlers

import (
	"Foodway-Backend/domain"
	"Foodway-Backend/internal/api/presenters"
	"Foodway-Backend/pkg/chat"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

type (
	ChatHandler interface {
		WhatsAppWebhook(c *fiber.Ctx) error
		GetChatLogs(c *fiber.Ctx) error
	}

	chatHandler struct {
		chatService chat.ChatService
	}
)

func NewChatHandler(chatService chat.ChatService) ChatHandler {
	return &chatHandler{chatService: chatService}
}

func (h *chatHandler) WhatsAppWebhook(c *fiber.Ctx) error {
	payload := c.Body()
	log.Infof("whatsapp webhook payload: %s", string(payload))

	if err := h.chatService.ReceiveWebhook(c.Context(), payload); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedReceiveWebhook, err)
	}

	return c.Status(fiber.StatusOK).JSON(domain.WebhookResponse{Status: "received"})
}

func (h *chatHandler) GetChatLogs(c *fiber.Ctx) error {
	chatLogs, err := h.chatService.GetChatLogs(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetChatLogs, err)
	}

	return presenters.SuccessResponse(c, chatLogs, fiber.StatusOK, domain.MessageSuccessGetChatLogs)
}
