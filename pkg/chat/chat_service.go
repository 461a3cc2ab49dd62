package chat

import (
	"Foodway-Backend/domain"
	"Foodway-Backend/entities"
	"context"
)

type (
	ChatService interface {
		ReceiveWebhook(ctx context.Context, payload []byte) error
		GetChatLogs(ctx context.Context) ([]*domain.ChatLogResponse, error)
	}

	chatService struct {
		chatRepository ChatRepository
	}
)

func NewChatService(chatRepository ChatRepository) ChatService {
	return &chatService{chatRepository: chatRepository}
}

// ReceiveWebhook does not interpret the WhatsApp payload yet; it records a
// placeholder chat log row per delivery. TODO: parse the WhatsApp Cloud API
// message envelope once the integration account is provisioned.
func (s *chatService) ReceiveWebhook(ctx context.Context, payload []byte) error {
	chatLog := &entities.ChatLog{
		PhoneNumber: "unknown",
		Message:     "webhook received",
		Direction:   domain.ChatDirectionIncoming,
	}
	return s.chatRepository.CreateChatLog(ctx, chatLog)
}

func (s *chatService) GetChatLogs(ctx context.Context) ([]*domain.ChatLogResponse, error) {
	chatLogs, err := s.chatRepository.GetChatLogs(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*domain.ChatLogResponse, 0, len(chatLogs))
	for _, chatLog := range chatLogs {
		result = append(result, &domain.ChatLogResponse{
			ID:          chatLog.ID.String(),
			PhoneNumber: chatLog.PhoneNumber,
			Message:     chatLog.Message,
			Direction:   chatLog.Direction,
			CreatedAt:   chatLog.CreatedAt,
		})
	}
	return result, nil
}
