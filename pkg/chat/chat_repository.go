package chat

import (
	"Foodway-Backend/entities"
	"context"
	"gorm.io/gorm"
)

type (
	ChatRepository interface {
		CreateChatLog(ctx context.Context, chatLog *entities.ChatLog) error
		GetChatLogs(ctx context.Context) ([]*entities.ChatLog, error)
	}

	chatRepository struct {
		db *gorm.DB
	}
)

func NewChatRepository(db *gorm.DB) ChatRepository {
	return &chatRepository{db: db}
}

func (r *chatRepository) CreateChatLog(ctx context.Context, chatLog *entities.ChatLog) error {
	return r.db.WithContext(ctx).Create(chatLog).Error
}

func (r *chatRepository) GetChatLogs(ctx context.Context) ([]*entities.ChatLog, error) {
	var chatLogs []*entities.ChatLog
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&chatLogs).Error; err != nil {
		return nil, err
	}
	return chatLogs, nil
}
