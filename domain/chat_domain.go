package domain

import (
	"time"
)

const (
	ChatDirectionIncoming = "incoming"
	ChatDirectionOutgoing = "outgoing"
)

var (
	MessageSuccessGetChatLogs = "chat logs retrieved successfully"

	MessageFailedGetChatLogs    = "failed to retrieve chat logs"
	MessageFailedReceiveWebhook = "failed to receive webhook"
)

type (
	ChatLogResponse struct {
		ID          string    `json:"id"`
		PhoneNumber string    `json:"phone_number"`
		Message     string    `json:"message"`
		Direction   string    `json:"direction"`
		CreatedAt   time.Time `json:"created_at"`
	}

	WebhookResponse struct {
		Status string `json:"status"`
	}
)
