package entities

import (
	"github.com/google/uuid"
)

type ChatLog struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	PhoneNumber string    `json:"phone_number"`
	Message     string    `gorm:"type:text" json:"message"`
	Direction   string    `json:"direction"` // "incoming", "outgoing"

	Timestamp
}
