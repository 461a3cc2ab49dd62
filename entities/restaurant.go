package entities

import (
	"github.com/google/uuid"
)

type Restaurant struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name     string    `json:"name"`
	Type     string    `json:"type"` // cuisine category, e.g. "Indonesian", "Italian"
	Address  string    `json:"address"`
	Phone    string    `json:"phone"`
	ImageURL string    `json:"image_url,omitempty"`

	MenuItems []*MenuItem `gorm:"foreignKey:RestaurantID"`
	Timestamp
}
