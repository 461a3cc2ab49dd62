package entities

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type MenuItem struct {
	ID           uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	RestaurantID uuid.UUID       `json:"restaurant_id"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	Price        decimal.Decimal `gorm:"type:decimal(10,2)" json:"price"`
	Category     string          `json:"category"` // "main", "drink", "dessert", ...
	ImageURL     string          `json:"image_url,omitempty"`
	IsAvailable  bool            `gorm:"default:true" json:"is_available"`

	Restaurant *Restaurant `gorm:"foreignKey:RestaurantID"`
	Timestamp
}
