package entities

import (
	"github.com/google/uuid"
)

type User struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Username string    `gorm:"uniqueIndex" json:"username"`
	Password string    `json:"-"`
	Role     string    `json:"role"` // "user", "admin"
	Phone    string    `json:"phone"`

	Orders []*Order `gorm:"foreignKey:UserID"`
	Timestamp
}
