package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

var (
	MessageSuccessGetMenuItems    = "menu items retrieved successfully"
	MessageSuccessGetMenuItem     = "menu item retrieved successfully"
	MessageSuccessCreateMenuItem  = "menu item created successfully"
	MessageSuccessUploadMenuImage = "menu item image uploaded successfully"

	MessageFailedGetMenuItems    = "failed to retrieve menu items"
	MessageFailedGetMenuItem     = "failed to retrieve menu item"
	MessageFailedCreateMenuItem  = "failed to create menu item"
	MessageFailedUploadMenuImage = "failed to upload menu item image"

	ErrMenuItemNotFound = errors.New("menu item not found")
	ErrInvalidPrice     = errors.New("price must be a decimal string")
)

type (
	CreateMenuItemRequest struct {
		Name        string `json:"name" validate:"required"`
		Description string `json:"description" validate:"omitempty"`
		Price       string `json:"price" validate:"required"`
		Category    string `json:"category" validate:"required"`
		ImageURL    string `json:"image_url" validate:"omitempty,url"`
		IsAvailable *bool  `json:"is_available" validate:"omitempty"`
	}

	UploadMenuImageRequest struct {
		MenuItemID string                `json:"menu_item_id" form:"menu_item_id" validate:"required,uuid"`
		Image      *multipart.FileHeader `json:"image" form:"image" validate:"required"`
	}

	MenuItemResponse struct {
		ID           string    `json:"id"`
		RestaurantID string    `json:"restaurant_id"`
		Name         string    `json:"name"`
		Description  string    `json:"description"`
		Price        string    `json:"price"`
		Category     string    `json:"category"`
		ImageURL     string    `json:"image_url,omitempty"`
		IsAvailable  bool      `json:"is_available"`
		CreatedAt    time.Time `json:"created_at"`
	}
)
