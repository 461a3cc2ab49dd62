package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGetRestaurants   = "restaurants retrieved successfully"
	MessageSuccessGetRestaurant    = "restaurant retrieved successfully"
	MessageSuccessCreateRestaurant = "restaurant created successfully"

	MessageFailedGetRestaurants   = "failed to retrieve restaurants"
	MessageFailedGetRestaurant    = "failed to retrieve restaurant"
	MessageFailedCreateRestaurant = "failed to create restaurant"

	ErrRestaurantNotFound = errors.New("restaurant not found")
)

type (
	CreateRestaurantRequest struct {
		Name     string `json:"name" validate:"required"`
		Type     string `json:"type" validate:"required"`
		Address  string `json:"address" validate:"required"`
		Phone    string `json:"phone" validate:"required"`
		ImageURL string `json:"image_url" validate:"omitempty,url"`
	}

	RestaurantResponse struct {
		ID        string    `json:"id"`
		Name      string    `json:"name"`
		Type      string    `json:"type"`
		Address   string    `json:"address"`
		Phone     string    `json:"phone"`
		ImageURL  string    `json:"image_url,omitempty"`
		CreatedAt time.Time `json:"created_at"`
	}
)
