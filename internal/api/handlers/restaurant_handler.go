package handlers

import (
	"Foodway-Backend/domain"
	"Foodway-Backend/internal/api/presenters"
	"Foodway-Backend/pkg/restaurant"
	"errors"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	RestaurantHandler interface {
		GetRestaurants(c *fiber.Ctx) error
		GetRestaurant(c *fiber.Ctx) error
		CreateRestaurant(c *fiber.Ctx) error
	}

	restaurantHandler struct {
		restaurantService restaurant.RestaurantService
		validator         *validator.Validate
	}
)

func NewRestaurantHandler(restaurantService restaurant.RestaurantService, validator *validator.Validate) RestaurantHandler {
	return &restaurantHandler{
		restaurantService: restaurantService,
		validator:         validator,
	}
}

func (h *restaurantHandler) GetRestaurants(c *fiber.Ctx) error {
	restaurants, err := h.restaurantService.GetRestaurants(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetRestaurants, err)
	}

	return presenters.SuccessResponse(c, restaurants, fiber.StatusOK, domain.MessageSuccessGetRestaurants)
}

func (h *restaurantHandler) GetRestaurant(c *fiber.Ctx) error {
	restaurantID := c.Params("id")

	res, err := h.restaurantService.GetRestaurantByID(c.Context(), restaurantID)
	if err != nil {
		if errors.Is(err, domain.ErrRestaurantNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetRestaurant, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetRestaurant, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetRestaurant)
}

func (h *restaurantHandler) CreateRestaurant(c *fiber.Ctx) error {
	req := new(domain.CreateRestaurantRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateRestaurant, err)
	}

	res, err := h.restaurantService.CreateRestaurant(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateRestaurant, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateRestaurant)
}
