package handlers

import (
	"Foodway-Backend/domain"
	"Foodway-Backend/internal/utils"
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockRestaurantService struct {
	mock.Mock
}

func (m *mockRestaurantService) GetRestaurants(ctx context.Context) ([]*domain.RestaurantResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.RestaurantResponse), args.Error(1)
}

func (m *mockRestaurantService) GetRestaurantByID(ctx context.Context, id string) (*domain.RestaurantResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RestaurantResponse), args.Error(1)
}

func (m *mockRestaurantService) CreateRestaurant(ctx context.Context, req domain.CreateRestaurantRequest) (*domain.RestaurantResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RestaurantResponse), args.Error(1)
}

func newRestaurantTestApp(svc *mockRestaurantService) *fiber.App {
	utils.InitValidator()
	app := fiber.New()
	handler := NewRestaurantHandler(svc, utils.Validate)
	app.Get("/api/v1/restaurants", handler.GetRestaurants)
	app.Post("/api/v1/restaurants", handler.CreateRestaurant)
	app.Get("/api/v1/restaurants/:id", handler.GetRestaurant)
	return app
}

func TestRestaurantHandler_CreateRestaurant(t *testing.T) {
	tests := []struct {
		name       string
		body       map[string]interface{}
		wantStatus int
	}{
		{
			name: "valid payload",
			body: map[string]interface{}{
				"name":    "Warung Nusantara",
				"type":    "Indonesian",
				"address": "Jl. Merdeka No. 17, Bandung",
				"phone":   "+62-22-555-0117",
			},
			wantStatus: fiber.StatusCreated,
		},
		{
			name: "missing name",
			body: map[string]interface{}{
				"type":    "Indonesian",
				"address": "Jl. Merdeka No. 17, Bandung",
				"phone":   "+62-22-555-0117",
			},
			wantStatus: fiber.StatusBadRequest,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			svc := new(mockRestaurantService)
			if testCase.wantStatus == fiber.StatusCreated {
				svc.On("CreateRestaurant", mock.Anything, mock.Anything).
					Return(&domain.RestaurantResponse{
						ID:   uuid.New().String(),
						Name: "Warung Nusantara",
					}, nil).Once()
			}
			app := newRestaurantTestApp(svc)

			payload, _ := json.Marshal(testCase.body)
			req := httptest.NewRequest(fiber.MethodPost, "/api/v1/restaurants", bytes.NewReader(payload))
			req.Header.Set("Content-Type", "application/json")

			resp, err := app.Test(req)

			assert.NoError(t, err)
			assert.Equal(t, testCase.wantStatus, resp.StatusCode)

			if testCase.wantStatus == fiber.StatusBadRequest {
				var body map[string]interface{}
				assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
				assert.Equal(t, "error", body["status"])
				assert.Contains(t, body["error"], "Name")
				svc.AssertNotCalled(t, "CreateRestaurant", mock.Anything, mock.Anything)
			}
		})
	}
}

func TestRestaurantHandler_GetRestaurant_NotFound(t *testing.T) {
	svc := new(mockRestaurantService)
	svc.On("GetRestaurantByID", mock.Anything, mock.Anything).
		Return(nil, domain.ErrRestaurantNotFound).Once()
	app := newRestaurantTestApp(svc)

	req := httptest.NewRequest(fiber.MethodGet, "/api/v1/restaurants/"+uuid.New().String(), nil)
	resp, err := app.Test(req)

	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestRestaurantHandler_GetRestaurants(t *testing.T) {
	svc := new(mockRestaurantService)
	svc.On("GetRestaurants", mock.Anything).Return([]*domain.RestaurantResponse{
		{ID: uuid.New().String(), Name: "Warung Nusantara"},
	}, nil).Once()
	app := newRestaurantTestApp(svc)

	req := httptest.NewRequest(fiber.MethodGet, "/api/v1/restaurants", nil)
	resp, err := app.Test(req)

	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
