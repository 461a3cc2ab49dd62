package restaurant

import (
	"Foodway-Backend/domain"
	"Foodway-Backend/entities"
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type mockRestaurantRepository struct {
	mock.Mock
}

func (m *mockRestaurantRepository) GetRestaurants(ctx context.Context) ([]*entities.Restaurant, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Restaurant), args.Error(1)
}

func (m *mockRestaurantRepository) GetRestaurantByID(ctx context.Context, id string) (*entities.Restaurant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Restaurant), args.Error(1)
}

func (m *mockRestaurantRepository) CreateRestaurant(ctx context.Context, restaurant *entities.Restaurant) error {
	args := m.Called(ctx, restaurant)
	return args.Error(0)
}

func (m *mockRestaurantRepository) CountRestaurants(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func TestRestaurantService_CreateRestaurant(t *testing.T) {
	repo := new(mockRestaurantRepository)
	svc := NewRestaurantService(repo)

	req := domain.CreateRestaurantRequest{
		Name:     "Warung Nusantara",
		Type:     "Indonesian",
		Address:  "Jl. Merdeka No. 17, Bandung",
		Phone:    "+62-22-555-0117",
		ImageURL: "https://images.foodway.example/restaurants/warung-nusantara.jpg",
	}

	repo.On("CreateRestaurant", mock.Anything, mock.Anything).Return(nil).Once()

	res, err := svc.CreateRestaurant(context.Background(), req)

	assert.NoError(t, err)
	assert.Equal(t, req.Name, res.Name)
	assert.Equal(t, req.Type, res.Type)
	assert.Equal(t, req.Address, res.Address)
	assert.Equal(t, req.Phone, res.Phone)
	assert.Equal(t, req.ImageURL, res.ImageURL)
	repo.AssertExpectations(t)
}

func TestRestaurantService_GetRestaurantByID(t *testing.T) {
	stored := &entities.Restaurant{
		ID:      uuid.New(),
		Name:    "Warung Nusantara",
		Type:    "Indonesian",
		Address: "Jl. Merdeka No. 17, Bandung",
		Phone:   "+62-22-555-0117",
	}

	tests := []struct {
		name       string
		id         string
		mockResult *entities.Restaurant
		mockError  error
		wantErr    error
	}{
		{
			name:       "restaurant found",
			id:         stored.ID.String(),
			mockResult: stored,
		},
		{
			name:      "restaurant not found",
			id:        uuid.New().String(),
			mockError: gorm.ErrRecordNotFound,
			wantErr:   domain.ErrRestaurantNotFound,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			repo := new(mockRestaurantRepository)
			svc := NewRestaurantService(repo)

			repo.On("GetRestaurantByID", mock.Anything, testCase.id).
				Return(testCase.mockResult, testCase.mockError).Once()

			res, err := svc.GetRestaurantByID(context.Background(), testCase.id)

			if testCase.wantErr != nil {
				assert.ErrorIs(t, err, testCase.wantErr)
				assert.Nil(t, res)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, stored.ID.String(), res.ID)
				assert.Equal(t, stored.Name, res.Name)
			}
			repo.AssertExpectations(t)
		})
	}
}

func TestRestaurantService_GetRestaurants(t *testing.T) {
	repo := new(mockRestaurantRepository)
	svc := NewRestaurantService(repo)

	repo.On("GetRestaurants", mock.Anything).Return([]*entities.Restaurant{
		{ID: uuid.New(), Name: "Warung Nusantara"},
		{ID: uuid.New(), Name: "Pizzeria Roma"},
	}, nil).Once()

	res, err := svc.GetRestaurants(context.Background())

	assert.NoError(t, err)
	assert.Len(t, res, 2)
	repo.AssertExpectations(t)
}
