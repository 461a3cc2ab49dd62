package seed

import (
	"Foodway-Backend/domain"
	"Foodway-Backend/entities"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
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

type mockMenuRepository struct {
	mock.Mock
}

func (m *mockMenuRepository) GetMenuItems(ctx context.Context, restaurantID string) ([]*entities.MenuItem, error) {
	args := m.Called(ctx, restaurantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.MenuItem), args.Error(1)
}

func (m *mockMenuRepository) GetMenuItemByID(ctx context.Context, id string) (*entities.MenuItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.MenuItem), args.Error(1)
}

func (m *mockMenuRepository) CreateMenuItem(ctx context.Context, menuItem *entities.MenuItem) error {
	args := m.Called(ctx, menuItem)
	return args.Error(0)
}

func (m *mockMenuRepository) UpdateMenuItemImage(ctx context.Context, id string, imageURL string) error {
	args := m.Called(ctx, id, imageURL)
	return args.Error(0)
}

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) GetUserByID(ctx context.Context, id string) (*entities.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *mockUserRepository) GetUserByUsername(ctx context.Context, username string) (*entities.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *mockUserRepository) CreateUser(ctx context.Context, user *entities.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func TestSeed_EmptyDatabase(t *testing.T) {
	restaurantRepo := new(mockRestaurantRepository)
	menuRepo := new(mockMenuRepository)
	userRepo := new(mockUserRepository)

	restaurantRepo.On("CountRestaurants", mock.Anything).Return(int64(0), nil).Once()
	restaurantRepo.On("CreateRestaurant", mock.Anything, mock.Anything).Return(nil).Once()
	menuRepo.On("CreateMenuItem", mock.Anything, mock.Anything).Return(nil).Times(3)

	var seededUser *entities.User
	userRepo.On("CreateUser", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			seededUser = args.Get(1).(*entities.User)
		}).
		Return(nil).Once()

	err := seedWith(context.Background(), restaurantRepo, menuRepo, userRepo)

	assert.NoError(t, err)
	restaurantRepo.AssertExpectations(t)
	menuRepo.AssertExpectations(t)
	userRepo.AssertExpectations(t)

	assert.Equal(t, domain.DemoUsername, seededUser.Username)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(seededUser.Password), []byte("demo-password")))
}

func TestSeed_ExistingData(t *testing.T) {
	restaurantRepo := new(mockRestaurantRepository)
	menuRepo := new(mockMenuRepository)
	userRepo := new(mockUserRepository)

	restaurantRepo.On("CountRestaurants", mock.Anything).Return(int64(1), nil).Once()

	err := seedWith(context.Background(), restaurantRepo, menuRepo, userRepo)

	assert.NoError(t, err)
	restaurantRepo.AssertExpectations(t)
	restaurantRepo.AssertNotCalled(t, "CreateRestaurant", mock.Anything, mock.Anything)
	menuRepo.AssertNotCalled(t, "CreateMenuItem", mock.Anything, mock.Anything)
	userRepo.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything)
}
