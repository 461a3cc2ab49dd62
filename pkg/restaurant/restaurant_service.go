package restaurant

import (
	"Foodway-Backend/domain"
	"Foodway-Backend/entities"
	"context"
	"errors"
	"gorm.io/gorm"
)

type (
	RestaurantService interface {
		GetRestaurants(ctx context.Context) ([]*domain.RestaurantResponse, error)
		GetRestaurantByID(ctx context.Context, id string) (*domain.RestaurantResponse, error)
		CreateRestaurant(ctx context.Context, req domain.CreateRestaurantRequest) (*domain.RestaurantResponse, error)
	}

	restaurantService struct {
		restaurantRepository RestaurantRepository
	}
)

func NewRestaurantService(restaurantRepository RestaurantRepository) RestaurantService {
	return &restaurantService{restaurantRepository: restaurantRepository}
}

func (s *restaurantService) GetRestaurants(ctx context.Context) ([]*domain.RestaurantResponse, error) {
	restaurants, err := s.restaurantRepository.GetRestaurants(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*domain.RestaurantResponse, 0, len(restaurants))
	for _, restaurant := range restaurants {
		result = append(result, toRestaurantResponse(restaurant))
	}
	return result, nil
}

func (s *restaurantService) GetRestaurantByID(ctx context.Context, id string) (*domain.RestaurantResponse, error) {
	restaurant, err := s.restaurantRepository.GetRestaurantByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRestaurantNotFound
		}
		return nil, err
	}
	return toRestaurantResponse(restaurant), nil
}

func (s *restaurantService) CreateRestaurant(ctx context.Context, req domain.CreateRestaurantRequest) (*domain.RestaurantResponse, error) {
	restaurant := &entities.Restaurant{
		Name:     req.Name,
		Type:     req.Type,
		Address:  req.Address,
		Phone:    req.Phone,
		ImageURL: req.ImageURL,
	}

	if err := s.restaurantRepository.CreateRestaurant(ctx, restaurant); err != nil {
		return nil, err
	}
	return toRestaurantResponse(restaurant), nil
}

func toRestaurantResponse(restaurant *entities.Restaurant) *domain.RestaurantResponse {
	return &domain.RestaurantResponse{
		ID:        restaurant.ID.String(),
		Name:      restaurant.Name,
		Type:      restaurant.Type,
		Address:   restaurant.Address,
		Phone:     restaurant.Phone,
		ImageURL:  restaurant.ImageURL,
		CreatedAt: restaurant.CreatedAt,
	}
}
