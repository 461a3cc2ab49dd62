package restaurant

import (
	"Foodway-Backend/entities"
	"context"
	"errors"
	"gorm.io/gorm"
)

type (
	RestaurantRepository interface {
		GetRestaurants(ctx context.Context) ([]*entities.Restaurant, error)
		GetRestaurantByID(ctx context.Context, id string) (*entities.Restaurant, error)
		CreateRestaurant(ctx context.Context, restaurant *entities.Restaurant) error
		CountRestaurants(ctx context.Context) (int64, error)
	}

	restaurantRepository struct {
		db *gorm.DB
	}
)

func NewRestaurantRepository(db *gorm.DB) RestaurantRepository {
	return &restaurantRepository{db: db}
}

func (r *restaurantRepository) GetRestaurants(ctx context.Context) ([]*entities.Restaurant, error) {
	var restaurants []*entities.Restaurant
	if err := r.db.WithContext(ctx).Find(&restaurants).Error; err != nil {
		return nil, err
	}
	return restaurants, nil
}

func (r *restaurantRepository) GetRestaurantByID(ctx context.Context, id string) (*entities.Restaurant, error) {
	var restaurant entities.Restaurant
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&restaurant).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		return nil, err
	}
	return &restaurant, nil
}

func (r *restaurantRepository) CreateRestaurant(ctx context.Context, restaurant *entities.Restaurant) error {
	return r.db.WithContext(ctx).Create(restaurant).Error
}

func (r *restaurantRepository) CountRestaurants(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entities.Restaurant{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
