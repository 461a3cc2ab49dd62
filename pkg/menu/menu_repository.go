package menu

import (
	"Foodway-Backend/entities"
	"context"
	"errors"
	"gorm.io/gorm"
)

type (
	MenuRepository interface {
		GetMenuItems(ctx context.Context, restaurantID string) ([]*entities.MenuItem, error)
		GetMenuItemByID(ctx context.Context, id string) (*entities.MenuItem, error)
		CreateMenuItem(ctx context.Context, menuItem *entities.MenuItem) error
		UpdateMenuItemImage(ctx context.Context, id string, imageURL string) error
	}

	menuRepository struct {
		db *gorm.DB
	}
)

func NewMenuRepository(db *gorm.DB) MenuRepository {
	return &menuRepository{db: db}
}

func (r *menuRepository) GetMenuItems(ctx context.Context, restaurantID string) ([]*entities.MenuItem, error) {
	var menuItems []*entities.MenuItem
	if err := r.db.WithContext(ctx).
		Where("restaurant_id = ?", restaurantID).
		Find(&menuItems).Error; err != nil {
		return nil, err
	}
	return menuItems, nil
}

func (r *menuRepository) GetMenuItemByID(ctx context.Context, id string) (*entities.MenuItem, error) {
	var menuItem entities.MenuItem
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&menuItem).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		return nil, err
	}
	return &menuItem, nil
}

func (r *menuRepository) CreateMenuItem(ctx context.Context, menuItem *entities.MenuItem) error {
	return r.db.WithContext(ctx).Create(menuItem).Error
}

func (r *menuRepository) UpdateMenuItemImage(ctx context.Context, id string, imageURL string) error {
	return r.db.WithContext(ctx).Model(&entities.MenuItem{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"image_url": imageURL}).Error
}
