package menu

import (
	"Foodway-Backend/domain"
	"Foodway-Backend/entities"
	"Foodway-Backend/internal/utils/storage"
	"Foodway-Backend/pkg/restaurant"
	"context"
	"errors"
	"fmt"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type (
	MenuService interface {
		GetMenuItems(ctx context.Context, restaurantID string) ([]*domain.MenuItemResponse, error)
		GetMenuItemByID(ctx context.Context, id string) (*domain.MenuItemResponse, error)
		CreateMenuItem(ctx context.Context, restaurantID string, req domain.CreateMenuItemRequest) (*domain.MenuItemResponse, error)
		UploadMenuImage(ctx context.Context, req domain.UploadMenuImageRequest) (*domain.MenuItemResponse, error)
	}

	menuService struct {
		menuRepository       MenuRepository
		restaurantRepository restaurant.RestaurantRepository
		s3                   storage.AwsS3
	}
)

func NewMenuService(menuRepository MenuRepository, restaurantRepository restaurant.RestaurantRepository, s3 storage.AwsS3) MenuService {
	return &menuService{
		menuRepository:       menuRepository,
		restaurantRepository: restaurantRepository,
		s3:                   s3,
	}
}

func (s *menuService) GetMenuItems(ctx context.Context, restaurantID string) ([]*domain.MenuItemResponse, error) {
	menuItems, err := s.menuRepository.GetMenuItems(ctx, restaurantID)
	if err != nil {
		return nil, err
	}

	result := make([]*domain.MenuItemResponse, 0, len(menuItems))
	for _, item := range menuItems {
		result = append(result, ToMenuItemResponse(item))
	}
	return result, nil
}

func (s *menuService) GetMenuItemByID(ctx context.Context, id string) (*domain.MenuItemResponse, error) {
	menuItem, err := s.menuRepository.GetMenuItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrMenuItemNotFound
		}
		return nil, err
	}
	return ToMenuItemResponse(menuItem), nil
}

func (s *menuService) CreateMenuItem(ctx context.Context, restaurantID string, req domain.CreateMenuItemRequest) (*domain.MenuItemResponse, error) {
	if _, err := s.restaurantRepository.GetRestaurantByID(ctx, restaurantID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRestaurantNotFound
		}
		return nil, err
	}

	restaurantUUID, err := uuid.Parse(restaurantID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	price, err := decimal.NewFromString(req.Price)
	if err != nil {
		return nil, domain.ErrInvalidPrice
	}

	isAvailable := true
	if req.IsAvailable != nil {
		isAvailable = *req.IsAvailable
	}

	menuItem := &entities.MenuItem{
		RestaurantID: restaurantUUID,
		Name:         req.Name,
		Description:  req.Description,
		Price:        price,
		Category:     req.Category,
		ImageURL:     req.ImageURL,
		IsAvailable:  isAvailable,
	}

	if err := s.menuRepository.CreateMenuItem(ctx, menuItem); err != nil {
		return nil, err
	}
	return ToMenuItemResponse(menuItem), nil
}

func (s *menuService) UploadMenuImage(ctx context.Context, req domain.UploadMenuImageRequest) (*domain.MenuItemResponse, error) {
	menuItem, err := s.menuRepository.GetMenuItemByID(ctx, req.MenuItemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrMenuItemNotFound
		}
		return nil, err
	}

	objectKey, err := s.s3.UploadFile(
		fmt.Sprintf("menu-item-%s", menuItem.ID.String()),
		req.Image,
		"menu-items",
		storage.AllowImage...,
	)
	if err != nil {
		return nil, err
	}

	imageURL := s.s3.GetPublicLinkKey(objectKey)
	if err := s.menuRepository.UpdateMenuItemImage(ctx, req.MenuItemID, imageURL); err != nil {
		return nil, err
	}

	menuItem.ImageURL = imageURL
	return ToMenuItemResponse(menuItem), nil
}

func ToMenuItemResponse(menuItem *entities.MenuItem) *domain.MenuItemResponse {
	return &domain.MenuItemResponse{
		ID:           menuItem.ID.String(),
		RestaurantID: menuItem.RestaurantID.String(),
		Name:         menuItem.Name,
		Description:  menuItem.Description,
		Price:        menuItem.Price.StringFixed(2),
		Category:     menuItem.Category,
		ImageURL:     menuItem.ImageURL,
		IsAvailable:  menuItem.IsAvailable,
		CreatedAt:    menuItem.CreatedAt,
	}
}
