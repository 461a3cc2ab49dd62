package order

import (
	"Foodway-Backend/entities"
	"context"
	"errors"
	"gorm.io/gorm"
)

type (
	OrderRepository interface {
		GetOrders(ctx context.Context) ([]*entities.Order, error)
		GetOrderByID(ctx context.Context, id string) (*entities.Order, error)
		CreateOrder(ctx context.Context, order *entities.Order, items []*entities.OrderItem) error
		UpdateOrderStatus(ctx context.Context, id string, status string) error
	}

	orderRepository struct {
		db *gorm.DB
	}
)

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) GetOrders(ctx context.Context) ([]*entities.Order, error) {
	var orders []*entities.Order
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Preload("Items.MenuItem").
		Order("created_at DESC").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *orderRepository) GetOrderByID(ctx context.Context, id string) (*entities.Order, error) {
	var order entities.Order
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Preload("Items.MenuItem").
		Where("id = ?", id).
		First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		return nil, err
	}
	return &order, nil
}

// CreateOrder inserts the order and its items in one transaction so a failed
// item insert never leaves a partial order behind.
func (r *orderRepository) CreateOrder(ctx context.Context, order *entities.Order, items []*entities.OrderItem) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(order).Error; err != nil {
			return err
		}

		for _, item := range items {
			item.OrderID = order.ID
			if err := tx.Create(item).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *orderRepository) UpdateOrderStatus(ctx context.Context, id string, status string) error {
	result := r.db.WithContext(ctx).
		Model(&entities.Order{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"status": status})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
