package order

import (
	"Foodway-Backend/domain"
	"Foodway-Backend/entities"
	"Foodway-Backend/pkg/menu"
	"Foodway-Backend/pkg/user"
	"context"
	"errors"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type (
	OrderService interface {
		GetOrders(ctx context.Context) ([]*domain.OrderResponse, error)
		GetOrderByID(ctx context.Context, id string) (*domain.OrderResponse, error)
		CreateOrder(ctx context.Context, req domain.CreateOrderRequest, userID string) (*domain.OrderResponse, error)
		UpdateOrderStatus(ctx context.Context, id string, req domain.UpdateOrderStatusRequest) (*domain.OrderResponse, error)
	}

	orderService struct {
		orderRepository OrderRepository
		menuRepository  menu.MenuRepository
		userRepository  user.UserRepository
	}
)

func NewOrderService(orderRepository OrderRepository, menuRepository menu.MenuRepository, userRepository user.UserRepository) OrderService {
	return &orderService{
		orderRepository: orderRepository,
		menuRepository:  menuRepository,
		userRepository:  userRepository,
	}
}

func (s *orderService) GetOrders(ctx context.Context) ([]*domain.OrderResponse, error) {
	orders, err := s.orderRepository.GetOrders(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*domain.OrderResponse, 0, len(orders))
	for _, order := range orders {
		result = append(result, toOrderResponse(order))
	}
	return result, nil
}

func (s *orderService) GetOrderByID(ctx context.Context, id string) (*domain.OrderResponse, error) {
	order, err := s.orderRepository.GetOrderByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, err
	}
	return toOrderResponse(order), nil
}

// CreateOrder prices each requested line against the current menu, freezing
// the price into the order item. Lines referencing an unknown menu item are
// skipped, so the stored order can hold fewer items than requested.
func (s *orderService) CreateOrder(ctx context.Context, req domain.CreateOrderRequest, userID string) (*domain.OrderResponse, error) {
	orderUser, err := s.resolveUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	total := decimal.Zero
	items := make([]*entities.OrderItem, 0, len(req.Items))
	menuItems := make([]*entities.MenuItem, 0, len(req.Items))

	for _, line := range req.Items {
		menuItem, err := s.menuRepository.GetMenuItemByID(ctx, line.MenuItemID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			return nil, err
		}

		total = total.Add(menuItem.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
		items = append(items, &entities.OrderItem{
			MenuItemID: menuItem.ID,
			Quantity:   line.Quantity,
			Price:      menuItem.Price,
		})
		menuItems = append(menuItems, menuItem)
	}

	order := &entities.Order{
		UserID:      orderUser.ID,
		TotalAmount: total,
		Status:      domain.OrderStatusPending,
	}

	if err := s.orderRepository.CreateOrder(ctx, order, items); err != nil {
		return nil, err
	}

	for i, item := range items {
		item.MenuItem = menuItems[i]
	}
	order.Items = items
	return toOrderResponse(order), nil
}

func (s *orderService) UpdateOrderStatus(ctx context.Context, id string, req domain.UpdateOrderStatusRequest) (*domain.OrderResponse, error) {
	if err := s.orderRepository.UpdateOrderStatus(ctx, id, req.Status); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, err
	}
	return s.GetOrderByID(ctx, id)
}

func (s *orderService) resolveUser(ctx context.Context, userID string) (*entities.User, error) {
	if userID == "" {
		return s.userRepository.GetUserByUsername(ctx, domain.DemoUsername)
	}

	if _, err := uuid.Parse(userID); err != nil {
		return nil, domain.ErrParseUUID
	}
	return s.userRepository.GetUserByID(ctx, userID)
}

func toOrderResponse(order *entities.Order) *domain.OrderResponse {
	items := make([]domain.OrderItemResponse, 0, len(order.Items))
	for _, item := range order.Items {
		itemResponse := domain.OrderItemResponse{
			ID:         item.ID.String(),
			MenuItemID: item.MenuItemID.String(),
			Quantity:   item.Quantity,
			Price:      item.Price.StringFixed(2),
		}
		if item.MenuItem != nil {
			itemResponse.MenuItem = menu.ToMenuItemResponse(item.MenuItem)
		}
		items = append(items, itemResponse)
	}

	return &domain.OrderResponse{
		ID:          order.ID.String(),
		UserID:      order.UserID.String(),
		TotalAmount: order.TotalAmount.StringFixed(2),
		Status:      order.Status,
		Items:       items,
		CreatedAt:   order.CreatedAt,
	}
}
