package domain

import (
	"errors"
	"time"
)

const (
	OrderStatusPending        = "pending"
	OrderStatusConfirmed      = "confirmed"
	OrderStatusPreparing      = "preparing"
	OrderStatusOutForDelivery = "out_for_delivery"
	OrderStatusDelivered      = "delivered"
	OrderStatusCancelled      = "cancelled"
)

var (
	MessageSuccessGetOrders         = "orders retrieved successfully"
	MessageSuccessGetOrder          = "order retrieved successfully"
	MessageSuccessCreateOrder       = "order created successfully"
	MessageSuccessUpdateOrderStatus = "order status updated successfully"

	MessageFailedGetOrders         = "failed to retrieve orders"
	MessageFailedGetOrder          = "failed to retrieve order"
	MessageFailedCreateOrder       = "failed to create order"
	MessageFailedUpdateOrderStatus = "failed to update order status"

	ErrOrderNotFound = errors.New("order not found")
)

type (
	OrderItemRequest struct {
		MenuItemID string `json:"menu_item_id" validate:"required,uuid"`
		Quantity   int    `json:"quantity" validate:"required,min=1"`
	}

	CreateOrderRequest struct {
		Items []OrderItemRequest `json:"items" validate:"required,min=1,dive"`
	}

	UpdateOrderStatusRequest struct {
		Status string `json:"status" validate:"required,oneof=pending confirmed preparing out_for_delivery delivered cancelled"`
	}

	OrderItemResponse struct {
		ID         string            `json:"id"`
		MenuItemID string            `json:"menu_item_id"`
		Quantity   int               `json:"quantity"`
		Price      string            `json:"price"`
		MenuItem   *MenuItemResponse `json:"menu_item,omitempty"`
	}

	OrderResponse struct {
		ID          string              `json:"id"`
		UserID      string              `json:"user_id"`
		TotalAmount string              `json:"total_amount"`
		Status      string              `json:"status"`
		Items       []OrderItemResponse `json:"items"`
		CreatedAt   time.Time           `json:"created_at"`
	}
)
