package routes

import (
	"Foodway-Backend/internal/api/handlers"
	"Foodway-Backend/internal/middleware"
	"Foodway-Backend/pkg/jwt"
	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App               *fiber.App
	RestaurantHandler handlers.RestaurantHandler
	MenuHandler       handlers.MenuHandler
	OrderHandler      handlers.OrderHandler
	ChatHandler       handlers.ChatHandler
	Middleware        middleware.Middleware
	JWTService        jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.Restaurants()
	c.MenuItems()
	c.Orders()
	c.Chat()
	c.GuestRoute()
}

func (c *Config) Restaurants() {
	restaurants := c.App.Group("/api/v1/restaurants")
	// restaurant routes
	{
		restaurants.Get("", c.RestaurantHandler.GetRestaurants)
		restaurants.Post("", c.RestaurantHandler.CreateRestaurant)
		restaurants.Get("/:restaurantId/menu-items", c.MenuHandler.GetMenuItems)
		restaurants.Post("/:restaurantId/menu-items", c.MenuHandler.CreateMenuItem)
		restaurants.Get("/:id", c.RestaurantHandler.GetRestaurant)
	}
}

func (c *Config) MenuItems() {
	menuItems := c.App.Group("/api/v1/menu-items")
	{
		menuItems.Post("/image", c.MenuHandler.UploadMenuImage)
		menuItems.Get("/:id", c.MenuHandler.GetMenuItem)
	}
}

func (c *Config) Orders() {
	orders := c.App.Group("/api/v1/orders")
	{
		orders.Get("", c.OrderHandler.GetOrders)
		orders.Post("", c.Middleware.OptionalAuthMiddleware(c.JWTService), c.OrderHandler.CreateOrder)
		orders.Get("/:id", c.OrderHandler.GetOrder)
		orders.Patch("/:id/status", c.OrderHandler.UpdateOrderStatus)
	}
}

func (c *Config) Chat() {
	c.App.Get("/api/v1/chat/logs", c.ChatHandler.GetChatLogs)
	c.App.Post("/webhook/whatsapp", c.ChatHandler.WhatsAppWebhook)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong, its works. test"})
	})
}
