package config

import (
	"Foodway-Backend/internal/api/handlers"
	"Foodway-Backend/internal/api/routes"
	"Foodway-Backend/internal/middleware"
	"Foodway-Backend/internal/utils"
	"Foodway-Backend/internal/utils/storage"
	"Foodway-Backend/pkg/chat"
	"Foodway-Backend/pkg/jwt"
	"Foodway-Backend/pkg/menu"
	"Foodway-Backend/pkg/order"
	"Foodway-Backend/pkg/restaurant"
	"Foodway-Backend/pkg/user"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "Asia/Jakarta",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()

	// Repository
	userRepository := user.NewUserRepository(db)
	restaurantRepository := restaurant.NewRestaurantRepository(db)
	menuRepository := menu.NewMenuRepository(db)
	orderRepository := order.NewOrderRepository(db)
	chatRepository := chat.NewChatRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	restaurantService := restaurant.NewRestaurantService(restaurantRepository)
	menuService := menu.NewMenuService(menuRepository, restaurantRepository, s3)
	orderService := order.NewOrderService(orderRepository, menuRepository, userRepository)
	chatService := chat.NewChatService(chatRepository)

	// Handler
	restaurantHandler := handlers.NewRestaurantHandler(restaurantService, validator)
	menuHandler := handlers.NewMenuHandler(menuService, validator)
	orderHandler := handlers.NewOrderHandler(orderService, validator)
	chatHandler := handlers.NewChatHandler(chatService)

	// routes
	routesConfig := routes.Config{
		App:               app,
		RestaurantHandler: restaurantHandler,
		MenuHandler:       menuHandler,
		OrderHandler:      orderHandler,
		ChatHandler:       chatHandler,
		Middleware:        middlewares,
		JWTService:        jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
