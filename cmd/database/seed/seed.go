package seed

import (
	"Foodway-Backend/domain"
	"Foodway-Backend/entities"
	"Foodway-Backend/pkg/menu"
	"Foodway-Backend/pkg/restaurant"
	"Foodway-Backend/pkg/user"
	"context"
	"fmt"
	"log"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Seed bootstraps demo data on an empty database. The check is restaurant
// count only: any existing restaurant means a prior run already seeded.
func Seed(db *gorm.DB) error {
	ctx := context.Background()
	return seedWith(
		ctx,
		restaurant.NewRestaurantRepository(db),
		menu.NewMenuRepository(db),
		user.NewUserRepository(db),
	)
}

func seedWith(
	ctx context.Context,
	restaurantRepository restaurant.RestaurantRepository,
	menuRepository menu.MenuRepository,
	userRepository user.UserRepository,
) error {
	count, err := restaurantRepository.CountRestaurants(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	demoRestaurant := &entities.Restaurant{
		Name:     "Warung Nusantara",
		Type:     "Indonesian",
		Address:  "Jl. Merdeka No. 17, Bandung",
		Phone:    "+62-22-555-0117",
		ImageURL: "https://images.foodway.example/restaurants/warung-nusantara.jpg",
	}
	if err := restaurantRepository.CreateRestaurant(ctx, demoRestaurant); err != nil {
		log.Printf("Error seeding restaurant: %v", err)
		return err
	}

	menuItems := []*entities.MenuItem{
		{
			RestaurantID: demoRestaurant.ID,
			Name:         "Nasi Goreng Spesial",
			Description:  "Fried rice with chicken, prawns and a fried egg",
			Price:        decimal.RequireFromString("35000.00"),
			Category:     "main",
			IsAvailable:  true,
		},
		{
			RestaurantID: demoRestaurant.ID,
			Name:         "Sate Ayam",
			Description:  "Ten chicken skewers with peanut sauce",
			Price:        decimal.RequireFromString("30000.00"),
			Category:     "main",
			IsAvailable:  true,
		},
		{
			RestaurantID: demoRestaurant.ID,
			Name:         "Es Teh Manis",
			Description:  "Sweet iced tea",
			Price:        decimal.RequireFromString("8000.00"),
			Category:     "drink",
			IsAvailable:  true,
		},
	}
	for _, item := range menuItems {
		if err := menuRepository.CreateMenuItem(ctx, item); err != nil {
			log.Printf("Error seeding menu item: %v", err)
			return err
		}
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte("demo-password"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	demoUser := &entities.User{
		Username: domain.DemoUsername,
		Password: string(hashed),
		Role:     domain.RoleUser,
		Phone:    "+62-812-5550-0042",
	}
	if err := userRepository.CreateUser(ctx, demoUser); err != nil {
		log.Printf("Error seeding demo user: %v", err)
		return err
	}

	fmt.Println("Database seed complete")
	return nil
}
