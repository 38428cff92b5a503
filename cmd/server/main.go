package main

import (
	"context"
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"smart-grocery/internal/application/services"
	"smart-grocery/internal/config"
	"smart-grocery/internal/delivery/handler"
	"smart-grocery/internal/domain/entities"
	"smart-grocery/internal/domain/repositories"
	"smart-grocery/internal/infrastructure"
	"smart-grocery/internal/infrastructure/db/memory"
	"smart-grocery/internal/infrastructure/db/mongodb"
	"smart-grocery/internal/infrastructure/db/postgres"
)

type stores struct {
	users     repositories.UserRepository
	groceries repositories.ResourceRepository[*entities.GroceryItem]
	expenses  repositories.ResourceRepository[*entities.Expense]
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using process environment")
	}

	cfg := config.Load()

	st, err := openStores(cfg)
	if err != nil {
		log.Fatalf("failed to open store: %v", err)
	}

	tokens := infrastructure.NewTokenService(cfg.JWTSecret, cfg.JWTTTL)
	hasher := infrastructure.NewPasswordHasher(cfg.BcryptCost)
	auth := services.NewAuthService(st.users, hasher, tokens)

	e := handler.NewRouter(handler.NewAuthHandler(auth, tokens), tokens, st.groceries, st.expenses)

	log.Printf("smart-grocery listening on :%s (store driver: %s)", cfg.Port, cfg.StoreDriver)
	if err := e.Start(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}

func openStores(cfg *config.Config) (*stores, error) {
	switch cfg.StoreDriver {
	case "postgres":
		db, err := postgres.Open(cfg.PostgresDSN)
		if err != nil {
			return nil, err
		}
		return &stores{
			users:     postgres.NewUserRepository(db),
			groceries: postgres.NewResourceRepository[entities.GroceryItem](db),
			expenses:  postgres.NewResourceRepository[entities.Expense](db),
		}, nil
	case "mongo":
		db, err := mongodb.Connect(context.Background(), cfg.MongoURI, cfg.MongoDB)
		if err != nil {
			return nil, err
		}
		return &stores{
			users:     mongodb.NewUserRepository(db),
			groceries: mongodb.NewResourceRepository[entities.GroceryItem](db, "groceries"),
			expenses:  mongodb.NewResourceRepository[entities.Expense](db, "expenses"),
		}, nil
	case "memory":
		return &stores{
			users:     memory.NewUserStore(),
			groceries: memory.NewResourceStore[entities.GroceryItem](),
			expenses:  memory.NewResourceStore[entities.Expense](),
		}, nil
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}
}
