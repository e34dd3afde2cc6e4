package main

import (
	"context"
	"database/sql"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"emanetBack/internal/cache"
	"emanetBack/internal/config"
	"emanetBack/internal/handlers"
	"emanetBack/internal/mockdata"
	"emanetBack/internal/models"
	"emanetBack/internal/repositories"
	"emanetBack/internal/services"
	"emanetBack/utils"
)

type application struct {
	errorLog *log.Logger
	infoLog  *log.Logger
	db       *sql.DB

	tokenManager *utils.Manager

	userRepo    *repositories.UserRepository
	listingRepo *repositories.ListingRepository
	escrowRepo  *repositories.EscrowRepository

	userHandler     *handlers.UserHandler
	listingHandler  *handlers.ListingHandler
	escrowHandler   *handlers.EscrowHandler
	contractHandler *handlers.ContractHandler
}

func initializeApp(db *sql.DB, rdb *redis.Client, cfg config.Config, errorLog, infoLog *log.Logger, demo bool) *application {
	signingKey := cfg.JWT.SigningKey
	if signingKey == "" {
		signingKey = "dev-signing-key"
	}
	tokenManager, err := utils.NewManager(signingKey)
	if err != nil {
		errorLog.Fatal(err)
	}

	var userRepo *repositories.UserRepository
	var listingRepo *repositories.ListingRepository
	var escrowRepo *repositories.EscrowRepository
	if db != nil {
		userRepo = &repositories.UserRepository{DB: db}
		listingRepo = &repositories.ListingRepository{DB: db}
		escrowRepo = &repositories.EscrowRepository{DB: db}
	}

	listingCache := cache.NewListingCache(rdb, time.Duration(cfg.Redis.TTLSec)*time.Second)

	listingService := &services.ListingService{
		ListingRepo: listingRepo,
		Cache:       listingCache,
	}
	if demo {
		listingService.FetchListings = func(ctx context.Context, category models.Category) ([]models.Listing, error) {
			return mockdata.ByCategory(category), nil
		}
	}

	userService := &services.UserService{
		UserRepo:     userRepo,
		TokenManager: tokenManager,
	}
	escrowService := &services.EscrowService{
		EscrowRepo:  escrowRepo,
		ListingRepo: listingRepo,
		Secret:      cfg.Escrow.CallbackSecret,
	}
	contractService := &services.ContractService{
		ListingRepo: listingRepo,
		UserRepo:    userRepo,
	}

	return &application{
		errorLog:        errorLog,
		infoLog:         infoLog,
		db:              db,
		tokenManager:    tokenManager,
		userRepo:        userRepo,
		listingRepo:     listingRepo,
		escrowRepo:      escrowRepo,
		userHandler:     &handlers.UserHandler{Service: userService},
		listingHandler:  &handlers.ListingHandler{Service: listingService},
		escrowHandler:   &handlers.EscrowHandler{Service: escrowService},
		contractHandler: &handlers.ContractHandler{Service: contractService},
	}
}
