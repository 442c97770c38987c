package config

import (
	"ReliefLink/internal/api/handlers"
	"ReliefLink/internal/api/routes"
	"ReliefLink/internal/middleware"
	"ReliefLink/internal/utils"
	"ReliefLink/internal/utils/mailing"
	"ReliefLink/internal/utils/storage"
	"ReliefLink/pkg/catalog"
	"ReliefLink/pkg/donation"
	"ReliefLink/pkg/inventory"
	"ReliefLink/pkg/jwt"
	"ReliefLink/pkg/payment"
	"ReliefLink/pkg/resupply"
	"ReliefLink/pkg/user"
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
		TimeZone:   "Asia/Karachi",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()
	mailer := mailing.NewMailer()

	// Repository
	userRepository := user.NewUserRepository(db)
	catalogRepository := catalog.NewCatalogRepository(db)
	inventoryRepository := inventory.NewInventoryRepository(db)
	resupplyRepository := resupply.NewResupplyRepository(db)
	donationRepository := donation.NewDonationRepository(db)
	paymentRepository := payment.NewPaymentRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	userService := user.NewUserService(userRepository, jwtService)
	catalogService := catalog.NewCatalogService(catalogRepository)
	inventoryService := inventory.NewInventoryService(inventoryRepository, catalogService, s3)
	resupplyService := resupply.NewResupplyService(
		resupplyRepository,
		inventoryRepository,
		userRepository,
		mailer,
	)
	donationService := donation.NewDonationService(
		donationRepository,
		inventoryRepository,
		mailer,
	)
	paymentService := payment.NewPaymentService(paymentRepository)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	catalogHandler := handlers.NewCatalogHandler(catalogService, validator)
	inventoryHandler := handlers.NewInventoryHandler(inventoryService, validator)
	resupplyHandler := handlers.NewResupplyHandler(resupplyService, validator)
	donationHandler := handlers.NewDonationHandler(donationService, validator)
	paymentHandler := handlers.NewPaymentHandler(paymentService, validator)

	// routes
	routesConfig := routes.Config{
		App:              app,
		UserHandler:      userHandler,
		CatalogHandler:   catalogHandler,
		InventoryHandler: inventoryHandler,
		ResupplyHandler:  resupplyHandler,
		DonationHandler:  donationHandler,
		PaymentHandler:   paymentHandler,
		Middleware:       middlewares,
		JWTService:       jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
