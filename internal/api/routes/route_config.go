package routes

import (
	"ReliefLink/domain"
	"ReliefLink/internal/api/handlers"
	"ReliefLink/internal/middleware"
	"ReliefLink/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App              *fiber.App
	UserHandler      handlers.UserHandler
	CatalogHandler   handlers.CatalogHandler
	InventoryHandler handlers.InventoryHandler
	ResupplyHandler  handlers.ResupplyHandler
	DonationHandler  handlers.DonationHandler
	PaymentHandler   handlers.PaymentHandler
	Middleware       middleware.Middleware
	JWTService       jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.User()
	c.Catalog()
	c.Inventory()
	c.Resupply()
	c.Donation()
	c.Payment()
	c.GuestRoute()
}

func (c *Config) User() {
	user := c.App.Group("/api/v1/users")
	{
		user.Post("/register", c.UserHandler.Register)
		user.Post("/login", c.UserHandler.Login)
		user.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
	}
}

func (c *Config) Catalog() {
	catalog := c.App.Group("/api/v1/catalog", c.Middleware.AuthMiddleware(c.JWTService))

	catalog.Get("/item-types", c.CatalogHandler.GetItemTypes)
	catalog.Get("/locations", c.CatalogHandler.GetLocations)

	// Catalog entries are shared master data, only admins manage them.
	catalog.Post("/item-types", c.Middleware.RoleMiddleware(domain.RoleAdmin), c.CatalogHandler.CreateItemType)
	catalog.Post("/locations", c.Middleware.RoleMiddleware(domain.RoleAdmin), c.CatalogHandler.CreateLocation)
}

func (c *Config) Inventory() {
	inventory := c.App.Group("/api/v1/inventory", c.Middleware.AuthMiddleware(c.JWTService))

	// Basic CRUD operations
	inventory.Post("", c.InventoryHandler.CreateEntry)
	inventory.Get("", c.InventoryHandler.GetEntries)
	inventory.Get("/:id", c.InventoryHandler.GetEntryByID)
	inventory.Put("/:id", c.InventoryHandler.UpdateEntry)
	inventory.Delete("/:id", c.InventoryHandler.DeleteEntry)

	// Special operations
	inventory.Post("/:id/evidence", c.InventoryHandler.UploadEvidence)

	// Workflows nested under an entry
	inventory.Post("/:id/resupply-requests", c.ResupplyHandler.CreateRequest)
	inventory.Get("/:id/resupply-requests", c.ResupplyHandler.GetRequestsByEntry)
	inventory.Post("/:id/donation-offers", c.DonationHandler.CreateOffer)
	inventory.Get("/:id/donation-offers", c.DonationHandler.GetOffersByEntry)
}

func (c *Config) Resupply() {
	requests := c.App.Group("/api/v1/resupply-requests", c.Middleware.AuthMiddleware(c.JWTService))

	requests.Post("/:id/review", c.Middleware.RoleMiddleware(domain.RoleCoordinator, domain.RoleAdmin), c.ResupplyHandler.ReviewRequest)
	requests.Post("/:id/fulfill", c.Middleware.RoleMiddleware(domain.RoleCoordinator, domain.RoleAdmin), c.ResupplyHandler.FulfillRequest)
	requests.Post("/:id/cancel", c.ResupplyHandler.CancelRequest)
}

func (c *Config) Donation() {
	offers := c.App.Group("/api/v1/donation-offers", c.Middleware.AuthMiddleware(c.JWTService))

	offers.Post("/:id/accept", c.Middleware.RoleMiddleware(domain.RoleCoordinator, domain.RoleAdmin), c.DonationHandler.AcceptOffer)
	offers.Post("/:id/decline", c.Middleware.RoleMiddleware(domain.RoleCoordinator, domain.RoleAdmin), c.DonationHandler.DeclineOffer)
	offers.Post("/:id/deliver", c.Middleware.RoleMiddleware(domain.RoleCoordinator, domain.RoleAdmin), c.DonationHandler.MarkDelivered)
}

func (c *Config) Payment() {
	payments := c.App.Group("/api/v1/payments", c.Middleware.AuthMiddleware(c.JWTService))
	payments.Post("/donate", c.PaymentHandler.CreateCashDonation)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong, its works"})
	})
	c.App.Post("/webhook/midtrans", c.PaymentHandler.HandleNotification)
}
