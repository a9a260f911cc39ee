package routes

import (
	"time"

	"github.com/dapurkita/backoffice/internal/config"
	"github.com/dapurkita/backoffice/internal/handlers"
	"github.com/dapurkita/backoffice/internal/middleware"
	"github.com/dapurkita/backoffice/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	approvals *services.ApprovalService,
	authHandler *handlers.AuthHandler,
	adminHandler *handlers.AdminHandler,
	jenisPaketHandler *handlers.JenisPaketHandler,
	makananHandler *handlers.MakananHandler,
	settingHandler *handlers.SettingHandler,
	storageHandler *handlers.StorageHandler,
	healthHandler *handlers.HealthHandler,
) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", healthHandler.Check)

	// Auth — public, with a stricter limit: 10 req/min per IP
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/register", authHandler.Register)
	auth.Post("/confirm", authHandler.ConfirmEmail)
	auth.Post("/login", authHandler.Login)
	auth.Post("/refresh", authHandler.Refresh)
	auth.Post("/forgot-password", authHandler.ForgotPassword)
	auth.Post("/reset-password", authHandler.ResetPassword)

	// Session-only endpoints: a valid token, approval not required.
	api.Post("/auth/logout", middleware.JWTProtected(cfg), authHandler.Logout)
	api.Post("/auth/check-approval", middleware.JWTProtected(cfg), authHandler.CheckApproval)

	// Protected area: approval gate on top of the session gate.
	dashboard := api.Group("", middleware.JWTProtected(cfg), middleware.ApprovedRequired(approvals))

	dashboard.Get("/jenis-paket", jenisPaketHandler.List)
	dashboard.Get("/jenis-paket/:id", jenisPaketHandler.Get)
	dashboard.Post("/jenis-paket", jenisPaketHandler.Create)
	dashboard.Put("/jenis-paket/:id", jenisPaketHandler.Update)
	dashboard.Delete("/jenis-paket/:id", jenisPaketHandler.Delete)

	dashboard.Get("/makanan", makananHandler.List)
	dashboard.Get("/makanan/:id", makananHandler.Get)
	dashboard.Post("/makanan", makananHandler.Create)
	dashboard.Put("/makanan/:id", makananHandler.Update)
	dashboard.Delete("/makanan/:id", makananHandler.Delete)

	dashboard.Get("/settings", settingHandler.List)
	dashboard.Post("/settings", settingHandler.Create)
	dashboard.Put("/settings/:id", settingHandler.Update)

	dashboard.Post("/upload", storageHandler.Upload)

	// Super-admin surface: approval workflow and storage reconciliation.
	admin := dashboard.Group("/admin", middleware.SuperAdminRequired())
	admin.Post("/approve", adminHandler.Approve)
	admin.Post("/reject", adminHandler.Reject)
	admin.Get("/pending-users", adminHandler.ListPending)
	admin.Get("/approved-admins", adminHandler.ListApproved)
	admin.Delete("/", adminHandler.DeleteAdmin)

	storageGroup := dashboard.Group("/storage", middleware.SuperAdminRequired())
	storageGroup.Get("/cleanup", storageHandler.CleanupPreview)
	storageGroup.Post("/cleanup", storageHandler.CleanupRun)
	storageGroup.Get("/status", storageHandler.Status)
}
