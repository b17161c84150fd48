// Package routes wires repositories, services and handlers onto the
// fiber app.
package routes

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"printdesk/internal/handlers"
	"printdesk/internal/logger"
	"printdesk/internal/middleware"
	"printdesk/internal/repositories"
	"printdesk/internal/services/account"
	"printdesk/internal/services/pricing"
	"printdesk/internal/services/reference"
	"printdesk/internal/services/settlement"
	"printdesk/internal/services/wallet"
)

// SetupRoutes configures all application routes. The pricing table is
// loaded once here; /admin/pricing/reload refreshes it at runtime.
func SetupRoutes(app *fiber.App, db *gorm.DB) error {
	walletRepo := repositories.NewWalletRepository(db)
	accountRepo := repositories.NewAccountRepository(db)
	txRepo := repositories.NewTransactionRepository(db)
	printingRepo := repositories.NewPrintingRepository(db)
	pricingRepo := repositories.NewPricingRepository(db)

	refs := reference.NewGenerator()
	cacheSvc := repositories.CacheService

	pricingSvc := pricing.NewService(pricingRepo, pricing.NewTable(nil))
	if err := pricingSvc.Reload(context.Background()); err != nil {
		return err
	}

	accountSvc := account.NewService(accountRepo, walletRepo, cacheSvc)
	walletSvc := wallet.NewService(walletRepo, txRepo, refs, cacheSvc, &wallet.NoopMetricsCollector{})
	settlementSvc := settlement.NewService(
		walletRepo,
		printingRepo,
		pricingSvc,
		refs,
		cacheSvc,
		&wallet.NoopMetricsCollector{},
		logger.Log,
	)

	accountHandler := handlers.NewAccountHandler(accountSvc)
	walletHandler := handlers.NewWalletHandler(walletSvc)
	printingHandler := handlers.NewPrintingHandler(settlementSvc)
	pricingHandler := handlers.NewPricingHandler(pricingSvc)

	app.Get("/health", handlers.Health)

	api := app.Group("/api/v1")
	api.Get("/pricing", pricingHandler.ListRules)

	authed := api.Group("", middleware.Auth())
	authed.Get("/wallet/balance", accountHandler.GetBalance)
	authed.Post("/wallet/topup", walletHandler.TopUp)
	authed.Get("/wallet/transactions", walletHandler.ListTransactionHistory)
	authed.Post("/print-requests", printingHandler.SubmitPrintRequest)
	authed.Get("/print-requests", printingHandler.ListPrintingHistory)

	admin := api.Group("/admin", middleware.Auth(), middleware.AdminOnly())
	admin.Post("/accounts", accountHandler.CreateAccount)
	admin.Post("/refunds", walletHandler.Refund)
	admin.Post("/pricing/reload", pricingHandler.Reload)

	return nil
}
