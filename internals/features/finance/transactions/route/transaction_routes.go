package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/AlphaJr1/AlumniFund/internals/features/finance/transactions/controller"
	"github.com/AlphaJr1/AlumniFund/internals/middlewares"
)

// TransactionAdminRoutes: pencatatan manual & baca riwayat (butuh JWT admin,
// dipasang di group pemanggil).
func TransactionAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewTransactionController(db)

	trx := api.Group("/transactions")
	trx.Post("/", ctrl.CreateTransaction)
	trx.Get("/", ctrl.GetTransactions)
	trx.Get("/:id", ctrl.GetTransactionByID)
}

// TransactionPublicRoutes: riwayat transaksi (transparansi publik) + kanal
// donasi online dengan webhook Midtrans.
func TransactionPublicRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewTransactionController(db)

	trx := api.Group("/transactions")
	trx.Get("/", ctrl.GetTransactions)
	trx.Get("/:id", ctrl.GetTransactionByID)

	donation := api.Group("/donations")
	donation.Post("/", middlewares.ContributionRateLimiter(), ctrl.CreateDonation)
	donation.Post("/notification", ctrl.HandleMidtransNotification)
}
