package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/AlphaJr1/AlumniFund/internals/features/finance/targets/controller"
)

// TargetAdminRoutes: kelola target wisuda (group pemanggil sudah ber-JWT admin).
func TargetAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewTargetController(db)

	target := api.Group("/targets")
	target.Post("/", ctrl.CreateTarget)
	target.Get("/", ctrl.GetTargets)
	target.Get("/:id", ctrl.GetTargetByID)
	target.Put("/:id/status", ctrl.UpdateTargetStatus)
}

// TargetPublicRoutes: baca target untuk halaman publik.
func TargetPublicRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewTargetController(db)

	target := api.Group("/targets")
	target.Get("/current", ctrl.GetCurrentTarget)
	target.Get("/", ctrl.GetTargets)
	target.Get("/:id", ctrl.GetTargetByID)
}
