package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/AlphaJr1/AlumniFund/internals/features/finance/settings/controller"
)

// SettingPublicRoutes: frontend publik butuh minimum kontribusi & kanal aktif.
func SettingPublicRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewSettingController(db)

	api.Get("/settings", ctrl.GetSettings)
}

// SettingAdminRoutes: ubah konfigurasi (group pemanggil ber-JWT admin).
func SettingAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewSettingController(db)

	api.Get("/settings", ctrl.GetSettings)
	api.Put("/settings", ctrl.UpdateSettings)
}
