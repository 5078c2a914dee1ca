package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/AlphaJr1/AlumniFund/internals/features/finance/generalfund/controller"
)

func GeneralFundPublicRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewGeneralFundController(db)

	api.Get("/general-fund", ctrl.GetGeneralFund)
}
