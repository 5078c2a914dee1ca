package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/AlphaJr1/AlumniFund/internals/features/finance/analytics/controller"
)

func AnalyticsPublicRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAnalyticsController(db)

	analytics := api.Group("/analytics")
	analytics.Get("/", ctrl.GetAnalytics)
	analytics.Get("/:target_id", ctrl.GetAnalyticsByTargetID)
}
