package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/AlphaJr1/AlumniFund/internals/features/finance/submissions/controller"
	ossHelper "github.com/AlphaJr1/AlumniFund/internals/helpers/oss"
	"github.com/AlphaJr1/AlumniFund/internals/middlewares"
)

// SubmissionPublicRoutes: form kirim bukti transfer.
func SubmissionPublicRoutes(api fiber.Router, db *gorm.DB, oss *ossHelper.OSSService) {
	ctrl := controller.NewSubmissionController(db, oss)

	submission := api.Group("/submissions")
	submission.Post("/", middlewares.ContributionRateLimiter(), ctrl.CreateSubmission)
}

// SubmissionAdminRoutes: review bukti transfer (group pemanggil ber-JWT admin).
func SubmissionAdminRoutes(api fiber.Router, db *gorm.DB, oss *ossHelper.OSSService) {
	ctrl := controller.NewSubmissionController(db, oss)

	submission := api.Group("/submissions")
	submission.Get("/", ctrl.GetSubmissions)
	submission.Put("/:id/review", ctrl.ReviewSubmission)
}
