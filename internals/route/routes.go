package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/AlphaJr1/AlumniFund/internals/configs"
	analyticsRoute "github.com/AlphaJr1/AlumniFund/internals/features/finance/analytics/route"
	fundRoute "github.com/AlphaJr1/AlumniFund/internals/features/finance/generalfund/route"
	settingRoute "github.com/AlphaJr1/AlumniFund/internals/features/finance/settings/route"
	submissionRoute "github.com/AlphaJr1/AlumniFund/internals/features/finance/submissions/route"
	targetRoute "github.com/AlphaJr1/AlumniFund/internals/features/finance/targets/route"
	txRoute "github.com/AlphaJr1/AlumniFund/internals/features/finance/transactions/route"
	ossHelper "github.com/AlphaJr1/AlumniFund/internals/helpers/oss"
	"github.com/AlphaJr1/AlumniFund/internals/middlewares/auth"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB, oss *ossHelper.OSSService) {
	startTime = time.Now()

	BaseRoutes(app, db)

	// ===================== PUBLIC =====================
	log.Println("[INFO] Setting up PUBLIC group...")
	public := app.Group("/api/public")

	targetRoute.TargetPublicRoutes(public, db)
	submissionRoute.SubmissionPublicRoutes(public, db, oss)
	txRoute.TransactionPublicRoutes(public, db)
	fundRoute.GeneralFundPublicRoutes(public, db)
	analyticsRoute.AnalyticsPublicRoutes(public, db)
	settingRoute.SettingPublicRoutes(public, db)

	// ===================== ADMIN =====================
	log.Println("[INFO] Setting up ADMIN group (Auth + RoleCheck)...")
	admin := app.Group("/api/a",
		auth.AuthJWT(auth.AuthJWTOpts{
			Secret:              configs.JWTSecret,
			AllowCookieFallback: true,
		}),
		auth.AdminOnly(),
	)

	targetRoute.TargetAdminRoutes(admin, db)
	submissionRoute.SubmissionAdminRoutes(admin, db, oss)
	txRoute.TransactionAdminRoutes(admin, db)
	settingRoute.SettingAdminRoutes(admin, db)
}
