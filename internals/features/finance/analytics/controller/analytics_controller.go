package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/AlphaJr1/AlumniFund/internals/features/finance/analytics/model"
	"github.com/AlphaJr1/AlumniFund/internals/helpers"
)

type AnalyticsController struct {
	DB *gorm.DB
}

func NewAnalyticsController(db *gorm.DB) *AnalyticsController {
	return &AnalyticsController{DB: db}
}

// =============================
// 📊 Riwayat analytics target tertutup
// =============================
func (ctrl *AnalyticsController) GetAnalytics(c *fiber.Ctx) error {
	query := ctrl.DB.Model(&model.TargetAnalytics{}).
		Order("analytics_year DESC, created_at DESC")

	if year := c.QueryInt("year", 0); year > 0 {
		query = query.Where("analytics_year = ?", year)
	}

	var rows []model.TargetAnalytics
	if err := query.Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil analytics")
	}

	return helper.Success(c, "Riwayat analytics", rows)
}

// =============================
// 📊 Analytics satu target
// =============================
func (ctrl *AnalyticsController) GetAnalyticsByTargetID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("target_id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID target tidak valid")
	}

	var row model.TargetAnalytics
	if err := ctrl.DB.First(&row, "analytics_target_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Analytics belum tersedia untuk target ini")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil analytics")
	}

	return helper.Success(c, "Analytics target", row)
}
