package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/AlphaJr1/AlumniFund/internals/constants"
	"github.com/AlphaJr1/AlumniFund/internals/features/finance/generalfund/model"
	"github.com/AlphaJr1/AlumniFund/internals/helpers"
)

type GeneralFundController struct {
	DB *gorm.DB
}

func NewGeneralFundController(db *gorm.DB) *GeneralFundController {
	return &GeneralFundController{DB: db}
}

// =============================
// 💰 Saldo dompet bersama
// =============================
func (ctrl *GeneralFundController) GetGeneralFund(c *fiber.Ctx) error {
	var fund model.GeneralFund
	err := ctrl.DB.First(&fund, "general_fund_id = ?", constants.GeneralFundDocID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Belum pernah ada transfer kelebihan: saldo nol.
			fund = model.GeneralFund{GeneralFundID: constants.GeneralFundDocID}
			return helper.Success(c, "Dompet bersama", fund)
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil dompet bersama")
	}

	return helper.Success(c, "Dompet bersama", fund)
}
