package controllers

import (
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/maestroya/backend/app/repository"
	"github.com/maestroya/backend/internal/pkg/closure"
	"github.com/maestroya/backend/internal/pkg/database"
)

var validate = validator.New()

type cashSettingsPayload struct {
	CashCap        float64 `json:"cash_cap" validate:"gt=0"`
	TaxRate        float64 `json:"tax_rate" validate:"gte=0,lte=100"`
	CommissionRate float64 `json:"commission_rate" validate:"gte=0,lte=100"`
	DueDays        int     `json:"due_days" validate:"gte=1,lte=90"`
}

// HandleGetCashSettings returns the effective cash settlement parameters
// (stored values merged over defaults).
func HandleGetCashSettings(c *fiber.Ctx) error {
	return c.JSON(closure.LoadCashSettings(database.GetDB()))
}

// HandleUpdateCashSettings writes the cash settlement parameters to the
// settings table. The cron picks them up on its next tick.
func HandleUpdateCashSettings(c *fiber.Ctx) error {
	var payload cashSettingsPayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid JSON body"})
	}
	if err := validate.Struct(payload); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error()})
	}

	settings := repository.NewSettingRepository(database.GetDB())
	values := map[string]string{
		closure.SettingKeyCashCap:        decimal.NewFromFloat(payload.CashCap).String(),
		closure.SettingKeyTaxRate:        decimal.NewFromFloat(payload.TaxRate).String(),
		closure.SettingKeyCommissionRate: decimal.NewFromFloat(payload.CommissionRate).String(),
		closure.SettingKeyDebtDueDays:    strconv.Itoa(payload.DueDays),
	}
	for key, value := range values {
		if err := settings.SetValue(key, value); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "could not persist settings"})
		}
	}

	return c.JSON(closure.LoadCashSettings(database.GetDB()))
}
