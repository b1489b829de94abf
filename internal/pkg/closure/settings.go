package closure

import (
	"strconv"

	"github.com/gofiber/fiber/v2/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/maestroya/backend/app/models"
)

// Setting keys read from the settings table.
const (
	SettingKeyCashCap        = "cash_payment_cap"
	SettingKeyTaxRate        = "cash_tax_rate"
	SettingKeyCommissionRate = "cash_commission_rate"
	SettingKeyDebtDueDays    = "cash_debt_due_days"
)

// CashSettings are the tunable financial parameters for settling cash
// appointments. Rates are percentages, CashCap is a gross CLP amount.
type CashSettings struct {
	CashCap        decimal.Decimal `json:"cash_cap"`
	TaxRate        decimal.Decimal `json:"tax_rate"`
	CommissionRate decimal.Decimal `json:"commission_rate"`
	DueDays        int             `json:"due_days"`
}

// DefaultCashSettings returns the hardcoded fallback parameters.
func DefaultCashSettings() CashSettings {
	return CashSettings{
		CashCap:        decimal.NewFromInt(150000),
		TaxRate:        decimal.NewFromInt(19),
		CommissionRate: decimal.NewFromInt(15),
		DueDays:        3,
	}
}

// LoadCashSettings reads the cash parameters from the settings table. Keys
// that are absent or non-numeric keep their default; a failed query logs a
// warning and returns all defaults. Never fails: a settings outage degrades
// to defaults, it does not halt closure processing.
func LoadCashSettings(db *gorm.DB) CashSettings {
	settings := DefaultCashSettings()

	keys := []string{
		SettingKeyCashCap,
		SettingKeyTaxRate,
		SettingKeyCommissionRate,
		SettingKeyDebtDueDays,
	}

	var rows []models.Setting
	if err := db.Where("setting_key IN ?", keys).Find(&rows).Error; err != nil {
		log.Warnf("[Closure] settings load failed, using defaults: %v", err)
		return settings
	}

	for _, row := range rows {
		switch row.Key {
		case SettingKeyCashCap:
			if v, err := decimal.NewFromString(row.Value); err == nil {
				settings.CashCap = v
			}
		case SettingKeyTaxRate:
			if v, err := decimal.NewFromString(row.Value); err == nil {
				settings.TaxRate = v
			}
		case SettingKeyCommissionRate:
			if v, err := decimal.NewFromString(row.Value); err == nil {
				settings.CommissionRate = v
			}
		case SettingKeyDebtDueDays:
			if v, err := strconv.Atoi(row.Value); err == nil {
				settings.DueDays = v
			}
		}
	}

	return settings
}
