package repository

import (
	"gorm.io/gorm"

	"github.com/maestroya/backend/app/models"
)

// debtRepository implements the DebtRepository interface
type debtRepository struct {
	db *gorm.DB
}

// NewDebtRepository creates a new commission debt repository instance
func NewDebtRepository(db *gorm.DB) DebtRepository {
	return &debtRepository{db: db}
}

func (r *debtRepository) Create(tx *gorm.DB, debt *models.ProviderCommissionDebt) error {
	if tx == nil {
		tx = r.db
	}
	return tx.Create(debt).Error
}

func (r *debtRepository) FindPendingByProvider(providerID uint) ([]models.ProviderCommissionDebt, error) {
	var debts []models.ProviderCommissionDebt
	err := r.db.
		Where("provider_id = ? AND status = ?", providerID, models.DebtStatusPending).
		Order("due_date ASC").
		Find(&debts).Error
	return debts, err
}
