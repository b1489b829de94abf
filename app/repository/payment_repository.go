package repository

import (
	"gorm.io/gorm"

	"github.com/maestroya/backend/app/models"
)

// paymentRepository implements the PaymentRepository interface
type paymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository creates a new payment repository instance
func NewPaymentRepository(db *gorm.DB) PaymentRepository {
	return &paymentRepository{db: db}
}

func (r *paymentRepository) Create(tx *gorm.DB, payment *models.Payment) error {
	if tx == nil {
		tx = r.db
	}
	return tx.Create(payment).Error
}

func (r *paymentRepository) GetByAppointmentID(appointmentID uint) (*models.Payment, error) {
	var payment models.Payment
	if err := r.db.Where("appointment_id = ?", appointmentID).First(&payment).Error; err != nil {
		return nil, err
	}
	return &payment, nil
}

func (r *paymentRepository) HasCompletedPayment(appointmentID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Payment{}).
		Where("appointment_id = ? AND status = ?", appointmentID, models.PaymentStatusCompleted).
		Count(&count).Error
	return count > 0, err
}
