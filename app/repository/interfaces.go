package repository

import (
	"time"

	"gorm.io/gorm"

	"github.com/maestroya/backend/app/models"
)

// AppointmentRepository defines the interface for appointment-related database operations
type AppointmentRepository interface {
	GetByID(id uint) (*models.Appointment, error)
	// FindClosureCandidates returns cash appointments that have never entered
	// the closure flow and are in a status eligible for it. The time filter is
	// applied by the caller, not here.
	FindClosureCandidates() ([]models.Appointment, error)
	// FindDueForResolution returns appointments whose closure window expired
	// before now.
	FindDueForResolution(now time.Time) ([]models.Appointment, error)
	// ActivateClosure transitions none -> pending_close. The update is guarded
	// by closure_state='none', so only one concurrent caller wins; the return
	// value reports whether this caller did.
	ActivateClosure(id uint, dueAt time.Time) (bool, error)
	// ResolveClosure transitions pending_close -> resolved, guarded by
	// closure_state='pending_close'. Pass a transaction handle to group the
	// update with financial postings, or nil to run standalone.
	ResolveClosure(tx *gorm.DB, id uint) error
}

// PaymentRepository defines the interface for payment-related database operations
type PaymentRepository interface {
	Create(tx *gorm.DB, payment *models.Payment) error
	GetByAppointmentID(appointmentID uint) (*models.Payment, error)
	// HasCompletedPayment reports whether a completed payment already exists
	// for the appointment, regardless of payment method.
	HasCompletedPayment(appointmentID uint) (bool, error)
}

// DebtRepository defines the interface for provider commission debt operations
type DebtRepository interface {
	Create(tx *gorm.DB, debt *models.ProviderCommissionDebt) error
	FindPendingByProvider(providerID uint) ([]models.ProviderCommissionDebt, error)
}

// SettingRepository defines the interface for platform settings access
type SettingRepository interface {
	GetValue(key string) (string, error)
	SetValue(key, value string) error
}
