package repository

import (
	"time"

	"gorm.io/gorm"

	"github.com/maestroya/backend/app/models"
)

// appointmentRepository implements the AppointmentRepository interface
type appointmentRepository struct {
	db *gorm.DB
}

// NewAppointmentRepository creates a new appointment repository instance
func NewAppointmentRepository(db *gorm.DB) AppointmentRepository {
	return &appointmentRepository{db: db}
}

func (r *appointmentRepository) GetByID(id uint) (*models.Appointment, error) {
	var appointment models.Appointment
	if err := r.db.First(&appointment, id).Error; err != nil {
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) FindClosureCandidates() ([]models.Appointment, error) {
	var appointments []models.Appointment
	err := r.db.
		Where("payment_method = ?", models.PaymentMethodCash).
		Where("closure_state = ?", models.ClosureStateNone).
		Where("status IN ?", []string{
			models.AppointmentStatusConfirmed,
			models.AppointmentStatusInProgress,
			models.AppointmentStatusCompleted,
		}).
		Order("id ASC").
		Find(&appointments).Error
	return appointments, err
}

func (r *appointmentRepository) FindDueForResolution(now time.Time) ([]models.Appointment, error) {
	var appointments []models.Appointment
	err := r.db.
		Where("closure_state = ?", models.ClosureStatePendingClose).
		Where("closure_due_at < ?", now).
		Order("id ASC").
		Find(&appointments).Error
	return appointments, err
}

func (r *appointmentRepository) ActivateClosure(id uint, dueAt time.Time) (bool, error) {
	// Conditional update doubles as a compare-and-swap: under overlapping cron
	// runs only one writer matches closure_state='none'.
	res := r.db.Model(&models.Appointment{}).
		Where("id = ? AND closure_state = ?", id, models.ClosureStateNone).
		Updates(map[string]interface{}{
			"closure_state":  models.ClosureStatePendingClose,
			"closure_due_at": dueAt,
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *appointmentRepository) ResolveClosure(tx *gorm.DB, id uint) error {
	if tx == nil {
		tx = r.db
	}
	// A loser of the guarded update matches zero rows; that is fine, the row
	// is already resolved.
	return tx.Model(&models.Appointment{}).
		Where("id = ? AND closure_state = ?", id, models.ClosureStatePendingClose).
		Update("closure_state", models.ClosureStateResolved).Error
}
