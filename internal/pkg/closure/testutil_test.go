package closure

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/maestroya/backend/app/models"
	"github.com/maestroya/backend/internal/pkg/push"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Appointment{},
		&models.Payment{},
		&models.ProviderCommissionDebt{},
		&models.Setting{},
		&models.Notification{},
	))

	return db
}

func testManager(t *testing.T, db *gorm.DB) *Manager {
	t.Helper()
	return NewManager(db, push.NoopService{}, Config{
		ActivateOffset: time.Hour,
		Interval:       5 * time.Minute,
	})
}

// seedCashAppointment creates a completed cash appointment ending at the
// given local time.
func seedCashAppointment(t *testing.T, db *gorm.DB, end time.Time, price int64) *models.Appointment {
	t.Helper()

	appt := &models.Appointment{
		ClientID:              1,
		ProviderID:            2,
		Date:                  end.Format("2006-01-02"),
		EndTime:               end.Format("15:04"),
		Price:                 decimal.NewFromInt(price),
		PaymentMethod:         models.PaymentMethodCash,
		Status:                models.AppointmentStatusCompleted,
		ClosureState:          models.ClosureStateNone,
		ClosureProviderAction: models.ClosureActionNone,
		ClosureClientAction:   models.ClosureActionNone,
	}
	require.NoError(t, db.Create(appt).Error)
	return appt
}

// seedPendingClose creates an appointment already in pending_close with the
// given due timestamp and actor signals.
func seedPendingClose(t *testing.T, db *gorm.DB, dueAt time.Time, providerAction, clientAction string, price int64) *models.Appointment {
	t.Helper()

	end := dueAt.Add(-resolutionGrace)
	appt := &models.Appointment{
		ClientID:              1,
		ProviderID:            2,
		Date:                  end.Format("2006-01-02"),
		EndTime:               end.Format("15:04"),
		Price:                 decimal.NewFromInt(price),
		PaymentMethod:         models.PaymentMethodCash,
		Status:                models.AppointmentStatusCompleted,
		ClosureState:          models.ClosureStatePendingClose,
		ClosureDueAt:          &dueAt,
		ClosureProviderAction: providerAction,
		ClosureClientAction:   clientAction,
	}
	require.NoError(t, db.Create(appt).Error)
	return appt
}

func reloadAppointment(t *testing.T, db *gorm.DB, id uint) *models.Appointment {
	t.Helper()
	var appt models.Appointment
	require.NoError(t, db.First(&appt, id).Error)
	return &appt
}
