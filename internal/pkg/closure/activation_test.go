package closure

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maestroya/backend/app/models"
)

func TestActivationFlagsElapsedCashAppointments(t *testing.T) {
	db := testDB(t)
	m := testManager(t, db)

	end := time.Date(2024, 1, 10, 14, 0, 0, 0, time.Local)
	appt := seedCashAppointment(t, db, end, 50000)

	// One minute past end + offset
	now := end.Add(m.cfg.ActivateOffset).Add(time.Minute)
	activated := m.runActivation(now)
	require.Equal(t, 1, activated)

	got := reloadAppointment(t, db, appt.ID)
	assert.Equal(t, models.ClosureStatePendingClose, got.ClosureState)
	require.NotNil(t, got.ClosureDueAt)
	// Due window hangs off the service end, independent of the offset
	assert.True(t, got.ClosureDueAt.Equal(end.Add(resolutionGrace)),
		"due at %s, want %s", got.ClosureDueAt, end.Add(resolutionGrace))
}

func TestActivationSkipsAppointmentsStillInsideOffset(t *testing.T) {
	db := testDB(t)
	m := testManager(t, db)

	end := time.Date(2024, 1, 10, 14, 0, 0, 0, time.Local)
	appt := seedCashAppointment(t, db, end, 50000)

	// One minute before the offset elapses
	now := end.Add(m.cfg.ActivateOffset).Add(-time.Minute)
	activated := m.runActivation(now)
	assert.Equal(t, 0, activated)

	got := reloadAppointment(t, db, appt.ID)
	assert.Equal(t, models.ClosureStateNone, got.ClosureState)
	assert.Nil(t, got.ClosureDueAt)
}

func TestActivationIsIdempotent(t *testing.T) {
	db := testDB(t)
	m := testManager(t, db)

	end := time.Date(2024, 1, 10, 14, 0, 0, 0, time.Local)
	appt := seedCashAppointment(t, db, end, 50000)

	now := end.Add(m.cfg.ActivateOffset).Add(time.Minute)
	require.Equal(t, 1, m.runActivation(now))
	// Second pass over the same data is a no-op: the row no longer matches
	// closure_state='none'.
	require.Equal(t, 0, m.runActivation(now))

	got := reloadAppointment(t, db, appt.ID)
	assert.Equal(t, models.ClosureStatePendingClose, got.ClosureState)

	// Exactly one notification per party, not two
	var count int64
	require.NoError(t, db.Model(&models.Notification{}).Count(&count).Error)
	assert.Equal(t, int64(2), count)
}

func TestActivationSkipsMalformedServiceEnd(t *testing.T) {
	db := testDB(t)
	m := testManager(t, db)

	good := seedCashAppointment(t, db, time.Date(2024, 1, 10, 14, 0, 0, 0, time.Local), 50000)
	bad := seedCashAppointment(t, db, time.Date(2024, 1, 10, 16, 0, 0, 0, time.Local), 50000)
	require.NoError(t, db.Model(&models.Appointment{}).Where("id = ?", bad.ID).
		Update("end_time", "25:99").Error)

	now := time.Date(2024, 1, 11, 0, 0, 0, 0, time.Local)
	// The bad row is skipped, the batch continues
	assert.Equal(t, 1, m.runActivation(now))

	assert.Equal(t, models.ClosureStatePendingClose, reloadAppointment(t, db, good.ID).ClosureState)
	assert.Equal(t, models.ClosureStateNone, reloadAppointment(t, db, bad.ID).ClosureState)
}

func TestActivationIgnoresNonCashAndIneligibleStatuses(t *testing.T) {
	db := testDB(t)
	m := testManager(t, db)

	end := time.Date(2024, 1, 10, 14, 0, 0, 0, time.Local)

	card := seedCashAppointment(t, db, end, 50000)
	require.NoError(t, db.Model(&models.Appointment{}).Where("id = ?", card.ID).
		Update("payment_method", models.PaymentMethodCard).Error)

	cancelled := seedCashAppointment(t, db, end, 50000)
	require.NoError(t, db.Model(&models.Appointment{}).Where("id = ?", cancelled.ID).
		Update("status", models.AppointmentStatusCancelled).Error)

	now := time.Date(2024, 1, 11, 0, 0, 0, 0, time.Local)
	assert.Equal(t, 0, m.runActivation(now))

	assert.Equal(t, models.ClosureStateNone, reloadAppointment(t, db, card.ID).ClosureState)
	assert.Equal(t, models.ClosureStateNone, reloadAppointment(t, db, cancelled.ID).ClosureState)
}
