package closure

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2/log"

	"github.com/maestroya/backend/app/models"
)

// runActivation scans cash appointments that never entered the closure flow
// and flags the ones whose service end plus the activation offset has elapsed.
// Returns how many rows this pass transitioned. One bad row never aborts the
// batch.
func (m *Manager) runActivation(now time.Time) int {
	candidates, err := m.repos.Appointments.FindClosureCandidates()
	if err != nil {
		log.Errorf("[Closure] activation scan failed: %v", err)
		return 0
	}

	activated := 0
	for i := range candidates {
		appt := &candidates[i]

		end, err := appt.ServiceEnd()
		if err != nil {
			log.Warnf("[Closure] skipping activation: %v", err)
			continue
		}
		if now.Before(end.Add(m.cfg.ActivateOffset)) {
			continue
		}

		// The due window hangs off the service end, not the activation
		// moment, so late cron ticks do not stretch it.
		dueAt := end.Add(resolutionGrace)
		won, err := m.repos.Appointments.ActivateClosure(appt.ID, dueAt)
		if err != nil {
			log.Errorf("[Closure] could not activate appointment %d: %v", appt.ID, err)
			continue
		}
		if !won {
			// Another instance beat us to this row
			continue
		}

		activated++
		m.notifyPendingClose(appt)
	}

	return activated
}

// notifyPendingClose pushes "Pendiente de Cierre" to both parties and drops an
// in-app notification for each. All of it is best-effort; the state
// transition already happened and stays.
func (m *Manager) notifyPendingClose(appt *models.Appointment) {
	data := map[string]string{
		"type":           models.NotificationTypeClosurePending,
		"appointment_id": strconv.FormatUint(uint64(appt.ID), 10),
	}

	if err := m.push.NotifyUser(appt.ProviderID, "Pendiente de Cierre", "Confirma el cierre de tu cita", data); err != nil {
		log.Warnf("[Closure] provider push failed for appointment %d: %v", appt.ID, err)
	}
	if err := m.push.NotifyUser(appt.ClientID, "Pendiente de Cierre", "Confirma el cierre de tu cita", data); err != nil {
		log.Warnf("[Closure] client push failed for appointment %d: %v", appt.ID, err)
	}

	for _, userID := range []uint{appt.ProviderID, appt.ClientID} {
		if err := models.CreateNotification(m.db, userID, models.NotificationTypeClosurePending,
			"Tu cita está pendiente de cierre", appt.ID); err != nil {
			log.Warnf("[Closure] could not store notification for user %d: %v", userID, err)
		}
	}
}
