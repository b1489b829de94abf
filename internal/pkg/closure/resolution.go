package closure

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2/log"
	"gorm.io/gorm"

	"github.com/maestroya/backend/app/models"
)

// runResolution scans pending_close appointments whose due timestamp passed
// and resolves each one according to the decision table. Returns how many
// rows resolved and how many of those settled with a cash payment. A row
// whose settle transaction fails stays pending_close and is retried on the
// next tick.
func (m *Manager) runResolution(now time.Time, settings CashSettings) (resolved, settled int) {
	due, err := m.repos.Appointments.FindDueForResolution(now)
	if err != nil {
		log.Errorf("[Closure] resolution scan failed: %v", err)
		return 0, 0
	}

	for i := range due {
		appt := &due[i]

		outcome, posted, err := m.resolveOne(appt, now, settings)
		if err != nil {
			log.Errorf("[Closure] could not resolve appointment %d: %v", appt.ID, err)
			continue
		}

		resolved++
		if posted {
			settled++
		}
		log.Infof("[Closure] appointment %d resolved as %s", appt.ID, outcome)
	}

	return resolved, settled
}

// resolveOne applies the decision table to a single due appointment. The
// second return reports whether a cash payment was posted.
func (m *Manager) resolveOne(appt *models.Appointment, now time.Time, settings CashSettings) (Outcome, bool, error) {
	hasPayment, err := m.repos.Payments.HasCompletedPayment(appt.ID)
	if err != nil {
		return 0, false, fmt.Errorf("payment lookup: %w", err)
	}

	outcome := Decide(appt.ClosureProviderAction, appt.ClosureClientAction, hasPayment)
	if outcome != OutcomeSettleCash {
		return outcome, false, m.repos.Appointments.ResolveClosure(nil, appt.ID)
	}

	posted, err := m.settleCash(appt, now, settings)
	return outcome, posted, err
}

// settleCash posts the payment and the provider commission debt and resolves
// the appointment in one transaction, so a partial failure rolls everything
// back instead of leaving a payment without its matching debt. Amounts above
// the cash cap resolve without postings.
func (m *Manager) settleCash(appt *models.Appointment, now time.Time, settings CashSettings) (bool, error) {
	if appt.Price.GreaterThan(settings.CashCap) {
		log.Warnf("[Closure] appointment %d price %s exceeds cash cap %s, resolving without payment",
			appt.ID, appt.Price, settings.CashCap)
		return false, m.repos.Appointments.ResolveClosure(nil, appt.ID)
	}

	breakdown := ComputeCashBreakdown(appt.Price, settings)
	paidAt := now

	err := m.db.Transaction(func(tx *gorm.DB) error {
		payment := &models.Payment{
			AppointmentID:    appt.ID,
			ClientID:         appt.ClientID,
			ProviderID:       appt.ProviderID,
			Amount:           appt.Price,
			TaxAmount:        breakdown.TaxAmount,
			CommissionAmount: breakdown.CommissionAmount,
			ProviderAmount:   breakdown.ProviderAmount,
			Currency:         models.CurrencyCLP,
			PaymentMethod:    models.PaymentMethodCash,
			Status:           models.PaymentStatusCompleted,
			PaidAt:           &paidAt,
			ReleaseStatus:    models.ReleaseStatusPending,
		}
		if err := m.repos.Payments.Create(tx, payment); err != nil {
			return fmt.Errorf("create payment: %w", err)
		}

		debt := &models.ProviderCommissionDebt{
			ProviderID:       appt.ProviderID,
			AppointmentID:    appt.ID,
			PaymentID:        payment.ID,
			CommissionAmount: breakdown.CommissionAmount,
			Currency:         models.CurrencyCLP,
			Status:           models.DebtStatusPending,
			DueDate:          now.AddDate(0, 0, settings.DueDays),
		}
		if err := m.repos.Debts.Create(tx, debt); err != nil {
			return fmt.Errorf("create commission debt: %w", err)
		}

		return m.repos.Appointments.ResolveClosure(tx, appt.ID)
	})
	if err != nil {
		return false, err
	}
	return true, nil
}
