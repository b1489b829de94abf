package closure

import (
	"github.com/maestroya/backend/app/models"
)

// Outcome is the result of auto-resolving a pending_close appointment.
type Outcome int

const (
	// OutcomeMutualNoShow: both parties reported a no-show, nothing to settle.
	OutcomeMutualNoShow Outcome = iota
	// OutcomeAlreadyPaid: a completed payment already exists from another
	// path (e.g. card), so only the state advances.
	OutcomeAlreadyPaid
	// OutcomeSettleCash: treat the appointment as paid in cash and post a
	// payment plus a provider commission debt.
	OutcomeSettleCash
	// OutcomeSilentResolve: one-sided or conflicting signals, resolve without
	// postings so the row never gets stuck.
	OutcomeSilentResolve
)

func (o Outcome) String() string {
	switch o {
	case OutcomeMutualNoShow:
		return "mutual_no_show"
	case OutcomeAlreadyPaid:
		return "already_paid"
	case OutcomeSettleCash:
		return "settle_cash"
	default:
		return "silent_resolve"
	}
}

// Decide maps the two actor signals plus the existing-payment flag to an
// outcome. Precedence matters: mutual no-show beats everything, then an
// existing payment, then the settle triggers. Every input lands on exactly
// one outcome and every outcome ends in closure_state='resolved'.
func Decide(providerAction, clientAction string, hasPayment bool) Outcome {
	switch {
	case providerAction == models.ClosureActionNoShow && clientAction == models.ClosureActionNoShow:
		return OutcomeMutualNoShow
	case hasPayment:
		return OutcomeAlreadyPaid
	case clientAction == models.ClosureActionOK,
		providerAction == models.ClosureActionCodeEntered,
		providerAction == models.ClosureActionNone && clientAction == models.ClosureActionNone:
		return OutcomeSettleCash
	default:
		return OutcomeSilentResolve
	}
}
