package models

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

const (
	PaymentMethodCash = "cash"
	PaymentMethodCard = "card"
)

// Appointment lifecycle as driven by the booking endpoints.
const (
	AppointmentStatusPending    = "pending"
	AppointmentStatusConfirmed  = "confirmed"
	AppointmentStatusInProgress = "in_progress"
	AppointmentStatusCompleted  = "completed"
	AppointmentStatusCancelled  = "cancelled"
)

// Closure states. Monotonic: none -> pending_close -> resolved.
const (
	ClosureStateNone         = "none"
	ClosureStatePendingClose = "pending_close"
	ClosureStateResolved     = "resolved"
)

// Actor signals written by the client/provider closure-confirmation endpoints.
const (
	ClosureActionNone        = "none"
	ClosureActionNoShow      = "no_show"
	ClosureActionOK          = "ok"
	ClosureActionCodeEntered = "code_entered"
)

// Appointment is a booking between a client and a provider. Date and EndTime
// are stored the way the booking flow submits them (separate date and
// wall-clock columns), so combining them can fail on legacy rows.
type Appointment struct {
	ID                    uint            `gorm:"primaryKey" json:"id"`
	ClientID              uint            `gorm:"not null;index" json:"client_id"`
	ProviderID            uint            `gorm:"not null;index" json:"provider_id"`
	Date                  string          `gorm:"type:varchar(10);not null" json:"date"`    // YYYY-MM-DD
	EndTime               string          `gorm:"type:varchar(5);not null" json:"end_time"` // HH:MM
	Price                 decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"price"`
	PaymentMethod         string          `gorm:"type:varchar(20);not null;default:'card'" json:"payment_method"`
	Status                string          `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	ClosureState          string          `gorm:"type:varchar(20);not null;default:'none';index" json:"closure_state"`
	ClosureDueAt          *time.Time      `gorm:"type:timestamp;default:null" json:"closure_due_at,omitempty"`
	ClosureProviderAction string          `gorm:"type:varchar(20);not null;default:'none'" json:"closure_provider_action"`
	ClosureClientAction   string          `gorm:"type:varchar(20);not null;default:'none'" json:"closure_client_action"`
	CreatedAt             time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt             time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

// ServiceEnd combines Date and EndTime into a local timestamp.
func (a *Appointment) ServiceEnd() (time.Time, error) {
	if a.Date == "" || a.EndTime == "" {
		return time.Time{}, fmt.Errorf("appointment %d has no service end (date=%q end_time=%q)", a.ID, a.Date, a.EndTime)
	}
	end, err := time.ParseInLocation("2006-01-02 15:04", a.Date+" "+a.EndTime, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("appointment %d has a malformed service end: %w", a.ID, err)
	}
	return end, nil
}

// IsCash reports whether the appointment was booked for cash payment.
func (a *Appointment) IsCash() bool {
	return a.PaymentMethod == PaymentMethodCash
}
