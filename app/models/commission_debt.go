package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	DebtStatusPending = "pending"
	DebtStatusPaid    = "paid"
	DebtStatusWaived  = "waived"
)

// ProviderCommissionDebt is commission the platform is owed by a provider for
// a cash transaction. Cash bypasses the commission capture that card payments
// get at the gateway, so the commission becomes a receivable instead.
type ProviderCommissionDebt struct {
	ID               uint            `gorm:"primaryKey" json:"id"`
	ProviderID       uint            `gorm:"not null;index" json:"provider_id"`
	AppointmentID    uint            `gorm:"not null;index" json:"appointment_id"`
	PaymentID        uint            `gorm:"not null;index" json:"payment_id"`
	CommissionAmount decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"commission_amount"`
	Currency         string          `gorm:"type:varchar(3);not null;default:'CLP'" json:"currency"`
	Status           string          `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	DueDate          time.Time       `gorm:"type:timestamp;not null" json:"due_date"`
	CreatedAt        time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}
