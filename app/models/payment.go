package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	PaymentStatusPending   = "pending"
	PaymentStatusCompleted = "completed"
	PaymentStatusRefunded  = "refunded"
)

const (
	ReleaseStatusPending  = "pending"
	ReleaseStatusReleased = "released"
)

const CurrencyCLP = "CLP"

// Payment records money collected for an appointment. Card payments are
// written by the gateway callbacks; cash payments are posted by the closure
// job when an appointment settles. Amount is gross (tax inclusive),
// ProviderAmount is what the provider keeps after tax and commission.
type Payment struct {
	ID               uint            `gorm:"primaryKey" json:"id"`
	UUID             string          `gorm:"type:varchar(36);not null;uniqueIndex" json:"uuid"`
	AppointmentID    uint            `gorm:"not null;index" json:"appointment_id"`
	ClientID         uint            `gorm:"not null;index" json:"client_id"`
	ProviderID       uint            `gorm:"not null;index" json:"provider_id"`
	Amount           decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"amount"`
	TaxAmount        decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"tax_amount"`
	CommissionAmount decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"commission_amount"`
	ProviderAmount   decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"provider_amount"`
	Currency         string          `gorm:"type:varchar(3);not null;default:'CLP'" json:"currency"`
	PaymentMethod    string          `gorm:"type:varchar(20);not null" json:"payment_method"`
	Status           string          `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	PaidAt           *time.Time      `gorm:"type:timestamp;default:null" json:"paid_at,omitempty"`
	CanRelease       bool            `gorm:"default:false" json:"can_release"`
	ReleaseStatus    string          `gorm:"type:varchar(20);not null;default:'pending'" json:"release_status"`
	CreatedAt        time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

func (p *Payment) BeforeCreate(tx *gorm.DB) error {
	if p.UUID == "" {
		p.UUID = uuid.New().String()
	}
	return nil
}
