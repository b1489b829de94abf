package repository

import (
	"gorm.io/gorm"
)

// Repositories bundles all repository instances for dependency injection
type Repositories struct {
	Appointments AppointmentRepository
	Payments     PaymentRepository
	Debts        DebtRepository
	Settings     SettingRepository
}

// NewRepositories creates all repositories backed by the given database handle
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Appointments: NewAppointmentRepository(db),
		Payments:     NewPaymentRepository(db),
		Debts:        NewDebtRepository(db),
		Settings:     NewSettingRepository(db),
	}
}
