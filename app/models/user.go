package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	UserRoleClient   = "client"
	UserRoleProvider = "provider"
)

// User is a marketplace account, either a client booking services or a
// provider offering them. PushToken is the device token registered by the
// mobile app; empty means no device to notify.
type User struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Name      string         `gorm:"size:255;not null" json:"name"`
	Email     string         `gorm:"size:255;not null;uniqueIndex" json:"email"`
	Role      string         `gorm:"type:varchar(20);not null;default:'client';index" json:"role"`
	PushToken string         `gorm:"size:512" json:"-"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
