package models

import "time"

// Registered biometric capture terminal. DeviceID is the code printed on the
// terminal itself; the hardware identifies itself with it on every punch.
type AttendanceDevice struct {
	ID           uint       `json:"id" gorm:"primaryKey"`
	DeviceID     string     `json:"device_id" gorm:"size:64;uniqueIndex;not null"`
	DeviceName   string     `json:"device_name" gorm:"size:100;not null"`
	Status       string     `json:"status" gorm:"size:20;not null;default:active"` // active/inactive/suspended
	RegisteredBy uint       `json:"registered_by" gorm:"index"`
	LastSyncAt   *time.Time `json:"last_sync_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

const (
	DeviceActive    = "active"
	DeviceInactive  = "inactive"
	DeviceSuspended = "suspended"
)
