package models

import "time"

// DeviceEmployee links an employee to a device they can punch on.
// One row per (device, employee); re-enrolling replaces template and timestamp.
type DeviceEmployee struct {
	ID                uint       `json:"id" gorm:"primaryKey"`
	DeviceID          uint       `json:"device_id" gorm:"not null;uniqueIndex:idx_device_employee"`
	EmployeeID        uint       `json:"employee_id" gorm:"not null;uniqueIndex:idx_device_employee"`
	EnrollmentStatus  string     `json:"enrollment_status" gorm:"size:20;not null;default:pending"` // enrolled/pending/not_enrolled
	BiometricTemplate string     `json:"biometric_template,omitempty" gorm:"type:text"`             // opaque sensor blob, base64
	PIN               string     `json:"-" gorm:"size:20"`
	EnrolledAt        *time.Time `json:"enrolled_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

const (
	EnrollmentEnrolled    = "enrolled"
	EnrollmentPending     = "pending"
	EnrollmentNotEnrolled = "not_enrolled"
)
