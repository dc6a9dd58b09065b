package models

import "time"

// BiometricRecord is one scan as reported by a terminal. Append-only; the
// attendance row is derived from these but the raw punches are never touched.
type BiometricRecord struct {
	ID              uint      `json:"id" gorm:"primaryKey"`
	DeviceID        uint      `json:"device_id" gorm:"not null;index"`
	EmployeeID      uint      `json:"employee_id" gorm:"not null;index"`
	AttendanceID    uint      `json:"attendance_id" gorm:"not null;index"`
	RecordType      string    `json:"record_type" gorm:"size:20;not null"` // time_in/lunch_out/lunch_in/time_out
	RecordedAt      time.Time `json:"recorded_at" gorm:"not null"`
	ConfidenceScore float64   `json:"confidence_score"` // sensor-supplied, stored as-is

	CreatedAt time.Time `json:"created_at"`
}

const (
	PunchTimeIn   = "time_in"
	PunchLunchOut = "lunch_out"
	PunchLunchIn  = "lunch_in"
	PunchTimeOut  = "time_out"
)
