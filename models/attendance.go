package models

import "time"

// Attendance is the per-employee-per-day ledger row. The composite unique
// index on (employee_id, date) is what makes concurrent punch upserts safe.
type Attendance struct {
	ID         uint   `json:"id" gorm:"primaryKey"`
	EmployeeID uint   `json:"employee_id" gorm:"not null;uniqueIndex:idx_attendance_employee_date"`
	Date       string `json:"date" gorm:"size:10;not null;uniqueIndex:idx_attendance_employee_date"` // YYYY-MM-DD, company timezone
	Status     string `json:"status" gorm:"size:20;not null"` // present/absent/on_leave
	Source     string `json:"source" gorm:"size:20;not null"` // biometric/manual/imported

	TimeIn   *time.Time `json:"time_in"`
	LunchOut *time.Time `json:"lunch_out"`
	LunchIn  *time.Time `json:"lunch_in"`
	TimeOut  *time.Time `json:"time_out"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

const (
	AttendancePresent = "present"
	AttendanceAbsent  = "absent"
	AttendanceOnLeave = "on_leave"

	SourceBiometric = "biometric"
	SourceManual    = "manual"
	SourceImported  = "imported"
)
