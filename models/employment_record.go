package models

import "time"

// Current employment terms; one row per employee.
type EmploymentRecord struct {
	ID           uint   `json:"id" gorm:"primaryKey"`
	EmployeeID   uint   `json:"employee_id" gorm:"uniqueIndex;not null"`
	JobLevel     string `json:"job_level" gorm:"size:40"`
	WorkSchedule string `json:"work_schedule" gorm:"size:80"` // e.g. "Mon-Fri 08:00-17:00"
	WorkLocation string `json:"work_location" gorm:"size:120"`
	Supervisor   string `json:"supervisor" gorm:"size:100"`
	Remarks      string `json:"remarks" gorm:"type:text"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
