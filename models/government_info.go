package models

import "time"

// Philippine statutory numbers; one row per employee.
type GovernmentInfo struct {
	ID         uint   `json:"id" gorm:"primaryKey"`
	EmployeeID uint   `json:"employee_id" gorm:"uniqueIndex;not null"`
	SSSNumber  string `json:"sss_number" gorm:"size:20"`
	PhilHealth string `json:"philhealth_number" gorm:"size:20"`
	PagIbig    string `json:"pagibig_number" gorm:"size:20"`
	TIN        string `json:"tin" gorm:"size:20"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
