package models

import "time"

// Compensation terms; one row per employee.
type Compensation struct {
	ID            uint    `json:"id" gorm:"primaryKey"`
	EmployeeID    uint    `json:"employee_id" gorm:"uniqueIndex;not null"`
	BasicSalary   float64 `json:"basic_salary"`
	PayFrequency  string  `json:"pay_frequency" gorm:"size:20"` // monthly/semi-monthly
	BankName      string  `json:"bank_name" gorm:"size:80"`
	BankAccountNo string  `json:"bank_account_no" gorm:"size:40"`
	Allowances    float64 `json:"allowances"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
