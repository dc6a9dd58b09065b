package models

import "time"

// Employee is the head record of a 201 file.
type Employee struct {
	ID           uint   `json:"id" gorm:"primaryKey"`
	EmployeeCode string `json:"employee_code" gorm:"size:20;uniqueIndex;not null"`
	FirstName    string `json:"first_name" gorm:"size:50;not null"`
	MiddleName   string `json:"middle_name" gorm:"size:50"`
	LastName     string `json:"last_name" gorm:"size:50;not null"`
	Email        string `json:"email" gorm:"size:120"`
	Phone        string `json:"phone" gorm:"size:20"`
	Address      string `json:"address" gorm:"type:text"`
	BirthDate    string `json:"birth_date" gorm:"size:10"` // YYYY-MM-DD

	Position   string `json:"position" gorm:"size:80"`
	Department string `json:"department" gorm:"size:80"`

	EmploymentType   string `json:"employment_type" gorm:"size:20"`                            // Regular/Probationary/Contractual
	EmploymentStatus string `json:"employment_status" gorm:"size:20;not null;default:Active"`  // Active/Resigned/Terminated
	DateHired        string `json:"date_hired" gorm:"size:10"`                                 // YYYY-MM-DD
	ContractEndDate  string `json:"contract_end_date" gorm:"size:10"`                          // YYYY-MM-DD, contractuals only

	ProfilePhotoURL string `json:"profile_photo_url" gorm:"type:text"`

	Role string `json:"role" gorm:"size:20;not null;default:employee"`

	GovernmentInfo   *GovernmentInfo   `json:"government_info,omitempty" gorm:"foreignKey:EmployeeID"`
	EmploymentRecord *EmploymentRecord `json:"employment_record,omitempty" gorm:"foreignKey:EmployeeID"`
	Compensation     *Compensation     `json:"compensation,omitempty" gorm:"foreignKey:EmployeeID"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (e *Employee) FullName() string {
	if e.MiddleName != "" {
		return e.FirstName + " " + e.MiddleName + " " + e.LastName
	}
	return e.FirstName + " " + e.LastName
}
