package models

import "time"

type CompliancePolicy struct {
	ID            uint   `json:"id" gorm:"primaryKey"`
	Title         string `json:"title" gorm:"size:150;not null"`
	Category      string `json:"category" gorm:"size:60"` // labor/safety/data_privacy/...
	Description   string `json:"description" gorm:"type:text"`
	EffectiveDate string `json:"effective_date" gorm:"size:10"` // YYYY-MM-DD
	ReviewDate    string `json:"review_date" gorm:"size:10"`
	Status        string `json:"status" gorm:"size:20;not null;default:active"` // active/archived

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ComplianceAudit struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	PolicyID    *uint  `json:"policy_id" gorm:"index"`
	Title       string `json:"title" gorm:"size:150;not null"`
	Auditor     string `json:"auditor" gorm:"size:100"`
	ScheduledOn string `json:"scheduled_on" gorm:"size:10"` // YYYY-MM-DD
	Status      string `json:"status" gorm:"size:20;not null;default:scheduled"` // scheduled/in_progress/completed
	Findings    string `json:"findings" gorm:"type:text"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
