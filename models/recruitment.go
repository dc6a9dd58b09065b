package models

import "time"

type JobPosting struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	Title       string `json:"title" gorm:"size:120;not null"`
	Department  string `json:"department" gorm:"size:80"`
	Description string `json:"description" gorm:"type:text"`
	SalaryRange string `json:"salary_range" gorm:"size:60"`
	Status      string `json:"status" gorm:"size:20;not null;default:open"` // open/on_hold/closed
	PostedBy    uint   `json:"posted_by" gorm:"index"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Candidate struct {
	ID           uint   `json:"id" gorm:"primaryKey"`
	JobPostingID uint   `json:"job_posting_id" gorm:"not null;index"`
	FullName     string `json:"full_name" gorm:"size:100;not null"`
	Email        string `json:"email" gorm:"size:120"`
	Phone        string `json:"phone" gorm:"size:20"`
	ResumeURL    string `json:"resume_url" gorm:"type:text"`
	Status       string `json:"status" gorm:"size:20;not null;default:applied"` // applied/screening/interview/offer/hired/rejected
	Notes        string `json:"notes" gorm:"type:text"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
