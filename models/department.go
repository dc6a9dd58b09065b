package models

import "time"

type Department struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	Name        string `json:"name" gorm:"size:80;uniqueIndex;not null"`
	Description string `json:"description" gorm:"type:text"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Position struct {
	ID           uint   `json:"id" gorm:"primaryKey"`
	Title        string `json:"title" gorm:"size:80;uniqueIndex;not null"`
	DepartmentID *uint  `json:"department_id" gorm:"index"`
	Description  string `json:"description" gorm:"type:text"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
