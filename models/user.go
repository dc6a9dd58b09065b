package models

import "time"

// Staff account. Role gates the admin surface ("hr_admin") vs the
// employee self-service surface ("employee").
type User struct {
	ID           uint   `json:"id" gorm:"primaryKey"`
	Username     string `json:"username" gorm:"size:50;uniqueIndex;not null"`
	PasswordHash string `json:"-" gorm:"size:100;not null"`
	Name         string `json:"name" gorm:"size:100"`
	Role         string `json:"role" gorm:"size:20;not null;default:employee"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
