package models

import (
	"time"

	"gorm.io/datatypes"
)

// AuditLog is a best-effort trail of admin mutations; writing one must never
// fail the operation being logged.
type AuditLog struct {
	ID         uint           `json:"id" gorm:"primaryKey"`
	UserID     uint           `json:"user_id" gorm:"index"`
	EmployeeID *uint          `json:"employee_id" gorm:"index"`
	Action     string         `json:"action" gorm:"size:40;not null"` // create/update/delete/upload/...
	TableName  string         `json:"table_name" gorm:"size:60;not null"`
	RecordID   *uint          `json:"record_id"`
	Changes    datatypes.JSON `json:"changes,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}
