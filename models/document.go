package models

import "time"

// Document is an uploaded 201-file attachment; the bytes live in object
// storage, this row only holds the key and public URL.
type Document struct {
	ID         uint   `json:"id" gorm:"primaryKey"`
	PublicID   string `json:"public_id" gorm:"size:36;uniqueIndex;not null"`
	EmployeeID uint   `json:"employee_id" gorm:"not null;index"`
	FileType   string `json:"file_type" gorm:"size:60;not null"` // e.g. resume, nbi_clearance, contract
	FileName   string `json:"file_name" gorm:"size:255;not null"`
	StorageKey string `json:"storage_key" gorm:"size:400;not null"`
	URL        string `json:"url" gorm:"type:text"`
	UploadedBy uint   `json:"uploaded_by" gorm:"index"`

	CreatedAt time.Time `json:"created_at"`
}
