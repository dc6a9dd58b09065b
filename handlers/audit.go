package handlers

import (
	"encoding/json"
	"log"

	"github.com/labstack/echo/v4"
	"gorm.io/datatypes"

	"github.com/kmpicazo/HR201System/database"
	"github.com/kmpicazo/HR201System/models"
)

// logAudit writes a best-effort audit row for an admin mutation. Failures are
// logged and swallowed; an audit miss must never fail the operation.
func logAudit(c echo.Context, employeeID *uint, action, tableName string, recordID *uint, changes map[string]any) {
	userID, _ := c.Get("user_id").(uint)

	var payload datatypes.JSON
	if changes != nil {
		if b, err := json.Marshal(changes); err == nil {
			payload = datatypes.JSON(b)
		}
	}

	entry := models.AuditLog{
		UserID:     userID,
		EmployeeID: employeeID,
		Action:     action,
		TableName:  tableName,
		RecordID:   recordID,
		Changes:    payload,
	}
	if err := database.DB.Create(&entry).Error; err != nil {
		log.Printf("[audit] write failed: %v", err)
	}
}
