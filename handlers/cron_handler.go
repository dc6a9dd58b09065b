package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/kmpicazo/HR201System/database"
	"github.com/kmpicazo/HR201System/mailer"
	"github.com/kmpicazo/HR201System/models"
)

// CronHandler backs the scheduler-invoked sweeps. Individual mail failures
// are logged and skipped; the response counts records checked, not deliveries.
type CronHandler struct {
	mailer mailer.Mailer
	loc    *time.Location
}

func NewCronHandler(m mailer.Mailer, loc *time.Location) *CronHandler {
	if loc == nil {
		loc = time.UTC
	}
	return &CronHandler{mailer: m, loc: loc}
}

// GET /cron/check-expiring-contracts
//
// Active contractuals whose contract ends within 30 days.
func (h *CronHandler) CheckExpiringContracts(c echo.Context) error {
	now := time.Now().In(h.loc)
	cutoff := now.AddDate(0, 0, 30).Format("2006-01-02")
	today := now.Format("2006-01-02")

	var employees []models.Employee
	err := database.DB.
		Where("employment_type = ? AND employment_status = ?", "Contractual", "Active").
		Where("contract_end_date <> '' AND contract_end_date >= ? AND contract_end_date <= ?", today, cutoff).
		Find(&employees).Error
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": "Cron job failed"})
	}

	for _, e := range employees {
		if err := h.mailer.SendContractExpirationAlert(e); err != nil {
			log.Printf("[cron] contract alert for %s failed: %v", e.EmployeeCode, err)
		}
	}

	return c.JSON(http.StatusOK, map[string]any{"success": true, "checked": len(employees)})
}

// GET /cron/check-incomplete-files
//
// Active employees missing any of the three nested 201 records.
func (h *CronHandler) CheckIncompleteFiles(c echo.Context) error {
	var employees []models.Employee
	err := database.DB.
		Preload("GovernmentInfo").
		Preload("EmploymentRecord").
		Preload("Compensation").
		Where("employment_status = ?", "Active").
		Find(&employees).Error
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": "Cron job failed"})
	}

	checked := 0
	for i := range employees {
		if !incompleteFile(&employees[i]) {
			continue
		}
		checked++
		if err := h.mailer.SendIncompleteFileAlert(employees[i]); err != nil {
			log.Printf("[cron] incomplete-file alert for %s failed: %v", employees[i].EmployeeCode, err)
		}
	}

	return c.JSON(http.StatusOK, map[string]any{"success": true, "checked": checked})
}
