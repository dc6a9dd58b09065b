package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/kmpicazo/HR201System/database"
	"github.com/kmpicazo/HR201System/models"
)

type DashboardHandler struct {
	loc *time.Location
}

func NewDashboardHandler(loc *time.Location) *DashboardHandler {
	if loc == nil {
		loc = time.UTC
	}
	return &DashboardHandler{loc: loc}
}

// GET /hr/dashboard — headline numbers for the landing page.
func (h *DashboardHandler) Summary(c echo.Context) error {
	today := time.Now().In(h.loc).Format("2006-01-02")

	var activeEmployees, presentToday, openAudits, openPostings int64

	if err := database.DB.Model(&models.Employee{}).
		Where("employment_status = ?", "Active").
		Count(&activeEmployees).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": err.Error()})
	}
	if err := database.DB.Model(&models.Attendance{}).
		Where("date = ? AND status = ?", today, models.AttendancePresent).
		Count(&presentToday).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": err.Error()})
	}
	if err := database.DB.Model(&models.ComplianceAudit{}).
		Where("status <> ?", "completed").
		Count(&openAudits).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": err.Error()})
	}
	if err := database.DB.Model(&models.JobPosting{}).
		Where("status = ?", "open").
		Count(&openPostings).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]any{
		"date":             today,
		"active_employees": activeEmployees,
		"present_today":    presentToday,
		"open_audits":      openAudits,
		"open_postings":    openPostings,
	})
}
