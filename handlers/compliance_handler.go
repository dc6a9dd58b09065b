package handlers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/kmpicazo/HR201System/database"
	"github.com/kmpicazo/HR201System/models"
)

type ComplianceHandler struct{}

func NewComplianceHandler() *ComplianceHandler { return &ComplianceHandler{} }

/* ===== Policies ===== */

type policyPayload struct {
	Title         string `json:"title"`
	Category      string `json:"category"`
	Description   string `json:"description"`
	EffectiveDate string `json:"effective_date"`
	ReviewDate    string `json:"review_date"`
	Status        string `json:"status"`
}

func (h *ComplianceHandler) ListPolicies(c echo.Context) error {
	tx := database.DB.Model(&models.CompliancePolicy{})
	if cat := strings.TrimSpace(c.QueryParam("category")); cat != "" {
		tx = tx.Where("category = ?", cat)
	}
	if st := strings.TrimSpace(c.QueryParam("status")); st != "" {
		tx = tx.Where("status = ?", st)
	}
	var rows []models.CompliancePolicy
	if err := tx.Order("effective_date DESC, id DESC").Find(&rows).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, rows)
}

func (h *ComplianceHandler) CreatePolicy(c echo.Context) error {
	var req policyPayload
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "INVALID_PAYLOAD"})
	}
	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "MISSING_FIELDS"})
	}
	row := models.CompliancePolicy{
		Title:         req.Title,
		Category:      strings.TrimSpace(req.Category),
		Description:   strings.TrimSpace(req.Description),
		EffectiveDate: req.EffectiveDate,
		ReviewDate:    req.ReviewDate,
		Status:        "active",
	}
	if err := database.DB.Create(&row).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": err.Error()})
	}
	logAudit(c, nil, "create", "compliance_policies", &row.ID, nil)
	return c.JSON(http.StatusCreated, row)
}

func (h *ComplianceHandler) UpdatePolicy(c echo.Context) error {
	var row models.CompliancePolicy
	if err := database.DB.First(&row, "id = ?", c.Param("id")).Error; err != nil {
		return c.JSON(http.StatusNotFound, map[string]any{"error": "POLICY_NOT_FOUND"})
	}
	var req policyPayload
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "INVALID_PAYLOAD"})
	}
	if t := strings.TrimSpace(req.Title); t != "" {
		row.Title = t
	}
	row.Category = strings.TrimSpace(req.Category)
	row.Description = strings.TrimSpace(req.Description)
	if req.EffectiveDate != "" {
		row.EffectiveDate = req.EffectiveDate
	}
	if req.ReviewDate != "" {
		row.ReviewDate = req.ReviewDate
	}
	if req.Status == "active" || req.Status == "archived" {
		row.Status = req.Status
	}
	if err := database.DB.Save(&row).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": err.Error()})
	}
	logAudit(c, nil, "update", "compliance_policies", &row.ID, nil)
	return c.JSON(http.StatusOK, row)
}

func (h *ComplianceHandler) DeletePolicy(c echo.Context) error {
	var row models.CompliancePolicy
	if err := database.DB.First(&row, "id = ?", c.Param("id")).Error; err != nil {
		return c.JSON(http.StatusNotFound, map[string]any{"error": "POLICY_NOT_FOUND"})
	}
	if err := database.DB.Delete(&row).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": err.Error()})
	}
	logAudit(c, nil, "delete", "compliance_policies", &row.ID, nil)
	return c.JSON(http.StatusOK, map[string]any{"deleted": row.ID})
}

/* ===== Audits ===== */

type auditPayload struct {
	PolicyID    *uint  `json:"policy_id"`
	Title       string `json:"title"`
	Auditor     string `json:"auditor"`
	ScheduledOn string `json:"scheduled_on"`
	Status      string `json:"status"`
	Findings    string `json:"findings"`
}

var auditStatuses = map[string]bool{"scheduled": true, "in_progress": true, "completed": true}

func (h *ComplianceHandler) ListAudits(c echo.Context) error {
	tx := database.DB.Model(&models.ComplianceAudit{})
	if st := strings.TrimSpace(c.QueryParam("status")); st != "" {
		tx = tx.Where("status = ?", st)
	}
	var rows []models.ComplianceAudit
	if err := tx.Order("scheduled_on ASC, id ASC").Find(&rows).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, rows)
}

func (h *ComplianceHandler) CreateAudit(c echo.Context) error {
	var req auditPayload
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "INVALID_PAYLOAD"})
	}
	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "MISSING_FIELDS"})
	}
	if req.PolicyID != nil {
		var p models.CompliancePolicy
		if err := database.DB.First(&p, *req.PolicyID).Error; err != nil {
			return c.JSON(http.StatusNotFound, map[string]any{"error": "POLICY_NOT_FOUND"})
		}
	}
	row := models.ComplianceAudit{
		PolicyID:    req.PolicyID,
		Title:       req.Title,
		Auditor:     strings.TrimSpace(req.Auditor),
		ScheduledOn: req.ScheduledOn,
		Status:      "scheduled",
	}
	if err := database.DB.Create(&row).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": err.Error()})
	}
	logAudit(c, nil, "create", "compliance_audits", &row.ID, nil)
	return c.JSON(http.StatusCreated, row)
}

// PATCH /admin/compliance/audits/:id — status transition plus findings.
func (h *ComplianceHandler) UpdateAudit(c echo.Context) error {
	var row models.ComplianceAudit
	if err := database.DB.First(&row, "id = ?", c.Param("id")).Error; err != nil {
		return c.JSON(http.StatusNotFound, map[string]any{"error": "AUDIT_NOT_FOUND"})
	}
	var req auditPayload
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "INVALID_PAYLOAD"})
	}
	if req.Status != "" {
		if !auditStatuses[req.Status] {
			return c.JSON(http.StatusBadRequest, map[string]any{"error": "INVALID_STATUS"})
		}
		row.Status = req.Status
	}
	if req.Findings != "" {
		row.Findings = req.Findings
	}
	if req.Auditor != "" {
		row.Auditor = strings.TrimSpace(req.Auditor)
	}
	if req.ScheduledOn != "" {
		row.ScheduledOn = req.ScheduledOn
	}
	if err := database.DB.Save(&row).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": err.Error()})
	}
	logAudit(c, nil, "update", "compliance_audits", &row.ID, map[string]any{"status": row.Status})
	return c.JSON(http.StatusOK, row)
}

/* ===== Audit log viewer ===== */

// GET /admin/audit-logs?table=&employee_id=&limit=
func (h *ComplianceHandler) ListAuditLogs(c echo.Context) error {
	limit := atoiOr(c.QueryParam("limit"), 100)
	if limit < 1 || limit > 500 {
		limit = 100
	}
	tx := database.DB.Model(&models.AuditLog{})
	if t := strings.TrimSpace(c.QueryParam("table")); t != "" {
		tx = tx.Where("table_name = ?", t)
	}
	if id := strings.TrimSpace(c.QueryParam("employee_id")); id != "" {
		tx = tx.Where("employee_id = ?", id)
	}
	var rows []models.AuditLog
	if err := tx.Order("created_at DESC").Limit(limit).Find(&rows).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, rows)
}
