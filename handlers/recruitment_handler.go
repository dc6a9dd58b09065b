package handlers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/kmpicazo/HR201System/database"
	"github.com/kmpicazo/HR201System/models"
)

type RecruitmentHandler struct{}

func NewRecruitmentHandler() *RecruitmentHandler { return &RecruitmentHandler{} }

/* ===== Job postings ===== */

type jobPostingPayload struct {
	Title       string `json:"title"`
	Department  string `json:"department"`
	Description string `json:"description"`
	SalaryRange string `json:"salary_range"`
	Status      string `json:"status"`
}

var postingStatuses = map[string]bool{"open": true, "on_hold": true, "closed": true}

func (h *RecruitmentHandler) ListPostings(c echo.Context) error {
	tx := database.DB.Model(&models.JobPosting{})
	if st := strings.TrimSpace(c.QueryParam("status")); st != "" {
		tx = tx.Where("status = ?", st)
	}
	var rows []models.JobPosting
	if err := tx.Order("created_at DESC").Find(&rows).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, rows)
}

func (h *RecruitmentHandler) CreatePosting(c echo.Context) error {
	var req jobPostingPayload
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "INVALID_PAYLOAD"})
	}
	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "MISSING_FIELDS"})
	}
	userID, _ := c.Get("user_id").(uint)
	row := models.JobPosting{
		Title:       req.Title,
		Department:  strings.TrimSpace(req.Department),
		Description: strings.TrimSpace(req.Description),
		SalaryRange: strings.TrimSpace(req.SalaryRange),
		Status:      "open",
		PostedBy:    userID,
	}
	if err := database.DB.Create(&row).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": err.Error()})
	}
	logAudit(c, nil, "create", "job_postings", &row.ID, nil)
	return c.JSON(http.StatusCreated, row)
}

func (h *RecruitmentHandler) UpdatePosting(c echo.Context) error {
	var row models.JobPosting
	if err := database.DB.First(&row, "id = ?", c.Param("id")).Error; err != nil {
		return c.JSON(http.StatusNotFound, map[string]any{"error": "POSTING_NOT_FOUND"})
	}
	var req jobPostingPayload
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "INVALID_PAYLOAD"})
	}
	if t := strings.TrimSpace(req.Title); t != "" {
		row.Title = t
	}
	if req.Department != "" {
		row.Department = strings.TrimSpace(req.Department)
	}
	if req.Description != "" {
		row.Description = req.Description
	}
	if req.SalaryRange != "" {
		row.SalaryRange = strings.TrimSpace(req.SalaryRange)
	}
	if req.Status != "" {
		if !postingStatuses[req.Status] {
			return c.JSON(http.StatusBadRequest, map[string]any{"error": "INVALID_STATUS"})
		}
		row.Status = req.Status
	}
	if err := database.DB.Save(&row).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": err.Error()})
	}
	logAudit(c, nil, "update", "job_postings", &row.ID, nil)
	return c.JSON(http.StatusOK, row)
}

/* ===== Candidates ===== */

type candidatePayload struct {
	JobPostingID uint   `json:"job_posting_id"`
	FullName     string `json:"full_name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	ResumeURL    string `json:"resume_url"`
	Status       string `json:"status"`
	Notes        string `json:"notes"`
}

var candidateStatuses = map[string]bool{
	"applied": true, "screening": true, "interview": true,
	"offer": true, "hired": true, "rejected": true,
}

func (h *RecruitmentHandler) ListCandidates(c echo.Context) error {
	tx := database.DB.Model(&models.Candidate{})
	if p := strings.TrimSpace(c.QueryParam("job_posting_id")); p != "" {
		tx = tx.Where("job_posting_id = ?", p)
	}
	if st := strings.TrimSpace(c.QueryParam("status")); st != "" {
		tx = tx.Where("status = ?", st)
	}
	var rows []models.Candidate
	if err := tx.Order("created_at DESC").Find(&rows).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, rows)
}

func (h *RecruitmentHandler) CreateCandidate(c echo.Context) error {
	var req candidatePayload
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "INVALID_PAYLOAD"})
	}
	req.FullName = strings.Join(strings.Fields(req.FullName), " ")
	if req.JobPostingID == 0 || req.FullName == "" {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "MISSING_FIELDS"})
	}
	var posting models.JobPosting
	if err := database.DB.First(&posting, req.JobPostingID).Error; err != nil {
		return c.JSON(http.StatusNotFound, map[string]any{"error": "POSTING_NOT_FOUND"})
	}
	row := models.Candidate{
		JobPostingID: req.JobPostingID,
		FullName:     req.FullName,
		Email:        strings.TrimSpace(strings.ToLower(req.Email)),
		Phone:        strings.TrimSpace(req.Phone),
		ResumeURL:    strings.TrimSpace(req.ResumeURL),
		Status:       "applied",
		Notes:        strings.TrimSpace(req.Notes),
	}
	if err := database.DB.Create(&row).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": err.Error()})
	}
	logAudit(c, nil, "create", "candidates", &row.ID, nil)
	return c.JSON(http.StatusCreated, row)
}

// PATCH /admin/recruitment/candidates/:id
func (h *RecruitmentHandler) UpdateCandidate(c echo.Context) error {
	var row models.Candidate
	if err := database.DB.First(&row, "id = ?", c.Param("id")).Error; err != nil {
		return c.JSON(http.StatusNotFound, map[string]any{"error": "CANDIDATE_NOT_FOUND"})
	}
	var req candidatePayload
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "INVALID_PAYLOAD"})
	}
	if req.Status != "" {
		if !candidateStatuses[req.Status] {
			return c.JSON(http.StatusBadRequest, map[string]any{"error": "INVALID_STATUS"})
		}
		row.Status = req.Status
	}
	if req.Notes != "" {
		row.Notes = req.Notes
	}
	if req.ResumeURL != "" {
		row.ResumeURL = strings.TrimSpace(req.ResumeURL)
	}
	if err := database.DB.Save(&row).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": err.Error()})
	}
	logAudit(c, nil, "update", "candidates", &row.ID, map[string]any{"status": row.Status})
	return c.JSON(http.StatusOK, row)
}
