package handlers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/kmpicazo/HR201System/database"
	"github.com/kmpicazo/HR201System/models"
)

// Reference lists behind the department/position pickers.
type DepartmentHandler struct{}

func NewDepartmentHandler() *DepartmentHandler { return &DepartmentHandler{} }

func (h *DepartmentHandler) ListDepartments(c echo.Context) error {
	var rows []models.Department
	if err := database.DB.Order("name ASC").Find(&rows).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, rows)
}

func (h *DepartmentHandler) CreateDepartment(c echo.Context) error {
	var req struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "INVALID_PAYLOAD"})
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "MISSING_FIELDS"})
	}
	row := models.Department{Name: req.Name, Description: strings.TrimSpace(req.Description)}
	if err := database.DB.Create(&row).Error; err != nil {
		return c.JSON(http.StatusConflict, map[string]any{"error": "DEPARTMENT_EXISTS"})
	}
	logAudit(c, nil, "create", "departments", &row.ID, nil)
	return c.JSON(http.StatusCreated, row)
}

func (h *DepartmentHandler) DeleteDepartment(c echo.Context) error {
	var row models.Department
	if err := database.DB.First(&row, "id = ?", c.Param("id")).Error; err != nil {
		return c.JSON(http.StatusNotFound, map[string]any{"error": "DEPARTMENT_NOT_FOUND"})
	}
	if err := database.DB.Delete(&row).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": err.Error()})
	}
	logAudit(c, nil, "delete", "departments", &row.ID, nil)
	return c.JSON(http.StatusOK, map[string]any{"deleted": row.ID})
}

func (h *DepartmentHandler) ListPositions(c echo.Context) error {
	var rows []models.Position
	tx := database.DB.Order("title ASC")
	if d := strings.TrimSpace(c.QueryParam("department_id")); d != "" {
		tx = tx.Where("department_id = ?", d)
	}
	if err := tx.Find(&rows).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, rows)
}

func (h *DepartmentHandler) CreatePosition(c echo.Context) error {
	var req struct {
		Title        string `json:"title"`
		DepartmentID *uint  `json:"department_id"`
		Description  string `json:"description"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "INVALID_PAYLOAD"})
	}
	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "MISSING_FIELDS"})
	}
	row := models.Position{Title: req.Title, DepartmentID: req.DepartmentID, Description: strings.TrimSpace(req.Description)}
	if err := database.DB.Create(&row).Error; err != nil {
		return c.JSON(http.StatusConflict, map[string]any{"error": "POSITION_EXISTS"})
	}
	logAudit(c, nil, "create", "positions", &row.ID, nil)
	return c.JSON(http.StatusCreated, row)
}

func (h *DepartmentHandler) DeletePosition(c echo.Context) error {
	var row models.Position
	if err := database.DB.First(&row, "id = ?", c.Param("id")).Error; err != nil {
		return c.JSON(http.StatusNotFound, map[string]any{"error": "POSITION_NOT_FOUND"})
	}
	if err := database.DB.Delete(&row).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": err.Error()})
	}
	logAudit(c, nil, "delete", "positions", &row.ID, nil)
	return c.JSON(http.StatusOK, map[string]any{"deleted": row.ID})
}
