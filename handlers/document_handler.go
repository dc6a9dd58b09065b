package handlers

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/kmpicazo/HR201System/database"
	"github.com/kmpicazo/HR201System/mailer"
	"github.com/kmpicazo/HR201System/models"
	"github.com/kmpicazo/HR201System/storage"
)

type DocumentHandler struct {
	store  storage.Store
	mailer mailer.Mailer
}

func NewDocumentHandler(store storage.Store, m mailer.Mailer) *DocumentHandler {
	return &DocumentHandler{store: store, mailer: m}
}

// POST /hr/documents — multipart: file, employee_id, file_type.
//
// Bytes go to object storage under employeeID/fileType/<ts>-<name>; the
// metadata row keeps the key and public URL. The confirmation mail to the
// employee is fire-and-forget.
func (h *DocumentHandler) Upload(c echo.Context) error {
	employeeID, ok := parseUint(strings.TrimSpace(c.FormValue("employee_id")))
	if !ok || employeeID == 0 {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "MISSING_FIELDS"})
	}
	fileType := strings.TrimSpace(c.FormValue("file_type"))
	fileHeader, err := c.FormFile("file")
	if err != nil || fileType == "" {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "MISSING_FIELDS"})
	}

	var employee models.Employee
	if err := database.DB.First(&employee, employeeID).Error; err != nil {
		return c.JSON(http.StatusNotFound, map[string]any{"error": "EMPLOYEE_NOT_FOUND"})
	}

	src, err := fileHeader.Open()
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "INVALID_FILE"})
	}
	defer src.Close()

	name := filepath.Base(fileHeader.Filename)
	key := fmt.Sprintf("%d/%s/%d-%s", employeeID, fileType, time.Now().UnixMilli(), name)
	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	if err := h.store.Upload(c.Request().Context(), key, src, fileHeader.Size, contentType); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": "UPLOAD_FAILED"})
	}

	userID, _ := c.Get("user_id").(uint)
	doc := models.Document{
		PublicID:   uuid.NewString(),
		EmployeeID: employeeID,
		FileType:   fileType,
		FileName:   name,
		StorageKey: key,
		URL:        h.store.PublicURL(key),
		UploadedBy: userID,
	}
	if err := database.DB.Create(&doc).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": err.Error()})
	}

	logAudit(c, &employeeID, "upload", "documents", &doc.ID, map[string]any{"file_type": fileType})
	if h.mailer != nil {
		go func(e models.Employee, ft string) {
			_ = h.mailer.SendUploadConfirmation(e, ft)
		}(employee, fileType)
	}

	return c.JSON(http.StatusCreated, doc)
}

// GET /hr/employees/:id/documents
func (h *DocumentHandler) ListForEmployee(c echo.Context) error {
	id, ok := parseUint(c.Param("id"))
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "INVALID_ID"})
	}
	var rows []models.Document
	if err := database.DB.Where("employee_id = ?", id).Order("created_at DESC").Find(&rows).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, rows)
}
