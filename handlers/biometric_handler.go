package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/kmpicazo/HR201System/database"
	"github.com/kmpicazo/HR201System/models"
)

type BiometricHandler struct {
	loc *time.Location
}

func NewBiometricHandler(loc *time.Location) *BiometricHandler {
	if loc == nil {
		loc = time.UTC
	}
	return &BiometricHandler{loc: loc}
}

// punchColumns maps a record_type to the attendance column it stamps.
var punchColumns = map[string]string{
	models.PunchTimeIn:   "time_in",
	models.PunchLunchOut: "lunch_out",
	models.PunchLunchIn:  "lunch_in",
	models.PunchTimeOut:  "time_out",
}

type checkInPayload struct {
	DeviceID        string  `json:"device_id"`
	EmployeeID      uint    `json:"employee_id"`
	RecordType      string  `json:"record_type"`
	ConfidenceScore float64 `json:"confidence_score"`
}

// POST /biometric/checkin
//
// Records one scan from a terminal. The attendance row for (employee, today)
// is created on the first punch of the day via ON CONFLICT DO NOTHING plus a
// fetch, so two terminals racing on the same employee can never produce two
// rows. Punch insert and ledger field update commit in one transaction.
func (h *BiometricHandler) CheckIn(c echo.Context) error {
	var req checkInPayload
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "INVALID_PAYLOAD"})
	}
	req.DeviceID = strings.TrimSpace(req.DeviceID)
	if req.DeviceID == "" || req.EmployeeID == 0 {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "MISSING_FIELDS"})
	}
	column, ok := punchColumns[req.RecordType]
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "INVALID_RECORD_TYPE"})
	}

	var device models.AttendanceDevice
	if err := database.DB.
		Where("device_id = ? AND status = ?", req.DeviceID, models.DeviceActive).
		First(&device).Error; err != nil {
		return c.JSON(http.StatusNotFound, map[string]any{"error": "Device not found or inactive"})
	}

	var enrollment models.DeviceEmployee
	if err := database.DB.
		Where("device_id = ? AND employee_id = ? AND enrollment_status = ?",
			device.ID, req.EmployeeID, models.EnrollmentEnrolled).
		First(&enrollment).Error; err != nil {
		return c.JSON(http.StatusForbidden, map[string]any{"error": "Employee not enrolled on this device"})
	}

	now := time.Now().In(h.loc)
	today := now.Format("2006-01-02")

	var punch models.BiometricRecord
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		attendance := models.Attendance{
			EmployeeID: req.EmployeeID,
			Date:       today,
			Status:     models.AttendancePresent,
			Source:     models.SourceBiometric,
		}
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "employee_id"}, {Name: "date"}},
			DoNothing: true,
		}).Create(&attendance).Error; err != nil {
			return err
		}
		if attendance.ID == 0 {
			// Lost the insert race (or the row already existed): fetch it.
			if err := tx.Where("employee_id = ? AND date = ?", req.EmployeeID, today).
				First(&attendance).Error; err != nil {
				return err
			}
		}

		punch = models.BiometricRecord{
			DeviceID:        device.ID,
			EmployeeID:      req.EmployeeID,
			AttendanceID:    attendance.ID,
			RecordType:      req.RecordType,
			RecordedAt:      now,
			ConfidenceScore: req.ConfidenceScore,
		}
		if err := tx.Create(&punch).Error; err != nil {
			return err
		}

		// Last write wins per kind; no ordering validation across kinds.
		return tx.Model(&models.Attendance{}).
			Where("id = ?", attendance.ID).
			Update(column, now).Error
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": "CHECKIN_FAILED"})
	}

	return c.JSON(http.StatusCreated, punch)
}

type devicePayload struct {
	DeviceName string `json:"device_name"`
	DeviceID   string `json:"device_id"`
}

// POST /admin/biometric/devices
func (h *BiometricHandler) RegisterDevice(c echo.Context) error {
	var req devicePayload
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "INVALID_PAYLOAD"})
	}
	req.DeviceName = strings.TrimSpace(req.DeviceName)
	req.DeviceID = strings.TrimSpace(req.DeviceID)
	if req.DeviceName == "" || req.DeviceID == "" {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "MISSING_FIELDS"})
	}

	var dup models.AttendanceDevice
	if err := database.DB.Where("device_id = ?", req.DeviceID).First(&dup).Error; err == nil {
		return c.JSON(http.StatusConflict, map[string]any{"error": "DEVICE_EXISTS"})
	}

	userID, _ := c.Get("user_id").(uint)
	device := models.AttendanceDevice{
		DeviceID:     req.DeviceID,
		DeviceName:   req.DeviceName,
		Status:       models.DeviceActive,
		RegisteredBy: userID,
	}
	if err := database.DB.Create(&device).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": err.Error()})
	}
	logAudit(c, nil, "create", "attendance_devices", &device.ID, map[string]any{"device_id": device.DeviceID})
	return c.JSON(http.StatusCreated, device)
}

// GET /admin/biometric/devices
func (h *BiometricHandler) ListDevices(c echo.Context) error {
	var rows []models.AttendanceDevice
	if err := database.DB.Order("created_at DESC").Find(&rows).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, rows)
}

// PATCH /admin/biometric/devices/:id — flip status (active/inactive/suspended).
func (h *BiometricHandler) UpdateDeviceStatus(c echo.Context) error {
	var req struct {
		Status string `json:"status"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "INVALID_PAYLOAD"})
	}
	switch req.Status {
	case models.DeviceActive, models.DeviceInactive, models.DeviceSuspended:
	default:
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "INVALID_STATUS"})
	}
	var device models.AttendanceDevice
	if err := database.DB.First(&device, "id = ?", c.Param("id")).Error; err != nil {
		return c.JSON(http.StatusNotFound, map[string]any{"error": "DEVICE_NOT_FOUND"})
	}
	if err := database.DB.Model(&device).Update("status", req.Status).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": err.Error()})
	}
	logAudit(c, nil, "update", "attendance_devices", &device.ID, map[string]any{"status": req.Status})
	return c.JSON(http.StatusOK, device)
}

type enrollPayload struct {
	DeviceID          string `json:"device_id"`
	EmployeeID        uint   `json:"employee_id"`
	BiometricTemplate string `json:"biometric_template"`
	PIN               string `json:"pin"`
}

// POST /admin/biometric/enroll
//
// Upsert keyed on (device, employee): re-enrolling replaces the template and
// enrolled_at, it never duplicates the row.
func (h *BiometricHandler) Enroll(c echo.Context) error {
	var req enrollPayload
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "INVALID_PAYLOAD"})
	}
	req.DeviceID = strings.TrimSpace(req.DeviceID)
	if req.DeviceID == "" || req.EmployeeID == 0 || req.BiometricTemplate == "" {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "MISSING_FIELDS"})
	}

	var device models.AttendanceDevice
	if err := database.DB.Where("device_id = ?", req.DeviceID).First(&device).Error; err != nil {
		return c.JSON(http.StatusNotFound, map[string]any{"error": "Device not found"})
	}
	var employee models.Employee
	if err := database.DB.First(&employee, req.EmployeeID).Error; err != nil {
		return c.JSON(http.StatusNotFound, map[string]any{"error": "EMPLOYEE_NOT_FOUND"})
	}

	now := time.Now()
	enrollment := models.DeviceEmployee{
		DeviceID:          device.ID,
		EmployeeID:        req.EmployeeID,
		EnrollmentStatus:  models.EnrollmentEnrolled,
		BiometricTemplate: req.BiometricTemplate,
		PIN:               req.PIN,
		EnrolledAt:        &now,
	}
	err := database.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "device_id"}, {Name: "employee_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"enrollment_status", "biometric_template", "pin", "enrolled_at", "updated_at",
		}),
	}).Create(&enrollment).Error
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": err.Error()})
	}
	// Conflict path leaves the struct without the surviving row's PK; re-read.
	if err := database.DB.
		Where("device_id = ? AND employee_id = ?", device.ID, req.EmployeeID).
		First(&enrollment).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": err.Error()})
	}
	logAudit(c, &req.EmployeeID, "enroll", "device_employees", &enrollment.ID, nil)
	return c.JSON(http.StatusCreated, enrollment)
}

type employeeEnrollmentRow struct {
	models.Employee
	EnrollmentStatus string `json:"enrollment_status,omitempty"`
}

// GET /admin/biometric/employees?device_id=...
//
// Every role=employee 201 file, left-joined with the enrollment status on the
// given device. Employees never enrolled come back with an empty status.
func (h *BiometricHandler) ListEmployees(c echo.Context) error {
	deviceID := strings.TrimSpace(c.QueryParam("device_id"))

	var employees []models.Employee
	if err := database.DB.
		Where("role = ?", "employee").
		Order("last_name ASC, first_name ASC").
		Find(&employees).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": err.Error()})
	}

	statuses := map[uint]string{}
	if deviceID != "" {
		var device models.AttendanceDevice
		if err := database.DB.Where("device_id = ?", deviceID).First(&device).Error; err == nil {
			var enrollments []models.DeviceEmployee
			if err := database.DB.Where("device_id = ?", device.ID).Find(&enrollments).Error; err != nil {
				return c.JSON(http.StatusInternalServerError, map[string]any{"error": err.Error()})
			}
			for _, e := range enrollments {
				statuses[e.EmployeeID] = e.EnrollmentStatus
			}
		}
	}

	out := make([]employeeEnrollmentRow, 0, len(employees))
	for _, e := range employees {
		out = append(out, employeeEnrollmentRow{Employee: e, EnrollmentStatus: statuses[e.ID]})
	}
	return c.JSON(http.StatusOK, out)
}

// GET /hr/attendance?start=YYYY-MM-DD&end=YYYY-MM-DD&employee_id=
func (h *BiometricHandler) ListAttendance(c echo.Context) error {
	start := strings.TrimSpace(c.QueryParam("start"))
	end := strings.TrimSpace(c.QueryParam("end"))
	employeeID := strings.TrimSpace(c.QueryParam("employee_id"))

	tx := database.DB.Model(&models.Attendance{})
	if start != "" && end != "" {
		tx = tx.Where("date >= ? AND date <= ?", start, end)
	}
	if employeeID != "" {
		tx = tx.Where("employee_id = ?", employeeID)
	}

	var rows []models.Attendance
	if err := tx.Order("date ASC, id ASC").Find(&rows).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, rows)
}
