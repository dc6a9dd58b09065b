package routes

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/kmpicazo/HR201System/config"
	"github.com/kmpicazo/HR201System/database"
	"github.com/kmpicazo/HR201System/models"
)

type nopStore struct{}

func (nopStore) Upload(context.Context, string, io.Reader, int64, string) error { return nil }
func (nopStore) PublicURL(key string) string { return "https://files.test/" + key }

type nopMailer struct{}

func (nopMailer) SendContractExpirationAlert(models.Employee) error    { return nil }
func (nopMailer) SendIncompleteFileAlert(models.Employee) error        { return nil }
func (nopMailer) SendUploadConfirmation(models.Employee, string) error { return nil }

func newServer(t *testing.T) *echo.Echo {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1)
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	database.DB = db
	t.Cleanup(func() { _ = sqlDB.Close() })

	cfg := &config.Config{JWTSecret: "test-secret", CronSecret: "cron-secret", Timezone: "UTC"}
	e := echo.New()
	Register(e, cfg, nopStore{}, nopMailer{})
	return e
}

// Full punch day through the public endpoint: time_in then time_out land on
// one attendance row; an inactive device is rejected with 404.
func TestPunchEndToEnd(t *testing.T) {
	e := newServer(t)

	employee := models.Employee{EmployeeCode: "E2E-1", FirstName: "Maria", LastName: "Santos", Role: "employee"}
	if err := database.DB.Create(&employee).Error; err != nil {
		t.Fatalf("seed employee: %v", err)
	}
	device := models.AttendanceDevice{DeviceID: "D1", DeviceName: "Gate", Status: models.DeviceActive}
	if err := database.DB.Create(&device).Error; err != nil {
		t.Fatalf("seed device: %v", err)
	}
	now := time.Now()
	enrollment := models.DeviceEmployee{
		DeviceID: device.ID, EmployeeID: employee.ID,
		EnrollmentStatus: models.EnrollmentEnrolled, EnrolledAt: &now,
	}
	if err := database.DB.Create(&enrollment).Error; err != nil {
		t.Fatalf("seed enrollment: %v", err)
	}

	post := func(deviceID, recordType string) *httptest.ResponseRecorder {
		body := fmt.Sprintf(`{"device_id":%q,"employee_id":%d,"record_type":%q,"confidence_score":97.5}`,
			deviceID, employee.ID, recordType)
		req := httptest.NewRequest(http.MethodPost, "/biometric/checkin", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		return rec
	}

	if rec := post("D1", models.PunchTimeIn); rec.Code != http.StatusCreated {
		t.Fatalf("time_in: expected 201, got %d (%s)", rec.Code, rec.Body.String())
	}
	if rec := post("D1", models.PunchTimeOut); rec.Code != http.StatusCreated {
		t.Fatalf("time_out: expected 201, got %d (%s)", rec.Code, rec.Body.String())
	}

	var attendances []models.Attendance
	if err := database.DB.Where("employee_id = ?", employee.ID).Find(&attendances).Error; err != nil {
		t.Fatalf("load attendance: %v", err)
	}
	if len(attendances) != 1 {
		t.Fatalf("expected one attendance row, got %d", len(attendances))
	}
	if attendances[0].TimeIn == nil || attendances[0].TimeOut == nil {
		t.Fatal("time_in and time_out should both be stamped")
	}

	// Inactive device.
	if err := database.DB.Model(&device).Update("status", models.DeviceInactive).Error; err != nil {
		t.Fatalf("deactivate device: %v", err)
	}
	rec := post("D1", models.PunchTimeIn)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("inactive device: expected 404, got %d", rec.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["error"] != "Device not found or inactive" {
		t.Fatalf("unexpected error message: %v", body["error"])
	}
}

func TestAdminRoutesRequireAuth(t *testing.T) {
	e := newServer(t)

	req := httptest.NewRequest(http.MethodGet, "/admin/employees", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", rec.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/cron/check-expiring-contracts", nil)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without cron secret, got %d", rec.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/cron/check-expiring-contracts", nil)
	req.Header.Set("Authorization", "Bearer cron-secret")
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 with cron secret, got %d (%s)", rec.Code, rec.Body.String())
	}
}
