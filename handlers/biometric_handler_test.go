package handlers

import (
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/kmpicazo/HR201System/database"
	"github.com/kmpicazo/HR201System/models"
)

func seedDeviceAndEmployee(t *testing.T, deviceStatus, enrollmentStatus string) (models.AttendanceDevice, models.Employee) {
	t.Helper()
	employee := models.Employee{
		EmployeeCode: "EMP-001",
		FirstName:    "Maria",
		LastName:     "Santos",
		Role:         "employee",
	}
	if err := database.DB.Create(&employee).Error; err != nil {
		t.Fatalf("seed employee: %v", err)
	}
	device := models.AttendanceDevice{
		DeviceID:   "D1",
		DeviceName: "Main Entrance",
		Status:     deviceStatus,
	}
	if err := database.DB.Create(&device).Error; err != nil {
		t.Fatalf("seed device: %v", err)
	}
	if enrollmentStatus != "" {
		now := time.Now()
		enrollment := models.DeviceEmployee{
			DeviceID:          device.ID,
			EmployeeID:        employee.ID,
			EnrollmentStatus:  enrollmentStatus,
			BiometricTemplate: "dGVtcGxhdGU=",
			EnrolledAt:        &now,
		}
		if err := database.DB.Create(&enrollment).Error; err != nil {
			t.Fatalf("seed enrollment: %v", err)
		}
	}
	return device, employee
}

func punch(t *testing.T, h *BiometricHandler, deviceID string, employeeID uint, recordType string) (int, models.BiometricRecord) {
	t.Helper()
	c, rec := newJSONContext(t, http.MethodPost, "/biometric/checkin", map[string]any{
		"device_id":        deviceID,
		"employee_id":      employeeID,
		"record_type":      recordType,
		"confidence_score": 98.7,
	})
	if err := h.CheckIn(c); err != nil {
		t.Fatalf("CheckIn returned error: %v", err)
	}
	var out models.BiometricRecord
	if rec.Code == http.StatusCreated {
		decodeBody(t, rec, &out)
	}
	return rec.Code, out
}

func TestCheckInUnknownDeviceCreatesNothing(t *testing.T) {
	setupDB(t)
	_, employee := seedDeviceAndEmployee(t, models.DeviceActive, models.EnrollmentEnrolled)

	code, _ := punch(t, NewBiometricHandler(time.UTC), "NOPE", employee.ID, models.PunchTimeIn)
	if code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown device, got %d", code)
	}

	var attendances, punches int64
	database.DB.Model(&models.Attendance{}).Count(&attendances)
	database.DB.Model(&models.BiometricRecord{}).Count(&punches)
	if attendances != 0 || punches != 0 {
		t.Fatalf("rejected punch wrote rows: %d attendances, %d punches", attendances, punches)
	}
}

func TestCheckInInactiveDeviceRejected(t *testing.T) {
	setupDB(t)
	device, employee := seedDeviceAndEmployee(t, models.DeviceInactive, models.EnrollmentEnrolled)

	c, rec := newJSONContext(t, http.MethodPost, "/biometric/checkin", map[string]any{
		"device_id":   device.DeviceID,
		"employee_id": employee.ID,
		"record_type": models.PunchTimeIn,
	})
	if err := NewBiometricHandler(time.UTC).CheckIn(c); err != nil {
		t.Fatalf("CheckIn returned error: %v", err)
	}
	wantStatus(t, rec, http.StatusNotFound)

	var body map[string]any
	decodeBody(t, rec, &body)
	if body["error"] != "Device not found or inactive" {
		t.Fatalf("unexpected error message: %v", body["error"])
	}
}

func TestCheckInNotEnrolledRejected(t *testing.T) {
	setupDB(t)
	device, employee := seedDeviceAndEmployee(t, models.DeviceActive, models.EnrollmentPending)

	code, _ := punch(t, NewBiometricHandler(time.UTC), device.DeviceID, employee.ID, models.PunchTimeIn)
	if code != http.StatusForbidden {
		t.Fatalf("expected 403 for pending enrollment, got %d", code)
	}

	var attendances int64
	database.DB.Model(&models.Attendance{}).Count(&attendances)
	if attendances != 0 {
		t.Fatalf("rejected punch created %d attendance rows", attendances)
	}
}

func TestCheckInUnknownRecordTypeRejected(t *testing.T) {
	setupDB(t)
	device, employee := seedDeviceAndEmployee(t, models.DeviceActive, models.EnrollmentEnrolled)

	code, _ := punch(t, NewBiometricHandler(time.UTC), device.DeviceID, employee.ID, "coffee_break")
	if code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown record type, got %d", code)
	}
}

func TestCheckInCreatesLedgerAndStampsFields(t *testing.T) {
	setupDB(t)
	device, employee := seedDeviceAndEmployee(t, models.DeviceActive, models.EnrollmentEnrolled)
	h := NewBiometricHandler(time.UTC)

	code, first := punch(t, h, device.DeviceID, employee.ID, models.PunchTimeIn)
	if code != http.StatusCreated {
		t.Fatalf("time_in punch: expected 201, got %d", code)
	}
	if first.AttendanceID == 0 {
		t.Fatal("punch not linked to an attendance row")
	}

	code, second := punch(t, h, device.DeviceID, employee.ID, models.PunchTimeOut)
	if code != http.StatusCreated {
		t.Fatalf("time_out punch: expected 201, got %d", code)
	}
	if second.AttendanceID != first.AttendanceID {
		t.Fatalf("punches landed on different attendance rows: %d vs %d", first.AttendanceID, second.AttendanceID)
	}

	var att models.Attendance
	if err := database.DB.First(&att, first.AttendanceID).Error; err != nil {
		t.Fatalf("load attendance: %v", err)
	}
	if att.Status != models.AttendancePresent || att.Source != models.SourceBiometric {
		t.Fatalf("unexpected status/source: %s/%s", att.Status, att.Source)
	}
	if att.TimeIn == nil || att.TimeOut == nil {
		t.Fatal("time_in and time_out should both be set")
	}
	if att.LunchOut != nil || att.LunchIn != nil {
		t.Fatal("lunch fields should remain unset")
	}
}

func TestCheckInSameKindOverwrites(t *testing.T) {
	setupDB(t)
	device, employee := seedDeviceAndEmployee(t, models.DeviceActive, models.EnrollmentEnrolled)
	h := NewBiometricHandler(time.UTC)

	punch(t, h, device.DeviceID, employee.ID, models.PunchTimeIn)

	var att models.Attendance
	if err := database.DB.First(&att, "employee_id = ?", employee.ID).Error; err != nil {
		t.Fatalf("load attendance: %v", err)
	}
	firstStamp := *att.TimeIn

	time.Sleep(10 * time.Millisecond)
	punch(t, h, device.DeviceID, employee.ID, models.PunchTimeIn)

	if err := database.DB.First(&att, att.ID).Error; err != nil {
		t.Fatalf("reload attendance: %v", err)
	}
	if !att.TimeIn.After(firstStamp) {
		t.Fatalf("second time_in did not overwrite: %v vs %v", firstStamp, *att.TimeIn)
	}

	var punches int64
	database.DB.Model(&models.BiometricRecord{}).Count(&punches)
	if punches != 2 {
		t.Fatalf("punch log should be append-only: want 2 rows, got %d", punches)
	}
}

func TestConcurrentPunchesOneAttendanceRow(t *testing.T) {
	setupDB(t)
	device, employee := seedDeviceAndEmployee(t, models.DeviceActive, models.EnrollmentEnrolled)
	h := NewBiometricHandler(time.UTC)

	const n = 8
	kinds := []string{models.PunchTimeIn, models.PunchLunchOut, models.PunchLunchIn, models.PunchTimeOut}
	var wg sync.WaitGroup
	codes := make([]int, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			c, rec := newJSONContext(t, http.MethodPost, "/biometric/checkin", map[string]any{
				"device_id":   device.DeviceID,
				"employee_id": employee.ID,
				"record_type": kinds[i%len(kinds)],
			})
			if err := h.CheckIn(c); err == nil {
				codes[i] = rec.Code
			}
		}(i)
	}
	wg.Wait()

	for i, code := range codes {
		if code != http.StatusCreated {
			t.Fatalf("punch %d: expected 201, got %d", i, code)
		}
	}

	var attendances int64
	database.DB.Model(&models.Attendance{}).
		Where("employee_id = ?", employee.ID).
		Count(&attendances)
	if attendances != 1 {
		t.Fatalf("uniqueness invariant broken: %d attendance rows for one employee/day", attendances)
	}

	var punches int64
	database.DB.Model(&models.BiometricRecord{}).Count(&punches)
	if punches != n {
		t.Fatalf("expected %d punch rows, got %d", n, punches)
	}
}

func TestRegisterDeviceAndDuplicate(t *testing.T) {
	setupDB(t)
	h := NewBiometricHandler(time.UTC)

	c, rec := newJSONContext(t, http.MethodPost, "/admin/biometric/devices", map[string]any{
		"device_name": "Lobby Scanner",
		"device_id":   "LBY-01",
	})
	asAdmin(c)
	if err := h.RegisterDevice(c); err != nil {
		t.Fatalf("RegisterDevice: %v", err)
	}
	wantStatus(t, rec, http.StatusCreated)

	var out models.AttendanceDevice
	decodeBody(t, rec, &out)
	if out.Status != models.DeviceActive {
		t.Fatalf("new device should default to active, got %q", out.Status)
	}
	if out.RegisteredBy != 1 {
		t.Fatalf("registered_by should be the caller, got %d", out.RegisteredBy)
	}

	c2, rec2 := newJSONContext(t, http.MethodPost, "/admin/biometric/devices", map[string]any{
		"device_name": "Lobby Scanner B",
		"device_id":   "LBY-01",
	})
	asAdmin(c2)
	if err := h.RegisterDevice(c2); err != nil {
		t.Fatalf("RegisterDevice dup: %v", err)
	}
	wantStatus(t, rec2, http.StatusConflict)
}

func TestEnrollTwiceIsUpsert(t *testing.T) {
	setupDB(t)
	device, employee := seedDeviceAndEmployee(t, models.DeviceActive, "")
	h := NewBiometricHandler(time.UTC)

	enroll := func(template string) {
		c, rec := newJSONContext(t, http.MethodPost, "/admin/biometric/enroll", map[string]any{
			"device_id":          device.DeviceID,
			"employee_id":        employee.ID,
			"biometric_template": template,
		})
		asAdmin(c)
		if err := h.Enroll(c); err != nil {
			t.Fatalf("Enroll: %v", err)
		}
		wantStatus(t, rec, http.StatusCreated)
	}

	enroll("template-one")
	var first models.DeviceEmployee
	if err := database.DB.First(&first, "device_id = ? AND employee_id = ?", device.ID, employee.ID).Error; err != nil {
		t.Fatalf("load enrollment: %v", err)
	}
	firstEnrolledAt := *first.EnrolledAt

	time.Sleep(10 * time.Millisecond)
	enroll("template-two")

	var rows []models.DeviceEmployee
	if err := database.DB.Where("device_id = ? AND employee_id = ?", device.ID, employee.ID).Find(&rows).Error; err != nil {
		t.Fatalf("load enrollments: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("re-enrolling duplicated the row: got %d rows", len(rows))
	}
	if rows[0].BiometricTemplate != "template-two" {
		t.Fatalf("template not replaced: %q", rows[0].BiometricTemplate)
	}
	if !rows[0].EnrolledAt.After(firstEnrolledAt) {
		t.Fatalf("enrolled_at not refreshed: %v vs %v", firstEnrolledAt, *rows[0].EnrolledAt)
	}
	if rows[0].EnrollmentStatus != models.EnrollmentEnrolled {
		t.Fatalf("unexpected enrollment status %q", rows[0].EnrollmentStatus)
	}
}

func TestEnrollUnknownDevice(t *testing.T) {
	setupDB(t)
	_, employee := seedDeviceAndEmployee(t, models.DeviceActive, "")
	h := NewBiometricHandler(time.UTC)

	c, rec := newJSONContext(t, http.MethodPost, "/admin/biometric/enroll", map[string]any{
		"device_id":          "GHOST",
		"employee_id":        employee.ID,
		"biometric_template": "tpl",
	})
	asAdmin(c)
	if err := h.Enroll(c); err != nil {
		t.Fatalf("Enroll: %v", err)
	}
	wantStatus(t, rec, http.StatusNotFound)
}

func TestListEmployeesWithEnrollmentStatus(t *testing.T) {
	setupDB(t)
	device, enrolled := seedDeviceAndEmployee(t, models.DeviceActive, models.EnrollmentEnrolled)

	stranger := models.Employee{EmployeeCode: "EMP-002", FirstName: "Jose", LastName: "Cruz", Role: "employee"}
	if err := database.DB.Create(&stranger).Error; err != nil {
		t.Fatalf("seed second employee: %v", err)
	}

	h := NewBiometricHandler(time.UTC)
	c, rec := newJSONContext(t, http.MethodGet, "/admin/biometric/employees?device_id="+device.DeviceID, nil)
	asAdmin(c)
	if err := h.ListEmployees(c); err != nil {
		t.Fatalf("ListEmployees: %v", err)
	}
	wantStatus(t, rec, http.StatusOK)

	var rows []employeeEnrollmentRow
	decodeBody(t, rec, &rows)
	if len(rows) != 2 {
		t.Fatalf("expected 2 employees, got %d", len(rows))
	}
	byCode := map[string]string{}
	for _, r := range rows {
		byCode[r.EmployeeCode] = r.EnrollmentStatus
	}
	if byCode[enrolled.EmployeeCode] != models.EnrollmentEnrolled {
		t.Fatalf("enrolled employee missing status: %v", byCode)
	}
	if byCode[stranger.EmployeeCode] != "" {
		t.Fatalf("unenrolled employee should carry no status, got %q", byCode[stranger.EmployeeCode])
	}
}
