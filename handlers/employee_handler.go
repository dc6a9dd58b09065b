package handlers

import (
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm/clause"

	"github.com/kmpicazo/HR201System/database"
	"github.com/kmpicazo/HR201System/models"
)

type EmployeeHandler struct{}

func NewEmployeeHandler() *EmployeeHandler { return &EmployeeHandler{} }

var validate = validator.New()

type employeePayload struct {
	EmployeeCode string `json:"employee_code" validate:"required,max=20"`
	FirstName    string `json:"first_name" validate:"required,max=50"`
	MiddleName   string `json:"middle_name" validate:"max=50"`
	LastName     string `json:"last_name" validate:"required,max=50"`
	Email        string `json:"email" validate:"omitempty,email"`
	Phone        string `json:"phone" validate:"max=20"`
	Address      string `json:"address"`
	BirthDate    string `json:"birth_date" validate:"omitempty,datetime=2006-01-02"`

	Position   string `json:"position" validate:"max=80"`
	Department string `json:"department" validate:"max=80"`

	EmploymentType   string `json:"employment_type" validate:"omitempty,oneof=Regular Probationary Contractual"`
	EmploymentStatus string `json:"employment_status" validate:"omitempty,oneof=Active Resigned Terminated"`
	DateHired        string `json:"date_hired" validate:"omitempty,datetime=2006-01-02"`
	ContractEndDate  string `json:"contract_end_date" validate:"omitempty,datetime=2006-01-02"`

	ProfilePhotoURL string `json:"profile_photo_url"`
}

func (p *employeePayload) normalize() {
	p.EmployeeCode = strings.TrimSpace(p.EmployeeCode)
	p.FirstName = strings.Join(strings.Fields(p.FirstName), " ")
	p.MiddleName = strings.Join(strings.Fields(p.MiddleName), " ")
	p.LastName = strings.Join(strings.Fields(p.LastName), " ")
	p.Email = strings.TrimSpace(strings.ToLower(p.Email))
	p.Phone = strings.TrimSpace(p.Phone)
	p.Address = strings.TrimSpace(p.Address)
	p.Position = strings.TrimSpace(p.Position)
	p.Department = strings.TrimSpace(p.Department)
}

func (p *employeePayload) apply(e *models.Employee) {
	e.EmployeeCode = p.EmployeeCode
	e.FirstName = p.FirstName
	e.MiddleName = p.MiddleName
	e.LastName = p.LastName
	e.Email = p.Email
	e.Phone = p.Phone
	e.Address = p.Address
	e.BirthDate = p.BirthDate
	e.Position = p.Position
	e.Department = p.Department
	e.EmploymentType = p.EmploymentType
	if p.EmploymentStatus != "" {
		e.EmploymentStatus = p.EmploymentStatus
	}
	e.DateHired = p.DateHired
	e.ContractEndDate = p.ContractEndDate
	e.ProfilePhotoURL = p.ProfilePhotoURL
}

// GET /admin/employees?q=&department=&status=&page=&limit=
func (h *EmployeeHandler) List(c echo.Context) error {
	q := strings.TrimSpace(c.QueryParam("q"))
	department := strings.TrimSpace(c.QueryParam("department"))
	status := strings.TrimSpace(c.QueryParam("status"))
	page := atoiOr(c.QueryParam("page"), 1)
	limit := atoiOr(c.QueryParam("limit"), 50)
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 200 {
		limit = 50
	}

	tx := database.DB.Model(&models.Employee{})
	if q != "" {
		like := "%" + strings.ToLower(q) + "%"
		tx = tx.Where(
			"LOWER(employee_code) LIKE ? OR LOWER(first_name) LIKE ? OR LOWER(last_name) LIKE ?",
			like, like, like,
		)
	}
	if department != "" {
		tx = tx.Where("department = ?", department)
	}
	if status != "" {
		tx = tx.Where("employment_status = ?", status)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": err.Error()})
	}

	var rows []models.Employee
	if err := tx.Order("last_name ASC, first_name ASC").
		Offset((page - 1) * limit).Limit(limit).
		Find(&rows).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]any{"total": total, "items": rows})
}

// GET /admin/employees/:id — full 201 file with nested records.
func (h *EmployeeHandler) Get(c echo.Context) error {
	var e models.Employee
	if err := database.DB.
		Preload("GovernmentInfo").
		Preload("EmploymentRecord").
		Preload("Compensation").
		First(&e, "id = ?", c.Param("id")).Error; err != nil {
		return c.JSON(http.StatusNotFound, map[string]any{"error": "EMPLOYEE_NOT_FOUND"})
	}
	return c.JSON(http.StatusOK, e)
}

// POST /admin/employees
func (h *EmployeeHandler) Create(c echo.Context) error {
	var req employeePayload
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "INVALID_PAYLOAD"})
	}
	req.normalize()
	if err := validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "VALIDATION_FAILED", "detail": err.Error()})
	}

	var dup models.Employee
	if err := database.DB.Where("employee_code = ?", req.EmployeeCode).First(&dup).Error; err == nil {
		return c.JSON(http.StatusConflict, map[string]any{"error": "EMPLOYEE_CODE_EXISTS"})
	}

	var e models.Employee
	req.apply(&e)
	e.Role = "employee"
	if e.EmploymentStatus == "" {
		e.EmploymentStatus = "Active"
	}
	if err := database.DB.Create(&e).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": err.Error()})
	}
	logAudit(c, &e.ID, "create", "employees", &e.ID, map[string]any{"employee_code": e.EmployeeCode})
	return c.JSON(http.StatusCreated, e)
}

// PUT /admin/employees/:id
func (h *EmployeeHandler) Update(c echo.Context) error {
	var e models.Employee
	if err := database.DB.First(&e, "id = ?", c.Param("id")).Error; err != nil {
		return c.JSON(http.StatusNotFound, map[string]any{"error": "EMPLOYEE_NOT_FOUND"})
	}

	var req employeePayload
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "INVALID_PAYLOAD"})
	}
	req.normalize()
	if err := validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "VALIDATION_FAILED", "detail": err.Error()})
	}
	if req.EmployeeCode != e.EmployeeCode {
		var dup models.Employee
		if err := database.DB.Where("employee_code = ?", req.EmployeeCode).First(&dup).Error; err == nil {
			return c.JSON(http.StatusConflict, map[string]any{"error": "EMPLOYEE_CODE_EXISTS"})
		}
	}

	req.apply(&e)
	if err := database.DB.Save(&e).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": err.Error()})
	}
	logAudit(c, &e.ID, "update", "employees", &e.ID, nil)
	return c.JSON(http.StatusOK, e)
}

// DELETE /admin/employees/:id
func (h *EmployeeHandler) Delete(c echo.Context) error {
	var e models.Employee
	if err := database.DB.First(&e, "id = ?", c.Param("id")).Error; err != nil {
		return c.JSON(http.StatusNotFound, map[string]any{"error": "EMPLOYEE_NOT_FOUND"})
	}
	if err := database.DB.Delete(&e).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": err.Error()})
	}
	logAudit(c, &e.ID, "delete", "employees", &e.ID, nil)
	return c.JSON(http.StatusOK, map[string]any{"deleted": e.ID})
}

// PUT /admin/employees/:id/government — upsert keyed on employee.
func (h *EmployeeHandler) UpsertGovernmentInfo(c echo.Context) error {
	id, ok := parseUint(c.Param("id"))
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "INVALID_ID"})
	}
	var e models.Employee
	if err := database.DB.First(&e, id).Error; err != nil {
		return c.JSON(http.StatusNotFound, map[string]any{"error": "EMPLOYEE_NOT_FOUND"})
	}

	var req struct {
		SSSNumber  string `json:"sss_number"`
		PhilHealth string `json:"philhealth_number"`
		PagIbig    string `json:"pagibig_number"`
		TIN        string `json:"tin"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "INVALID_PAYLOAD"})
	}

	row := models.GovernmentInfo{
		EmployeeID: id,
		SSSNumber:  strings.TrimSpace(req.SSSNumber),
		PhilHealth: strings.TrimSpace(req.PhilHealth),
		PagIbig:    strings.TrimSpace(req.PagIbig),
		TIN:        strings.TrimSpace(req.TIN),
	}
	err := database.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "employee_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"sss_number", "phil_health", "pag_ibig", "tin", "updated_at"}),
	}).Create(&row).Error
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": err.Error()})
	}
	logAudit(c, &id, "upsert", "government_infos", &row.ID, nil)
	return c.JSON(http.StatusOK, row)
}

// PUT /admin/employees/:id/employment — upsert keyed on employee.
func (h *EmployeeHandler) UpsertEmploymentRecord(c echo.Context) error {
	id, ok := parseUint(c.Param("id"))
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "INVALID_ID"})
	}
	var e models.Employee
	if err := database.DB.First(&e, id).Error; err != nil {
		return c.JSON(http.StatusNotFound, map[string]any{"error": "EMPLOYEE_NOT_FOUND"})
	}

	var req struct {
		JobLevel     string `json:"job_level"`
		WorkSchedule string `json:"work_schedule"`
		WorkLocation string `json:"work_location"`
		Supervisor   string `json:"supervisor"`
		Remarks      string `json:"remarks"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "INVALID_PAYLOAD"})
	}

	row := models.EmploymentRecord{
		EmployeeID:   id,
		JobLevel:     strings.TrimSpace(req.JobLevel),
		WorkSchedule: strings.TrimSpace(req.WorkSchedule),
		WorkLocation: strings.TrimSpace(req.WorkLocation),
		Supervisor:   strings.TrimSpace(req.Supervisor),
		Remarks:      strings.TrimSpace(req.Remarks),
	}
	err := database.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "employee_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"job_level", "work_schedule", "work_location", "supervisor", "remarks", "updated_at"}),
	}).Create(&row).Error
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": err.Error()})
	}
	logAudit(c, &id, "upsert", "employment_records", &row.ID, nil)
	return c.JSON(http.StatusOK, row)
}

// PUT /admin/employees/:id/compensation — upsert keyed on employee.
func (h *EmployeeHandler) UpsertCompensation(c echo.Context) error {
	id, ok := parseUint(c.Param("id"))
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "INVALID_ID"})
	}
	var e models.Employee
	if err := database.DB.First(&e, id).Error; err != nil {
		return c.JSON(http.StatusNotFound, map[string]any{"error": "EMPLOYEE_NOT_FOUND"})
	}

	var req struct {
		BasicSalary   float64 `json:"basic_salary"`
		PayFrequency  string  `json:"pay_frequency"`
		BankName      string  `json:"bank_name"`
		BankAccountNo string  `json:"bank_account_no"`
		Allowances    float64 `json:"allowances"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "INVALID_PAYLOAD"})
	}

	row := models.Compensation{
		EmployeeID:    id,
		BasicSalary:   req.BasicSalary,
		PayFrequency:  strings.TrimSpace(req.PayFrequency),
		BankName:      strings.TrimSpace(req.BankName),
		BankAccountNo: strings.TrimSpace(req.BankAccountNo),
		Allowances:    req.Allowances,
	}
	err := database.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "employee_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"basic_salary", "pay_frequency", "bank_name", "bank_account_no", "allowances", "updated_at"}),
	}).Create(&row).Error
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": err.Error()})
	}
	logAudit(c, &id, "upsert", "compensations", &row.ID, nil)
	return c.JSON(http.StatusOK, row)
}

// incompleteFile reports whether the 201 file lacks any of the three nested
// records; used by the cron sweep and the dashboard.
func incompleteFile(e *models.Employee) bool {
	return e.GovernmentInfo == nil || e.EmploymentRecord == nil || e.Compensation == nil
}
