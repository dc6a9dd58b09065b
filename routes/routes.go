package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/kmpicazo/HR201System/config"
	"github.com/kmpicazo/HR201System/handlers"
	"github.com/kmpicazo/HR201System/mailer"
	"github.com/kmpicazo/HR201System/middlewares"
	"github.com/kmpicazo/HR201System/storage"
)

// Register wires all HTTP routes.
func Register(e *echo.Echo, cfg *config.Config, store storage.Store, m mailer.Mailer) {
	loc := cfg.Location()

	auth := handlers.NewAuthHandler(cfg.JWTSecret)
	bio := handlers.NewBiometricHandler(loc)
	emp := handlers.NewEmployeeHandler()
	dep := handlers.NewDepartmentHandler()
	doc := handlers.NewDocumentHandler(store, m)
	comp := handlers.NewComplianceHandler()
	rec := handlers.NewRecruitmentHandler()
	cron := handlers.NewCronHandler(m, loc)
	dash := handlers.NewDashboardHandler(loc)

	// ===== Public =====
	e.POST("/auth/staff/login", auth.StaffLogin)

	// Terminals authenticate by device registration + enrollment, not JWT.
	e.POST("/biometric/checkin", bio.CheckIn)

	// ===== Scheduler =====
	cronGroup := e.Group("/cron", middlewares.RequireCronSecret(cfg.CronSecret))
	cronGroup.GET("/check-expiring-contracts", cron.CheckExpiringContracts)
	cronGroup.GET("/check-incomplete-files", cron.CheckIncompleteFiles)

	authMW := middlewares.RequireAuth(cfg.JWTSecret)

	// ===== HR staff (any authenticated role) =====
	hr := e.Group("/hr", authMW)
	hr.GET("/dashboard", dash.Summary)
	hr.GET("/attendance", bio.ListAttendance)
	hr.POST("/documents", doc.Upload)
	hr.GET("/employees/:id/documents", doc.ListForEmployee)

	// ===== Admin =====
	admin := e.Group("/admin", authMW, middlewares.RequireRole("hr_admin"))

	// 201 files
	admin.GET("/employees", emp.List)
	admin.POST("/employees", emp.Create)
	admin.GET("/employees/:id", emp.Get)
	admin.PUT("/employees/:id", emp.Update)
	admin.DELETE("/employees/:id", emp.Delete)
	admin.PUT("/employees/:id/government", emp.UpsertGovernmentInfo)
	admin.PUT("/employees/:id/employment", emp.UpsertEmploymentRecord)
	admin.PUT("/employees/:id/compensation", emp.UpsertCompensation)

	// Reference lists
	admin.GET("/departments", dep.ListDepartments)
	admin.POST("/departments", dep.CreateDepartment)
	admin.DELETE("/departments/:id", dep.DeleteDepartment)
	admin.GET("/positions", dep.ListPositions)
	admin.POST("/positions", dep.CreatePosition)
	admin.DELETE("/positions/:id", dep.DeletePosition)

	// Biometric administration
	admin.GET("/biometric/devices", bio.ListDevices)
	admin.POST("/biometric/devices", bio.RegisterDevice)
	admin.PATCH("/biometric/devices/:id", bio.UpdateDeviceStatus)
	admin.POST("/biometric/enroll", bio.Enroll)
	admin.GET("/biometric/employees", bio.ListEmployees)

	// Compliance
	admin.GET("/compliance/policies", comp.ListPolicies)
	admin.POST("/compliance/policies", comp.CreatePolicy)
	admin.PUT("/compliance/policies/:id", comp.UpdatePolicy)
	admin.DELETE("/compliance/policies/:id", comp.DeletePolicy)
	admin.GET("/compliance/audits", comp.ListAudits)
	admin.POST("/compliance/audits", comp.CreateAudit)
	admin.PATCH("/compliance/audits/:id", comp.UpdateAudit)
	admin.GET("/audit-logs", comp.ListAuditLogs)

	// Recruitment
	admin.GET("/recruitment/postings", rec.ListPostings)
	admin.POST("/recruitment/postings", rec.CreatePosting)
	admin.PATCH("/recruitment/postings/:id", rec.UpdatePosting)
	admin.GET("/recruitment/candidates", rec.ListCandidates)
	admin.POST("/recruitment/candidates", rec.CreateCandidate)
	admin.PATCH("/recruitment/candidates/:id", rec.UpdateCandidate)
}
