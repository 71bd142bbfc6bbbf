package router

import (
	"github.com/gin-gonic/gin"
	swaggoFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "staffdesk/docs"
	"staffdesk/internal/domain"
	"staffdesk/internal/handler"
	"staffdesk/internal/middleware"
	"staffdesk/internal/service"
	"staffdesk/internal/ws"
)

// Handlers bundles the HTTP handlers wired into the engine.
type Handlers struct {
	Auth       *handler.AuthHandler
	User       *handler.UserHandler
	Employee   *handler.EmployeeHandler
	Attendance *handler.AttendanceHandler
	Salary     *handler.SalaryHandler
	Invoice    *handler.InvoiceHandler
	Product    *handler.ProductHandler
	Leave      *handler.LeaveHandler
	Reminder   *handler.ReminderHandler
	Location   *handler.LocationHandler
	Resume     *handler.ResumeHandler
	Health     *handler.HealthHandler
}

// Setup configures the Gin engine with all routes and middleware.
func Setup(authSvc service.AuthService, h Handlers, hub *ws.Hub, allowedOrigins []string) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(allowedOrigins))

	// Health checks
	r.GET("/healthz", h.Health.Liveness)
	r.GET("/readyz", h.Health.Readiness)

	// API documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggoFiles.Handler))

	v1 := r.Group("/api/v1")

	// Public auth routes
	auth := v1.Group("/auth")
	auth.POST("/login", h.Auth.Login)
	auth.POST("/refresh", h.Auth.Refresh)

	// Protected routes - require valid JWT
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(authSvc))

	protected.GET("/auth/me", h.Auth.Me)

	// Live dashboard feed
	protected.GET("/ws", hub.Serve)

	adminOnly := middleware.RequireRole(domain.RoleAdmin)

	// User management
	users := protected.Group("/users")
	users.POST("", adminOnly, h.User.Create)
	users.GET("", adminOnly, h.User.List)
	users.GET("/:id", h.User.GetByID)
	users.PUT("/:id", adminOnly, h.User.Update)
	users.DELETE("/:id", adminOnly, h.User.Delete)

	// Employee directory
	employees := protected.Group("/employees")
	employees.POST("", adminOnly, h.Employee.Create)
	employees.GET("", h.Employee.List)
	employees.GET("/:id", h.Employee.GetByID)
	employees.PUT("/:id", adminOnly, h.Employee.Update)
	employees.DELETE("/:id", adminOnly, h.Employee.Deactivate)

	// Attendance
	attendance := protected.Group("/attendance")
	attendance.GET("", adminOnly, h.Attendance.Day)
	attendance.POST("/mark", adminOnly, h.Attendance.Mark)
	attendance.POST("/:employee_id/check-in", h.Attendance.CheckIn)
	attendance.POST("/:employee_id/check-out", h.Attendance.CheckOut)
	attendance.GET("/:employee_id", h.Attendance.Month)
	attendance.GET("/:employee_id/export", h.Attendance.ExportMonth)

	// Salary
	salary := protected.Group("/salary")
	salary.POST("/slips", adminOnly, h.Salary.GenerateSlip)
	salary.PUT("/:employee_id/structure", adminOnly, h.Salary.SetStructure)
	salary.GET("/:employee_id/structure", h.Salary.GetStructure)
	salary.GET("/:employee_id/slips", h.Salary.ListSlips)
	salary.GET("/:employee_id/slips/url", h.Salary.SlipURL)

	// Invoices
	invoices := protected.Group("/invoices")
	invoices.POST("/extract", h.Invoice.Extract)
	invoices.POST("", h.Invoice.Generate)
	invoices.GET("", h.Invoice.List)
	invoices.GET("/export", adminOnly, h.Invoice.ExportCSV)
	invoices.GET("/:id", h.Invoice.GetByID)
	invoices.GET("/:id/pdf", h.Invoice.PDF)
	invoices.PATCH("/:id/status", h.Invoice.UpdateStatus)

	// Product catalog
	products := protected.Group("/products")
	products.POST("", adminOnly, h.Product.Create)
	products.GET("", h.Product.List)
	products.GET("/:id", h.Product.GetByID)
	products.PUT("/:id", adminOnly, h.Product.Update)
	products.DELETE("/:id", adminOnly, h.Product.Delete)

	// Leave management
	leave := protected.Group("/leave")
	leave.POST("", h.Leave.Request)
	leave.GET("/pending", adminOnly, h.Leave.ListPending)
	leave.POST("/:id/decide", adminOnly, h.Leave.Decide)
	leave.GET("/employee/:employee_id", h.Leave.ListByEmployee)

	// Reminders
	reminders := protected.Group("/reminders")
	reminders.POST("", h.Reminder.Create)
	reminders.GET("", h.Reminder.List)
	reminders.PUT("/:id", h.Reminder.Update)
	reminders.DELETE("/:id", h.Reminder.Delete)

	// Location tracking
	locations := protected.Group("/locations")
	locations.POST("", h.Location.RecordPing)
	locations.GET("", h.Location.Latest)
	locations.GET("/:employee_id", h.Location.History)
	locations.GET("/:employee_id/export", h.Location.Export)

	// Resumes
	resumes := protected.Group("/resumes")
	resumes.POST("", h.Resume.Upload)
	resumes.GET("", h.Resume.List)
	resumes.GET("/:id", h.Resume.GetByID)
	resumes.GET("/:id/url", h.Resume.URL)
	resumes.DELETE("/:id", adminOnly, h.Resume.Delete)

	return r
}
