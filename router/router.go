package router

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"

	"planilla-api/config/middleware"
	"planilla-api/handlers"
	"planilla-api/pkg/token"
	"planilla-api/repository"
)

// SetupRoutes wires repositories and handlers around the injected
// database pool and registers every route. The report and fortnight
// groups sit behind the bearer-token guard; auth, department and
// collaborator routes are open, as the original contract has it.
func SetupRoutes(app *fiber.App, db *sql.DB, maker *token.Maker) {
	userRepo := repository.NewUserRepository(db)
	deptRepo := repository.NewDepartmentRepository(db)
	collabRepo := repository.NewCollaboratorRepository(db)
	fortnightRepo := repository.NewFortnightRepository(db)
	reportRepo := repository.NewReportRepository(db)

	authHandler := handlers.NewAuthHandler(userRepo, maker)
	deptHandler := handlers.NewDepartmentHandler(deptRepo)
	collabHandler := handlers.NewCollaboratorHandler(collabRepo)
	fortnightHandler := handlers.NewFortnightHandler(fortnightRepo)
	reportHandler := handlers.NewReportHandler(reportRepo)

	// Health check: acquires a connection from the pool explicitly and
	// releases it after the probe query.
	app.Get("/", func(c *fiber.Ctx) error {
		conn, err := db.Conn(c.Context())
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Error connecting to the database"})
		}
		defer conn.Close()

		var now time.Time
		if err := conn.QueryRowContext(c.Context(), "SELECT NOW()").Scan(&now); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Error connecting to the database"})
		}

		return c.JSON(fiber.Map{"message": fmt.Sprintf("Payroll API running. Current time from DB: %s", now.Format(time.RFC3339))})
	})

	app.Get("/docs/*", swagger.HandlerDefault)

	authGroup := app.Group("/auth")
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	deptGroup := app.Group("/department")
	deptGroup.Get("/", deptHandler.GetDepartments)
	deptGroup.Post("/", deptHandler.CreateDepartment)
	deptGroup.Patch("/", deptHandler.SetSalary)
	deptGroup.Put("/", deptHandler.InsertEmployees)
	deptGroup.Get("/employee", deptHandler.GetEmployeeSalary)
	deptGroup.Patch("/employee", deptHandler.SetEmployeeSalary)
	deptGroup.Get("/employee/name", deptHandler.GetEmployeeName)
	deptGroup.Get("/totals", deptHandler.GetDepartmentTotals)
	deptGroup.Get("/all-employees", deptHandler.GetDepartmentEmployees)

	collabGroup := app.Group("/collaborator")
	collabGroup.Get("/", collabHandler.GetCollaboratorName)
	collabGroup.Get("/badge", collabHandler.GetCollaboratorBadge)

	reportGroup := app.Group("/report", middleware.AuthMiddleware(maker))
	reportGroup.Get("/detail", reportHandler.GetReportDetail)
	reportGroup.Get("/total", reportHandler.GetReportTotal)
	reportGroup.Get("/export", reportHandler.ExportReportDetail)

	fortnightGroup := app.Group("/fortnight", middleware.AuthMiddleware(maker))
	fortnightGroup.Post("/", fortnightHandler.InsertFortnight)
	fortnightGroup.Put("/", fortnightHandler.InsertNFortnights)
	fortnightGroup.Get("/schedule", fortnightHandler.Schedule)
	fortnightGroup.Get("/calculate", fortnightHandler.CalculateTax)
}
