package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"planilla-api/models"
	"planilla-api/pkg/logger"
	"planilla-api/pkg/params"
	"planilla-api/pkg/pgcode"
	"planilla-api/repository"
)

type DepartmentHandler struct {
	deptRepo repository.DepartmentRepository
}

func NewDepartmentHandler(deptRepo repository.DepartmentRepository) *DepartmentHandler {
	return &DepartmentHandler{
		deptRepo: deptRepo,
	}
}

// GetDepartments godoc
// @Summary List departments
// @Description Lists all departments, optionally restricted to the ones a collaborator belongs to
// @Tags Departments
// @Produce json
// @Param cardID query int false "Collaborator card ID filter"
// @Success 200 {array} models.Row "Department rows"
// @Failure 400 {object} object{message=string} "Invalid card ID"
// @Failure 500 {object} object{message=string} "Server error"
// @Router /department [get]
func (h *DepartmentHandler) GetDepartments(c *fiber.Ctx) error {
	cardID, err := params.NullableInt(c.Query("cardID"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "cardID must be a number"})
	}
	if cardID != nil && *cardID == 0 {
		cardID = nil
	}

	departments, err := h.deptRepo.GetDepartments(c.Context(), cardID)
	if err != nil {
		logger.Error(c.Path(), err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Error getting departments"})
	}

	return c.Status(fiber.StatusOK).JSON(departments)
}

// CreateDepartment godoc
// @Summary Create a department
// @Description Creates a department with a unique name
// @Tags Departments
// @Accept json
// @Produce json
// @Param department body models.DepartmentCreatePayload true "Department data"
// @Success 201 {object} object{message=string} "Department created"
// @Failure 400 {object} object{message=string} "Missing department name"
// @Failure 409 {object} object{message=string} "Department name already exists"
// @Failure 500 {object} object{message=string} "Server error"
// @Router /department [post]
func (h *DepartmentHandler) CreateDepartment(c *fiber.Ctx) error {
	var payload models.DepartmentCreatePayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
	}

	if payload.DepartmentName == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Department name is required"})
	}

	if err := h.deptRepo.CreateDepartment(c.Context(), payload.DepartmentName); err != nil {
		switch pgcode.Of(err) {
		case pgcode.RaisedException, pgcode.UniqueViolation:
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"message": "Department name already exists"})
		default:
			logger.Error(c.Path(), err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Error creating department"})
		}
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Department created successfully"})
}

// SetSalary godoc
// @Summary Assign a salary profile to a department
// @Description Applies salary, children count, spouse flag and contribution percentage to every membership of a department
// @Tags Departments
// @Accept json
// @Produce json
// @Param assignment body models.SalaryAssignmentPayload true "Salary assignment"
// @Success 200 {object} object{message=string} "Salary assigned"
// @Failure 400 {object} object{message=string} "Validation error"
// @Failure 500 {object} object{message=string} "Server error"
// @Router /department [patch]
func (h *DepartmentHandler) SetSalary(c *fiber.Ctx) error {
	var payload models.SalaryAssignmentPayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
	}

	if msg := validateSalaryAssignment(&payload); msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": msg})
	}

	err := h.deptRepo.AssignDepartmentSalary(c.Context(),
		payload.DepartmentID, payload.Salary, payload.ChildrenQuantity, payload.HasSpouse, payload.ContributionPercentage)
	if err != nil {
		switch pgcode.Of(err) {
		case pgcode.UnknownEntity:
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Department does not exist"})
		default:
			logger.Error(c.Path(), err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Error assigning salary to department"})
		}
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Salary assigned to department successfully"})
}

// SetEmployeeSalary godoc
// @Summary Assign a salary profile to an employee in a department
// @Description Applies the salary profile to a single department membership, keyed by the employee card ID
// @Tags Departments
// @Accept json
// @Produce json
// @Param cardID query int true "Employee card ID"
// @Param assignment body models.SalaryAssignmentPayload true "Salary assignment"
// @Success 200 {object} object{message=string} "Salary assigned"
// @Failure 400 {object} object{message=string} "Validation error or membership precondition"
// @Failure 500 {object} object{message=string} "Server error"
// @Router /department/employee [patch]
func (h *DepartmentHandler) SetEmployeeSalary(c *fiber.Ctx) error {
	cardID, err := params.NullableInt(c.Query("cardID"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "cardID must be a number"})
	}
	if cardID == nil || *cardID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Employee card ID is required"})
	}

	var payload models.SalaryAssignmentPayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
	}

	if msg := validateSalaryAssignment(&payload); msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": msg})
	}

	err = h.deptRepo.AssignEmployeeSalary(c.Context(),
		cardID, payload.DepartmentID, payload.Salary, payload.ChildrenQuantity, payload.HasSpouse, payload.ContributionPercentage)
	if err != nil {
		switch pgcode.Of(err) {
		case pgcode.UnknownEntity:
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": fmt.Sprintf("The collaborator with card ID %d is not registered in the department", *cardID),
			})
		default:
			logger.Error(c.Path(), err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Error assigning salary to employee in department"})
		}
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Salary assigned to employee in department successfully"})
}

// validateSalaryAssignment enforces the business rules shared by the
// department-wide and per-employee salary assignments. Optional fields
// left nil are forwarded to the routine as NULL.
func validateSalaryAssignment(p *models.SalaryAssignmentPayload) string {
	if p.DepartmentID == nil || *p.DepartmentID == 0 {
		return "Department ID is required"
	}
	if p.Salary != nil && *p.Salary <= 0 {
		return "Salary must be greater than 0"
	}
	if p.ContributionPercentage != nil && (*p.ContributionPercentage < 0 || *p.ContributionPercentage > 5) {
		return "Contribution percentage must be between 0 and 5"
	}
	return ""
}

// InsertEmployees godoc
// @Summary Insert employees into a department
// @Description Adds a batch of employees, identified by card ID, to a department
// @Tags Departments
// @Accept json
// @Produce json
// @Param membership body models.MembershipInsertPayload true "Department and employee card IDs"
// @Success 200 {object} object{message=string} "Employees inserted"
// @Failure 400 {object} object{message=string} "Validation error or membership precondition"
// @Failure 500 {object} object{message=string} "Server error"
// @Router /department [put]
func (h *DepartmentHandler) InsertEmployees(c *fiber.Ctx) error {
	var payload models.MembershipInsertPayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
	}

	if payload.DepartmentID == nil || *payload.DepartmentID == 0 || len(payload.CardIDs) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Department id or employee list is required"})
	}

	if err := h.deptRepo.InsertEmployees(c.Context(), *payload.DepartmentID, payload.CardIDs); err != nil {
		switch pgcode.Of(err) {
		case pgcode.UnknownEntity:
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Department does not exist"})
		case pgcode.UnknownEmployee:
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "One or more employee card IDs do not exist"})
		case pgcode.AlreadyMember:
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "One of the employees already belongs to the department"})
		default:
			logger.Error(c.Path(), err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Error inserting employees into department"})
		}
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Employees inserted successfully"})
}

// GetEmployeeSalary godoc
// @Summary Get salary data for an employee in a department
// @Tags Departments
// @Produce json
// @Param cardID query int true "Employee card ID"
// @Param departmentID query int true "Department ID"
// @Success 200 {object} models.Row "Salary row"
// @Failure 400 {object} object{message=string} "Missing identifiers"
// @Failure 404 {object} object{message=string} "No salary data found"
// @Failure 500 {object} object{message=string} "Server error"
// @Router /department/employee [get]
func (h *DepartmentHandler) GetEmployeeSalary(c *fiber.Ctx) error {
	cardID, err := params.NullableInt(c.Query("cardID"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "cardID must be a number"})
	}
	departmentID, err := params.NullableInt(c.Query("departmentID"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "departmentID must be a number"})
	}

	if cardID == nil || *cardID == 0 || departmentID == nil || *departmentID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "cardID and departmentID are required"})
	}

	row, err := h.deptRepo.GetEmployeeSalary(c.Context(), *cardID, *departmentID)
	if err != nil {
		logger.Error(c.Path(), err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Error getting salary data"})
	}
	if row == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "No salary data found for this employee and department"})
	}

	return c.Status(fiber.StatusOK).JSON(row)
}

// GetEmployeeName godoc
// @Summary Get an employee's name by card ID
// @Tags Departments
// @Produce json
// @Param IDCard query int true "Employee card ID"
// @Success 200 {object} models.Row "Employee row"
// @Failure 400 {object} object{message=string} "Missing IDCard"
// @Failure 404 {object} object{message=string} "Employee not found"
// @Failure 500 {object} object{message=string} "Server error"
// @Router /department/employee/name [get]
func (h *DepartmentHandler) GetEmployeeName(c *fiber.Ctx) error {
	idCard, err := params.NullableInt(c.Query("IDCard"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "IDCard must be a number"})
	}
	if idCard == nil || *idCard == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "IDCard is required"})
	}

	row, err := h.deptRepo.GetEmployeeName(c.Context(), *idCard)
	if err != nil {
		logger.Error(c.Path(), err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Error getting employee name"})
	}
	if row == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Employee not found"})
	}

	return c.Status(fiber.StatusOK).JSON(row)
}

// GetDepartmentTotals godoc
// @Summary Get payroll totals per department
// @Tags Departments
// @Produce json
// @Success 200 {array} models.Row "Totals rows"
// @Failure 500 {object} object{message=string} "Server error"
// @Router /department/totals [get]
func (h *DepartmentHandler) GetDepartmentTotals(c *fiber.Ctx) error {
	totals, err := h.deptRepo.GetDepartmentTotals(c.Context())
	if err != nil {
		logger.Error(c.Path(), err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Error getting department totals"})
	}

	return c.Status(fiber.StatusOK).JSON(totals)
}

// GetDepartmentEmployees godoc
// @Summary List all employees of a department
// @Tags Departments
// @Produce json
// @Param departmentID query int true "Department ID"
// @Success 200 {array} models.Row "Employee rows"
// @Failure 400 {object} object{message=string} "Missing department ID"
// @Failure 500 {object} object{message=string} "Server error"
// @Router /department/all-employees [get]
func (h *DepartmentHandler) GetDepartmentEmployees(c *fiber.Ctx) error {
	departmentID, err := params.NullableInt(c.Query("departmentID"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "departmentID must be a number"})
	}
	if departmentID == nil || *departmentID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Department ID is required"})
	}

	employees, err := h.deptRepo.GetDepartmentEmployees(c.Context(), *departmentID)
	if err != nil {
		logger.Error(c.Path(), err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Error getting department employees"})
	}

	return c.Status(fiber.StatusOK).JSON(employees)
}
