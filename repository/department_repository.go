package repository

import (
	"context"
	"database/sql"

	"github.com/lib/pq"

	"planilla-api/models"
)

type DepartmentRepository interface {
	GetDepartments(ctx context.Context, cardID *int) ([]models.Row, error)
	CreateDepartment(ctx context.Context, name string) error
	AssignDepartmentSalary(ctx context.Context, departmentID *int, salary *float64, children *int, hasSpouse *bool, contribution *float64) error
	AssignEmployeeSalary(ctx context.Context, cardID *int, departmentID *int, salary *float64, children *int, hasSpouse *bool, contribution *float64) error
	InsertEmployees(ctx context.Context, departmentID int, cardIDs []int64) error
	GetEmployeeSalary(ctx context.Context, cardID, departmentID int) (models.Row, error)
	GetEmployeeName(ctx context.Context, cardID int) (models.Row, error)
	GetDepartmentTotals(ctx context.Context) ([]models.Row, error)
	GetDepartmentEmployees(ctx context.Context, departmentID int) ([]models.Row, error)
}

type departmentRepository struct {
	db *sql.DB
}

func NewDepartmentRepository(db *sql.DB) DepartmentRepository {
	return &departmentRepository{db: db}
}

// GetDepartments lists departments, optionally restricted to the ones a
// collaborator belongs to.
func (r *departmentRepository) GetDepartments(ctx context.Context, cardID *int) ([]models.Row, error) {
	if cardID != nil {
		_, rows, err := queryRows(ctx, r.db, `SELECT * FROM getdepartamentos($1)`, *cardID)
		return rows, err
	}
	_, rows, err := queryRows(ctx, r.db, `SELECT * FROM getdepartamentos()`)
	return rows, err
}

func (r *departmentRepository) CreateDepartment(ctx context.Context, name string) error {
	return execCall(ctx, r.db, `CALL insertdepartamento($1)`, name)
}

// AssignDepartmentSalary applies a salary profile to every membership of
// a department. Nil optionals reach the routine as NULL.
func (r *departmentRepository) AssignDepartmentSalary(ctx context.Context, departmentID *int, salary *float64, children *int, hasSpouse *bool, contribution *float64) error {
	return execCall(ctx, r.db,
		`CALL asignarsalariodepartamento($1::SMALLINT, $2::INT, $3::SMALLINT, $4::BOOLEAN, $5::NUMERIC)`,
		departmentID, salary, children, hasSpouse, contribution,
	)
}

// AssignEmployeeSalary applies a salary profile to a single membership,
// keyed by the employee's card ID.
func (r *departmentRepository) AssignEmployeeSalary(ctx context.Context, cardID *int, departmentID *int, salary *float64, children *int, hasSpouse *bool, contribution *float64) error {
	return execCall(ctx, r.db,
		`CALL asignarsalarioporcedula($1::INTEGER, $2::SMALLINT, $3::INT, $4::SMALLINT, $5::BOOLEAN, $6::NUMERIC)`,
		cardID, departmentID, salary, children, hasSpouse, contribution,
	)
}

// InsertEmployees adds a batch of employees to a department. Membership
// preconditions are enforced by the routine and reported through the
// P0001/P0002/P0003 vendor codes.
func (r *departmentRepository) InsertEmployees(ctx context.Context, departmentID int, cardIDs []int64) error {
	return execCall(ctx, r.db,
		`CALL insertempleadosdepartamentos($1, $2)`,
		departmentID, pq.Array(cardIDs),
	)
}

func (r *departmentRepository) GetEmployeeSalary(ctx context.Context, cardID, departmentID int) (models.Row, error) {
	_, rows, err := queryRows(ctx, r.db, `SELECT * FROM obtenerdatosalarialcolaborador($1, $2)`, cardID, departmentID)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[0], nil
}

func (r *departmentRepository) GetEmployeeName(ctx context.Context, cardID int) (models.Row, error) {
	_, rows, err := queryRows(ctx, r.db, `SELECT * FROM getempleadonombre($1)`, cardID)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[0], nil
}

func (r *departmentRepository) GetDepartmentTotals(ctx context.Context) ([]models.Row, error) {
	_, rows, err := queryRows(ctx, r.db, `SELECT * FROM getdepartamentostotales()`)
	return rows, err
}

func (r *departmentRepository) GetDepartmentEmployees(ctx context.Context, departmentID int) ([]models.Row, error) {
	_, rows, err := queryRows(ctx, r.db, `SELECT * FROM getdepartamentoempleados($1::SMALLINT)`, departmentID)
	return rows, err
}
