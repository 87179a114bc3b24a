package handlers

import (
	"context"
	"time"

	"planilla-api/models"
)

// Stub repositories in the func-field style: a test sets only the calls
// it expects and counts invocations to assert that validation failures
// never reach the database gateway.

type stubUserRepo struct {
	calls              int
	registerUserFn     func(ctx context.Context, username, email, passwordHash string) (int64, error)
	authenticateUserFn func(ctx context.Context, email string) (*models.UserCredential, error)
}

func (s *stubUserRepo) RegisterUser(ctx context.Context, username, email, passwordHash string) (int64, error) {
	s.calls++
	if s.registerUserFn == nil {
		return 1, nil
	}
	return s.registerUserFn(ctx, username, email, passwordHash)
}

func (s *stubUserRepo) AuthenticateUser(ctx context.Context, email string) (*models.UserCredential, error) {
	s.calls++
	if s.authenticateUserFn == nil {
		return nil, nil
	}
	return s.authenticateUserFn(ctx, email)
}

type stubDeptRepo struct {
	calls                  int
	getDepartmentsFn       func(ctx context.Context, cardID *int) ([]models.Row, error)
	createDepartmentFn     func(ctx context.Context, name string) error
	assignDeptSalaryFn     func(ctx context.Context, departmentID *int, salary *float64, children *int, hasSpouse *bool, contribution *float64) error
	assignEmployeeSalaryFn func(ctx context.Context, cardID, departmentID *int, salary *float64, children *int, hasSpouse *bool, contribution *float64) error
	insertEmployeesFn      func(ctx context.Context, departmentID int, cardIDs []int64) error
	getEmployeeSalaryFn    func(ctx context.Context, cardID, departmentID int) (models.Row, error)
	getEmployeeNameFn      func(ctx context.Context, cardID int) (models.Row, error)
	getTotalsFn            func(ctx context.Context) ([]models.Row, error)
	getDeptEmployeesFn     func(ctx context.Context, departmentID int) ([]models.Row, error)
}

func (s *stubDeptRepo) GetDepartments(ctx context.Context, cardID *int) ([]models.Row, error) {
	s.calls++
	if s.getDepartmentsFn == nil {
		return []models.Row{}, nil
	}
	return s.getDepartmentsFn(ctx, cardID)
}

func (s *stubDeptRepo) CreateDepartment(ctx context.Context, name string) error {
	s.calls++
	if s.createDepartmentFn == nil {
		return nil
	}
	return s.createDepartmentFn(ctx, name)
}

func (s *stubDeptRepo) AssignDepartmentSalary(ctx context.Context, departmentID *int, salary *float64, children *int, hasSpouse *bool, contribution *float64) error {
	s.calls++
	if s.assignDeptSalaryFn == nil {
		return nil
	}
	return s.assignDeptSalaryFn(ctx, departmentID, salary, children, hasSpouse, contribution)
}

func (s *stubDeptRepo) AssignEmployeeSalary(ctx context.Context, cardID *int, departmentID *int, salary *float64, children *int, hasSpouse *bool, contribution *float64) error {
	s.calls++
	if s.assignEmployeeSalaryFn == nil {
		return nil
	}
	return s.assignEmployeeSalaryFn(ctx, cardID, departmentID, salary, children, hasSpouse, contribution)
}

func (s *stubDeptRepo) InsertEmployees(ctx context.Context, departmentID int, cardIDs []int64) error {
	s.calls++
	if s.insertEmployeesFn == nil {
		return nil
	}
	return s.insertEmployeesFn(ctx, departmentID, cardIDs)
}

func (s *stubDeptRepo) GetEmployeeSalary(ctx context.Context, cardID, departmentID int) (models.Row, error) {
	s.calls++
	if s.getEmployeeSalaryFn == nil {
		return nil, nil
	}
	return s.getEmployeeSalaryFn(ctx, cardID, departmentID)
}

func (s *stubDeptRepo) GetEmployeeName(ctx context.Context, cardID int) (models.Row, error) {
	s.calls++
	if s.getEmployeeNameFn == nil {
		return nil, nil
	}
	return s.getEmployeeNameFn(ctx, cardID)
}

func (s *stubDeptRepo) GetDepartmentTotals(ctx context.Context) ([]models.Row, error) {
	s.calls++
	if s.getTotalsFn == nil {
		return []models.Row{}, nil
	}
	return s.getTotalsFn(ctx)
}

func (s *stubDeptRepo) GetDepartmentEmployees(ctx context.Context, departmentID int) ([]models.Row, error) {
	s.calls++
	if s.getDeptEmployeesFn == nil {
		return []models.Row{}, nil
	}
	return s.getDeptEmployeesFn(ctx, departmentID)
}

type stubCollabRepo struct {
	calls             int
	getCollaboratorFn func(ctx context.Context, cardID int) (models.Row, error)
}

func (s *stubCollabRepo) GetCollaboratorName(ctx context.Context, cardID int) (models.Row, error) {
	s.calls++
	if s.getCollaboratorFn == nil {
		return nil, nil
	}
	return s.getCollaboratorFn(ctx, cardID)
}

type stubFortnightRepo struct {
	calls               int
	insertFortnightFn   func(ctx context.Context, timestamp time.Time) error
	insertNFortnightsFn func(ctx context.Context, n int, timestamp time.Time) error
	calculateTaxFn      func(ctx context.Context, salary *float64) ([]models.Row, error)
}

func (s *stubFortnightRepo) InsertFortnight(ctx context.Context, timestamp time.Time) error {
	s.calls++
	if s.insertFortnightFn == nil {
		return nil
	}
	return s.insertFortnightFn(ctx, timestamp)
}

func (s *stubFortnightRepo) InsertNFortnights(ctx context.Context, n int, timestamp time.Time) error {
	s.calls++
	if s.insertNFortnightsFn == nil {
		return nil
	}
	return s.insertNFortnightsFn(ctx, n, timestamp)
}

func (s *stubFortnightRepo) CalculateTax(ctx context.Context, salary *float64) ([]models.Row, error) {
	s.calls++
	if s.calculateTaxFn == nil {
		return []models.Row{}, nil
	}
	return s.calculateTaxFn(ctx, salary)
}

type stubReportRepo struct {
	calls             int
	getReportDetailFn func(ctx context.Context, startDate, endDate *time.Time, cardID, departmentID *int, start, limit int) ([]string, []models.Row, error)
	getReportTotalFn  func(ctx context.Context, startDate, endDate *time.Time, cardID, departmentID *int) ([]models.Row, error)
}

func (s *stubReportRepo) GetReportDetail(ctx context.Context, startDate, endDate *time.Time, cardID, departmentID *int, start, limit int) ([]string, []models.Row, error) {
	s.calls++
	if s.getReportDetailFn == nil {
		return []string{}, []models.Row{}, nil
	}
	return s.getReportDetailFn(ctx, startDate, endDate, cardID, departmentID, start, limit)
}

func (s *stubReportRepo) GetReportTotal(ctx context.Context, startDate, endDate *time.Time, cardID, departmentID *int) ([]models.Row, error) {
	s.calls++
	if s.getReportTotalFn == nil {
		return []models.Row{}, nil
	}
	return s.getReportTotalFn(ctx, startDate, endDate, cardID, departmentID)
}
