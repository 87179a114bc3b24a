package repository

import (
	"context"
	"database/sql"
	"time"

	"planilla-api/models"
)

type ReportRepository interface {
	GetReportDetail(ctx context.Context, startDate, endDate *time.Time, cardID, departmentID *int, start, limit int) ([]string, []models.Row, error)
	GetReportTotal(ctx context.Context, startDate, endDate *time.Time, cardID, departmentID *int) ([]models.Row, error)
}

type reportRepository struct {
	db *sql.DB
}

func NewReportRepository(db *sql.DB) ReportRepository {
	return &reportRepository{db: db}
}

// GetReportDetail returns the per-fortnight payroll detail rows. The
// column order is reported too so the XLSX export keeps the routine's
// layout.
func (r *reportRepository) GetReportDetail(ctx context.Context, startDate, endDate *time.Time, cardID, departmentID *int, start, limit int) ([]string, []models.Row, error) {
	return queryRows(ctx, r.db,
		`SELECT * FROM getquincenas($1::DATE, $2::DATE, $3::INT, $4::SMALLINT, $5::INT, $6::INT)`,
		startDate, endDate, cardID, departmentID, start, limit,
	)
}

func (r *reportRepository) GetReportTotal(ctx context.Context, startDate, endDate *time.Time, cardID, departmentID *int) ([]models.Row, error) {
	_, rows, err := queryRows(ctx, r.db,
		`SELECT * FROM getquincenastotal($1::DATE, $2::DATE, $3::INT, $4::SMALLINT)`,
		startDate, endDate, cardID, departmentID,
	)
	return rows, err
}
