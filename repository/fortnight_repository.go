package repository

import (
	"context"
	"database/sql"
	"time"

	"planilla-api/models"
)

type FortnightRepository interface {
	InsertFortnight(ctx context.Context, timestamp time.Time) error
	InsertNFortnights(ctx context.Context, n int, timestamp time.Time) error
	CalculateTax(ctx context.Context, salary *float64) ([]models.Row, error)
}

type fortnightRepository struct {
	db *sql.DB
}

func NewFortnightRepository(db *sql.DB) FortnightRepository {
	return &fortnightRepository{db: db}
}

func (r *fortnightRepository) InsertFortnight(ctx context.Context, timestamp time.Time) error {
	return execCall(ctx, r.db, `CALL insertquincena($1::TIMESTAMP)`, timestamp)
}

// InsertNFortnights creates n consecutive fortnights starting at the
// given timestamp; the chronology is generated by the routine.
func (r *fortnightRepository) InsertNFortnights(ctx context.Context, n int, timestamp time.Time) error {
	return execCall(ctx, r.db, `CALL insertnquincenas($1::INT, $2::TIMESTAMP)`, n, timestamp)
}

func (r *fortnightRepository) CalculateTax(ctx context.Context, salary *float64) ([]models.Row, error) {
	_, rows, err := queryRows(ctx, r.db, `SELECT * FROM calculate_tax($1::NUMERIC)`, salary)
	return rows, err
}
