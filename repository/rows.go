package repository

import (
	"context"
	"database/sql"
	"time"

	"planilla-api/models"
)

// queryTimeout bounds every routine call; a request holds its connection
// only for the duration of the single statement.
const queryTimeout = 5 * time.Second

// queryRows executes a SELECT against a set-returning routine and scans
// the result dynamically. The column order is returned alongside the
// rows for consumers that need a stable layout (the report export).
func queryRows(ctx context.Context, db *sql.DB, query string, args ...interface{}) ([]string, []models.Row, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, nil, err
	}

	result := make([]models.Row, 0)
	for rows.Next() {
		values := make([]interface{}, len(columns))
		pointers := make([]interface{}, len(columns))
		for i := range values {
			pointers[i] = &values[i]
		}
		if err := rows.Scan(pointers...); err != nil {
			return nil, nil, err
		}

		row := make(models.Row, len(columns))
		for i, col := range columns {
			row[col] = normalize(values[i])
		}
		result = append(result, row)
	}

	return columns, result, rows.Err()
}

// normalize makes driver values JSON-friendly: byte slices (NUMERIC,
// TEXT) become strings.
func normalize(v interface{}) interface{} {
	if b, ok := v.([]byte); ok {
		return string(b)
	}
	return v
}

// execCall runs a mutating CALL statement.
func execCall(ctx context.Context, db *sql.DB, query string, args ...interface{}) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	_, err := db.ExecContext(ctx, query, args...)
	return err
}
