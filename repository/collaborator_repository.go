package repository

import (
	"context"
	"database/sql"

	"planilla-api/models"
)

type CollaboratorRepository interface {
	GetCollaboratorName(ctx context.Context, cardID int) (models.Row, error)
}

type collaboratorRepository struct {
	db *sql.DB
}

func NewCollaboratorRepository(db *sql.DB) CollaboratorRepository {
	return &collaboratorRepository{db: db}
}

// GetCollaboratorName resolves a collaborator by card ID (cédula).
// An unknown card ID yields (nil, nil).
func (r *collaboratorRepository) GetCollaboratorName(ctx context.Context, cardID int) (models.Row, error) {
	_, rows, err := queryRows(ctx, r.db, `SELECT * FROM getempleadonombre($1)`, cardID)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[0], nil
}
