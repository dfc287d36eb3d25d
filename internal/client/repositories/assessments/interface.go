// Package assessments persists risk assessments in the local SQLite store.
package assessments

import (
	"context"

	"github.com/dmitrijs2005/heartrisk/internal/client/models"
)

type Repository interface {
	// Create inserts a and returns the new assessment id. The timestamp is
	// assigned by the database.
	Create(ctx context.Context, a *models.Assessment) (int64, error)

	// ListByUser returns the user's assessments, oldest first. Rows with the
	// same timestamp keep insertion order.
	ListByUser(ctx context.Context, userID int64) ([]models.Assessment, error)
}
