package users

import (
	"context"

	"github.com/dmitrijs2005/heartrisk/internal/client/models"
)

type Repository interface {
	// Create inserts user and returns its new id. user.Email is expected to be
	// normalized already.
	Create(ctx context.Context, user *models.User) (int64, error)

	GetByEmail(ctx context.Context, email string) (*models.User, error)

	GetProfile(ctx context.Context, id int64) (*models.Profile, error)

	// Delete removes the user; its assessments go with it.
	Delete(ctx context.Context, id int64) error
}
