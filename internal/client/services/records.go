// Package services contains application services for the heartrisk CLI.
// This file defines the record store: accounts, profiles and the stored
// assessment history, all kept in the local SQLite database.
package services

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/dmitrijs2005/heartrisk/internal/client/models"
	"github.com/dmitrijs2005/heartrisk/internal/client/repositories/assessments"
	"github.com/dmitrijs2005/heartrisk/internal/client/repositories/users"
	"github.com/dmitrijs2005/heartrisk/internal/common"
	"github.com/dmitrijs2005/heartrisk/internal/cryptox"
	"github.com/dmitrijs2005/heartrisk/internal/dbx"
	"github.com/dmitrijs2005/heartrisk/internal/logging"
	"github.com/jmoiron/sqlx"
)

// RecordStore defines the persistence operations used by the CLI and the
// assessment pipeline.
//
// Contract:
//   - Register: create an account; email is normalized, password hashed.
//   - Authenticate: resolve (email, password) to a user id.
//   - GetUserProfile: age and sex of a user.
//   - RecordAssessment / ListAssessments: append to and read the history.
//   - History: ListAssessments, most recent first.
//   - DeleteUser: remove an account together with its history.
//
// Storage faults wrap common.ErrStorageFault; nothing is retried.
type RecordStore interface {
	Register(ctx context.Context, email string, password []byte, age, sex string) (int64, error)
	Authenticate(ctx context.Context, email string, password []byte) (int64, error)
	GetUserProfile(ctx context.Context, userID int64) (*models.Profile, error)
	RecordAssessment(ctx context.Context, a models.Assessment) (int64, error)
	ListAssessments(ctx context.Context, userID int64) ([]models.Assessment, error)
	History(ctx context.Context, userID int64) ([]models.Assessment, error)
	DeleteUser(ctx context.Context, userID int64) error
}

type recordStore struct {
	db     *sqlx.DB
	logger logging.Logger
}

// NewRecordStore constructs a RecordStore over an initialized database
// (see client.InitDatabase).
func NewRecordStore(db *sqlx.DB, logger logging.Logger) RecordStore {
	if logger == nil {
		logger = logging.Discard()
	}
	return &recordStore{db: db, logger: logger}
}

func (s *recordStore) getUsersRepo(db dbx.DBTX) users.Repository {
	return users.NewSQLiteRepository(db)
}

func (s *recordStore) getAssessmentsRepo(db dbx.DBTX) assessments.Repository {
	return assessments.NewSQLiteRepository(db)
}

func storageFault(err error) error {
	return fmt.Errorf("%w: %w", common.ErrStorageFault, err)
}

// Register validates and stores a new account and returns its id.
// Age is coerced: anything that is not a non-negative integer becomes 0.
func (s *recordStore) Register(ctx context.Context, email string, password []byte, age, sex string) (int64, error) {
	email = common.NormalizeEmail(email)
	sex = strings.ToUpper(strings.TrimSpace(sex))

	var bad []string
	if email == "" || !strings.Contains(email, "@") {
		bad = append(bad, "email")
	}
	if len(password) == 0 {
		bad = append(bad, "password")
	}
	if sex != models.SexMale && sex != models.SexFemale {
		bad = append(bad, "sex")
	}
	if len(bad) > 0 {
		return 0, fmt.Errorf("%w: %s", common.ErrInvalidInput, strings.Join(bad, ", "))
	}

	hash, err := cryptox.HashPassword(password)
	if err != nil {
		return 0, fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{Email: email, Password: hash, Age: common.CoerceAge(age), Sex: sex}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.getUsersRepo(tx)

		_, err := repo.GetByEmail(ctx, email)
		switch {
		case err == nil:
			return fmt.Errorf("user %s: %w", email, common.ErrAlreadyExists)
		case !errors.Is(err, common.ErrNotFound):
			return err
		}

		_, err = repo.Create(ctx, user)
		return err
	})
	if err != nil {
		if errors.Is(err, common.ErrAlreadyExists) {
			return 0, err
		}
		return 0, storageFault(err)
	}

	s.logger.Info(ctx, "user registered", "user_id", user.ID)
	return user.ID, nil
}

// Authenticate returns the id of the user owning email when password
// matches. Every failure, unknown email included, is common.ErrAuthFailure.
func (s *recordStore) Authenticate(ctx context.Context, email string, password []byte) (int64, error) {
	user, err := s.getUsersRepo(s.db).GetByEmail(ctx, common.NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return 0, common.ErrAuthFailure
		}
		return 0, storageFault(err)
	}

	ok, err := cryptox.VerifyPassword(password, user.Password)
	if err != nil {
		s.logger.Error(ctx, "stored password hash is unreadable", "user_id", user.ID, "error", err)
		return 0, common.ErrAuthFailure
	}
	if !ok {
		s.logger.Warn(ctx, "authentication failed", "user_id", user.ID)
		return 0, common.ErrAuthFailure
	}
	return user.ID, nil
}

func (s *recordStore) GetUserProfile(ctx context.Context, userID int64) (*models.Profile, error) {
	p, err := s.getUsersRepo(s.db).GetProfile(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, fmt.Errorf("user %d: %w", userID, common.ErrNotFound)
		}
		return nil, storageFault(err)
	}
	return p, nil
}

// RecordAssessment stores a and returns its id. An unknown user id fails
// the foreign key check and is reported as a storage fault.
func (s *recordStore) RecordAssessment(ctx context.Context, a models.Assessment) (int64, error) {
	id, err := s.getAssessmentsRepo(s.db).Create(ctx, &a)
	if err != nil {
		return 0, storageFault(err)
	}
	s.logger.Debug(ctx, "assessment stored", "user_id", a.UserID, "assessment_id", id)
	return id, nil
}

// ListAssessments returns the user's history, oldest first.
func (s *recordStore) ListAssessments(ctx context.Context, userID int64) ([]models.Assessment, error) {
	list, err := s.getAssessmentsRepo(s.db).ListByUser(ctx, userID)
	if err != nil {
		return nil, storageFault(err)
	}
	return list, nil
}

// History returns the user's history, most recent first.
func (s *recordStore) History(ctx context.Context, userID int64) ([]models.Assessment, error) {
	list, err := s.ListAssessments(ctx, userID)
	if err != nil {
		return nil, err
	}
	slices.Reverse(list)
	return list, nil
}

// DeleteUser removes the account; its assessments are removed by the
// ON DELETE CASCADE rule.
func (s *recordStore) DeleteUser(ctx context.Context, userID int64) error {
	if err := s.getUsersRepo(s.db).Delete(ctx, userID); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return fmt.Errorf("user %d: %w", userID, common.ErrNotFound)
		}
		return storageFault(err)
	}
	s.logger.Info(ctx, "user deleted", "user_id", userID)
	return nil
}
