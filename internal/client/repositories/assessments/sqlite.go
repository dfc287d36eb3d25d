package assessments

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/dmitrijs2005/heartrisk/internal/client/models"
	"github.com/dmitrijs2005/heartrisk/internal/dbx"
)

const table = "assessments"

var columns = []string{
	"assessment_id", "user_id", "chest_pain_type", "resting_bp", "cholesterol",
	"max_hr", "exercise_angina", "oldpeak", "st_slope", "risk_score", "timestamp",
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Question)

type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Create(ctx context.Context, a *models.Assessment) (int64, error) {
	query, args, err := psql.Insert(table).
		Columns("user_id", "chest_pain_type", "resting_bp", "cholesterol", "max_hr",
			"exercise_angina", "oldpeak", "st_slope", "risk_score").
		Values(a.UserID, string(a.ChestPainType), a.RestingBP, a.Cholesterol, a.MaxHR,
			string(a.ExerciseAngina), a.Oldpeak, string(a.STSlope), a.RiskScore).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build insert: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to insert assessment for user[%d]: %w", a.UserID, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read assessment id: %w", err)
	}
	a.ID = id
	return id, nil
}

func (r *SQLiteRepository) ListByUser(ctx context.Context, userID int64) ([]models.Assessment, error) {
	query, args, err := psql.Select(columns...).
		From(table).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("timestamp ASC", "assessment_id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build select: %w", err)
	}

	result := []models.Assessment{}
	if err := r.db.SelectContext(ctx, &result, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list assessments for user[%d]: %w", userID, err)
	}
	return result, nil
}
