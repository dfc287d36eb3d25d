package services

import (
	"context"
	"sync"
	"testing"

	"github.com/dmitrijs2005/heartrisk/internal/client/client"
	"github.com/dmitrijs2005/heartrisk/internal/client/models"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
)

// ---- helpers ----

func setupDB(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := client.InitDatabase(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func validForm() models.AssessmentForm {
	return models.AssessmentForm{
		ChestPainType:  "asy",
		RestingBP:      "140",
		Cholesterol:    "289",
		MaxHR:          "172",
		ExerciseAngina: "n",
		FatigueLevel:   5,
		STSlope:        "up",
	}
}

// ---- fake scorer ----

type fakeScorer struct {
	mu        sync.Mutex
	score     float64
	err       error
	calls     int
	lastReq   models.ScoreRequest
	requestID string
}

func (f *fakeScorer) Score(ctx context.Context, req models.ScoreRequest) (float64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.lastReq = req
	f.requestID = client.GetRequestID(ctx)
	return f.score, f.err
}

// ---- fake store ----

type fakeStore struct {
	profile    *models.Profile
	profileErr error
	recordErr  error
	recorded   []models.Assessment
}

func (f *fakeStore) GetUserProfile(ctx context.Context, userID int64) (*models.Profile, error) {
	return f.profile, f.profileErr
}

func (f *fakeStore) RecordAssessment(ctx context.Context, a models.Assessment) (int64, error) {
	if f.recordErr != nil {
		return 0, f.recordErr
	}
	f.recorded = append(f.recorded, a)
	return int64(len(f.recorded)), nil
}
