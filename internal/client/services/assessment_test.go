package services

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dmitrijs2005/heartrisk/internal/client/client"
	"github.com/dmitrijs2005/heartrisk/internal/client/models"
	"github.com/dmitrijs2005/heartrisk/internal/common"
	"github.com/dmitrijs2005/heartrisk/internal/risk"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateForm_Canonicalizes(t *testing.T) {
	f, err := ValidateForm(validForm())
	require.NoError(t, err)
	assert.Equal(t, models.Features{
		ChestPainType:  models.ChestPainASY,
		RestingBP:      140,
		Cholesterol:    289,
		MaxHR:          172,
		ExerciseAngina: models.ExerciseAnginaNo,
		Oldpeak:        1.5,
		STSlope:        models.STSlopeUp,
	}, f)
}

func TestValidateForm_ReportsEveryBadField(t *testing.T) {
	_, err := ValidateForm(models.AssessmentForm{
		ChestPainType:  "",
		RestingBP:      "12a",
		Cholesterol:    "-1",
		MaxHR:          "",
		ExerciseAngina: "maybe",
		FatigueLevel:   11,
		STSlope:        "sideways",
	})
	require.ErrorIs(t, err, common.ErrInvalidInput)
	for _, field := range []string{"chest pain type", "resting blood pressure", "cholesterol",
		"max heart rate", "exercise angina", "fatigue level", "ST slope"} {
		assert.Contains(t, err.Error(), field)
	}
}

func TestSubmit_Success(t *testing.T) {
	store := &fakeStore{profile: &models.Profile{Age: 54, Sex: "M"}}
	scorer := &fakeScorer{score: 72.5}
	p := NewPipeline(store, scorer, nil)

	var states []State
	p.OnStateChange(func(s State) { states = append(states, s) })

	res, err := p.Submit(context.Background(), 7, validForm())
	require.NoError(t, err)

	assert.Equal(t, 72.5, res.RiskScore)
	assert.Equal(t, risk.CategoryHigh, res.Category)
	assert.Equal(t, risk.ColorCrimson, res.Color)
	assert.NotEmpty(t, res.Recommendations)
	assert.True(t, res.Saved)
	assert.Equal(t, int64(1), res.AssessmentID)
	assert.Equal(t, StateSucceeded, res.State)
	assert.Equal(t, []State{StateCollectingInput, StateSubmitting, StateSucceeded}, states)

	assert.Equal(t, 54, scorer.lastReq.Age)
	assert.Equal(t, "M", scorer.lastReq.Sex)
	assert.Equal(t, 1.5, scorer.lastReq.Oldpeak)
	assert.Equal(t, res.RequestID, scorer.requestID)
	assert.NotEmpty(t, res.RequestID)

	require.Len(t, store.recorded, 1)
	assert.Equal(t, int64(7), store.recorded[0].UserID)
	assert.Equal(t, 72.5, store.recorded[0].RiskScore)
}

func TestSubmit_InvalidFormDoesNotCallScorer(t *testing.T) {
	store := &fakeStore{profile: &models.Profile{Age: 54, Sex: "M"}}
	scorer := &fakeScorer{score: 50}
	form := validForm()
	form.RestingBP = "high"

	res, err := NewPipeline(store, scorer, nil).Submit(context.Background(), 1, form)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, common.ErrInvalidInput)
	assert.Zero(t, scorer.calls)
	assert.Empty(t, store.recorded)
}

func TestSubmit_UnknownUser(t *testing.T) {
	store := &fakeStore{profileErr: common.ErrNotFound}
	scorer := &fakeScorer{}

	_, err := NewPipeline(store, scorer, nil).Submit(context.Background(), 1, validForm())
	assert.ErrorIs(t, err, common.ErrInvalidInput)
	assert.Zero(t, scorer.calls)
}

func TestSubmit_ScorerFailurePersistsNothing(t *testing.T) {
	store := &fakeStore{profile: &models.Profile{Age: 40, Sex: "F"}}
	scorer := &fakeScorer{err: client.ErrUnavailable}

	res, err := NewPipeline(store, scorer, nil).Submit(context.Background(), 1, validForm())
	assert.Nil(t, res)
	assert.ErrorIs(t, err, common.ErrScoringUnavailable)
	assert.ErrorIs(t, err, client.ErrUnavailable)
	assert.Empty(t, store.recorded)
}

func TestSubmit_PersistenceFailureStillReturnsScore(t *testing.T) {
	dbErr := errors.New("disk full")
	store := &fakeStore{profile: &models.Profile{Age: 40, Sex: "F"}, recordErr: dbErr}
	scorer := &fakeScorer{score: 85}

	res, err := NewPipeline(store, scorer, nil).Submit(context.Background(), 1, validForm())
	require.ErrorIs(t, err, common.ErrPersistenceFailed)
	assert.ErrorIs(t, err, dbErr)

	require.NotNil(t, res)
	assert.False(t, res.Saved)
	assert.Equal(t, 85.0, res.RiskScore)
	assert.Equal(t, risk.CategoryExtreme, res.Category)
	assert.Zero(t, res.AssessmentID)
	assert.Equal(t, StateFailed, res.State)
}

func TestSubmitAsync_DeliversOneOutcome(t *testing.T) {
	store := &fakeStore{profile: &models.Profile{Age: 40, Sex: "F"}}
	p := NewPipeline(store, &fakeScorer{score: 25}, nil)

	ch := p.SubmitAsync(context.Background(), 1, validForm())

	select {
	case out, ok := <-ch:
		require.True(t, ok)
		require.NoError(t, out.Err)
		assert.Equal(t, risk.CategorySlight, out.Result.Category)
	case <-time.After(5 * time.Second):
		t.Fatal("no outcome delivered")
	}

	_, ok := <-ch
	assert.False(t, ok, "channel must be closed after the outcome")
}

// End to end: real store, real HTTP scorer against a stub predictor.
func TestSubmit_EndToEnd(t *testing.T) {
	tests := []struct {
		name     string
		reply    string
		score    float64
		category risk.Category
	}{
		{"scored", "<Response><RiskScore>72.5</RiskScore></Response>", 72.5, risk.CategoryHigh},
		{"malformed", "<Response>oops</Response>", 0, risk.CategoryLow},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = io.WriteString(w, tt.reply)
			}))
			defer srv.Close()

			store := NewRecordStore(setupDB(t), nil)
			ctx := context.Background()
			uid, err := store.Register(ctx, "end@example.com", []byte("pw"), "61", "M")
			require.NoError(t, err)

			p := NewPipeline(store, client.NewHTTPScorer(srv.URL, time.Second, nil), nil)
			res, err := p.Submit(ctx, uid, validForm())
			require.NoError(t, err)
			assert.Equal(t, tt.score, res.RiskScore)
			assert.Equal(t, tt.category, res.Category)
			assert.NotEmpty(t, res.Recommendations)

			hist, err := store.History(ctx, uid)
			require.NoError(t, err)
			require.Len(t, hist, 1)
			assert.Equal(t, res.AssessmentID, hist[0].ID)
			assert.Equal(t, tt.score, hist[0].RiskScore)
		})
	}
}

func TestSubmit_EndToEnd_ServerDown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	store := NewRecordStore(setupDB(t), nil)
	ctx := context.Background()
	uid, err := store.Register(ctx, "down@example.com", []byte("pw"), "61", "M")
	require.NoError(t, err)

	p := NewPipeline(store, client.NewHTTPScorer(srv.URL, time.Second, nil), nil)
	_, err = p.Submit(ctx, uid, validForm())
	assert.ErrorIs(t, err, common.ErrScoringUnavailable)

	list, err := store.ListAssessments(ctx, uid)
	require.NoError(t, err)
	assert.Empty(t, list)
}
