package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/heartrisk/internal/client/client"
	"github.com/dmitrijs2005/heartrisk/internal/client/models"
	"github.com/dmitrijs2005/heartrisk/internal/common"
	"github.com/dmitrijs2005/heartrisk/internal/logging"
	"github.com/dmitrijs2005/heartrisk/internal/risk"
	"github.com/google/uuid"
)

// State is the stage a submission has reached.
type State string

const (
	StateCollectingInput State = "collecting_input"
	StateSubmitting      State = "submitting"
	StateSucceeded       State = "succeeded"
	StateFailed          State = "failed"
)

// AssessmentStore is the part of RecordStore the pipeline depends on.
type AssessmentStore interface {
	GetUserProfile(ctx context.Context, userID int64) (*models.Profile, error)
	RecordAssessment(ctx context.Context, a models.Assessment) (int64, error)
}

// Result is what a submission produced. When Saved is false the score is
// still valid but no history row exists for it.
type Result struct {
	RequestID       string
	AssessmentID    int64
	RiskScore       float64
	Category        risk.Category
	Recommendations []string
	Color           risk.Color
	Saved           bool
	State           State
}

// Outcome is delivered by SubmitAsync.
type Outcome struct {
	Result *Result
	Err    error
}

// Pipeline validates a form, scores it remotely, stores it and classifies
// the score.
type Pipeline struct {
	store   AssessmentStore
	scorer  client.Scorer
	logger  logging.Logger
	onState func(State)
}

func NewPipeline(store AssessmentStore, scorer client.Scorer, logger logging.Logger) *Pipeline {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Pipeline{store: store, scorer: scorer, logger: logger}
}

// OnStateChange registers fn to be called on every state transition.
// It must be set before the pipeline is used.
func (p *Pipeline) OnStateChange(fn func(State)) {
	p.onState = fn
}

func (p *Pipeline) setState(res *Result, s State) {
	res.State = s
	if p.onState != nil {
		p.onState(s)
	}
}

// ValidateForm checks every field of f and converts it into Features.
// All problems are reported at once, wrapped in common.ErrInvalidInput.
func ValidateForm(f models.AssessmentForm) (models.Features, error) {
	var (
		out models.Features
		bad []string
		ok  bool
	)

	if out.ChestPainType, ok = models.ParseChestPainType(f.ChestPainType); !ok {
		bad = append(bad, "chest pain type")
	}
	if out.RestingBP, ok = parseNonNegative(f.RestingBP); !ok {
		bad = append(bad, "resting blood pressure")
	}
	if out.Cholesterol, ok = parseNonNegative(f.Cholesterol); !ok {
		bad = append(bad, "cholesterol")
	}
	if out.MaxHR, ok = parseNonNegative(f.MaxHR); !ok {
		bad = append(bad, "max heart rate")
	}
	if out.ExerciseAngina, ok = models.ParseExerciseAngina(f.ExerciseAngina); !ok {
		bad = append(bad, "exercise angina")
	}
	if v, err := risk.OldpeakFromFatigueLevel(f.FatigueLevel); err != nil {
		bad = append(bad, "fatigue level")
	} else {
		out.Oldpeak = v
	}
	if out.STSlope, ok = models.ParseSTSlope(f.STSlope); !ok {
		bad = append(bad, "ST slope")
	}

	if len(bad) > 0 {
		return models.Features{}, fmt.Errorf("%w: %s", common.ErrInvalidInput, strings.Join(bad, ", "))
	}
	return out, nil
}

func parseNonNegative(s string) (int, bool) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || v < 0 {
		return 0, false
	}
	return v, true
}

// Submit runs one assessment for userID.
//
// Errors:
//   - common.ErrInvalidInput: bad form or unknown user; nothing was sent.
//   - common.ErrScoringUnavailable: the scorer failed; nothing was stored.
//   - common.ErrPersistenceFailed: scoring worked but storing did not. The
//     returned Result is complete except that Saved is false.
func (p *Pipeline) Submit(ctx context.Context, userID int64, form models.AssessmentForm) (*Result, error) {
	res := &Result{RequestID: uuid.New().String()}
	log := p.logger.With("request_id", res.RequestID, "user_id", userID)
	p.setState(res, StateCollectingInput)

	features, err := ValidateForm(form)
	if err != nil {
		p.setState(res, StateFailed)
		return nil, err
	}

	profile, err := p.store.GetUserProfile(ctx, userID)
	if err != nil {
		p.setState(res, StateFailed)
		if errors.Is(err, common.ErrNotFound) {
			return nil, fmt.Errorf("%w: unknown user", common.ErrInvalidInput)
		}
		return nil, err
	}

	p.setState(res, StateSubmitting)
	ctx = client.WithRequestID(ctx, res.RequestID)

	score, err := p.scorer.Score(ctx, models.ScoreRequest{Age: profile.Age, Sex: profile.Sex, Features: features})
	if err != nil {
		log.Warn(ctx, "scoring failed", "error", err)
		p.setState(res, StateFailed)
		return nil, fmt.Errorf("%w: %w", common.ErrScoringUnavailable, err)
	}

	c := risk.Classify(score)
	res.RiskScore = c.Score
	res.Category = c.Category
	res.Recommendations = c.Recommendations
	res.Color = c.Color

	id, err := p.store.RecordAssessment(ctx, models.NewAssessment(userID, features, score))
	if err != nil {
		log.Error(ctx, "assessment not saved", "score", score, "error", err)
		p.setState(res, StateFailed)
		return res, errors.Join(common.ErrPersistenceFailed, err)
	}

	res.AssessmentID = id
	res.Saved = true
	log.Info(ctx, "assessment completed", "assessment_id", id, "score", score, "category", c.Category)
	p.setState(res, StateSucceeded)
	return res, nil
}

// SubmitAsync runs Submit on its own goroutine. The returned channel
// receives exactly one Outcome and is then closed.
func (p *Pipeline) SubmitAsync(ctx context.Context, userID int64, form models.AssessmentForm) <-chan Outcome {
	ch := make(chan Outcome, 1)
	go func() {
		defer close(ch)
		res, err := p.Submit(ctx, userID, form)
		ch <- Outcome{Result: res, Err: err}
	}()
	return ch
}
