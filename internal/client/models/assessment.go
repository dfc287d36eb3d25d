package models

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

// ChestPainType is the reported kind of chest pain.
type ChestPainType string

const (
	ChestPainATA ChestPainType = "ATA" // atypical angina
	ChestPainTA  ChestPainType = "TA"  // typical angina
	ChestPainNAP ChestPainType = "NAP" // non-anginal pain
	ChestPainASY ChestPainType = "ASY" // asymptomatic
)

// ExerciseAngina tells whether exercise induces chest pain.
type ExerciseAngina string

const (
	ExerciseAnginaYes ExerciseAngina = "Y"
	ExerciseAnginaNo  ExerciseAngina = "N"
)

// STSlope is the ST-segment trend during exercise.
type STSlope string

const (
	STSlopeUp   STSlope = "Up"
	STSlopeDown STSlope = "Down"
	STSlopeFlat STSlope = "Flat"
)

// ParseChestPainType accepts any letter case and surrounding blanks.
func ParseChestPainType(s string) (ChestPainType, bool) {
	switch v := ChestPainType(strings.ToUpper(strings.TrimSpace(s))); v {
	case ChestPainATA, ChestPainTA, ChestPainNAP, ChestPainASY:
		return v, true
	}
	return "", false
}

// ParseExerciseAngina accepts "Y"/"N" in any letter case.
func ParseExerciseAngina(s string) (ExerciseAngina, bool) {
	switch v := ExerciseAngina(strings.ToUpper(strings.TrimSpace(s))); v {
	case ExerciseAnginaYes, ExerciseAnginaNo:
		return v, true
	}
	return "", false
}

// ParseSTSlope accepts "up", "DOWN", " Flat " and so on.
func ParseSTSlope(s string) (STSlope, bool) {
	for _, v := range []STSlope{STSlopeUp, STSlopeDown, STSlopeFlat} {
		if strings.EqualFold(strings.TrimSpace(s), string(v)) {
			return v, true
		}
	}
	return "", false
}

// Features are the validated clinical inputs of one assessment.
type Features struct {
	ChestPainType  ChestPainType
	RestingBP      int
	Cholesterol    int
	MaxHR          int
	ExerciseAngina ExerciseAngina
	Oldpeak        float64
	STSlope        STSlope
}

// AssessmentForm is what the user typed, before validation. Numeric fields
// are kept as text so that validation can reject them.
type AssessmentForm struct {
	ChestPainType  string
	RestingBP      string
	Cholesterol    string
	MaxHR          string
	ExerciseAngina string
	FatigueLevel   int
	STSlope        string
}

// Assessment is one stored risk assessment. Timestamp is assigned by the
// database on insert.
type Assessment struct {
	ID             int64          `db:"assessment_id"`
	UserID         int64          `db:"user_id"`
	ChestPainType  ChestPainType  `db:"chest_pain_type"`
	RestingBP      int            `db:"resting_bp"`
	Cholesterol    int            `db:"cholesterol"`
	MaxHR          int            `db:"max_hr"`
	ExerciseAngina ExerciseAngina `db:"exercise_angina"`
	Oldpeak        float64        `db:"oldpeak"`
	STSlope        STSlope        `db:"st_slope"`
	RiskScore      float64        `db:"risk_score"`
	Timestamp      Timestamp      `db:"timestamp"`
}

// NewAssessment binds features and a score to a user.
func NewAssessment(userID int64, f Features, score float64) Assessment {
	return Assessment{
		UserID:         userID,
		ChestPainType:  f.ChestPainType,
		RestingBP:      f.RestingBP,
		Cholesterol:    f.Cholesterol,
		MaxHR:          f.MaxHR,
		ExerciseAngina: f.ExerciseAngina,
		Oldpeak:        f.Oldpeak,
		STSlope:        f.STSlope,
		RiskScore:      score,
	}
}

// ScoreRequest is everything the remote predictor needs.
type ScoreRequest struct {
	Age int
	Sex string
	Features
}

// sqliteTimeLayout is what CURRENT_TIMESTAMP produces.
const sqliteTimeLayout = "2006-01-02 15:04:05"

// Timestamp scans SQLite DATETIME values whether the driver hands back a
// time.Time or the raw text.
type Timestamp struct {
	time.Time
}

func (t *Timestamp) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		t.Time = time.Time{}
		return nil
	case time.Time:
		t.Time = v.UTC()
		return nil
	case string:
		return t.parse(v)
	case []byte:
		return t.parse(string(v))
	default:
		return fmt.Errorf("cannot scan %T into Timestamp", src)
	}
}

func (t *Timestamp) parse(s string) error {
	for _, layout := range []string{sqliteTimeLayout, time.RFC3339Nano} {
		if parsed, err := time.Parse(layout, s); err == nil {
			t.Time = parsed.UTC()
			return nil
		}
	}
	return fmt.Errorf("unrecognized timestamp %q", s)
}

func (t Timestamp) Value() (driver.Value, error) {
	if t.IsZero() {
		return nil, nil
	}
	return t.UTC().Format(sqliteTimeLayout), nil
}
