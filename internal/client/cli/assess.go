package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/heartrisk/internal/client/models"
	"github.com/dmitrijs2005/heartrisk/internal/client/services"
	"github.com/dmitrijs2005/heartrisk/internal/common"
)

// Profile prints the age and sex the scorer will receive.
func (a *App) Profile(ctx context.Context) error {
	p, err := a.store.GetUserProfile(ctx, a.userID)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Email: %s\nAge:   %d\nSex:   %s\n", a.email, p.Age, p.Sex)
	return nil
}

func (a *App) readForm() (models.AssessmentForm, error) {
	var (
		f   models.AssessmentForm
		err error
	)
	fields := []struct {
		prompt string
		dst    *string
	}{
		{"Chest pain type (ATA, TA, NAP, ASY)", &f.ChestPainType},
		{"Resting blood pressure (mm Hg)", &f.RestingBP},
		{"Cholesterol (mg/dl)", &f.Cholesterol},
		{"Maximum heart rate", &f.MaxHR},
		{"Exercise-induced angina (Y/N)", &f.ExerciseAngina},
	}
	for _, fld := range fields {
		if *fld.dst, err = getSimpleText(a.reader, fld.prompt, a.out); err != nil {
			return f, err
		}
	}

	level, err := getSimpleText(a.reader, "Fatigue level after exercise (1-10)", a.out)
	if err != nil {
		return f, err
	}
	// Non-numeric input stays 0 and is rejected by validation.
	f.FatigueLevel, _ = strconv.Atoi(level)

	if f.STSlope, err = getSimpleText(a.reader, "ST slope (Up, Flat, Down)", a.out); err != nil {
		return f, err
	}
	return f, nil
}

// Assess collects the form, submits it and shows the result screen. When
// only saving failed the result is still shown.
func (a *App) Assess(ctx context.Context) error {
	form, err := a.readForm()
	if err != nil {
		return err
	}

	var out services.Outcome
	select {
	case out = <-a.pipeline.SubmitAsync(ctx, a.userID, form):
	case <-ctx.Done():
		return ctx.Err()
	}

	if out.Result != nil {
		fmt.Fprint(a.out, formatResult(out.Result))
	}
	if out.Err != nil && errors.Is(out.Err, common.ErrPersistenceFailed) {
		fmt.Fprintln(a.out, "Note: this result was not saved to your history")
	}
	return out.Err
}

// History lists earlier assessments, most recent first.
func (a *App) History(ctx context.Context) error {
	list, err := a.store.History(ctx, a.userID)
	if err != nil {
		return err
	}
	if len(list) == 0 {
		fmt.Fprintln(a.out, "No assessments yet")
		return nil
	}
	for _, item := range list {
		fmt.Fprintln(a.out, formatHistoryRow(item))
	}
	return nil
}
