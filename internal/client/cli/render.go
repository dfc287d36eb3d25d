package cli

import (
	"fmt"
	"strings"

	"github.com/dmitrijs2005/heartrisk/internal/client/models"
	"github.com/dmitrijs2005/heartrisk/internal/client/services"
	"github.com/dmitrijs2005/heartrisk/internal/risk"
)

const historyDateLayout = "Jan 02, 2006"

func formatResult(r *services.Result) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Risk score: %.2f\n", r.RiskScore)
	fmt.Fprintf(&b, "Category:   %s [%s]\n", r.Category, r.Color)
	b.WriteString("Recommendations:\n")
	for _, rec := range r.Recommendations {
		fmt.Fprintf(&b, "  - %s\n", rec)
	}
	if r.Saved {
		fmt.Fprintf(&b, "Saved as assessment #%d\n", r.AssessmentID)
	}
	return b.String()
}

// formatHistoryRow renders one stored assessment. Oldpeak is shown as the
// fatigue level the user picked.
func formatHistoryRow(a models.Assessment) string {
	date := "unknown date"
	if !a.Timestamp.IsZero() {
		date = a.Timestamp.Local().Format(historyDateLayout)
	}
	c := risk.Categorize(a.RiskScore)
	return fmt.Sprintf("%s  %6.2f  %-8s | chest pain %s, BP %d, chol %d, max HR %d, angina %s, fatigue %d, slope %s",
		date, a.RiskScore, c,
		a.ChestPainType, a.RestingBP, a.Cholesterol, a.MaxHR, a.ExerciseAngina,
		risk.FatigueLevelFromOldpeak(a.Oldpeak), a.STSlope)
}
