// internal/app/roster/summary.go
package roster

import (
	"math"

	"github.com/lumenadvising/lumenhub/internal/domain/models"
)

// Summarize rolls the view models up into portfolio metrics. Rates are
// rounded to two decimals so the JSON the console receives is stable.
func Summarize(records []StudentRecord) Summary {
	sum := Summary{Total: len(records)}
	if len(records) == 0 {
		return sum
	}

	var satTotal float64
	for _, rec := range records {
		if rec.Status == models.StudentActive {
			sum.ActiveCount++
		}
		if rec.Risk == RiskHigh {
			sum.AtRiskCount++
		}
		satTotal += rec.Satisfaction
	}

	sum.ActiveRate = round2(float64(sum.ActiveCount) / float64(len(records)))
	sum.AvgSatisfaction = round2(satTotal / float64(len(records)))
	return sum
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
