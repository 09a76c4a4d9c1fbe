package progress

import (
	"math"
	"time"
)

// CalculateNutritionProgress is a deterministic time-of-day placeholder
// standing in for real calorie aggregation: assume intake drifts towards
// 60% of target across the day. Isolated here so it can be swapped for a
// real nutrition-entry aggregation without touching the rest of the engine.
func CalculateNutritionProgress(now time.Time, targetCalories int) NutritionProgress {
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	hoursIntoDay := now.Sub(startOfDay).Hours()

	ratio := math.Min(hoursIntoDay/24, 1.0) * 0.6

	return NutritionProgress{
		Progress:        clampRatio(ratio),
		CurrentCalories: int(math.Round(float64(targetCalories) * ratio)),
		TargetCalories:  targetCalories,
		Placeholder:     true,
	}
}
