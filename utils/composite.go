package utils

import (
	"math"

	"github.com/victorhaugaard/sugar-reset-sub000/models"
)

// ComputeHealthScore combines one day's nutrition profile, wellness entry and
// logging consistency into the overall score plus its six-part breakdown.
// consistencyDays is the number of days in the trailing week with any logged
// activity; w may be nil when the user skipped the day's check-in.
func ComputeHealthScore(p models.DailyNutritionProfile, w *models.WellnessEntry, consistencyDays int) models.ComprehensiveHealthScore {
	nutrition := ScoreDailyNutrition(p)
	wellness := ScoreWellness(w)
	consistency := math.Min(100, float64(consistencyDays)/7*100)

	overall := int(math.Round(float64(nutrition)*0.45 + float64(wellness)*0.40 + consistency*0.15))

	return models.ComprehensiveHealthScore{
		Overall:   overall,
		Nutrition: nutrition,
		Wellness:  wellness,
		Breakdown: models.ScoreBreakdown{
			MacroBalance:    macroBalanceScore(p),
			SugarIntake:     sugarIntakeScore(p.TotalSugar),
			Micronutrients:  micronutrientScore(p),
			MentalWellbeing: mentalWellbeingScore(w),
			SleepQuality:    sleepQualityScore(w),
			Consistency:     int(math.Round(consistency)),
		},
		Insights:        BuildInsights(p, w, overall),
		Recommendations: BuildRecommendations(p, w),
	}
}

// macroBalanceScore measures weighted deviation from a 30/40/30
// protein/carbs/fat calorie split. Protein and fat deviations weigh 2x,
// carbs 1.5x. A day with zero macro calories is neutral, not penalized.
func macroBalanceScore(p models.DailyNutritionProfile) int {
	totalMacros := p.TotalProtein*4 + p.TotalCarbs*4 + p.TotalFat*9
	if totalMacros == 0 {
		return 50
	}
	proteinPct := p.TotalProtein * 4 / totalMacros * 100
	carbsPct := p.TotalCarbs * 4 / totalMacros * 100
	fatPct := p.TotalFat * 9 / totalMacros * 100

	deviation := 2*math.Abs(proteinPct-30) + 1.5*math.Abs(carbsPct-40) + 2*math.Abs(fatPct-30)
	return int(math.Round(clampFloat(100-deviation, 0, 100)))
}

func sugarIntakeScore(totalSugar float64) int {
	switch {
	case totalSugar <= 25:
		return 100
	case totalSugar <= 50:
		return 75
	case totalSugar <= 75:
		return 50
	case totalSugar <= 100:
		return 25
	default:
		return 0
	}
}

// micronutrientScore is a fiber + variety proxy: more fiber and more distinct
// logged items suggest broader micronutrient coverage.
func micronutrientScore(p models.DailyNutritionProfile) int {
	score := 50
	switch {
	case p.TotalFiber >= 30:
		score += 30
	case p.TotalFiber >= 20:
		score += 20
	case p.TotalFiber >= 10:
		score += 10
	}
	switch {
	case p.FoodItemCount >= 5:
		score += 20
	case p.FoodItemCount >= 3:
		score += 10
	}
	if score > 100 {
		score = 100
	}
	return score
}

func mentalWellbeingScore(w *models.WellnessEntry) int {
	if w == nil {
		return 0
	}
	return int(math.Round(float64(w.Mood+w.Energy+w.Focus) / 15 * 100))
}

func sleepQualityScore(w *models.WellnessEntry) int {
	if w == nil {
		return 25
	}
	switch h := w.SleepHours; {
	case h >= 7 && h <= 9:
		return 100
	case h >= 6 && h <= 10:
		return 75
	case h >= 5 && h <= 11:
		return 50
	default:
		return 25
	}
}
