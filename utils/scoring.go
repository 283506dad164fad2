package utils

import (
	"errors"
	"math"

	"github.com/victorhaugaard/sugar-reset-sub000/models"
)

// Threshold-based scorers for logged food and wellness data. All bands are
// evaluated top-to-bottom, first match wins; the band order is part of the
// scoring contract and must not be rearranged.

// ScoreFoodEntry rates a single logged item 0–100 from its nutrient makeup.
// Starts at a neutral 70, rewards protein density and fiber, penalizes added
// sugar (the primary signal), saturated fat, sodium, and calorie density.
func ScoreFoodEntry(e *models.FoodEntry) (int, error) {
	if e.Calories <= 0 {
		return 0, errors.New("calories must be greater than zero")
	}

	score := 70

	// Protein per 100 kcal
	proteinRatio := e.Protein / (e.Calories / 100.0)
	switch {
	case proteinRatio > 8:
		score += 15
	case proteinRatio > 5:
		score += 10
	case proteinRatio > 3:
		score += 5
	}

	switch {
	case e.Fiber >= 5:
		score += 10
	case e.Fiber >= 3:
		score += 6
	case e.Fiber >= 1:
		score += 3
	}

	// Added sugar as a share of the item's calories (4 kcal/g)
	addedSugarPct := e.AddedSugarGrams() * 4 / e.Calories * 100
	switch {
	case addedSugarPct > 30:
		score -= 30
	case addedSugarPct > 20:
		score -= 20
	case addedSugarPct > 10:
		score -= 10
	case addedSugarPct > 5:
		score -= 5
	}

	// Natural sugar is penalized far more lightly
	naturalSugarPct := e.NaturalSugarGrams() * 4 / e.Calories * 100
	if naturalSugarPct > 40 {
		score -= 5
	}

	// Saturated fat share of calories (9 kcal/g)
	satFatPct := e.SaturatedFat * 9 / e.Calories * 100
	switch {
	case satFatPct > 15:
		score -= 15
	case satFatPct > 10:
		score -= 10
	case satFatPct > 7:
		score -= 5
	}

	switch {
	case e.Sodium > 800:
		score -= 10
	case e.Sodium > 600:
		score -= 7
	case e.Sodium > 400:
		score -= 4
	}

	if e.Calories > 600 {
		score -= 5
	}

	return clampScore(score), nil
}

// ScoreDailyNutrition rates one day's aggregated intake 0–100.
// A day with no logged food scores 0 outright.
func ScoreDailyNutrition(p models.DailyNutritionProfile) int {
	if p.FoodItemCount == 0 {
		return 0
	}

	score := 70

	switch {
	case p.TotalCalories >= 1600 && p.TotalCalories <= 2400:
		score += 10
	case p.TotalCalories < 1200 || p.TotalCalories > 3000:
		score -= 10
	}

	totalMacros := p.TotalProtein*4 + p.TotalCarbs*4 + p.TotalFat*9
	if totalMacros > 0 {
		proteinPct := p.TotalProtein * 4 / totalMacros * 100
		carbsPct := p.TotalCarbs * 4 / totalMacros * 100
		fatPct := p.TotalFat * 9 / totalMacros * 100

		switch {
		case proteinPct >= 25 && proteinPct <= 35:
			score += 8
		case proteinPct < 15:
			score -= 8
		}
		switch {
		case carbsPct >= 35 && carbsPct <= 50:
			score += 7
		case carbsPct > 65:
			score -= 10
		}
		switch {
		case fatPct >= 20 && fatPct <= 35:
			score += 5
		case fatPct > 40:
			score -= 7
		}
	}

	// Band order carried over from the original scoring table as-is,
	// shadowed trailing branches included.
	switch {
	case p.TotalSugar <= 25:
		score += 10
	case p.TotalSugar <= 50:
		score += 5
	case p.TotalSugar > 75:
		score -= 15
	case p.TotalSugar > 100:
		score -= 25
	}

	switch {
	case p.TotalFiber >= 25:
		score += 10
	case p.TotalFiber >= 15:
		score += 5
	case p.TotalFiber < 10:
		score -= 5
	}

	switch {
	case p.TotalSodium <= 2000:
		score += 5
	case p.TotalSodium > 3000:
		score -= 10
	case p.TotalSodium > 4000:
		score -= 20
	}

	if p.TotalCalories > 0 {
		satFatPct := p.TotalSaturatedFat * 9 / p.TotalCalories * 100
		switch {
		case satFatPct < 7:
			score += 5
		case satFatPct > 10:
			score -= 10
		case satFatPct > 13:
			score -= 15
		}
	}

	return clampScore(score)
}

// ScoreWellness rates one day's self-ratings. Mood and energy carry up to 25
// points each, focus up to 20, and sleep contributes a banded 5–30, so the
// result is naturally 0–100 for in-range inputs. A nil entry scores 0.
func ScoreWellness(w *models.WellnessEntry) int {
	if w == nil {
		return 0
	}
	score := float64(w.Mood)/5*25 + float64(w.Energy)/5*25 + float64(w.Focus)/5*20
	score += sleepPoints(w.SleepHours)
	return int(math.Round(score))
}

func sleepPoints(hours float64) float64 {
	switch {
	case hours >= 7 && hours <= 9:
		return 30
	case hours >= 6 && hours <= 10:
		return 20
	case hours >= 5:
		return 10
	default:
		return 5
	}
}

func clampScore(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
