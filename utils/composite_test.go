package utils

import (
	"testing"

	"github.com/victorhaugaard/sugar-reset-sub000/models"

	"github.com/stretchr/testify/assert"
)

func TestComputeHealthScoreConsistency(t *testing.T) {
	p := models.DailyNutritionProfile{}

	full := ComputeHealthScore(p, nil, 7)
	assert.Equal(t, 100, full.Breakdown.Consistency)

	over := ComputeHealthScore(p, nil, 12)
	assert.Equal(t, 100, over.Breakdown.Consistency) // capped

	none := ComputeHealthScore(p, nil, 0)
	assert.Equal(t, 0, none.Breakdown.Consistency)
}

func TestComputeHealthScoreWeighting(t *testing.T) {
	// Empty day: nutrition 0; perfect wellness 100; consistency 100.
	// overall = 0×0.45 + 100×0.40 + 100×0.15 = 55
	w := &models.WellnessEntry{Mood: 5, Energy: 5, Focus: 5, SleepHours: 8}
	score := ComputeHealthScore(models.DailyNutritionProfile{}, w, 7)

	assert.Equal(t, 0, score.Nutrition)
	assert.Equal(t, 100, score.Wellness)
	assert.Equal(t, 55, score.Overall)
}

func TestMacroBalanceScore(t *testing.T) {
	// No macro calories: neutral, not penalized
	assert.Equal(t, 50, macroBalanceScore(models.DailyNutritionProfile{}))

	// Exact 30/40/30 split: 75g protein (300), 100g carbs (400), 100/3g fat (300)
	perfect := models.DailyNutritionProfile{
		TotalProtein: 75,
		TotalCarbs:   100,
		TotalFat:     100.0 / 3.0,
	}
	assert.Equal(t, 100, macroBalanceScore(perfect))

	// All-carb day deviates hard on every axis and floors at 0:
	// 2×30 + 1.5×60 + 2×30 = 210 over the cap
	skewed := models.DailyNutritionProfile{TotalCarbs: 300}
	assert.Equal(t, 0, macroBalanceScore(skewed))
}

func TestSugarIntakeScoreLadder(t *testing.T) {
	assert.Equal(t, 100, sugarIntakeScore(25))
	assert.Equal(t, 75, sugarIntakeScore(50))
	assert.Equal(t, 50, sugarIntakeScore(75))
	assert.Equal(t, 25, sugarIntakeScore(100))
	assert.Equal(t, 0, sugarIntakeScore(101))
}

func TestMicronutrientScore(t *testing.T) {
	// base 50
	assert.Equal(t, 50, micronutrientScore(models.DailyNutritionProfile{}))

	// fiber 30 (+30) and 6 items (+20) caps at 100
	rich := models.DailyNutritionProfile{TotalFiber: 32, FoodItemCount: 6}
	assert.Equal(t, 100, micronutrientScore(rich))

	mid := models.DailyNutritionProfile{TotalFiber: 12, FoodItemCount: 3}
	assert.Equal(t, 70, micronutrientScore(mid))
}

func TestMentalWellbeingScore(t *testing.T) {
	assert.Equal(t, 0, mentalWellbeingScore(nil))
	assert.Equal(t, 100, mentalWellbeingScore(&models.WellnessEntry{Mood: 5, Energy: 5, Focus: 5}))
	assert.Equal(t, 60, mentalWellbeingScore(&models.WellnessEntry{Mood: 3, Energy: 3, Focus: 3}))
}

func TestSleepQualityScoreBands(t *testing.T) {
	mk := func(h float64) *models.WellnessEntry { return &models.WellnessEntry{SleepHours: h} }
	assert.Equal(t, 100, sleepQualityScore(mk(8)))
	assert.Equal(t, 75, sleepQualityScore(mk(6)))
	assert.Equal(t, 50, sleepQualityScore(mk(11)))
	assert.Equal(t, 25, sleepQualityScore(mk(3)))
	assert.Equal(t, 25, sleepQualityScore(nil))
}
