package utils

import (
	"testing"

	"github.com/victorhaugaard/sugar-reset-sub000/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func f64(v float64) *float64 { return &v }

func TestScoreFoodEntryRejectsZeroCalories(t *testing.T) {
	_, err := ScoreFoodEntry(&models.FoodEntry{Calories: 0})
	assert.Error(t, err)

	_, err = ScoreFoodEntry(&models.FoodEntry{Calories: -50})
	assert.Error(t, err)
}

func TestScoreFoodEntryHealthyItem(t *testing.T) {
	// 70 base +15 protein density (10 per 100kcal) +10 fiber, no penalties
	entry := &models.FoodEntry{
		Calories:     200,
		Protein:      20,
		Fiber:        6,
		AddedSugar:   f64(2),
		NaturalSugar: f64(0),
		SaturatedFat: 1,
		Sodium:       100,
	}
	score, err := ScoreFoodEntry(entry)
	require.NoError(t, err)
	assert.Equal(t, 95, score)
}

func TestScoreFoodEntrySugaryItem(t *testing.T) {
	// 70 base, added sugar 50g = 50% of calories → −30, calories >600 → −5
	entry := &models.FoodEntry{
		Calories:   700,
		AddedSugar: f64(88), // 88*4/700 = 50.3%
	}
	score, err := ScoreFoodEntry(entry)
	require.NoError(t, err)
	assert.Equal(t, 35, score)
}

func TestScoreFoodEntryAddedSugarDefaultsToTotalSugar(t *testing.T) {
	// No explicit split: all sugar counts as added
	withSplit := &models.FoodEntry{Calories: 400, Sugar: 30, AddedSugar: f64(30)}
	withoutSplit := &models.FoodEntry{Calories: 400, Sugar: 30}

	a, err := ScoreFoodEntry(withSplit)
	require.NoError(t, err)
	b, err := ScoreFoodEntry(withoutSplit)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestScoreFoodEntryNaturalSugarMutedPenalty(t *testing.T) {
	// 45% of calories from natural sugar costs only 5 points
	entry := &models.FoodEntry{
		Calories:     100,
		Sugar:        12,
		AddedSugar:   f64(0),
		NaturalSugar: f64(12), // 48% of calories
	}
	score, err := ScoreFoodEntry(entry)
	require.NoError(t, err)
	assert.Equal(t, 65, score)
}

func TestScoreFoodEntryAlwaysInRange(t *testing.T) {
	for _, calories := range []float64{50, 200, 650, 1200} {
		for _, sugar := range []float64{0, 20, 60, 150} {
			for _, sodium := range []float64{0, 500, 900} {
				entry := &models.FoodEntry{
					Calories:     calories,
					Protein:      40,
					Fiber:        8,
					AddedSugar:   f64(sugar),
					SaturatedFat: 25,
					Sodium:       sodium,
				}
				score, err := ScoreFoodEntry(entry)
				require.NoError(t, err)
				assert.GreaterOrEqual(t, score, 0)
				assert.LessOrEqual(t, score, 100)
			}
		}
	}
}

func TestScoreFoodEntryAddedSugarMonotonic(t *testing.T) {
	prev := 101
	for added := 0.0; added <= 100; added += 2.5 {
		entry := &models.FoodEntry{Calories: 500, AddedSugar: f64(added)}
		score, err := ScoreFoodEntry(entry)
		require.NoError(t, err)
		assert.LessOrEqual(t, score, prev, "score rose when added sugar increased to %.1fg", added)
		prev = score
	}
}

func TestScoreDailyNutritionEmptyDayIsZero(t *testing.T) {
	assert.Equal(t, 0, ScoreDailyNutrition(models.DailyNutritionProfile{}))
}

func TestScoreDailyNutritionBalancedDay(t *testing.T) {
	// Hits every bonus tier: calorie range, all three macro bands, sugar ≤25,
	// fiber ≥25, sodium ≤2000, satfat <7% — clamps at 100.
	p := models.DailyNutritionProfile{
		TotalCalories:     2000,
		TotalProtein:      150,
		TotalCarbs:        200,
		TotalFat:          70,
		TotalSugar:        20,
		TotalFiber:        28,
		TotalSodium:       1800,
		TotalSaturatedFat: 15,
		FoodItemCount:     3,
	}
	score := ScoreDailyNutrition(p)
	assert.Greater(t, score, 70)
	assert.Equal(t, 100, score)
}

func TestScoreDailyNutritionSugarBandOrder(t *testing.T) {
	base := models.DailyNutritionProfile{
		TotalCalories: 2000,
		FoodItemCount: 1,
	}
	// no macros logged: macro section skipped; fiber <10 −5, sodium ≤2000 +5,
	// satfat <7% +5, calorie range +10 → 85 before the sugar band

	low := base
	low.TotalSugar = 20
	assert.Equal(t, 95, ScoreDailyNutrition(low)) // ≤25 → +10

	mid := base
	mid.TotalSugar = 40
	assert.Equal(t, 90, ScoreDailyNutrition(mid)) // ≤50 → +5

	high := base
	high.TotalSugar = 80
	assert.Equal(t, 70, ScoreDailyNutrition(high)) // >75 → −15

	// The >100 band is shadowed by >75; order is part of the contract
	veryHigh := base
	veryHigh.TotalSugar = 120
	assert.Equal(t, ScoreDailyNutrition(high), ScoreDailyNutrition(veryHigh))
}

func TestScoreDailyNutritionLowCalorieDay(t *testing.T) {
	p := models.DailyNutritionProfile{
		TotalCalories: 900,  // <1200 → −10
		TotalSugar:    90,   // >75 → −15
		TotalSodium:   3500, // >3000 → −10
		TotalFiber:    2,    // <10 → −5
		FoodItemCount: 2,
	}
	// satfat 0 <7% → +5; 70−10−15−10−5+5 = 35
	assert.Equal(t, 35, ScoreDailyNutrition(p))
}

func TestScoreWellnessBounds(t *testing.T) {
	best := &models.WellnessEntry{Mood: 5, Energy: 5, Focus: 5, SleepHours: 8}
	assert.Equal(t, 100, ScoreWellness(best))

	worst := &models.WellnessEntry{Mood: 1, Energy: 1, Focus: 1, SleepHours: 2}
	assert.Equal(t, 19, ScoreWellness(worst))

	assert.Equal(t, 0, ScoreWellness(nil))
}

func TestScoreWellnessSleepBands(t *testing.T) {
	mk := func(hours float64) *models.WellnessEntry {
		return &models.WellnessEntry{Mood: 3, Energy: 3, Focus: 3, SleepHours: hours}
	}
	// mood/energy/focus contribute 15+15+12 = 42
	assert.Equal(t, 72, ScoreWellness(mk(8)))   // 7–9h → 30
	assert.Equal(t, 62, ScoreWellness(mk(9.5))) // 6–10h → 20
	assert.Equal(t, 52, ScoreWellness(mk(5)))   // ≥5h → 10
	assert.Equal(t, 52, ScoreWellness(mk(12)))  // ≥5h but past every band → 10
	assert.Equal(t, 47, ScoreWellness(mk(3)))   // short night → 5
}
