package utils

import (
	"testing"

	"github.com/victorhaugaard/sugar-reset-sub000/models"

	"github.com/stretchr/testify/assert"
)

func TestBuildInsightsNeverEmpty(t *testing.T) {
	for _, overall := range []int{10, 65, 90} {
		out := BuildInsights(models.DailyNutritionProfile{TotalSugar: 40}, nil, overall)
		assert.NotEmpty(t, out)
	}
}

func TestBuildInsightsIndependentRules(t *testing.T) {
	p := models.DailyNutritionProfile{TotalSugar: 60}
	w := &models.WellnessEntry{Mood: 3, Energy: 3, Focus: 3, SleepHours: 5}

	out := BuildInsights(p, w, 50)
	// tier message + sugar warning + sleep nudge all fire
	assert.Len(t, out, 3)
}

func TestBuildRecommendationsFallback(t *testing.T) {
	// Nothing to improve: single positive default
	p := models.DailyNutritionProfile{TotalSugar: 10, TotalProtein: 90, TotalFiber: 25}
	w := &models.WellnessEntry{Mood: 5, Energy: 5, Focus: 5, SleepHours: 8}

	out := BuildRecommendations(p, w)
	assert.Len(t, out, 1)
}

func TestBuildRecommendationsIndependentRules(t *testing.T) {
	p := models.DailyNutritionProfile{TotalSugar: 60, TotalProtein: 20, TotalFiber: 5}
	w := &models.WellnessEntry{Mood: 2, Energy: 2, Focus: 3, SleepHours: 5}

	out := BuildRecommendations(p, w)
	assert.Len(t, out, 5) // sugar, protein, fiber, sleep, exercise
}

func TestBuildRecommendationsNeverEmptyWithoutWellness(t *testing.T) {
	out := BuildRecommendations(models.DailyNutritionProfile{TotalSugar: 10, TotalProtein: 90, TotalFiber: 25}, nil)
	assert.NotEmpty(t, out)
}

func TestSugarStatusBuckets(t *testing.T) {
	assert.Equal(t, "excellent", SugarStatus(25))
	assert.Equal(t, "good", SugarStatus(50))
	assert.Equal(t, "high", SugarStatus(75))
	assert.Equal(t, "very-high", SugarStatus(76))
}

func TestTrendRecommendations(t *testing.T) {
	assert.Equal(t,
		[]string{"Log a few days of meals to unlock trend insights."},
		TrendRecommendations(0, 0, 0, 0))

	balanced := TrendRecommendations(5, 30, 80, 25)
	assert.Len(t, balanced, 1)

	needsWork := TrendRecommendations(5, 70, 30, 10)
	assert.Len(t, needsWork, 3)
}
