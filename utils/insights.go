package utils

import (
	"github.com/victorhaugaard/sugar-reset-sub000/models"
)

// Rule-based text generation for the score report. Rules fire independently;
// any subset may apply, and both lists are guaranteed non-empty.

func BuildInsights(p models.DailyNutritionProfile, w *models.WellnessEntry, overall int) []string {
	var insights []string

	switch {
	case overall >= 80:
		insights = append(insights, "Great day! Your nutrition and wellness are on track.")
	case overall >= 60:
		insights = append(insights, "A solid day, with room for improvement.")
	default:
		insights = append(insights, "Focus on consistency — small daily wins add up.")
	}

	if p.TotalSugar <= 25 {
		insights = append(insights, "Excellent sugar control today. Keep it up.")
	} else if p.TotalSugar > 50 {
		insights = append(insights, "High sugar intake can cause energy dips and mood swings.")
	}

	if w != nil && w.SleepHours < 7 {
		insights = append(insights, "More sleep would likely lift your energy and focus.")
	}

	return insights
}

func BuildRecommendations(p models.DailyNutritionProfile, w *models.WellnessEntry) []string {
	var recs []string

	if p.TotalSugar > 50 {
		recs = append(recs, "Cut back on added sugar — swap sweets for fruit or nuts.")
	}
	if p.TotalProtein < 50 {
		recs = append(recs, "Add a protein source to each meal to reach at least 50g a day.")
	}
	if p.TotalFiber < 20 {
		recs = append(recs, "Work in more fiber: vegetables, beans, or whole grains.")
	}
	if w != nil {
		if w.SleepHours < 7 {
			recs = append(recs, "Aim for 7–9 hours of sleep tonight.")
		}
		if w.Mood < 3 || w.Energy < 3 {
			recs = append(recs, "A short walk or light exercise can lift mood and energy.")
		}
	}

	if len(recs) == 0 {
		recs = append(recs, "You're doing great — keep up your current habits!")
	}
	return recs
}

// SugarStatus buckets an average daily sugar intake in grams.
func SugarStatus(avgSugar float64) string {
	switch {
	case avgSugar <= 25:
		return "excellent"
	case avgSugar <= 50:
		return "good"
	case avgSugar <= 75:
		return "high"
	default:
		return "very-high"
	}
}

// TrendRecommendations derives window-level advice from average daily intake.
// With no logged days there is nothing to advise on, so it returns a single
// instructive message instead.
func TrendRecommendations(daysWithData int, avgSugar, avgProtein, avgFiber float64) []string {
	if daysWithData == 0 {
		return []string{"Log a few days of meals to unlock trend insights."}
	}

	var recs []string
	if avgSugar > 50 {
		recs = append(recs, "Your average sugar intake is high — target under 50g a day.")
	}
	if avgProtein < 50 {
		recs = append(recs, "Raise your average protein intake toward 50g+ per day.")
	}
	if avgFiber < 20 {
		recs = append(recs, "Most days fall short on fiber — aim for 20g or more.")
	}
	if len(recs) == 0 {
		recs = append(recs, "Your weekly averages look balanced — stay the course!")
	}
	return recs
}
