package services

import (
	"context"
	"errors"
	"math"
	"sort"
	"time"

	"github.com/victorhaugaard/sugar-reset-sub000/models"
	"github.com/victorhaugaard/sugar-reset-sub000/utils"

	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

// DefaultWindowDays is the trailing window used for history, trends and the
// consistency measure when the caller does not ask for something else.
const DefaultWindowDays = 7

type HealthScoreService struct{ db *gorm.DB }

func NewHealthScoreService(db *gorm.DB) *HealthScoreService { return &HealthScoreService{db: db} }

// ---------- pure aggregation ----------

// GroupEntriesByDay folds food entries into per-day totals keyed by the local
// calendar date of LoggedAt. It does not filter: callers narrow the slice to
// the window they care about first (the DB wrappers filter in SQL).
func GroupEntriesByDay(entries []models.FoodEntry) map[string]models.DailyNutritionProfile {
	profiles := map[string]models.DailyNutritionProfile{}
	for _, e := range entries {
		key := e.LoggedAt.Format(dateLayout)
		p := profiles[key]
		p.Date = key
		p.TotalCalories += e.Calories
		p.TotalProtein += e.Protein
		p.TotalCarbs += e.Carbs
		p.TotalFat += e.Fat
		p.TotalSugar += e.Sugar
		p.TotalFiber += e.Fiber
		p.TotalSodium += e.Sodium
		p.TotalSaturatedFat += e.SaturatedFat
		p.FoodItemCount++
		profiles[key] = p
	}
	return profiles
}

// CountActiveDays reports how many distinct calendar days in [from, to] have
// any logged activity, food or wellness.
func CountActiveDays(food []models.FoodEntry, wellness []models.WellnessEntry, from, to time.Time) int {
	days := map[string]struct{}{}
	for _, e := range food {
		if e.LoggedAt.Before(from) || e.LoggedAt.After(to) {
			continue
		}
		days[e.LoggedAt.Format(dateLayout)] = struct{}{}
	}
	for _, w := range wellness {
		if w.Date.Before(from) || w.Date.After(to) {
			continue
		}
		days[w.Date.Format(dateLayout)] = struct{}{}
	}
	return len(days)
}

// HistoricalAverages runs the per-day scorers across a trailing window and
// averages the results. Nutrition and wellness are averaged independently
// over their own logged days; the overall average is the simple mean of the
// two. Empty input yields zero averages and an empty profile list.
func HistoricalAverages(food []models.FoodEntry, wellness []models.WellnessEntry, windowDays int, now time.Time) models.HistoricalSummary {
	if windowDays <= 0 {
		windowDays = DefaultWindowDays
	}
	from := dayStart(now.AddDate(0, 0, -windowDays))

	profiles := GroupEntriesByDay(filterFood(food, from, now))

	keys := make([]string, 0, len(profiles))
	for k := range profiles {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	list := make([]models.DailyNutritionProfile, 0, len(keys))
	var nutritionSum float64
	for _, k := range keys {
		p := profiles[k]
		list = append(list, p)
		nutritionSum += float64(utils.ScoreDailyNutrition(p))
	}
	avgNutrition := avg(nutritionSum, len(keys))

	var wellnessSum float64
	wellnessDays := 0
	for i := range wellness {
		w := wellness[i]
		if w.Date.Before(from) || w.Date.After(now) {
			continue
		}
		wellnessSum += float64(utils.ScoreWellness(&w))
		wellnessDays++
	}
	avgWellness := avg(wellnessSum, wellnessDays)

	return models.HistoricalSummary{
		WindowDays:        windowDays,
		AvgNutritionScore: avgNutrition,
		AvgWellnessScore:  avgWellness,
		AvgOverallScore:   round2((avgNutrition + avgWellness) / 2),
		DailyProfiles:     list,
	}
}

// MacroTrends averages raw daily intake (not scores) over the days in the
// window that actually have logged food, and buckets the sugar average.
func MacroTrends(food []models.FoodEntry, windowDays int, now time.Time) models.MacroTrendReport {
	if windowDays <= 0 {
		windowDays = DefaultWindowDays
	}
	from := dayStart(now.AddDate(0, 0, -windowDays))

	profiles := GroupEntriesByDay(filterFood(food, from, now))
	report := models.MacroTrendReport{
		WindowDays:   windowDays,
		DaysWithData: len(profiles),
	}
	if len(profiles) == 0 {
		report.Recommendations = utils.TrendRecommendations(0, 0, 0, 0)
		return report
	}

	var cals, prot, carbs, fat, sugar, fiber float64
	for _, p := range profiles {
		cals += p.TotalCalories
		prot += p.TotalProtein
		carbs += p.TotalCarbs
		fat += p.TotalFat
		sugar += p.TotalSugar
		fiber += p.TotalFiber
	}
	n := len(profiles)
	report.AvgCalories = avg(cals, n)
	report.AvgProtein = avg(prot, n)
	report.AvgCarbs = avg(carbs, n)
	report.AvgFat = avg(fat, n)
	report.AvgSugar = avg(sugar, n)
	report.AvgFiber = avg(fiber, n)
	report.SugarStatus = utils.SugarStatus(report.AvgSugar)
	report.Recommendations = utils.TrendRecommendations(n, report.AvgSugar, report.AvgProtein, report.AvgFiber)
	return report
}

// ---------- DB-backed wrappers ----------

// DailyScore computes the full score report for one calendar date.
func (s *HealthScoreService) DailyScore(ctx context.Context, userID uint, date time.Time) (*models.ComprehensiveHealthScore, error) {
	start, end := dayStart(date), dayEnd(date)

	var entries []models.FoodEntry
	if err := s.db.WithContext(ctx).
		Where("user_id = ? AND logged_at BETWEEN ? AND ?", userID, start, end).
		Find(&entries).Error; err != nil {
		return nil, err
	}

	key := start.Format(dateLayout)
	profile := GroupEntriesByDay(entries)[key]
	profile.Date = key

	var wellness *models.WellnessEntry
	var row models.WellnessEntry
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND date BETWEEN ? AND ?", userID, start, end).
		First(&row).Error
	switch {
	case err == nil:
		wellness = &row
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, err
	}

	// Consistency looks at the trailing week ending on the scored day.
	consistencyDays, err := s.activeDays(ctx, userID, dayStart(start.AddDate(0, 0, -6)), end)
	if err != nil {
		return nil, err
	}

	score := utils.ComputeHealthScore(profile, wellness, consistencyDays)
	return &score, nil
}

// History returns window-level score averages plus the per-day profiles.
func (s *HealthScoreService) History(ctx context.Context, userID uint, windowDays int) (*models.HistoricalSummary, error) {
	if windowDays <= 0 {
		windowDays = DefaultWindowDays
	}
	now := time.Now()
	food, wellness, err := s.fetchWindow(ctx, userID, dayStart(now.AddDate(0, 0, -windowDays)), now)
	if err != nil {
		return nil, err
	}
	out := HistoricalAverages(food, wellness, windowDays, now)
	return &out, nil
}

// Trends returns the macro/sugar trend report for the window.
func (s *HealthScoreService) Trends(ctx context.Context, userID uint, windowDays int) (*models.MacroTrendReport, error) {
	if windowDays <= 0 {
		windowDays = DefaultWindowDays
	}
	now := time.Now()
	from := dayStart(now.AddDate(0, 0, -windowDays))

	var food []models.FoodEntry
	if err := s.db.WithContext(ctx).
		Where("user_id = ? AND logged_at BETWEEN ? AND ?", userID, from, now).
		Find(&food).Error; err != nil {
		return nil, err
	}
	out := MacroTrends(food, windowDays, now)
	return &out, nil
}

// ---------- internals ----------

func (s *HealthScoreService) fetchWindow(ctx context.Context, userID uint, from, to time.Time) ([]models.FoodEntry, []models.WellnessEntry, error) {
	var food []models.FoodEntry
	if err := s.db.WithContext(ctx).
		Where("user_id = ? AND logged_at BETWEEN ? AND ?", userID, from, to).
		Find(&food).Error; err != nil {
		return nil, nil, err
	}
	var wellness []models.WellnessEntry
	if err := s.db.WithContext(ctx).
		Where("user_id = ? AND date BETWEEN ? AND ?", userID, from, to).
		Find(&wellness).Error; err != nil {
		return nil, nil, err
	}
	return food, wellness, nil
}

func (s *HealthScoreService) activeDays(ctx context.Context, userID uint, from, to time.Time) (int, error) {
	food, wellness, err := s.fetchWindow(ctx, userID, from, to)
	if err != nil {
		return 0, err
	}
	return CountActiveDays(food, wellness, from, to), nil
}

func filterFood(entries []models.FoodEntry, from, to time.Time) []models.FoodEntry {
	out := make([]models.FoodEntry, 0, len(entries))
	for _, e := range entries {
		if e.LoggedAt.Before(from) || e.LoggedAt.After(to) {
			continue
		}
		out = append(out, e)
	}
	return out
}

func avg(sum float64, n int) float64 {
	if n <= 0 {
		return 0
	}
	return round2(sum / float64(n))
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }

func dayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
func dayEnd(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}
