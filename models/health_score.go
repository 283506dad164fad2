package models

// Derived report types. Everything here is recomputed on demand from the
// user's FoodEntry/WellnessEntry rows and never persisted.

// DailyNutritionProfile is one calendar day's summed intake.
// FoodItemCount == 0 implies all totals are zero and the day scores 0.
type DailyNutritionProfile struct {
    Date              string  `json:"date"` // YYYY-MM-DD
    TotalCalories     float64 `json:"total_calories"`
    TotalProtein      float64 `json:"total_protein"`
    TotalCarbs        float64 `json:"total_carbs"`
    TotalFat          float64 `json:"total_fat"`
    TotalSugar        float64 `json:"total_sugar"`
    TotalFiber        float64 `json:"total_fiber"`
    TotalSodium       float64 `json:"total_sodium"`
    TotalSaturatedFat float64 `json:"total_saturated_fat"`
    FoodItemCount     int     `json:"food_item_count"`
}

// ScoreBreakdown explains how the overall score was composed, each part 0–100.
type ScoreBreakdown struct {
    MacroBalance    int `json:"macro_balance"`
    SugarIntake     int `json:"sugar_intake"`
    Micronutrients  int `json:"micronutrients"`
    MentalWellbeing int `json:"mental_wellbeing"`
    SleepQuality    int `json:"sleep_quality"`
    Consistency     int `json:"consistency"`
}

// ComprehensiveHealthScore is the full per-day report returned to the client.
type ComprehensiveHealthScore struct {
    Overall         int            `json:"overall"`
    Nutrition       int            `json:"nutrition"`
    Wellness        int            `json:"wellness"`
    Breakdown       ScoreBreakdown `json:"breakdown"`
    Insights        []string       `json:"insights"`
    Recommendations []string       `json:"recommendations"`
}

// HistoricalSummary averages per-day scores over a trailing window.
type HistoricalSummary struct {
    WindowDays        int                     `json:"window_days"`
    AvgNutritionScore float64                 `json:"avg_nutrition_score"`
    AvgWellnessScore  float64                 `json:"avg_wellness_score"`
    AvgOverallScore   float64                 `json:"avg_overall_score"`
    DailyProfiles     []DailyNutritionProfile `json:"daily_profiles"`
}

// MacroTrendReport averages raw macros (not scores) over the days in the
// window that actually have logged food.
type MacroTrendReport struct {
    WindowDays      int      `json:"window_days"`
    DaysWithData    int      `json:"days_with_data"`
    AvgCalories     float64  `json:"avg_calories"`
    AvgProtein      float64  `json:"avg_protein"`
    AvgCarbs        float64  `json:"avg_carbs"`
    AvgFat          float64  `json:"avg_fat"`
    AvgSugar        float64  `json:"avg_sugar"`
    AvgFiber        float64  `json:"avg_fiber"`
    SugarStatus     string   `json:"sugar_status"` // excellent|good|high|very-high
    Recommendations []string `json:"recommendations"`
}

// FoodEstimate is what the photo-analysis pipeline returns: a best-effort
// nutrient guess shaped like a FoodEntry, plus how much to trust it.
type FoodEstimate struct {
    Label        string  `json:"label"`
    Calories     float64 `json:"calories"`
    Protein      float64 `json:"protein"`
    Carbs        float64 `json:"carbs"`
    Fat          float64 `json:"fat"`
    Fiber        float64 `json:"fiber"`
    Sugar        float64 `json:"sugar"`
    SaturatedFat float64 `json:"saturated_fat"`
    Sodium       float64 `json:"sodium"`
    Confidence   float64 `json:"confidence"` // 0–1
    PhotoURL     string  `json:"photo_url,omitempty"`
}
