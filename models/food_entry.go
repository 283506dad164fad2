package models

import (
    "time"

    "gorm.io/gorm"
)

// One logged consumption event with its full nutrient snapshot.
// Entries are immutable after creation; users delete and re-log to correct.
type FoodEntry struct {
    gorm.Model
    UserID   uint      `gorm:"index;not null"`
    Label    string    // human label, e.g. "greek yogurt"
    LoggedAt time.Time `gorm:"index;not null"` // only the calendar date matters for grouping

    Calories float64 // kcal
    Protein  float64 // g
    Carbs    float64 // g
    Fat      float64 // g
    Fiber    float64 // g
    Sugar    float64 // g, total

    // Added/natural sugar split is optional on the logging side. When the
    // split is missing, all sugar is treated as added (the conservative read).
    AddedSugar   *float64 // g
    NaturalSugar *float64 // g

    SaturatedFat float64 // g
    Sodium       float64 // mg
}

// AddedSugarGrams returns the added-sugar amount, falling back to total sugar
// when the entry has no explicit split.
func (e *FoodEntry) AddedSugarGrams() float64 {
    if e.AddedSugar != nil {
        return *e.AddedSugar
    }
    return e.Sugar
}

// NaturalSugarGrams returns the natural-sugar amount, zero when unspecified.
func (e *FoodEntry) NaturalSugarGrams() float64 {
    if e.NaturalSugar != nil {
        return *e.NaturalSugar
    }
    return 0
}
