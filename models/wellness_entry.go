package models

import (
    "time"

    "gorm.io/gorm"
)

// WellnessEntry is one day's subjective self-rating. One row per user per
// calendar date; re-submitting a date replaces the previous ratings.
type WellnessEntry struct {
    gorm.Model
    UserID uint      `gorm:"uniqueIndex:idx_wellness_user_date;not null"`
    Date   time.Time `gorm:"uniqueIndex:idx_wellness_user_date;not null"` // midnight local

    Mood       int     // 1–5
    Energy     int     // 1–5
    Focus      int     // 1–5
    SleepHours float64 // previous night, typically 0–14
}
