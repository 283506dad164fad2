package services

import (
	"context"
	"errors"
	"time"

	"github.com/victorhaugaard/sugar-reset-sub000/models"

	"gorm.io/gorm"
)

type WellnessService struct{ db *gorm.DB }

func NewWellnessService(db *gorm.DB) *WellnessService { return &WellnessService{db: db} }

// Upsert writes the day's check-in, replacing any previous ratings for the
// same date. The date is normalized to local midnight so one row per calendar
// day holds.
func (s *WellnessService) Upsert(ctx context.Context, userID uint, date time.Time, mood, energy, focus int, sleepHours float64) (*models.WellnessEntry, error) {
	if mood < 1 || mood > 5 || energy < 1 || energy > 5 || focus < 1 || focus > 5 {
		return nil, errors.New("mood, energy and focus must be between 1 and 5")
	}
	if sleepHours < 0 {
		return nil, errors.New("sleep hours must not be negative")
	}

	day := dayStart(date)
	row := models.WellnessEntry{UserID: userID, Date: day}
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, day).
		Assign(map[string]interface{}{
			"mood":        mood,
			"energy":      energy,
			"focus":       focus,
			"sleep_hours": sleepHours,
		}).
		FirstOrCreate(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (s *WellnessService) GetByDate(ctx context.Context, userID uint, date time.Time) (*models.WellnessEntry, error) {
	var row models.WellnessEntry
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND date BETWEEN ? AND ?", userID, dayStart(date), dayEnd(date)).
		First(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (s *WellnessService) ListRange(ctx context.Context, userID uint, from, to time.Time) ([]models.WellnessEntry, error) {
	var rows []models.WellnessEntry
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND date BETWEEN ? AND ?", userID, dayStart(from), dayEnd(to)).
		Order("date ASC").
		Find(&rows).Error
	return rows, err
}
