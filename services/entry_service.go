package services

import (
	"context"
	"errors"
	"time"

	"github.com/victorhaugaard/sugar-reset-sub000/models"

	"gorm.io/gorm"
)

type EntryService struct{ db *gorm.DB }

func NewEntryService(db *gorm.DB) *EntryService { return &EntryService{db: db} }

// Create stores a new food entry. Entries are immutable once written; a wrong
// log is deleted and re-entered rather than edited.
func (s *EntryService) Create(ctx context.Context, entry *models.FoodEntry) error {
	if entry.UserID == 0 {
		return errors.New("entry must belong to a user")
	}
	if entry.LoggedAt.IsZero() {
		entry.LoggedAt = time.Now()
	}
	return s.db.WithContext(ctx).Create(entry).Error
}

func (s *EntryService) ListRange(ctx context.Context, userID uint, from, to time.Time) ([]models.FoodEntry, error) {
	var entries []models.FoodEntry
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND logged_at BETWEEN ? AND ?", userID, dayStart(from), dayEnd(to)).
		Order("logged_at ASC").
		Find(&entries).Error
	return entries, err
}

func (s *EntryService) Delete(ctx context.Context, userID, entryID uint) error {
	res := s.db.WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, entryID).
		Delete(&models.FoodEntry{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
