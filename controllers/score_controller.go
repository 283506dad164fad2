package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/victorhaugaard/sugar-reset-sub000/services"

	"github.com/gin-gonic/gin"
)

type ScoreController struct {
	Svc *services.HealthScoreService
}

func NewScoreController(svc *services.HealthScoreService) *ScoreController {
	return &ScoreController{Svc: svc}
}

// GET /scores/daily?date=YYYY-MM-DD (defaults to today)
func (h *ScoreController) GetDailyScore(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	date := time.Now()
	if v := c.Query("date"); v != "" {
		d, err := time.ParseInLocation("2006-01-02", v, time.Local)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date"})
			return
		}
		date = d
	}

	out, err := h.Svc.DailyScore(c.Request.Context(), userID, date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, out)
}

// GET /scores/history?days=7
func (h *ScoreController) GetHistory(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	days, err := daysFromQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	out, err := h.Svc.History(c.Request.Context(), userID, days)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, out)
}

// GET /scores/trends?days=7
func (h *ScoreController) GetTrends(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	days, err := daysFromQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	out, err := h.Svc.Trends(c.Request.Context(), userID, days)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, out)
}

// --- helpers shared across controllers ---

func userIDFromCtx(c *gin.Context) (uint, bool) {
	v, ok := c.Get("userID")
	if !ok {
		return 0, false
	}
	switch id := v.(type) {
	case uint:
		return id, true
	case int:
		return uint(id), true
	case int64:
		return uint(id), true
	default:
		return 0, false
	}
}

func daysFromQuery(c *gin.Context) (int, error) {
	v := c.DefaultQuery("days", strconv.Itoa(services.DefaultWindowDays))
	days, err := strconv.Atoi(v)
	if err != nil || days < 1 || days > 365 {
		return 0, errors.New("days must be an integer between 1 and 365")
	}
	return days, nil
}

func rangeFromQuery(c *gin.Context) (time.Time, time.Time, error) {
	now := time.Now()
	fromStr := c.DefaultQuery("from", now.AddDate(0, 0, -services.DefaultWindowDays).Format("2006-01-02"))
	toStr := c.DefaultQuery("to", now.Format("2006-01-02"))

	from, err := time.ParseInLocation("2006-01-02", fromStr, now.Location())
	if err != nil {
		return time.Time{}, time.Time{}, errors.New("invalid from date")
	}
	to, err := time.ParseInLocation("2006-01-02", toStr, now.Location())
	if err != nil {
		return time.Time{}, time.Time{}, errors.New("invalid to date")
	}
	if to.Before(from) {
		return time.Time{}, time.Time{}, errors.New("`to` must be on/after `from`")
	}
	return from, to, nil
}
