package controllers

import (
	"net/http"
	"time"

	"github.com/victorhaugaard/sugar-reset-sub000/services"

	"github.com/gin-gonic/gin"
)

type WellnessController struct {
	Svc *services.WellnessService
}

func NewWellnessController(svc *services.WellnessService) *WellnessController {
	return &WellnessController{Svc: svc}
}

type WellnessInput struct {
	Date       string  `json:"date"` // YYYY-MM-DD, defaults to today
	Mood       int     `json:"mood" binding:"required,min=1,max=5"`
	Energy     int     `json:"energy" binding:"required,min=1,max=5"`
	Focus      int     `json:"focus" binding:"required,min=1,max=5"`
	SleepHours float64 `json:"sleep_hours" binding:"gte=0,lte=24"`
}

// PUT /wellness — one check-in per calendar day, last write wins
func (h *WellnessController) UpsertWellness(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var input WellnessInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	date := time.Now()
	if input.Date != "" {
		d, err := time.ParseInLocation("2006-01-02", input.Date, time.Local)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date"})
			return
		}
		date = d
	}

	entry, err := h.Svc.Upsert(c.Request.Context(), userID, date,
		input.Mood, input.Energy, input.Focus, input.SleepHours)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, entry)
}

// GET /wellness?from=YYYY-MM-DD&to=YYYY-MM-DD
func (h *WellnessController) ListWellness(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	from, to, err := rangeFromQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rows, err := h.Svc.ListRange(c.Request.Context(), userID, from, to)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, rows)
}
