package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/victorhaugaard/sugar-reset-sub000/models"
	"github.com/victorhaugaard/sugar-reset-sub000/services"
	"github.com/victorhaugaard/sugar-reset-sub000/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type EntryController struct {
	Svc     *services.EntryService
	Analyze *services.AnalyzeService
}

func NewEntryController(svc *services.EntryService, analyze *services.AnalyzeService) *EntryController {
	return &EntryController{Svc: svc, Analyze: analyze}
}

type CreateEntryInput struct {
	Label        string   `json:"label"`
	LoggedAt     string   `json:"logged_at"` // YYYY-MM-DD, defaults to today
	Calories     float64  `json:"calories" binding:"gte=0"`
	Protein      float64  `json:"protein" binding:"gte=0"`
	Carbs        float64  `json:"carbs" binding:"gte=0"`
	Fat          float64  `json:"fat" binding:"gte=0"`
	Fiber        float64  `json:"fiber" binding:"gte=0"`
	Sugar        float64  `json:"sugar" binding:"gte=0"`
	AddedSugar   *float64 `json:"added_sugar" binding:"omitempty,gte=0"`
	NaturalSugar *float64 `json:"natural_sugar" binding:"omitempty,gte=0"`
	SaturatedFat float64  `json:"saturated_fat" binding:"gte=0"`
	Sodium       float64  `json:"sodium" binding:"gte=0"`
}

// POST /entries
func (h *EntryController) CreateEntry(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var input CreateEntryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	loggedAt := time.Now()
	if input.LoggedAt != "" {
		d, err := time.ParseInLocation("2006-01-02", input.LoggedAt, time.Local)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid logged_at date"})
			return
		}
		loggedAt = d
	}

	entry := models.FoodEntry{
		UserID:       userID,
		Label:        input.Label,
		LoggedAt:     loggedAt,
		Calories:     input.Calories,
		Protein:      input.Protein,
		Carbs:        input.Carbs,
		Fat:          input.Fat,
		Fiber:        input.Fiber,
		Sugar:        input.Sugar,
		AddedSugar:   input.AddedSugar,
		NaturalSugar: input.NaturalSugar,
		SaturatedFat: input.SaturatedFat,
		Sodium:       input.Sodium,
	}
	if err := h.Svc.Create(c.Request.Context(), &entry); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	// Item score rides along when the entry is scorable
	resp := gin.H{"entry": entry}
	if score, err := utils.ScoreFoodEntry(&entry); err == nil {
		resp["score"] = score
	}
	c.JSON(http.StatusCreated, resp)
}

// POST /entries/score — score a payload without saving it
func (h *EntryController) ScoreEntry(c *gin.Context) {
	var input CreateEntryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry := models.FoodEntry{
		Calories:     input.Calories,
		Protein:      input.Protein,
		Fiber:        input.Fiber,
		Sugar:        input.Sugar,
		AddedSugar:   input.AddedSugar,
		NaturalSugar: input.NaturalSugar,
		SaturatedFat: input.SaturatedFat,
		Sodium:       input.Sodium,
	}
	score, err := utils.ScoreFoodEntry(&entry)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"score": score})
}

// GET /entries?from=YYYY-MM-DD&to=YYYY-MM-DD
func (h *EntryController) ListEntries(c *gin.Context) {
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

	entries, err := h.Svc.ListRange(c.Request.Context(), userID, from, to)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, entries)
}

// DELETE /entries/:id
func (h *EntryController) DeleteEntry(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid entry id"})
		return
	}

	if err := h.Svc.Delete(c.Request.Context(), userID, uint(id)); err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "entry not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "entry deleted"})
}

// POST /entries/analyze  { "image_base64": "data:…" }
func (h *EntryController) AnalyzePhoto(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req struct {
		ImageBase64 string `json:"image_base64" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	estimate, err := h.Analyze.AnalyzePhoto(c.Request.Context(), req.ImageBase64)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	// Archive the photo; analysis stands on its own if the upload fails
	if url, err := utils.UploadMealPhoto(req.ImageBase64, userID); err == nil {
		estimate.PhotoURL = url
	}

	c.JSON(http.StatusOK, estimate)
}
