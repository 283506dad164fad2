package controllers

import (
	"net/http"

	"github.com/victorhaugaard/sugar-reset-sub000/config"
	"github.com/victorhaugaard/sugar-reset-sub000/models"
	"github.com/victorhaugaard/sugar-reset-sub000/utils"

	"github.com/gin-gonic/gin"
)

// GET /user/profile
func GetProfile(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}

	out := gin.H{
		"id":        user.ID,
		"email":     user.Email,
		"full_name": user.FullName,
		"height_cm": user.HeightCm,
		"weight_kg": user.WeightKg,
	}
	if bmi, err := utils.CalculateBMI(user.HeightCm, user.WeightKg); err == nil {
		out["bmi"] = bmi
		out["bmi_category"] = utils.BMICategory(bmi)
	}

	c.JSON(http.StatusOK, out)
}

type ProfileInput struct {
	FullName string  `json:"full_name"`
	HeightCm float64 `json:"height_cm" binding:"omitempty,gt=0"`
	WeightKg float64 `json:"weight_kg" binding:"omitempty,gt=0"`
}

// PUT /user/profile
func UpdateProfile(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var input ProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}

	if input.FullName != "" {
		user.FullName = input.FullName
	}
	if input.HeightCm > 0 {
		user.HeightCm = input.HeightCm
	}
	if input.WeightKg > 0 {
		user.WeightKg = input.WeightKg
	}

	if err := config.DB.Save(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "profile updated"})
}
