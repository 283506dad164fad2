package services

import (
	"context"
	"errors"

	"github.com/victorhaugaard/sugar-reset-sub000/models"
)

// AnalyzeService turns a meal photo into a nutrient estimate: recognize
// labels, look up the best match, and attach an overall confidence.
type AnalyzeService struct {
	vision *VisionService
	food   *FoodDataService
}

func NewAnalyzeService(vision *VisionService, food *FoodDataService) *AnalyzeService {
	return &AnalyzeService{vision: vision, food: food}
}

func (s *AnalyzeService) AnalyzePhoto(ctx context.Context, base64Img string) (*models.FoodEstimate, error) {
	labels, err := s.vision.DetectFoodLabels(ctx, base64Img)
	if err != nil {
		return nil, err
	}
	if len(labels) == 0 {
		return nil, errors.New("no food detected in image")
	}

	best := labels[0]
	est, err := s.food.LookupNutrients(best.Name)
	if err != nil {
		return nil, err
	}
	est.Confidence = estimateConfidence(best.Confidence, est)
	return est, nil
}

// estimateConfidence blends the recognizer's label confidence with how
// complete the nutrient record came back, weighted toward the recognizer.
func estimateConfidence(labelConf float64, est *models.FoodEstimate) float64 {
	fields := []float64{
		est.Calories, est.Protein, est.Carbs, est.Fat,
		est.Fiber, est.Sugar, est.SaturatedFat, est.Sodium,
	}
	present := 0
	for _, f := range fields {
		if f > 0 {
			present++
		}
	}
	completeness := float64(present) / float64(len(fields))

	c := 0.6*labelConf + 0.4*completeness
	if c < 0 {
		c = 0
	}
	if c > 1 {
		c = 1
	}
	return c
}
