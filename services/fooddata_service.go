package services

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/victorhaugaard/sugar-reset-sub000/models"
)

// FoodDataService looks up nutrient estimates for a food label via the
// Edamam food-database parser API.
type FoodDataService struct {
	appID, appKey string
	client        *http.Client
}

func NewFoodDataService() *FoodDataService {
	return &FoodDataService{
		appID:  os.Getenv("EDAMAM_APP_ID"),
		appKey: os.Getenv("EDAMAM_APP_KEY"),
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

type foodParserResponse struct {
	Hints []struct {
		Food struct {
			FoodID    string             `json:"foodId"`
			Label     string             `json:"label"`
			Category  string             `json:"category"`
			Nutrients map[string]float64 `json:"nutrients"`
		} `json:"food"`
	} `json:"hints"`
}

// LookupNutrients returns a per-100g nutrient estimate for the best database
// match of the given label. Missing nutrient keys stay zero.
func (s *FoodDataService) LookupNutrients(label string) (*models.FoodEstimate, error) {
	u := fmt.Sprintf(
		"https://api.edamam.com/api/food-database/v2/parser?ingr=%s&app_id=%s&app_key=%s",
		url.QueryEscape(label), s.appID, s.appKey,
	)

	resp, err := s.client.Get(u)
	if err != nil {
		return nil, fmt.Errorf("failed to call food database: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read food database response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("food database API error %d: %s", resp.StatusCode, string(body))
	}

	var pr foodParserResponse
	if err := json.Unmarshal(body, &pr); err != nil {
		return nil, fmt.Errorf("failed to parse food database JSON: %w", err)
	}
	if len(pr.Hints) == 0 {
		return nil, fmt.Errorf("no nutrition data found for %q", label)
	}

	f := pr.Hints[0].Food
	n := f.Nutrients
	return &models.FoodEstimate{
		Label:        f.Label,
		Calories:     n["ENERC_KCAL"],
		Protein:      n["PROCNT"],
		Carbs:        n["CHOCDF"],
		Fat:          n["FAT"],
		Fiber:        n["FIBTG"],
		Sugar:        n["SUGAR"],
		SaturatedFat: n["FASAT"],
		Sodium:       n["NA"],
	}, nil
}
