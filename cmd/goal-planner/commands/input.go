package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/viper"

	"goal-planner/internal/models"
)

// plannerInput is the profile file read by validate and run. Any format
// viper understands works; the type is taken from the extension.
type plannerInput struct {
	Profile models.FinancialProfile  `mapstructure:"profile"`
	Assets  []models.InvestmentAsset `mapstructure:"assets"`
}

func loadPlannerInput(path string) (*plannerInput, error) {
	if path == "" {
		return nil, fmt.Errorf("--profile is required")
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading profile file: %w", err)
	}

	var in plannerInput
	if err := v.Unmarshal(&in); err != nil {
		return nil, fmt.Errorf("failed to decode profile file: %w", err)
	}

	// assets written by hand usually have no id yet
	for i := range in.Assets {
		if in.Assets[i].ID == "" {
			in.Assets[i].ID = models.NewAsset(in.Assets[i].AssetType).ID
		}
	}
	return &in, nil
}

func loadResult(path string) (*models.GoalPlanningResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading result file: %w", err)
	}
	var result models.GoalPlanningResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("failed to decode result file: %w", err)
	}
	return &result, nil
}
