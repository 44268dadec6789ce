package validation

import (
	"fmt"
	"sort"

	"github.com/xeipuuv/gojsonschema"

	"goal-planner/internal/models"
)

// AssetListSchema is the JSON schema every asset list must satisfy before
// it is sent for analysis.
func AssetListSchema() map[string]interface{} {
	nonNegative := map[string]interface{}{"type": "number", "minimum": 0}

	assetTypes := make([]interface{}, len(models.AssetTypes))
	for i, t := range models.AssetTypes {
		assetTypes[i] = t
	}

	return map[string]interface{}{
		"type": "array",
		"items": map[string]interface{}{
			"type":     "object",
			"required": []interface{}{"id", "asset_type", "name", "amount"},
			"properties": map[string]interface{}{
				"id":               map[string]interface{}{"type": "string", "minLength": 1},
				"asset_type":       map[string]interface{}{"type": "string", "enum": assetTypes},
				"name":             map[string]interface{}{"type": "string", "minLength": 1},
				"amount":           nonNegative,
				"expected_returns": map[string]interface{}{"type": "number"},
				"current_value":    nonNegative,
				"tenure":           nonNegative,
				"shares":           nonNegative,
				"purchase_price":   nonNegative,
				"dividend_yield":   nonNegative,
				"rental_income":    nonNegative,
			},
		},
	}
}

// ValidateAssets checks the asset list against AssetListSchema and reports
// duplicate ids. It returns nil for a valid list.
func ValidateAssets(assets []models.InvestmentAsset) []string {
	if assets == nil {
		assets = []models.InvestmentAsset{}
	}

	schemaLoader := gojsonschema.NewGoLoader(AssetListSchema())
	documentLoader := gojsonschema.NewGoLoader(assets)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return []string{fmt.Sprintf("asset validation error: %v", err)}
	}

	var issues []string
	for _, desc := range result.Errors() {
		issues = append(issues, fmt.Sprintf("asset %s: %s", desc.Field(), desc.Description()))
	}
	sort.Strings(issues)

	seen := make(map[string]int, len(assets))
	for i, a := range assets {
		if a.ID == "" {
			continue
		}
		if first, ok := seen[a.ID]; ok {
			issues = append(issues, fmt.Sprintf("asset %d: duplicate id %q (already used by asset %d)", i, a.ID, first))
			continue
		}
		seen[a.ID] = i
	}

	return issues
}
