// internal/models/asset.go
package models

import "github.com/google/uuid"

const (
	AssetEquities   = "Equities (Stocks)"
	AssetMutual     = "Mutual Funds"
	AssetFD         = "Fixed Deposits"
	AssetBonds      = "Bonds"
	AssetRealEstate = "Real Estate"
	AssetGold       = "Gold"
	AssetPPF        = "Public Provident Fund (PPF)"
	AssetCrypto     = "Cryptocurrency"
	AssetCash       = "Cash"
	AssetOthers     = "Others"
)

// AssetTypes is the fixed catalog offered by the asset editor.
var AssetTypes = []string{
	AssetEquities,
	AssetMutual,
	AssetFD,
	AssetBonds,
	AssetRealEstate,
	AssetGold,
	AssetPPF,
	AssetCrypto,
	AssetCash,
	AssetOthers,
}

// InvestmentAsset is one holding entered on the investments step. ID is the
// only stable identity; list position is not.
type InvestmentAsset struct {
	ID              string   `json:"id" mapstructure:"id"`
	AssetType       string   `json:"asset_type" mapstructure:"asset_type"`
	Name            string   `json:"name" mapstructure:"name"`
	Amount          float64  `json:"amount" mapstructure:"amount"`
	ExpectedReturns *float64 `json:"expected_returns,omitempty" mapstructure:"expected_returns"`
	CurrentValue    *float64 `json:"current_value,omitempty" mapstructure:"current_value"`
	PurchaseDate    string   `json:"purchase_date,omitempty" mapstructure:"purchase_date"`
	Tenure          *float64 `json:"tenure,omitempty" mapstructure:"tenure"`
	RiskCategory    string   `json:"risk_category,omitempty" mapstructure:"risk_category"`
	AdditionalNotes string   `json:"additional_notes,omitempty" mapstructure:"additional_notes"`

	// equities
	CompanyName   string   `json:"company_name,omitempty" mapstructure:"company_name"`
	Shares        *float64 `json:"shares,omitempty" mapstructure:"shares"`
	PurchasePrice *float64 `json:"purchase_price,omitempty" mapstructure:"purchase_price"`
	DividendYield *float64 `json:"dividend_yield,omitempty" mapstructure:"dividend_yield"`

	// real estate
	PropertyType    string   `json:"property_type,omitempty" mapstructure:"property_type"`
	RentalIncome    *float64 `json:"rental_income,omitempty" mapstructure:"rental_income"`
	MortgageDetails string   `json:"mortgage_details,omitempty" mapstructure:"mortgage_details"`
}

// NewAsset creates an empty asset of the given type with a fresh id.
func NewAsset(assetType string) InvestmentAsset {
	if assetType == "" {
		assetType = AssetEquities
	}
	return InvestmentAsset{
		ID:        uuid.New().String(),
		AssetType: assetType,
	}
}

// DefaultAssets returns the single example holding the wizard starts with.
func DefaultAssets() []InvestmentAsset {
	a := NewAsset(AssetEquities)
	a.Name = "Stock Portfolio"
	a.Amount = 250000
	a.ExpectedReturns = Float64Ptr(12)
	a.CurrentValue = Float64Ptr(280000)
	a.Tenure = Float64Ptr(5)
	return []InvestmentAsset{a}
}

// Value is the current value when known, the invested amount otherwise.
func (a InvestmentAsset) Value() float64 {
	if a.CurrentValue != nil {
		return *a.CurrentValue
	}
	return a.Amount
}

// Clone returns a deep copy of the asset.
func (a InvestmentAsset) Clone() InvestmentAsset {
	out := a
	out.ExpectedReturns = cloneFloat(a.ExpectedReturns)
	out.CurrentValue = cloneFloat(a.CurrentValue)
	out.Tenure = cloneFloat(a.Tenure)
	out.Shares = cloneFloat(a.Shares)
	out.PurchasePrice = cloneFloat(a.PurchasePrice)
	out.DividendYield = cloneFloat(a.DividendYield)
	out.RentalIncome = cloneFloat(a.RentalIncome)
	return out
}

// CloneAssets deep-copies a list, preserving order.
func CloneAssets(assets []InvestmentAsset) []InvestmentAsset {
	if assets == nil {
		return nil
	}
	out := make([]InvestmentAsset, len(assets))
	for i, a := range assets {
		out[i] = a.Clone()
	}
	return out
}

// TotalValue sums Value over the list.
func TotalValue(assets []InvestmentAsset) float64 {
	var total float64
	for _, a := range assets {
		total += a.Value()
	}
	return total
}
