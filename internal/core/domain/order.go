package domain

import "math"

// DefaultCurrency is used when a country code cannot be resolved.
const DefaultCurrency = "SGD"

// TaxRate is a vendor-resolved tax for a country.
type TaxRate struct {
	Percentage  float64 `json:"percentage"`
	DisplayName string  `json:"display_name"`
}

// PricedOrder is a pure pricing computation result. It has no identity
// and is recomputed on every request; tax is applied multiplicatively
// exactly once.
type PricedOrder struct {
	ContractPrice  float64 `json:"contract_price"`
	WalletPrice    float64 `json:"wallet_price"`
	GSTPercentage  float64 `json:"gst_percentage"`
	GSTDisplayName string  `json:"gst_display_name,omitempty"`
	GSTAmount      float64 `json:"gst_amount"`
	Subtotal       float64 `json:"subtotal"`
	TotalAmount    float64 `json:"total_amount"`
	Currency       string  `json:"currency"`
}

// ChargeRequest is the input for charging a customer through the vendor.
type ChargeRequest struct {
	PaymentMethodID string  `json:"payment_method_id"`
	Amount          float64 `json:"amount"`
	Currency        string  `json:"currency"`
}

// ChargeStatusSucceeded is the vendor's terminal success status.
const ChargeStatusSucceeded = "succeeded"

// ChargeResult is the vendor's charge outcome.
type ChargeResult struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// Succeeded reports whether the charge reached the vendor's success state.
func (r *ChargeResult) Succeeded() bool {
	return r != nil && r.Status == ChargeStatusSucceeded
}

// RoundMoney rounds a monetary amount to two decimal places.
func RoundMoney(v float64) float64 {
	return math.Round(v*100) / 100
}
