package api

// ConversionResponse defines model for ConversionResponse.
type ConversionResponse struct {
	From            string  `json:"from"`
	To              string  `json:"to"`
	OriginalAmount  float64 `json:"originalAmount"`
	ConvertedAmount float64 `json:"convertedAmount"`
}

// VATResponse defines model for VATResponse.
type VATResponse struct {
	Ht   float64 `json:"ht"`
	Taux float64 `json:"taux"`
	Ttc  float64 `json:"ttc"`
}

// DiscountResponse defines model for DiscountResponse.
type DiscountResponse struct {
	PrixInitial float64 `json:"prixInitial"`
	Pourcentage float64 `json:"pourcentage"`
	PrixFinal   float64 `json:"prixFinal"`
}

// CurrenciesResponse defines model for CurrenciesResponse.
type CurrenciesResponse struct {
	Currencies []string `json:"currencies"`
}

// HealthResponse defines model for HealthResponse.
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// ErrorResponse defines model for ErrorResponse.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ConvertParams defines parameters for Convert.
type ConvertParams struct {
	From   *string `form:"from,omitempty" json:"from,omitempty"`
	To     *string `form:"to,omitempty" json:"to,omitempty"`
	Amount *string `form:"amount,omitempty" json:"amount,omitempty"`
}

// VATInclusiveParams defines parameters for VATInclusive.
type VATInclusiveParams struct {
	Ht   *string `form:"ht,omitempty" json:"ht,omitempty"`
	Taux *string `form:"taux,omitempty" json:"taux,omitempty"`
}

// ApplyDiscountParams defines parameters for ApplyDiscount.
type ApplyDiscountParams struct {
	Prix        *string `form:"prix,omitempty" json:"prix,omitempty"`
	Pourcentage *string `form:"pourcentage,omitempty" json:"pourcentage,omitempty"`
}
