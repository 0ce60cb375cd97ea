package validation

var std = New()

// ValidateConversionParams returns the messages for a conversion request,
// empty when the request is valid.
func ValidateConversionParams(from, to, amount string) []string {
	return std.Messages(ConversionParams{From: from, To: to, Amount: amount})
}

// ValidateVATParams returns the messages for a VAT request.
func ValidateVATParams(net, rate string) []string {
	return std.Messages(VATParams{Net: net, Rate: rate})
}

// ValidateDiscountParams returns the messages for a discount request.
func ValidateDiscountParams(gross, percentage string) []string {
	return std.Messages(DiscountParams{Gross: gross, Percentage: percentage})
}
