package services

type ConvertCommand struct {
	From   string
	To     string
	Amount string
}

type VATCommand struct {
	Net  string
	Rate string
}

type DiscountCommand struct {
	Gross      string
	Percentage string
}
