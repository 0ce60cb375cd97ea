package handlers

import (
	"net/http"

	"github.com/DanielPopoola/ficmart-calculator/internal/api"
	"github.com/DanielPopoola/ficmart-calculator/internal/application/services"
	"github.com/DanielPopoola/ficmart-calculator/internal/interfaces/rest"
)

// HandleConvert converts an amount between currencies.
//
//	@Summary	Convert an amount between two currencies
//	@Tags		calculations
//	@Produce	json
//	@Param		from	query		string	false	"Source currency"
//	@Param		to		query		string	false	"Target currency"
//	@Param		amount	query		string	false	"Amount"
//	@Success	200		{object}	api.ConversionResponse
//	@Failure	400		{object}	api.ErrorResponse
//	@Router		/convert [get]
func (h *Handlers) HandleConvert(w http.ResponseWriter, r *http.Request) {
	var params api.ConvertParams
	binder := newQueryBinder(r.URL.Query())
	binder.bind("from", &params.From)
	binder.bind("to", &params.To)
	binder.bind("amount", &params.Amount)
	if err := binder.err(); err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}

	result, err := h.conversionService.Convert(r.Context(), services.ConvertCommand{
		From:   value(params.From),
		To:     value(params.To),
		Amount: value(params.Amount),
	})
	if err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}

	rest.WriteJSON(w, http.StatusOK, rest.ToAPIConversion(result))
}

// HandleVATInclusive computes a VAT-inclusive total.
//
//	@Summary	Compute a VAT-inclusive total
//	@Tags		calculations
//	@Produce	json
//	@Param		ht		query		string	false	"Net amount"
//	@Param		taux	query		string	false	"VAT rate in percent"
//	@Success	200		{object}	api.VATResponse
//	@Failure	400		{object}	api.ErrorResponse
//	@Router		/tva [get]
func (h *Handlers) HandleVATInclusive(w http.ResponseWriter, r *http.Request) {
	var params api.VATInclusiveParams
	binder := newQueryBinder(r.URL.Query())
	binder.bind("ht", &params.Ht)
	binder.bind("taux", &params.Taux)
	if err := binder.err(); err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}

	result, err := h.financialService.VATInclusive(r.Context(), services.VATCommand{
		Net:  value(params.Ht),
		Rate: value(params.Taux),
	})
	if err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}

	rest.WriteJSON(w, http.StatusOK, rest.ToAPIVAT(result))
}

// HandleApplyDiscount applies a percentage discount.
//
//	@Summary	Apply a percentage discount
//	@Tags		calculations
//	@Produce	json
//	@Param		prix		query		string	false	"Gross price"
//	@Param		pourcentage	query		string	false	"Discount in percent"
//	@Success	200			{object}	api.DiscountResponse
//	@Failure	400			{object}	api.ErrorResponse
//	@Router		/remise [get]
func (h *Handlers) HandleApplyDiscount(w http.ResponseWriter, r *http.Request) {
	var params api.ApplyDiscountParams
	binder := newQueryBinder(r.URL.Query())
	binder.bind("prix", &params.Prix)
	binder.bind("pourcentage", &params.Pourcentage)
	if err := binder.err(); err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}

	result, err := h.financialService.ApplyDiscount(r.Context(), services.DiscountCommand{
		Gross:      value(params.Prix),
		Percentage: value(params.Pourcentage),
	})
	if err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}

	rest.WriteJSON(w, http.StatusOK, rest.ToAPIDiscount(result))
}

// HandleListCurrencies lists the supported currencies.
//
//	@Summary	List supported currencies
//	@Tags		calculations
//	@Produce	json
//	@Success	200	{object}	api.CurrenciesResponse
//	@Router		/currencies [get]
func (h *Handlers) HandleListCurrencies(w http.ResponseWriter, r *http.Request) {
	currencies, err := h.conversionService.SupportedCurrencies(r.Context())
	if err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}

	rest.WriteJSON(w, http.StatusOK, rest.ToAPICurrencies(currencies))
}
