package handler

import (
	"net/http"
)

// GetLatest godoc
// @Summary Latest exchange rates
// @Description Most recently published rates, optionally narrowed to specific symbols
// @Tags Rates
// @Produce json
// @Param symbol query []string false "Currency code filter, repeatable"
// @Success 200 {object} DayRatesResponse
// @Failure 400 {object} errorResponse
// @Router /latest [get]
func (h *Handler) GetLatest(w http.ResponseWriter, r *http.Request) {
	symbols := parseSymbols(r)
	if err := h.validator.ValidateSymbols(symbols); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	day, err := h.service.Latest(r.Context(), symbols)
	if err != nil {
		writeQueryError(w, "GetLatest", err)
		return
	}

	writeJSON(w, http.StatusOK, DayRatesResponse{
		Date:  day.Date.Format(dateLayout),
		Rates: day.Rates,
	})
}
