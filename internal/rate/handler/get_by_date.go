package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

// GetByDate godoc
// @Summary Exchange rates as of a date
// @Description Rates of the most recent published day at or before the given date
// @Tags Rates
// @Produce json
// @Param date path string true "Date (YYYY-MM-DD)"
// @Param symbol query []string false "Currency code filter, repeatable"
// @Success 200 {object} DayRatesResponse
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Router /{date} [get]
func (h *Handler) GetByDate(w http.ResponseWriter, r *http.Request) {
	date, err := time.Parse(dateLayout, chi.URLParam(r, "date"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
		return
	}

	symbols := parseSymbols(r)
	if err = h.validator.ValidateSymbols(symbols); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	day, err := h.service.AsOf(r.Context(), date, symbols)
	if err != nil {
		writeQueryError(w, "GetByDate", err)
		return
	}

	writeJSON(w, http.StatusOK, DayRatesResponse{
		Date:  day.Date.Format(dateLayout),
		Rates: day.Rates,
	})
}
