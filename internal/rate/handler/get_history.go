package handler

import (
	"net/http"
	"time"

	"nexrates/internal/domain"
)

type HistoryResponse struct {
	StartAt string                             `json:"start_at"`
	EndAt   string                             `json:"end_at"`
	Rates   map[string]map[string]domain.Quote `json:"rates"`
}

// GetHistory godoc
// @Summary Historic exchange rates
// @Description All published days within [start_at, end_at], newest first
// @Tags Rates
// @Produce json
// @Param start_at query string true "Range start (YYYY-MM-DD)"
// @Param end_at query string true "Range end (YYYY-MM-DD)"
// @Param symbol query []string false "Currency code filter, repeatable"
// @Success 200 {object} HistoryResponse
// @Failure 400 {object} errorResponse
// @Router /history [get]
func (h *Handler) GetHistory(w http.ResponseWriter, r *http.Request) {
	start, err := time.Parse(dateLayout, r.URL.Query().Get("start_at"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid start_at, expected YYYY-MM-DD")
		return
	}
	end, err := time.Parse(dateLayout, r.URL.Query().Get("end_at"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid end_at, expected YYYY-MM-DD")
		return
	}

	symbols := parseSymbols(r)
	if err = h.validator.ValidateSymbols(symbols); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	days, err := h.service.Range(r.Context(), start, end, symbols)
	if err != nil {
		writeQueryError(w, "GetHistory", err)
		return
	}

	rates := make(map[string]map[string]domain.Quote, len(days))
	for _, day := range days {
		rates[day.Date.Format(dateLayout)] = day.Rates
	}

	writeJSON(w, http.StatusOK, HistoryResponse{
		StartAt: start.Format(dateLayout),
		EndAt:   end.Format(dateLayout),
		Rates:   rates,
	})
}
