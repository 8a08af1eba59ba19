package handler

import (
	"net/http"
)

type GetSupportedCodesResponse struct {
	Codes []string `json:"codes" example:"EUR,GBP,USD"`
}

// GetSupportedCodes godoc
// @Summary List supported currencies
// @Description Retrieve all currency codes the catalog can serve
// @Tags Rates
// @Produce json
// @Success 200 {object} GetSupportedCodesResponse
// @Router /currencies [get]
func (h *Handler) GetSupportedCodes(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, GetSupportedCodesResponse{
		Codes: h.validator.SupportedCodes(),
	})
}
