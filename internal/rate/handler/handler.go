package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"nexrates/internal/domain"

	"github.com/sirupsen/logrus"
)

const dateLayout = "2006-01-02"

type RatesService interface {
	Latest(ctx context.Context, symbols []string) (*domain.DayRates, error)
	AsOf(ctx context.Context, date time.Time, symbols []string) (*domain.DayRates, error)
	Range(ctx context.Context, start, end time.Time, symbols []string) ([]domain.DayRates, error)
}

type SymbolValidator interface {
	ValidateSymbols(symbols []string) error
	SupportedCodes() []string
}

type Handler struct {
	validator SymbolValidator
	service   RatesService
}

func NewRateHandler(validator SymbolValidator, service RatesService) *Handler {
	return &Handler{validator: validator, service: service}
}

// DayRatesResponse is the single-date payload shared by the latest and
// by-date endpoints.
type DayRatesResponse struct {
	Date  string                  `json:"date"`
	Rates map[string]domain.Quote `json:"rates"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, statusCode int, errorMsg string) {
	writeJSON(w, statusCode, errorResponse{Error: errorMsg})
}

func writeJSON(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(body)
}

// writeQueryError maps query service errors onto HTTP responses.
func writeQueryError(w http.ResponseWriter, handlerName string, err error) {
	var symErr *domain.UnknownSymbolsError
	switch {
	case errors.Is(err, domain.ErrDateTooEarly):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.As(err, &symErr):
		writeError(w, http.StatusBadRequest, symErr.Error())
	case errors.Is(err, domain.ErrNoRatesData):
		writeError(w, http.StatusNotFound, err.Error())
	default:
		msg := "ups, couldn't fetch exchange rates this time"
		logrus.WithError(err).WithField("handler", handlerName).Error(msg)
		writeError(w, http.StatusInternalServerError, msg)
	}
}

// parseSymbols collects the repeatable symbol query params, uppercased. An
// empty result means "all currencies".
func parseSymbols(r *http.Request) []string {
	raw := r.URL.Query()["symbol"]
	symbols := make([]string, 0, len(raw))
	for _, s := range raw {
		if s = strings.ToUpper(strings.TrimSpace(s)); s != "" {
			symbols = append(symbols, s)
		}
	}
	return symbols
}
