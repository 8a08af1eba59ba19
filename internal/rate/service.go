package rate

import (
	"context"
	"errors"
	"time"

	"nexrates/internal/adapters"
	"nexrates/internal/domain"
)

// Service answers read-only queries against the persisted rates timeline.
type Service struct {
	repo  adapters.DayRatesRepository
	cache adapters.DayRatesCache
}

// Latest returns the most recently published rates, optionally narrowed to
// the requested symbols.
func (s *Service) Latest(ctx context.Context, symbols []string) (*domain.DayRates, error) {
	return s.AsOf(ctx, Today(), symbols)
}

// AsOf returns the rates of the most recent published day at or before date.
func (s *Service) AsOf(ctx context.Context, date time.Time, symbols []string) (*domain.DayRates, error) {
	if date.Before(domain.MinSupportedDate) {
		return nil, domain.ErrDateTooEarly
	}

	day, ok := s.cache.Get(date)
	if !ok {
		var err error
		day, err = s.repo.LatestOnOrBefore(ctx, date)
		if err != nil {
			if errors.Is(err, domain.ErrDayNotFound) {
				return nil, domain.ErrNoRatesData
			}
			return nil, err
		}
		s.cache.Set(date, day)
	}

	return filterSymbols(day, symbols)
}

// Range returns all published days within [start, end] inclusive, newest
// first. A symbol missing from any day in the range fails the whole call.
func (s *Service) Range(ctx context.Context, start, end time.Time, symbols []string) ([]domain.DayRates, error) {
	days, err := s.repo.QueryRange(ctx, start, end)
	if err != nil {
		return nil, err
	}

	out := make([]domain.DayRates, 0, len(days))
	for i := range days {
		filtered, err := filterSymbols(&days[i], symbols)
		if err != nil {
			return nil, err
		}
		out = append(out, *filtered)
	}
	return out, nil
}

// filterSymbols narrows a day's rates to the requested currencies, failing
// with the full list of absent symbols if any of them has no quote that day.
func filterSymbols(day *domain.DayRates, symbols []string) (*domain.DayRates, error) {
	if len(symbols) == 0 {
		return day, nil
	}

	var missing []string
	for _, symbol := range symbols {
		if _, ok := day.Rates[symbol]; !ok {
			missing = append(missing, symbol)
		}
	}
	if len(missing) > 0 {
		return nil, &domain.UnknownSymbolsError{Date: day.Date, Symbols: missing}
	}

	subset := make(map[string]domain.Quote, len(symbols))
	for _, symbol := range symbols {
		subset[symbol] = day.Rates[symbol]
	}
	return &domain.DayRates{Date: day.Date, Rates: subset}, nil
}

// Today is the current UTC calendar date.
func Today() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

func NewService(repo adapters.DayRatesRepository, cache adapters.DayRatesCache) *Service {
	return &Service{repo: repo, cache: cache}
}
