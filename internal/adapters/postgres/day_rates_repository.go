package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"nexrates/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	dateLayout          = "2006-01-02"
	uniqueViolationCode = "23505"
)

// DayRatesRepository persists the exchange_rates timeline:
// one row per publication date, quotes as a jsonb map keyed by currency code.
type DayRatesRepository struct {
	pool *pgxpool.Pool
}

func (r *DayRatesRepository) GetByDate(ctx context.Context, date time.Time) (*domain.DayRates, error) {
	const q = `select date, rates from exchange_rates where date = $1;`
	return scanDay(r.pool.QueryRow(ctx, q, date))
}

func (r *DayRatesRepository) Create(ctx context.Context, date time.Time, rates map[string]domain.Quote) error {
	payload, err := json.Marshal(rates)
	if err != nil {
		return fmt.Errorf("failed to marshal rates for %s: %w", date.Format(dateLayout), err)
	}

	const q = `insert into exchange_rates (date, rates) values ($1, $2);`
	if _, err = r.pool.Exec(ctx, q, date, payload); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return domain.ErrDayExists
		}
		return fmt.Errorf("failed to insert rates for %s: %w", date.Format(dateLayout), err)
	}
	return nil
}

func (r *DayRatesRepository) LatestOnOrBefore(ctx context.Context, date time.Time) (*domain.DayRates, error) {
	const q = `select date, rates from exchange_rates where date <= $1 order by date desc limit 1;`
	return scanDay(r.pool.QueryRow(ctx, q, date))
}

func (r *DayRatesRepository) QueryRange(ctx context.Context, start, end time.Time) ([]domain.DayRates, error) {
	const q = `select date, rates from exchange_rates where date >= $1 and date <= $2 order by date desc;`

	rows, err := r.pool.Query(ctx, q, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to query rates range: %w", err)
	}
	defer rows.Close()

	days := make([]domain.DayRates, 0, 32)
	for rows.Next() {
		var (
			day     domain.DayRates
			payload []byte
		)
		if err = rows.Scan(&day.Date, &payload); err != nil {
			return nil, fmt.Errorf("failed to scan rates row: %w", err)
		}
		if err = json.Unmarshal(payload, &day.Rates); err != nil {
			return nil, fmt.Errorf("failed to unmarshal rates for %s: %w", day.Date.Format(dateLayout), err)
		}
		days = append(days, day)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rates range: %w", err)
	}
	return days, nil
}

func (r *DayRatesRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	if err := r.pool.QueryRow(ctx, `select count(*) from exchange_rates;`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count persisted days: %w", err)
	}
	return count, nil
}

func scanDay(row pgx.Row) (*domain.DayRates, error) {
	var (
		day     domain.DayRates
		payload []byte
	)
	if err := row.Scan(&day.Date, &payload); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrDayNotFound
		}
		return nil, fmt.Errorf("failed to select day rates: %w", err)
	}
	if err := json.Unmarshal(payload, &day.Rates); err != nil {
		return nil, fmt.Errorf("failed to unmarshal rates for %s: %w", day.Date.Format(dateLayout), err)
	}
	return &day, nil
}

func NewDayRatesRepository(pool *pgxpool.Pool) *DayRatesRepository {
	return &DayRatesRepository{pool: pool}
}
