package repository

import (
	"context"
	"fmt"
	"time"

	"investr/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

const createRatesTable = `
CREATE TABLE IF NOT EXISTS mortgage_rates (
	ltv_band   INTEGER       NOT NULL,
	term_years INTEGER       NOT NULL CHECK (term_years > 0),
	rate       NUMERIC(5, 2) NOT NULL CHECK (rate > 0),
	updated_at TIMESTAMPTZ   NOT NULL DEFAULT now(),
	PRIMARY KEY (ltv_band, term_years)
)`

// RateRepository keeps the mortgage rate table in Postgres.
type RateRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewRateRepository(db *pgxpool.Pool, logger *zap.Logger) *RateRepository {
	return &RateRepository{
		db:     db,
		logger: logger,
	}
}

func (r *RateRepository) Name() string {
	return "postgres"
}

func (r *RateRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, createRatesTable); err != nil {
		return fmt.Errorf("failed to create mortgage_rates: %w", err)
	}
	return nil
}

func (r *RateRepository) LoadRates(ctx context.Context) (models.RateTable, error) {
	query := squirrel.Select("ltv_band", "term_years", "rate", "updated_at").
		From("mortgage_rates").
		OrderBy("ltv_band DESC", "term_years ASC").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query mortgage rates: %w", err)
	}
	defer rows.Close()

	var rates []models.MortgageRate
	for rows.Next() {
		var (
			band int
			rate models.MortgageRate
		)
		if err := rows.Scan(&band, &rate.TermYears, &rate.Rate, &rate.UpdatedAt); err != nil {
			return nil, err
		}
		rate.Band = models.Band(band)
		if !rate.Band.Valid() {
			r.logger.Warn("Skipping rate row with unknown band", zap.Int("band", band))
			continue
		}
		rates = append(rates, rate)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return models.TableFromRows(rates), nil
}

// Upsert writes every row of table, replacing existing rates.
func (r *RateRepository) Upsert(ctx context.Context, table models.RateTable) error {
	rows := table.Rows()
	if len(rows) == 0 {
		return nil
	}

	now := time.Now()
	builder := squirrel.Insert("mortgage_rates").
		Columns("ltv_band", "term_years", "rate", "updated_at").
		Suffix("ON CONFLICT (ltv_band, term_years) DO UPDATE SET rate = EXCLUDED.rate, updated_at = EXCLUDED.updated_at").
		PlaceholderFormat(squirrel.Dollar)

	for _, row := range rows {
		builder = builder.Values(int(row.Band), row.TermYears, row.Rate, now)
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return err
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("failed to upsert mortgage rates: %w", err)
	}

	r.logger.Info("Mortgage rates stored", zap.Int("rows", len(rows)))
	return nil
}
