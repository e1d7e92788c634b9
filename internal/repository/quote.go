package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"delivery-fee-service/internal/domain"
)

// QuoteRepo stores the quote computed for each order.
type QuoteRepo struct{ db *pgxpool.Pool }

// NewQuoteRepo creates a new QuoteRepo.
func NewQuoteRepo(db *pgxpool.Pool) *QuoteRepo { return &QuoteRepo{db: db} }

// Upsert stores q, replacing an earlier quote for the same order.
func (r *QuoteRepo) Upsert(ctx context.Context, q domain.OrderQuote) error {
	res := q.Result
	_, err := r.db.Exec(ctx, `
        INSERT INTO delivery_quotes
            (order_id, base_cost, weather_fee, weight_fee, priority_fee, peak_fee, night_fee, tip, total, quoted_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
        ON CONFLICT (order_id) DO UPDATE SET
            base_cost    = EXCLUDED.base_cost,
            weather_fee  = EXCLUDED.weather_fee,
            weight_fee   = EXCLUDED.weight_fee,
            priority_fee = EXCLUDED.priority_fee,
            peak_fee     = EXCLUDED.peak_fee,
            night_fee    = EXCLUDED.night_fee,
            tip          = EXCLUDED.tip,
            total        = EXCLUDED.total,
            quoted_at    = EXCLUDED.quoted_at
    `, q.OrderID, res.BaseCost, res.WeatherFee, res.WeightFee, res.PriorityFee,
		res.PeakFee, res.NightFee, res.Tip, res.Total, q.QuotedAt)
	if err != nil {
		return fmt.Errorf("upsert quote for order %q: %w", q.OrderID, err)
	}
	return nil
}

// Get returns the stored quote of an order, or nil.
func (r *QuoteRepo) Get(ctx context.Context, orderID string) (*domain.OrderQuote, error) {
	q := domain.OrderQuote{OrderID: orderID}
	res := &q.Result
	err := r.db.QueryRow(ctx, `
        SELECT base_cost::text, weather_fee::text, weight_fee::text, priority_fee::text,
               peak_fee::text, night_fee::text, tip::text, total::text, quoted_at
        FROM delivery_quotes
        WHERE order_id = $1
    `, orderID).Scan(&res.BaseCost, &res.WeatherFee, &res.WeightFee, &res.PriorityFee,
		&res.PeakFee, &res.NightFee, &res.Tip, &res.Total, &q.QuotedAt)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get quote for order %q: %w", orderID, err)
	}
	return &q, nil
}

// Delete removes the quote of an order and reports whether one existed.
func (r *QuoteRepo) Delete(ctx context.Context, orderID string) (bool, error) {
	ct, err := r.db.Exec(ctx, `DELETE FROM delivery_quotes WHERE order_id = $1`, orderID)
	if err != nil {
		return false, fmt.Errorf("delete quote for order %q: %w", orderID, err)
	}
	return ct.RowsAffected() > 0, nil
}
