//go:generate mockgen -source=contracts.go -destination=orders_mocks_test.go -package=orders_test

package orders

import (
	"context"
	"time"

	"delivery-fee-service/internal/domain"
)

// Quoter prices a delivery as of a given instant.
type Quoter interface {
	QuoteAt(ctx context.Context, req domain.PricingRequest, at time.Time) (domain.PricingResult, error)
}

// QuoteStore persists quotes per order.
type QuoteStore interface {
	Upsert(ctx context.Context, q domain.OrderQuote) error
	Delete(ctx context.Context, orderID string) (bool, error)
}
