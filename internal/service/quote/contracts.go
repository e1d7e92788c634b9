//go:generate mockgen -source=contracts.go -destination=quote_mocks_test.go -package=quote_test

package quote

import (
	"context"

	"delivery-fee-service/internal/domain"
)

// SnapshotSource supplies the tariff configuration for one quote.
type SnapshotSource interface {
	LoadSnapshot(ctx context.Context) (domain.TariffSnapshot, error)
}
