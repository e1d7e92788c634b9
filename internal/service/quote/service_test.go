package quote_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"delivery-fee-service/internal/apperr"
	"delivery-fee-service/internal/domain"
	"delivery-fee-service/internal/metrics"
	"delivery-fee-service/internal/service/quote"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func snapshot() domain.TariffSnapshot {
	return domain.TariffSnapshot{
		Settings: domain.DeliverySettings{MinimumFee: 150, WeatherFee: d("50"), PriorityPercentage: d("25")},
		DistanceTiers: []domain.DistanceTier{
			{ID: 1, StartKm: d("0"), EndKm: d("5"), PricePerKm: d("20")},
		},
		PeakWindows: []domain.TimeWindow{
			{ID: 1, Kind: domain.WindowPeak, Start: "17:00", End: "19:00", Percentage: d("20")},
		},
		NightWindows: []domain.TimeWindow{
			{ID: 2, Kind: domain.WindowNight, Start: "22:00", End: "06:00", Percentage: d("15")},
		},
	}
}

func TestService_Quote_UsesNowInLocation(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	src := NewMockSnapshotSource(ctrl)
	src.EXPECT().LoadSnapshot(gomock.Any()).Return(snapshot(), nil)

	nairobi, err := time.LoadLocation("Africa/Nairobi")
	require.NoError(t, err)
	// 20:30 UTC is 23:30 in Nairobi: night window applies, peak does not.
	now := time.Date(2026, 1, 10, 20, 30, 0, 0, time.UTC)

	svc := quote.NewService(src, nil, nairobi, time.Second, nil, quote.WithClock(func() time.Time { return now }))

	res, err := svc.Quote(context.Background(), domain.PricingRequest{DistanceKm: d("3")})
	require.NoError(t, err)
	assert.Equal(t, "0.00", res.PeakFee.StringFixed(2))
	assert.Equal(t, "22.50", res.NightFee.StringFixed(2))
	assert.Equal(t, "172.50", res.Total.StringFixed(2))
}

func TestService_QuoteAt_ExplicitDeliveryTimeWins(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	src := NewMockSnapshotSource(ctrl)
	src.EXPECT().LoadSnapshot(gomock.Any()).Return(snapshot(), nil)

	svc := quote.NewService(src, nil, time.UTC, time.Second, nil)

	at := domain.MustClock("18:00")
	res, err := svc.QuoteAt(context.Background(), domain.PricingRequest{
		DistanceKm:   d("3"),
		DeliveryTime: &at,
	}, time.Date(2026, 1, 10, 23, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, "30.00", res.PeakFee.StringFixed(2))
	assert.Equal(t, "0.00", res.NightFee.StringFixed(2))
}

func TestService_Quote_InvalidDistanceSkipsStore(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	src := NewMockSnapshotSource(ctrl)

	m := metrics.NewPricing()
	svc := quote.NewService(src, nil, nil, 0, nil, quote.WithMetrics(m))

	_, err := svc.Quote(context.Background(), domain.PricingRequest{DistanceKm: d("0")})
	require.ErrorIs(t, err, apperr.ErrInvalid)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Quotes.WithLabelValues("invalid")))
}

func TestService_Quote_SnapshotError(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	src := NewMockSnapshotSource(ctrl)
	boom := errors.New("db down")
	src.EXPECT().LoadSnapshot(gomock.Any()).Return(domain.TariffSnapshot{}, boom)

	m := metrics.NewPricing()
	svc := quote.NewService(src, nil, nil, time.Second, nil, quote.WithMetrics(m))

	_, err := svc.Quote(context.Background(), domain.PricingRequest{DistanceKm: d("1")})
	require.ErrorIs(t, err, boom)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Quotes.WithLabelValues("error")))
}

func TestService_Quote_AppliesOperationTimeout(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	src := NewMockSnapshotSource(ctrl)
	src.EXPECT().LoadSnapshot(gomock.Any()).DoAndReturn(func(ctx context.Context) (domain.TariffSnapshot, error) {
		_, ok := ctx.Deadline()
		assert.True(t, ok, "snapshot load must run under a deadline")
		return snapshot(), nil
	})

	m := metrics.NewPricing()
	svc := quote.NewService(src, nil, time.UTC, 50*time.Millisecond, nil, quote.WithMetrics(m))

	_, err := svc.Quote(context.Background(), domain.PricingRequest{DistanceKm: d("2")})
	require.NoError(t, err)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Quotes.WithLabelValues("ok")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.QuoteTotal))
}
