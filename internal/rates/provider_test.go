package rates

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fundedrank/fundedrank-api/internal/config"
)

type stubSource struct {
	rates   map[string]decimal.Decimal
	err     error
	fetches int
}

func (s *stubSource) Fetch(ctx context.Context) (map[string]decimal.Decimal, error) {
	s.fetches++
	return s.rates, s.err
}

func testConfig() config.RatesRefresh {
	return config.RatesRefresh{
		TTLMinutes:   60,
		BaseCurrency: "USD",
	}
}

func TestCachedProvider_RateFetchesOnce(t *testing.T) {
	source := &stubSource{rates: map[string]decimal.Decimal{
		"PLN": decimal.NewFromFloat(3.95),
		"EUR": decimal.NewFromFloat(0.92),
	}}
	provider := NewCachedProvider(source, testConfig())

	rate, err := provider.Rate(context.Background(), "PLN")
	require.NoError(t, err)
	assert.True(t, rate.Equal(decimal.NewFromFloat(3.95)))

	rate, err = provider.Rate(context.Background(), "EUR")
	require.NoError(t, err)
	assert.True(t, rate.Equal(decimal.NewFromFloat(0.92)))

	assert.Equal(t, 1, source.fetches, "second lookup is served from the cache")
}

func TestCachedProvider_BaseCurrencyNeedsNoFetch(t *testing.T) {
	source := &stubSource{err: errors.New("should not be called")}
	provider := NewCachedProvider(source, testConfig())

	rate, err := provider.Rate(context.Background(), "USD")
	require.NoError(t, err)
	assert.True(t, rate.Equal(decimal.NewFromInt(1)))
	assert.Equal(t, 0, source.fetches)
}

func TestCachedProvider_RefreshAfterTTL(t *testing.T) {
	source := &stubSource{rates: map[string]decimal.Decimal{"PLN": decimal.NewFromFloat(3.95)}}
	provider := NewCachedProvider(source, testConfig())

	current := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	provider.now = func() time.Time { return current }

	_, err := provider.Rate(context.Background(), "PLN")
	require.NoError(t, err)
	assert.Equal(t, 1, source.fetches)
	assert.Equal(t, current, provider.LastFetched())

	// Still inside the TTL.
	current = current.Add(30 * time.Minute)
	_, err = provider.Rate(context.Background(), "PLN")
	require.NoError(t, err)
	assert.Equal(t, 1, source.fetches)

	// Past the TTL the next lookup refreshes.
	current = current.Add(31 * time.Minute)
	_, err = provider.Rate(context.Background(), "PLN")
	require.NoError(t, err)
	assert.Equal(t, 2, source.fetches)
}

func TestCachedProvider_UnknownCurrency(t *testing.T) {
	source := &stubSource{rates: map[string]decimal.Decimal{"PLN": decimal.NewFromFloat(3.95)}}
	provider := NewCachedProvider(source, testConfig())

	_, err := provider.Rate(context.Background(), "XYZ")
	assert.ErrorIs(t, err, ErrUnknownCurrency)
}

func TestCachedProvider_SourceErrorPropagates(t *testing.T) {
	source := &stubSource{err: errors.New("upstream down")}
	provider := NewCachedProvider(source, testConfig())

	_, err := provider.Rate(context.Background(), "PLN")
	assert.Error(t, err)
	assert.True(t, provider.LastFetched().IsZero(), "a failed refresh must not mark the cache fresh")
}

func TestCachedProvider_RefreshIsUnconditional(t *testing.T) {
	source := &stubSource{rates: map[string]decimal.Decimal{"PLN": decimal.NewFromFloat(3.95)}}
	provider := NewCachedProvider(source, testConfig())

	require.NoError(t, provider.Refresh(context.Background()))
	require.NoError(t, provider.Refresh(context.Background()))

	assert.Equal(t, 2, source.fetches)
}
