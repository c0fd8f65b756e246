// Package rates supplies currency exchange rates to the cashback math.
// The fetcher is an injected dependency and the cache has an explicit
// TTL, so freshness does not depend on process lifetime.
package rates

import (
	"context"
	"sync"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/fundedrank/fundedrank-api/internal/config"
	"github.com/fundedrank/fundedrank-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ErrUnknownCurrency is returned for a currency code the source does
// not quote.
var ErrUnknownCurrency = errors.New("unknown currency code")

// Source fetches a fresh set of rates quoted against a base currency.
type Source interface {
	Fetch(ctx context.Context) (map[string]decimal.Decimal, error)
}

// HTTPSource reads rates from a JSON endpoint shaped like
// {"base_code":"USD","rates":{"PLN":3.95,...}}.
type HTTPSource struct {
	URL string
}

type ratesResponse struct {
	BaseCode string             `json:"base_code"`
	Rates    map[string]float64 `json:"rates"`
}

func (s *HTTPSource) Fetch(ctx context.Context) (map[string]decimal.Decimal, error) {
	body, err := utils.MakeRequest(ctx, s.URL)
	if err != nil {
		return nil, errors.Wrap(err, "fetching rates")
	}

	var parsed ratesResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, errors.Wrap(err, "decoding rates response")
	}

	rates := make(map[string]decimal.Decimal, len(parsed.Rates))
	for code, rate := range parsed.Rates {
		rates[code] = decimal.NewFromFloat(rate)
	}

	return rates, nil
}

// CachedProvider serves rates from memory, refreshing through the
// injected Source when the TTL has passed.
type CachedProvider struct {
	source Source
	ttl    time.Duration
	base   string

	mu        sync.RWMutex
	rates     map[string]decimal.Decimal
	fetchedAt time.Time

	// now is replaceable in tests.
	now func() time.Time
}

func NewCachedProvider(source Source, cfg config.RatesRefresh) *CachedProvider {
	return &CachedProvider{
		source: source,
		ttl:    time.Duration(cfg.TTLMinutes) * time.Minute,
		base:   cfg.BaseCurrency,
		now:    time.Now,
	}
}

// Base returns the currency every rate is quoted against.
func (p *CachedProvider) Base() string {
	return p.base
}

// Rate returns the cached rate for one currency code, refreshing first
// when the cache is stale or empty.
func (p *CachedProvider) Rate(ctx context.Context, code string) (decimal.Decimal, error) {
	if code == p.base {
		return decimal.NewFromInt(1), nil
	}

	if err := p.ensureFresh(ctx); err != nil {
		return decimal.Zero, err
	}

	p.mu.RLock()
	defer p.mu.RUnlock()

	rate, ok := p.rates[code]
	if !ok {
		return decimal.Zero, errors.Wrapf(ErrUnknownCurrency, "%q", code)
	}
	return rate, nil
}

// Refresh fetches unconditionally. The scheduler calls this on its
// cron; request-path callers go through Rate, which refreshes only
// when stale.
func (p *CachedProvider) Refresh(ctx context.Context) error {
	rates, err := p.source.Fetch(ctx)
	if err != nil {
		return err
	}

	p.mu.Lock()
	p.rates = rates
	p.fetchedAt = p.now()
	p.mu.Unlock()

	return nil
}

// LastFetched returns when the cache was last filled, zero when never.
func (p *CachedProvider) LastFetched() time.Time {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.fetchedAt
}

func (p *CachedProvider) ensureFresh(ctx context.Context) error {
	p.mu.RLock()
	fresh := p.rates != nil && p.now().Sub(p.fetchedAt) < p.ttl
	p.mu.RUnlock()

	if fresh {
		return nil
	}

	return p.Refresh(ctx)
}
