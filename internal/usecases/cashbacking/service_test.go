package cashbacking

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fundedrank/fundedrank-api/internal/config"
	"github.com/fundedrank/fundedrank-api/internal/domain"
	"github.com/fundedrank/fundedrank-api/internal/rates"
)

type stubSource struct {
	rates map[string]decimal.Decimal
}

func (s *stubSource) Fetch(ctx context.Context) (map[string]decimal.Decimal, error) {
	return s.rates, nil
}

func floatPtr(f float64) *float64 { return &f }

func newTestService() CashbackService {
	provider := rates.NewCachedProvider(
		&stubSource{rates: map[string]decimal.Decimal{"PLN": decimal.NewFromFloat(4.0)}},
		config.RatesRefresh{TTLMinutes: 60, BaseCurrency: "USD"},
	)
	return NewCashbackService(provider)
}

func TestEstimateForCompany(t *testing.T) {
	tests := []struct {
		name     string
		facts    *domain.CompanyFacts
		currency string
		validate func(t *testing.T, estimate *Estimate, err error)
	}{
		{
			name: "rate times plan price",
			facts: &domain.CompanyFacts{
				HasCashback:  true,
				CashbackRate: floatPtr(0.10),
				MaxPlanPrice: floatPtr(499),
			},
			currency: "USD",
			validate: func(t *testing.T, estimate *Estimate, err error) {
				require.NoError(t, err)
				require.NotNil(t, estimate)
				assert.Equal(t, "USD", estimate.Currency)
				assert.True(t, estimate.Value.Equal(decimal.NewFromFloat(49.90)), "got %s", estimate.Value)
			},
		},
		{
			name: "points path applies redeem rate",
			facts: &domain.CompanyFacts{
				HasCashback:           true,
				CashbackAveragePoints: floatPtr(500),
				CashbackRedeemRate:    floatPtr(0.8),
			},
			currency: "USD",
			validate: func(t *testing.T, estimate *Estimate, err error) {
				require.NoError(t, err)
				require.NotNil(t, estimate)
				// 500 points * 0.01 per point * 0.8 redeem rate.
				assert.True(t, estimate.Value.Equal(decimal.NewFromFloat(4.00)), "got %s", estimate.Value)
			},
		},
		{
			name: "conversion to another currency",
			facts: &domain.CompanyFacts{
				HasCashback:  true,
				CashbackRate: floatPtr(0.10),
				MaxPlanPrice: floatPtr(100),
			},
			currency: "PLN",
			validate: func(t *testing.T, estimate *Estimate, err error) {
				require.NoError(t, err)
				require.NotNil(t, estimate)
				assert.Equal(t, "PLN", estimate.Currency)
				assert.True(t, estimate.Value.Equal(decimal.NewFromFloat(40.00)), "got %s", estimate.Value)
			},
		},
		{
			name: "empty currency defaults to the base",
			facts: &domain.CompanyFacts{
				HasCashback:  true,
				CashbackRate: floatPtr(0.05),
				MaxPlanPrice: floatPtr(200),
			},
			currency: "",
			validate: func(t *testing.T, estimate *Estimate, err error) {
				require.NoError(t, err)
				require.NotNil(t, estimate)
				assert.Equal(t, "USD", estimate.Currency)
				assert.True(t, estimate.Value.Equal(decimal.NewFromFloat(10.00)), "got %s", estimate.Value)
			},
		},
		{
			name:     "no cashback program yields no estimate",
			facts:    &domain.CompanyFacts{HasCashback: false, CashbackRate: floatPtr(0.10), MaxPlanPrice: floatPtr(499)},
			currency: "USD",
			validate: func(t *testing.T, estimate *Estimate, err error) {
				require.NoError(t, err)
				assert.Nil(t, estimate)
			},
		},
		{
			name:     "program without figures yields no estimate",
			facts:    &domain.CompanyFacts{HasCashback: true},
			currency: "USD",
			validate: func(t *testing.T, estimate *Estimate, err error) {
				require.NoError(t, err)
				assert.Nil(t, estimate)
			},
		},
		{
			name:     "nil facts yield no estimate",
			facts:    nil,
			currency: "USD",
			validate: func(t *testing.T, estimate *Estimate, err error) {
				require.NoError(t, err)
				assert.Nil(t, estimate)
			},
		},
		{
			name: "unknown currency fails",
			facts: &domain.CompanyFacts{
				HasCashback:  true,
				CashbackRate: floatPtr(0.10),
				MaxPlanPrice: floatPtr(100),
			},
			currency: "XYZ",
			validate: func(t *testing.T, estimate *Estimate, err error) {
				assert.ErrorIs(t, err, rates.ErrUnknownCurrency)
				assert.Nil(t, estimate)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := newTestService()
			estimate, err := service.EstimateForCompany(context.Background(), tt.facts, tt.currency)
			tt.validate(t, estimate, err)
		})
	}
}

func TestEstimateForCompany_PrefersRateOverPoints(t *testing.T) {
	service := newTestService()

	facts := &domain.CompanyFacts{
		HasCashback:           true,
		CashbackRate:          floatPtr(0.10),
		MaxPlanPrice:          floatPtr(100),
		CashbackAveragePoints: floatPtr(9999),
	}

	estimate, err := service.EstimateForCompany(context.Background(), facts, "USD")
	require.NoError(t, err)
	require.NotNil(t, estimate)
	assert.True(t, estimate.Value.Equal(decimal.NewFromFloat(10.00)), "got %s", estimate.Value)
}
