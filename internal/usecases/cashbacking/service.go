// Package cashbacking does the money math of the cashback program with
// exact decimal arithmetic.
package cashbacking

import (
	"context"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/fundedrank/fundedrank-api/internal/domain"
	"github.com/fundedrank/fundedrank-api/internal/rates"
)

// pointValue is the redemption value of one cashback point in the base
// currency.
var pointValue = decimal.NewFromFloat(0.01)

// Estimate is the projected cashback value for one company, quoted in
// the requested currency.
type Estimate struct {
	Currency string          `json:"currency"`
	Value    decimal.Decimal `json:"value"`
}

type CashbackService interface {
	EstimateForCompany(ctx context.Context, facts *domain.CompanyFacts, currency string) (*Estimate, error)
}

type cashbackService struct {
	rates *rates.CachedProvider
}

func NewCashbackService(provider *rates.CachedProvider) CashbackService {
	return &cashbackService{
		rates: provider,
	}
}

// EstimateForCompany projects the cashback of buying the company's
// most expensive plan. Companies without a cashback program, or
// without the needed figures, yield a nil estimate rather than an
// error.
func (s *cashbackService) EstimateForCompany(ctx context.Context, facts *domain.CompanyFacts, currency string) (*Estimate, error) {
	if facts == nil || !facts.HasCashback {
		return nil, nil
	}

	value := decimal.Zero

	switch {
	case facts.CashbackRate != nil && facts.MaxPlanPrice != nil:
		price := decimal.NewFromFloat(*facts.MaxPlanPrice)
		rate := decimal.NewFromFloat(*facts.CashbackRate)
		value = price.Mul(rate)
	case facts.CashbackAveragePoints != nil:
		points := decimal.NewFromFloat(*facts.CashbackAveragePoints)
		value = points.Mul(pointValue)
		if facts.CashbackRedeemRate != nil {
			value = value.Mul(decimal.NewFromFloat(*facts.CashbackRedeemRate))
		}
	default:
		return nil, nil
	}

	if currency == "" {
		currency = s.rates.Base()
	}

	if currency != s.rates.Base() {
		rate, err := s.rates.Rate(ctx, currency)
		if err != nil {
			return nil, errors.Wrapf(err, "converting cashback estimate to %s", currency)
		}
		value = value.Mul(rate)
	}

	return &Estimate{
		Currency: currency,
		Value:    value.Round(2),
	}, nil
}
