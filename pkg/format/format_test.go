package format

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fundedrank/fundedrank-api/internal/domain"
)

func floatPtr(f float64) *float64 { return &f }

func TestCompanyPrice(t *testing.T) {
	tests := []struct {
		name     string
		price    *float64
		expected string
	}{
		{name: "whole dollars", price: floatPtr(199), expected: "199,00 USD"},
		{name: "cents kept", price: floatPtr(149.5), expected: "149,50 USD"},
		{name: "thousands separator", price: floatPtr(12990), expected: "12 990,00 USD"},
		{name: "nil renders placeholder", price: nil, expected: "—"},
		{name: "NaN renders placeholder", price: floatPtr(math.NaN()), expected: "—"},
		{name: "infinity renders placeholder", price: floatPtr(math.Inf(1)), expected: "—"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CompanyPrice(tt.price))
		})
	}
}

func TestPayoutMetric(t *testing.T) {
	tests := []struct {
		name        string
		payoutHours *float64
		payoutScore float64
		expected    string
	}{
		{name: "hours win over the score", payoutHours: floatPtr(36), payoutScore: 84, expected: "36h"},
		{name: "hours are floored", payoutHours: floatPtr(47.9), payoutScore: 84, expected: "47h"},
		{name: "hours never drop below one", payoutHours: floatPtr(0.25), payoutScore: 84, expected: "1h"},
		{name: "score fallback keeps one decimal", payoutHours: nil, payoutScore: 91.234, expected: "91.2 pkt"},
		{name: "whole score still shows a decimal", payoutHours: nil, payoutScore: 80, expected: "80.0 pkt"},
		{name: "non-finite hours fall back to the score", payoutHours: floatPtr(math.NaN()), payoutScore: 75, expected: "75.0 pkt"},
		{name: "nothing usable renders placeholder", payoutHours: nil, payoutScore: math.NaN(), expected: "—"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, PayoutMetric(tt.payoutHours, tt.payoutScore))
		})
	}
}

func TestCompanyHref(t *testing.T) {
	got := CompanyHref("test-firm", domain.ClickIntentPrimary, domain.TabCashback, 3)
	assert.Equal(t,
		"/firmy/test-firm?utm_source=home-ranking&utm_medium=primary&utm_campaign=rankings-tabs&tab=cashback&position=3",
		got,
	)
}

func TestCompanyHref_EscapesSlug(t *testing.T) {
	got := CompanyHref("firma handlowa", domain.ClickIntentLogo, domain.TabTop, 1)
	assert.Equal(t,
		"/firmy/firma%20handlowa?utm_source=home-ranking&utm_medium=logo&utm_campaign=rankings-tabs&tab=top&position=1",
		got,
	)
}
