// Package format renders company metrics for display. All functions
// are pure and total: missing or non-finite input yields a neutral
// placeholder instead of an error.
package format

import (
	"fmt"
	"math"
	"net/url"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/fundedrank/fundedrank-api/internal/domain"
)

// Placeholder is rendered wherever a metric has no usable value.
const Placeholder = "—"

// nbsp joins the amount and the currency code so they never wrap apart.
const nbsp = " "

var polishPrinter = message.NewPrinter(language.Polish)

// CompanyPrice renders the highest plan price as a Polish-locale USD
// amount with two decimals, e.g. "199,00 USD". Nil or non-finite input
// renders the placeholder.
func CompanyPrice(maxPlanPrice *float64) string {
	if maxPlanPrice == nil || math.IsNaN(*maxPlanPrice) || math.IsInf(*maxPlanPrice, 0) {
		return Placeholder
	}

	amount := polishPrinter.Sprint(number.Decimal(
		*maxPlanPrice,
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2),
	))
	return amount + nbsp + "USD"
}

// PayoutMetric prefers the concrete payout-time figure when known,
// formatted as whole hours with a floor of 1. Without it, the payout
// score is shown to one decimal with a "pkt" suffix; a non-finite
// score renders the placeholder.
func PayoutMetric(payoutHours *float64, payoutScore float64) string {
	if payoutHours != nil && !math.IsNaN(*payoutHours) && !math.IsInf(*payoutHours, 0) {
		hours := int(math.Floor(*payoutHours))
		if hours < 1 {
			hours = 1
		}
		return fmt.Sprintf("%dh", hours)
	}

	if math.IsNaN(payoutScore) || math.IsInf(payoutScore, 0) {
		return Placeholder
	}

	return strconv.FormatFloat(payoutScore, 'f', 1, 64) + " pkt"
}

// CompanyHref builds the tracked company link for one home-ranking
// position. The query parameters are emitted in a fixed order so the
// produced links are reproducible.
func CompanyHref(slug string, intent domain.ClickIntent, tab domain.RankingTab, position int) string {
	return "/firmy/" + url.PathEscape(slug) +
		"?utm_source=home-ranking" +
		"&utm_medium=" + url.QueryEscape(string(intent)) +
		"&utm_campaign=rankings-tabs" +
		"&tab=" + url.QueryEscape(string(tab)) +
		"&position=" + strconv.Itoa(position)
}
