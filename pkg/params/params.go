// Package params maps raw query-string values to typed filter values.
// Parsing is permissive on purpose: user input can only ever narrow a
// result set, so malformed values resolve to "no filter" instead of
// failing the request.
package params

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/fundedrank/fundedrank-api/internal/domain"
)

// String trims the value; whitespace-only input becomes empty.
func String(values url.Values, key string) string {
	return strings.TrimSpace(values.Get(key))
}

// Number parses a non-negative integer. Empty or non-numeric input
// yields nil ("no filter"); negative numbers are floored to zero.
func Number(values url.Values, key string) *int {
	raw := strings.TrimSpace(values.Get(key))
	if raw == "" {
		return nil
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	if n < 0 {
		n = 0
	}
	return &n
}

// Boolean recognizes only the literals "true" and "false"; anything
// else yields nil ("no filter").
func Boolean(values url.Values, key string) *bool {
	switch strings.TrimSpace(values.Get(key)) {
	case "true":
		v := true
		return &v
	case "false":
		v := false
		return &v
	}
	return nil
}

// Tab resolves the home-ranking tab ID, falling back to the default
// tab for unknown or missing values.
func Tab(values url.Values, key string) domain.RankingTab {
	raw := domain.RankingTab(strings.TrimSpace(values.Get(key)))
	for _, tab := range domain.KnownTabs {
		if raw == tab {
			return tab
		}
	}
	return domain.DefaultTab
}

// List splits a comma-separated value, dropping empty entries. A
// missing or blank parameter yields an empty slice ("no filter").
func List(values url.Values, key string) []string {
	raw := strings.TrimSpace(values.Get(key))
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// Filters assembles a RankingFilters object from the rankings
// endpoint's query parameters.
func Filters(values url.Values) domain.RankingFilters {
	return domain.RankingFilters{
		Search:           String(values, "search"),
		Countries:        List(values, "country"),
		EvaluationModels: List(values, "model"),
		AccountTypes:     List(values, "account"),
		MinReviews:       Number(values, "minReviews"),
		HasCashback:      Boolean(values, "cashback"),
	}
}
