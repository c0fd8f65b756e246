package domain

import "time"

// ClickIntent distinguishes where on the page a tracked click came from.
type ClickIntent string

const (
	ClickIntentPrimary   ClickIntent = "primary"
	ClickIntentSecondary ClickIntent = "secondary"
	ClickIntentLogo      ClickIntent = "logo"
)

// ClickEvent is one tracked outbound click on a company card.
type ClickEvent struct {
	ID        int64       `json:"id"`
	PublicID  string      `json:"publicId"`
	CompanyID int64       `json:"companyId"`
	Intent    ClickIntent `json:"intent"`
	Tab       RankingTab  `json:"tab"`
	Position  int         `json:"position"`
	IPHash    string      `json:"-"`
	CreatedAt time.Time   `json:"createdAt"`
}

// ClickWindow holds the two consecutive 30-day click counts for one
// company, as recomputed by the trend snapshot job.
type ClickWindow struct {
	CompanyID     int64 `json:"companyId"`
	Clicks30d     int   `json:"clicks30d"`
	ClicksPrev30d int   `json:"clicksPrev30d"`
}
