package domain

// RankingFilters narrows the ranking dataset. Zero values mean "no
// filter": an empty slice matches everything, a nil MinReviews or
// HasCashback leaves that dimension unconstrained.
type RankingFilters struct {
	Search           string   `json:"search"`
	Countries        []string `json:"countries"`
	EvaluationModels []string `json:"evaluationModels"`
	AccountTypes     []string `json:"accountTypes"`
	MinReviews       *int     `json:"minReviews"`
	HasCashback      *bool    `json:"hasCashback"`
}

// RankingsDataset is the JSON-serializable response of the rankings
// endpoint. MaxValues and the available* lists describe the filtered
// result set, not the unfiltered universe.
type RankingsDataset struct {
	TotalCompanies            int               `json:"totalCompanies"`
	FilteredCompanies         int               `json:"filteredCompanies"`
	Companies                 []CompanySnapshot `json:"companies"`
	MaxValues                 RankingMaxValues  `json:"maxValues"`
	AvailableCountries        []string          `json:"availableCountries"`
	AvailableEvaluationModels []string          `json:"availableEvaluationModels"`
	AvailableAccountTypes     []string          `json:"availableAccountTypes"`
}

// SortKey identifies the reviews-ranking sort column.
type SortKey string

const (
	SortByRating    SortKey = "rating"
	SortByReviews   SortKey = "reviews"
	SortByTrend     SortKey = "trend"
	SortByFavorites SortKey = "favorites"
)

// SortDirection is either "asc" or "desc".
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// ReviewsRankingOptions controls the reviews-ranking variant.
type ReviewsRankingOptions struct {
	Sort       SortKey       `json:"sort"`
	Direction  SortDirection `json:"direction"`
	Limit      int           `json:"limit"`
	MinReviews int           `json:"minReviews"`
}

// ReviewsRankingSummary aggregates the companies that made it into the
// reviews ranking. AverageRating is nil when no company has a rating.
type ReviewsRankingSummary struct {
	TotalCompanies int      `json:"totalCompanies"`
	TotalReviews   int      `json:"totalReviews"`
	AverageRating  *float64 `json:"averageRating"`
	NewReviews30d  int      `json:"newReviews30d"`
}

// ReviewsRankingItem is one positioned row of the reviews ranking.
type ReviewsRankingItem struct {
	Position int             `json:"position"`
	Company  CompanySnapshot `json:"company"`
}

// ReviewsRanking is the response of the reviews-ranking endpoint.
type ReviewsRanking struct {
	Summary ReviewsRankingSummary `json:"summary"`
	Items   []ReviewsRankingItem  `json:"items"`
}

// RankingTab identifies one of the home-ranking tabs.
type RankingTab string

const (
	TabTop      RankingTab = "top"
	TabCashback RankingTab = "cashback"
	TabTrending RankingTab = "trending"
	TabNewest   RankingTab = "newest"
)

// DefaultTab is used whenever the tab query parameter is missing or
// not one of the known tab IDs.
const DefaultTab = TabTop

// KnownTabs lists every tab the home ranking renders, in display order.
var KnownTabs = []RankingTab{TabTop, TabCashback, TabTrending, TabNewest}

// HomeRankingEntry is one row of a home-ranking tab, carrying the
// deterministic tracking link for that position.
type HomeRankingEntry struct {
	Position int             `json:"position"`
	Href     string          `json:"href"`
	Company  CompanySnapshot `json:"company"`
}

// HomeRanking is the response of the home-ranking endpoint.
type HomeRanking struct {
	Tab     RankingTab         `json:"tab"`
	Entries []HomeRankingEntry `json:"entries"`
}
