package domain

import "time"

// ReviewStatus is the moderation state of a review.
type ReviewStatus string

const (
	ReviewStatusPending  ReviewStatus = "pending"
	ReviewStatusApproved ReviewStatus = "approved"
	ReviewStatusRejected ReviewStatus = "rejected"
)

// Review is a user-submitted company review. Only approved reviews feed
// the per-company aggregates used by the ranking.
type Review struct {
	ID           int64          `json:"id"`
	PublicID     string         `json:"publicId"`
	CompanyID    int64          `json:"companyId"`
	CompanySlug  string         `json:"companySlug"`
	AuthorName   string         `json:"authorName"`
	AuthorEmail  string         `json:"-"`
	Rating       int            `json:"rating"`
	Title        string         `json:"title"`
	Body         string         `json:"body"`
	Recommended  bool           `json:"recommended"`
	Categories   CategoryScores `json:"categories"`
	Status       ReviewStatus   `json:"status"`
	RejectReason *string        `json:"rejectReason,omitempty"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
}

// ReviewSubmission is the payload accepted from the public review form.
type ReviewSubmission struct {
	AuthorName  string         `json:"authorName"`
	AuthorEmail string         `json:"authorEmail"`
	Rating      int            `json:"rating"`
	Title       string         `json:"title"`
	Body        string         `json:"body"`
	Recommended bool           `json:"recommended"`
	Categories  CategoryScores `json:"categories"`
}

// AdminStats backs the admin dashboard counters.
type AdminStats struct {
	Companies      int `json:"companies"`
	PendingReviews int `json:"pendingReviews"`
	Clicks30d      int `json:"clicks30d"`
}
