package entity

import "time"

const (
	PointCategoryReview       = "review"
	PointCategoryChat         = "chat"
	PointCategoryVerification = "verification"
)

// UserPoints is the additive per-user points ledger. Counters only ever
// increase; TotalPoints must equal the sum of the category counters after
// every update.
type UserPoints struct {
	ID                 string    `json:"id" firestore:"id"`
	UserID             string    `json:"user_id" firestore:"userId"`
	TotalPoints        int       `json:"total_points" firestore:"totalPoints"`
	ReviewPoints       int       `json:"review_points" firestore:"reviewPoints"`
	ChatPoints         int       `json:"chat_points" firestore:"chatPoints"`
	VerificationPoints int       `json:"verification_points" firestore:"verificationPoints"`
	CreatedAt          time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt          time.Time `json:"updated_at" firestore:"updatedAt"`
}

// pointsTable is the authoritative action-to-points lookup. The award logic
// is the source of truth; UI copy follows this table.
var pointsTable = map[string]int{
	"review_post":           10,
	"review_helpful":        5,
	"chat_message":          2,
	"verification_upload":   15,
	"verification_approved": 30,
	"first_review":          20,
	"daily_login":           1,
}

// PointsForAction returns the configured award for an action, 0 for
// unknown actions.
func PointsForAction(action string) int {
	return pointsTable[action]
}

// PointsTable returns a copy of the full action table.
func PointsTable() map[string]int {
	out := make(map[string]int, len(pointsTable))
	for k, v := range pointsTable {
		out[k] = v
	}
	return out
}
