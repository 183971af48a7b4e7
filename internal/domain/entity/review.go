package entity

import "time"

// Review is a product review. Creation is gated on an approved purchase
// verification for the same (user, product), so IsVerifiedPurchase is set
// true at creation time and never re-derived afterwards.
type Review struct {
	ID                 string    `json:"id" firestore:"id"`
	ProductID          string    `json:"product_id" firestore:"productId"`
	UserID             string    `json:"user_id" firestore:"userId"`
	UserName           string    `json:"user_name" firestore:"userName"`
	Rating             int       `json:"rating" firestore:"rating"` // 1-5
	Title              string    `json:"title" firestore:"title"`
	Content            string    `json:"content" firestore:"content"`
	IsVerifiedPurchase bool      `json:"is_verified_purchase" firestore:"isVerifiedPurchase"`
	ProductUsagePeriod string    `json:"product_usage_period,omitempty" firestore:"productUsagePeriod,omitempty"`
	CreatedAt          time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt          time.Time `json:"updated_at" firestore:"updatedAt"`

	// IsUserVerified is derived per read (any approved verification for the
	// author, regardless of product) and never stored.
	IsUserVerified bool `json:"is_user_verified" firestore:"-"`
}
