package entity

import "time"

type Product struct {
	ID                 string    `json:"id" firestore:"id"`
	Name               string    `json:"name" firestore:"name"`
	Description        string    `json:"description,omitempty" firestore:"description,omitempty"`
	Price              float64   `json:"price" firestore:"price"`
	ImageURL           string    `json:"image_url,omitempty" firestore:"imageUrl,omitempty"`
	Category           string    `json:"category" firestore:"category"`
	Rating             float64   `json:"rating" firestore:"rating"`
	ReviewCount        int       `json:"review_count" firestore:"reviewCount"`
	CommunityMembers   int       `json:"community_members" firestore:"communityMembers"`
	HasVerifiedReviews bool      `json:"has_verified_reviews" firestore:"hasVerifiedReviews"`
	CreatedAt          time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt          time.Time `json:"updated_at" firestore:"updatedAt"`
}
