package entity

import "time"

// ProductCommunity groups the chat rooms of one product. At most one
// community exists per product.
type ProductCommunity struct {
	ID            string    `json:"id" firestore:"id"`
	ProductID     string    `json:"product_id" firestore:"productId"`
	CommunityName string    `json:"community_name" firestore:"communityName"`
	Description   string    `json:"description,omitempty" firestore:"description,omitempty"`
	CreatedBy     string    `json:"created_by" firestore:"createdBy"`
	CreatedAt     time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt     time.Time `json:"updated_at" firestore:"updatedAt"`
}

// CommunityTopic belongs to exactly one community and is soft-deleted via
// IsActive.
type CommunityTopic struct {
	ID          string    `json:"id" firestore:"id"`
	CommunityID string    `json:"community_id" firestore:"communityId"`
	TopicName   string    `json:"topic_name" firestore:"topicName"`
	Description string    `json:"description,omitempty" firestore:"description,omitempty"`
	CreatedBy   string    `json:"created_by" firestore:"createdBy"`
	IsActive    bool      `json:"is_active" firestore:"isActive"`
	CreatedAt   time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt   time.Time `json:"updated_at" firestore:"updatedAt"`
}
