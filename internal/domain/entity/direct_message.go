package entity

import "time"

// DirectMessage is a reviewer Q&A message. The conversation thread is keyed
// by the review it concerns. Append-only except for IsRead, which moves
// false to true exactly once when the receiver opens the thread.
type DirectMessage struct {
	ID         string    `json:"id" firestore:"id"`
	ReviewID   string    `json:"review_id" firestore:"reviewId"`
	SenderID   string    `json:"sender_id" firestore:"senderId"`
	ReceiverID string    `json:"receiver_id" firestore:"receiverId"`
	Message    string    `json:"message" firestore:"message"`
	ImageURL   string    `json:"image_url,omitempty" firestore:"imageUrl,omitempty"`
	IsRead     bool      `json:"is_read" firestore:"isRead"`
	CreatedAt  time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt  time.Time `json:"updated_at" firestore:"updatedAt"`

	// Display names resolved per read from user profiles, not stored.
	SenderName   string `json:"sender_name,omitempty" firestore:"-"`
	ReceiverName string `json:"receiver_name,omitempty" firestore:"-"`
}
