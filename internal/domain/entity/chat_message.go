package entity

import "time"

// ChatMessage is one append-only entry in a product chat room. Rooms have no
// independent existence; a room is implicitly created by its first message.
type ChatMessage struct {
	ID                 string    `json:"id" firestore:"id"`
	RoomID             string    `json:"room_id" firestore:"roomId"`
	UserID             string    `json:"user_id" firestore:"userId"`
	UserName           string    `json:"user_name" firestore:"userName"`
	Message            string    `json:"message" firestore:"message"`
	IsVerifiedPurchase bool      `json:"is_verified_purchase" firestore:"isVerifiedPurchase"`
	UserPoints         *int      `json:"user_points" firestore:"userPoints"`       // sender's total at send time
	PointsEarned       *int      `json:"points_earned" firestore:"pointsEarned"`   // award for this message
	CreatedAt          time.Time `json:"created_at" firestore:"createdAt"`

	// Derived per read, not stored.
	IsUserVerified bool `json:"is_user_verified" firestore:"-"`
}
