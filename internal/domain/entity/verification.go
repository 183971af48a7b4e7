package entity

import "time"

const (
	VerificationTypePhoto   = "photo"
	VerificationTypeReceipt = "receipt"

	VerificationStatusPending  = "pending"
	VerificationStatusApproved = "approved"
	VerificationStatusRejected = "rejected"
)

// PurchaseVerification is a proof-of-purchase submission awaiting
// administrative review. Only the status and updatedAt fields change after
// creation.
type PurchaseVerification struct {
	ID               string    `json:"id" firestore:"id"`
	UserID           string    `json:"user_id" firestore:"userId"`
	ProductID        string    `json:"product_id" firestore:"productId"`
	VerificationType string    `json:"verification_type" firestore:"verificationType"` // "photo", "receipt"
	FileURL          string    `json:"file_url,omitempty" firestore:"fileUrl,omitempty"`
	Status           string    `json:"status" firestore:"status"` // "pending", "approved", "rejected"
	CreatedAt        time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt        time.Time `json:"updated_at" firestore:"updatedAt"`
}
