package models

import (
	"time"
)

// EscrowTransaction is a simulated protected-payment hold on a listing.
// No real gateway sits behind it; callbacks are HMAC-signed simulations.
type EscrowTransaction struct {
	ID        string     `json:"id"`
	ListingID string     `json:"listing_id"`
	BuyerID   string     `json:"buyer_id"`
	SellerID  string     `json:"seller_id"`
	Amount    float64    `json:"amount"`
	Status    string     `json:"status"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

type EscrowCreateRequest struct {
	ListingID string `json:"listing_id"`
	BuyerID   string `json:"buyer_id"`
}

type EscrowCallbackRequest struct {
	TransactionID string `json:"transaction_id"`
	Status        string `json:"status"`
}
