package services

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"

	"emanetBack/internal/escrow"
	"emanetBack/internal/models"
	"emanetBack/internal/repositories"
)

// EscrowService drives the simulated protected-payment flow. A hold is
// opened against an escrow-enabled listing, moved by HMAC-signed callbacks
// from the (simulated) payment provider, and released or refunded by the
// parties.
type EscrowService struct {
	EscrowRepo  *repositories.EscrowRepository
	ListingRepo *repositories.ListingRepository
	Secret      string
}

func (s *EscrowService) CreateHold(ctx context.Context, req models.EscrowCreateRequest) (models.EscrowTransaction, error) {
	if s.EscrowRepo == nil || s.ListingRepo == nil {
		return models.EscrowTransaction{}, ErrNoDatabase
	}
	listing, err := s.ListingRepo.GetListingByID(ctx, req.ListingID)
	if err != nil {
		return models.EscrowTransaction{}, err
	}
	if !listing.Escrow || listing.Status != "active" {
		return models.EscrowTransaction{}, ErrEscrowUnsupported
	}

	tx := models.EscrowTransaction{
		ID:        uuid.New().String(),
		ListingID: listing.ID,
		BuyerID:   req.BuyerID,
		SellerID:  listing.UserID,
		Amount:    listing.Price,
		Status:    escrow.StatusCreated,
	}
	return s.EscrowRepo.CreateTransaction(ctx, tx)
}

// HandleCallback applies a provider callback after checking its signature.
func (s *EscrowService) HandleCallback(ctx context.Context, body []byte, signature string) (models.EscrowTransaction, error) {
	if !escrow.VerifyHMAC(body, signature, s.Secret) {
		return models.EscrowTransaction{}, ErrBadSignature
	}
	var req models.EscrowCallbackRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return models.EscrowTransaction{}, err
	}
	return s.transition(ctx, req.TransactionID, req.Status)
}

func (s *EscrowService) Release(ctx context.Context, id string) (models.EscrowTransaction, error) {
	return s.transition(ctx, id, escrow.StatusReleased)
}

func (s *EscrowService) Refund(ctx context.Context, id string) (models.EscrowTransaction, error) {
	return s.transition(ctx, id, escrow.StatusRefunded)
}

func (s *EscrowService) transition(ctx context.Context, id, status string) (models.EscrowTransaction, error) {
	if s.EscrowRepo == nil {
		return models.EscrowTransaction{}, ErrNoDatabase
	}
	tx, err := s.EscrowRepo.GetTransactionByID(ctx, id)
	if err != nil {
		return models.EscrowTransaction{}, err
	}
	if !escrow.CanTransition(tx.Status, status) {
		return models.EscrowTransaction{}, ErrInvalidTransition
	}
	if err := s.EscrowRepo.UpdateStatus(ctx, id, status); err != nil {
		return models.EscrowTransaction{}, err
	}
	tx.Status = status
	return tx, nil
}

func (s *EscrowService) GetTransactionsByUserID(ctx context.Context, userID string) ([]models.EscrowTransaction, error) {
	if s.EscrowRepo == nil {
		return nil, ErrNoDatabase
	}
	return s.EscrowRepo.FetchByUserID(ctx, userID)
}
