package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"emanetBack/internal/models"
	"emanetBack/internal/repositories"
	"emanetBack/internal/services"
)

type EscrowHandler struct {
	Service *services.EscrowService
}

func (h *EscrowHandler) CreateHold(w http.ResponseWriter, r *http.Request) {
	var req models.EscrowCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.BuyerID == "" {
		if userID, ok := r.Context().Value("user_id").(string); ok {
			req.BuyerID = userID
		}
	}

	tx, err := h.Service.CreateHold(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrListingNotFound):
			http.Error(w, err.Error(), http.StatusNotFound)
		case errors.Is(err, services.ErrEscrowUnsupported):
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		default:
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(tx)
}

// Callback receives the simulated provider notification. The raw body is
// needed for signature verification, so it is read before decoding.
func (h *EscrowHandler) Callback(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "Cannot read body", http.StatusBadRequest)
		return
	}
	signature := r.Header.Get("X-Signature")

	tx, err := h.Service.HandleCallback(r.Context(), body, signature)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrBadSignature):
			http.Error(w, err.Error(), http.StatusUnauthorized)
		case errors.Is(err, repositories.ErrEscrowNotFound):
			http.Error(w, err.Error(), http.StatusNotFound)
		case errors.Is(err, services.ErrInvalidTransition):
			http.Error(w, err.Error(), http.StatusConflict)
		default:
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(tx)
}

func (h *EscrowHandler) Release(w http.ResponseWriter, r *http.Request) {
	h.finish(w, r, h.Service.Release)
}

func (h *EscrowHandler) Refund(w http.ResponseWriter, r *http.Request) {
	h.finish(w, r, h.Service.Refund)
}

func (h *EscrowHandler) finish(w http.ResponseWriter, r *http.Request,
	op func(ctx context.Context, id string) (models.EscrowTransaction, error)) {
	id := r.URL.Query().Get(":id")
	if id == "" {
		http.Error(w, "Missing transaction ID", http.StatusBadRequest)
		return
	}

	tx, err := op(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrEscrowNotFound):
			http.Error(w, err.Error(), http.StatusNotFound)
		case errors.Is(err, services.ErrInvalidTransition):
			http.Error(w, err.Error(), http.StatusConflict)
		default:
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(tx)
}

func (h *EscrowHandler) GetTransactionsByUserID(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get(":user_id")
	if userID == "" {
		http.Error(w, "Missing user ID", http.StatusBadRequest)
		return
	}

	txs, err := h.Service.GetTransactionsByUserID(r.Context(), userID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(txs)
}
