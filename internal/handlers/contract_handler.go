package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"emanetBack/internal/repositories"
	"emanetBack/internal/services"
)

type ContractHandler struct {
	Service *services.ContractService
}

// GetContract streams the agreement PDF for a listing. The buyer is the
// authenticated caller.
func (h *ContractHandler) GetContract(w http.ResponseWriter, r *http.Request) {
	listingID := r.URL.Query().Get(":id")
	if listingID == "" {
		http.Error(w, "Missing listing ID", http.StatusBadRequest)
		return
	}
	buyerID, _ := r.Context().Value("user_id").(string)
	if buyerID == "" {
		http.Error(w, "Missing buyer", http.StatusUnauthorized)
		return
	}

	pdfBytes, filename, err := h.Service.Generate(r.Context(), listingID, buyerID)
	if err != nil {
		if errors.Is(err, repositories.ErrListingNotFound) || errors.Is(err, repositories.ErrUserNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Write(pdfBytes)
}
