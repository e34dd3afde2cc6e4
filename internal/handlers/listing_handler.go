package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"emanetBack/internal/models"
	"emanetBack/internal/repositories"
	"emanetBack/internal/services"
	"emanetBack/utils"
)

type ListingHandler struct {
	Service *services.ListingService
}

func (h *ListingHandler) CreateListing(w http.ResponseWriter, r *http.Request) {
	err := r.ParseMultipartForm(32 << 20) // 32MB
	if err != nil {
		http.Error(w, "Invalid multipart form", http.StatusBadRequest)
		return
	}

	var listing models.Listing
	listing.Category = models.Category(r.FormValue("category"))
	listing.Title = r.FormValue("title")
	listing.Description = r.FormValue("description")
	listing.Price, _ = strconv.ParseFloat(r.FormValue("price"), 64)
	listing.Location.City = r.FormValue("city")
	listing.Location.District = r.FormValue("district")
	listing.Location.Latitude, _ = strconv.ParseFloat(r.FormValue("lat"), 64)
	listing.Location.Longitude, _ = strconv.ParseFloat(r.FormValue("lng"), 64)
	listing.Featured = r.FormValue("featured") == "true"
	listing.Escrow = r.FormValue("escrow") == "true"
	if userID, ok := r.Context().Value("user_id").(string); ok {
		listing.UserID = userID
	}

	switch listing.Category {
	case models.CategoryRoommate:
		details := &models.RoommateDetails{
			RoomType: r.FormValue("room_type"),
			Gender:   r.FormValue("gender"),
			Smoking:  r.FormValue("smoking") == "true",
			Pets:     r.FormValue("pets") == "true",
			Students: r.FormValue("students") == "true",
		}
		if from, err := time.Parse("2006-01-02", r.FormValue("available_from")); err == nil {
			details.AvailableFrom = &from
		}
		listing.Roommate = details
	case models.CategoryPet:
		listing.Pet = &models.PetDetails{
			PetType:    r.FormValue("pet_type"),
			Breed:      r.FormValue("breed"),
			Age:        r.FormValue("age"),
			Gender:     r.FormValue("gender"),
			Vaccinated: r.FormValue("vaccinated") == "true",
			Neutered:   r.FormValue("neutered") == "true",
		}
	case models.CategoryFurniture:
		details := &models.FurnitureDetails{
			FurnitureType: r.FormValue("furniture_type"),
			Condition:     r.FormValue("condition"),
		}
		if dims := r.FormValue("dimensions"); dims != "" {
			details.Dimensions = &dims
		}
		listing.Furniture = details
	default:
		http.Error(w, "Unknown listing category", http.StatusBadRequest)
		return
	}

	images, err := saveListingImages(r)
	if err != nil {
		http.Error(w, "Failed to save images", http.StatusInternalServerError)
		return
	}
	listing.Images = images

	created, err := h.Service.CreateListing(r.Context(), listing)
	if err != nil {
		http.Error(w, "Failed to create listing", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(created)
}

func saveListingImages(r *http.Request) ([]models.Image, error) {
	if r.MultipartForm == nil {
		return nil, nil
	}
	var images []models.Image
	for _, fileHeader := range r.MultipartForm.File["images"] {
		file, err := fileHeader.Open()
		if err != nil {
			return nil, err
		}
		data, err := io.ReadAll(file)
		file.Close()
		if err != nil {
			return nil, err
		}

		filename := fmt.Sprintf("%d_%s", time.Now().UnixNano(), fileHeader.Filename)

		if utils.StorageConfigured() {
			url, err := utils.UploadFileToS3(data, filename, "listings")
			if err != nil {
				return nil, err
			}
			images = append(images, models.Image{
				Name: fileHeader.Filename,
				Path: url,
				Type: fileHeader.Header.Get("Content-Type"),
			})
			continue
		}

		uploadDir := "./uploads"
		if _, err := os.Stat(uploadDir); os.IsNotExist(err) {
			if err := os.MkdirAll(uploadDir, os.ModePerm); err != nil {
				return nil, err
			}
		}
		if err := os.WriteFile(filepath.Join(uploadDir, filename), data, 0o644); err != nil {
			return nil, err
		}
		images = append(images, models.Image{
			Name: fileHeader.Filename,
			Path: "/uploads/" + filename,
			Type: fileHeader.Header.Get("Content-Type"),
		})
	}
	return images, nil
}

func (h *ListingHandler) GetListingByID(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get(":id")
	if id == "" {
		http.Error(w, "Missing listing ID", http.StatusBadRequest)
		return
	}

	listing, err := h.Service.GetListingByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, repositories.ErrListingNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(listing)
}

// GetFilteredListings runs the query engine over one category's snapshot.
// The body carries the whole filter state the client rebuilt on its last
// control change.
func (h *ListingHandler) GetFilteredListings(w http.ResponseWriter, r *http.Request) {
	var req models.ListingFilterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.Query.Category == "" {
		http.Error(w, "Missing category", http.StatusBadRequest)
		return
	}

	resp, err := h.Service.GetFilteredListings(r.Context(), req.Query)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

func (h *ListingHandler) UpdateListing(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get(":id")
	if id == "" {
		http.Error(w, "Missing listing ID", http.StatusBadRequest)
		return
	}

	var listing models.Listing
	if err := json.NewDecoder(r.Body).Decode(&listing); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	listing.ID = id

	updated, err := h.Service.UpdateListing(r.Context(), listing)
	if err != nil {
		if errors.Is(err, repositories.ErrListingNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(updated)
}

func (h *ListingHandler) DeleteListing(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get(":id")
	if id == "" {
		http.Error(w, "Missing listing ID", http.StatusBadRequest)
		return
	}

	if err := h.Service.DeleteListing(r.Context(), id); err != nil {
		if errors.Is(err, repositories.ErrListingNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *ListingHandler) ArchiveListing(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get(":id")
	if id == "" {
		http.Error(w, "Missing listing ID", http.StatusBadRequest)
		return
	}

	var req struct {
		Archive bool `json:"archive"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Service.ArchiveListing(r.Context(), id, req.Archive); err != nil {
		if errors.Is(err, repositories.ErrListingNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *ListingHandler) GetListingsByUserID(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get(":user_id")
	if userID == "" {
		http.Error(w, "Missing user ID", http.StatusBadRequest)
		return
	}

	listings, err := h.Service.GetListingsByUserID(r.Context(), userID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(listings)
}
