package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"emanetBack/internal/cache"
	"emanetBack/internal/models"
	"emanetBack/internal/query"
	"emanetBack/internal/repositories"
)

type ListingService struct {
	ListingRepo *repositories.ListingRepository
	Cache       *cache.ListingCache

	// FetchListings overrides the snapshot source. Demo mode points it at
	// the bundled mock dataset; tests use it to skip MySQL.
	FetchListings func(ctx context.Context, category models.Category) ([]models.Listing, error)
}

func (s *ListingService) snapshot(ctx context.Context, category models.Category) ([]models.Listing, error) {
	if s.FetchListings != nil {
		return s.FetchListings(ctx, category)
	}
	if s.ListingRepo == nil {
		return nil, ErrNoDatabase
	}
	if listings, ok := s.Cache.Get(ctx, category); ok {
		return listings, nil
	}
	listings, err := s.ListingRepo.FetchByCategory(ctx, category)
	if err != nil {
		return nil, err
	}
	s.Cache.Set(ctx, category, listings)
	return listings, nil
}

// GetFilteredListings evaluates one render's filter state against the
// category snapshot. Min/max prices are computed over the unfiltered
// snapshot so the client's range slider keeps its full span.
func (s *ListingService) GetFilteredListings(ctx context.Context, q models.ListingQuery) (models.ListingListResponse, error) {
	q = query.Normalize(q)

	listings, err := s.snapshot(ctx, q.Category)
	if err != nil {
		return models.ListingListResponse{}, err
	}

	filtered := query.Apply(listings, q)

	resp := models.ListingListResponse{
		Listings:         filtered,
		Total:            len(filtered),
		HasActiveFilters: query.HasActiveFilters(q),
	}
	for i, l := range listings {
		if i == 0 || l.Price < resp.MinPrice {
			resp.MinPrice = l.Price
		}
		if l.Price > resp.MaxPrice {
			resp.MaxPrice = l.Price
		}
	}
	return resp, nil
}

func (s *ListingService) CreateListing(ctx context.Context, l models.Listing) (models.Listing, error) {
	if s.ListingRepo == nil {
		return models.Listing{}, ErrNoDatabase
	}
	l.ID = uuid.New().String()
	if l.Status == "" {
		l.Status = "active"
	}
	l.CreatedAt = time.Now()

	created, err := s.ListingRepo.CreateListing(ctx, l)
	if err != nil {
		return models.Listing{}, err
	}
	s.Cache.Invalidate(ctx, l.Category)
	return created, nil
}

func (s *ListingService) GetListingByID(ctx context.Context, id string) (models.Listing, error) {
	if s.ListingRepo == nil {
		return models.Listing{}, ErrNoDatabase
	}
	return s.ListingRepo.GetListingByID(ctx, id)
}

func (s *ListingService) UpdateListing(ctx context.Context, l models.Listing) (models.Listing, error) {
	if s.ListingRepo == nil {
		return models.Listing{}, ErrNoDatabase
	}
	updated, err := s.ListingRepo.UpdateListing(ctx, l)
	if err != nil {
		return models.Listing{}, err
	}
	s.Cache.Invalidate(ctx, updated.Category)
	return updated, nil
}

func (s *ListingService) DeleteListing(ctx context.Context, id string) error {
	if s.ListingRepo == nil {
		return ErrNoDatabase
	}
	listing, err := s.ListingRepo.GetListingByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.ListingRepo.DeleteListing(ctx, id); err != nil {
		return err
	}
	s.Cache.Invalidate(ctx, listing.Category)
	return nil
}

func (s *ListingService) ArchiveListing(ctx context.Context, id string, archive bool) error {
	if s.ListingRepo == nil {
		return ErrNoDatabase
	}
	status := "archive"
	if !archive {
		status = "active"
	}
	listing, err := s.ListingRepo.GetListingByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.ListingRepo.UpdateStatus(ctx, id, status); err != nil {
		return err
	}
	s.Cache.Invalidate(ctx, listing.Category)
	return nil
}

func (s *ListingService) GetListingsByUserID(ctx context.Context, userID string) ([]models.Listing, error) {
	if s.ListingRepo == nil {
		return nil, ErrNoDatabase
	}
	return s.ListingRepo.FetchByUserID(ctx, userID)
}
