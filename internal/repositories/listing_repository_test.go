package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"emanetBack/internal/models"
)

var listingTestColumns = []string{
	"id", "category", "title", "description", "price",
	"city", "district", "latitude", "longitude",
	"user_id", "name", "id_verified", "student_verified", "phone_verified", "rating", "reviews_count", "avatar_path",
	"featured", "escrow", "status", "created_at", "updated_at",
	"room_type", "available_from", "pref_gender", "pref_smoking", "pref_pets", "pref_students",
	"pet_type", "breed", "age", "pet_gender", "vaccinated", "neutered",
	"furniture_type", "condition", "dimensions",
}

func TestFetchByCategoryAssemblesPetDetails(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	created := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows(listingTestColumns).AddRow(
		"pt-100", "pet", "Golden Retriever yavru", "Sahiplendirme", 1500.0,
		"İstanbul", "Kadıköy", 40.99, 29.03,
		"u-1", "Ayşe", true, false, true, 4.8, 12, nil,
		true, false, "active", created, nil,
		nil, nil, nil, nil, nil, nil,
		"dog", "Golden Retriever", "3 ay", "male", true, false,
		nil, nil, nil,
	)
	mock.ExpectQuery("SELECT(.+)FROM listings l").
		WithArgs("pet").
		WillReturnRows(rows)

	repo := &ListingRepository{DB: db}
	listings, err := repo.FetchByCategory(context.Background(), models.CategoryPet)
	if err != nil {
		t.Fatalf("FetchByCategory: %v", err)
	}
	if len(listings) != 1 {
		t.Fatalf("expected 1 listing, got %d", len(listings))
	}

	l := listings[0]
	if l.Pet == nil {
		t.Fatal("pet details not assembled")
	}
	if l.Pet.Breed != "Golden Retriever" || !l.Pet.Vaccinated || l.Pet.Neutered {
		t.Fatalf("pet details wrong: %+v", l.Pet)
	}
	if l.Roommate != nil || l.Furniture != nil {
		t.Fatal("details for other categories should stay nil")
	}
	if l.User.ID != "u-1" || l.User.Rating != 4.8 {
		t.Fatalf("owner not assembled: %+v", l.User)
	}
	if !l.User.Verifications.ID || l.User.Verifications.Student {
		t.Fatalf("verifications wrong: %+v", l.User.Verifications)
	}
	if !l.CreatedAt.Equal(created) {
		t.Fatalf("created_at wrong: %v", l.CreatedAt)
	}
	if l.UpdatedAt != nil {
		t.Fatalf("updated_at should stay nil, got %v", l.UpdatedAt)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestDeleteListingNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("DELETE FROM listings").
		WithArgs("missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := &ListingRepository{DB: db}
	if err := repo.DeleteListing(context.Background(), "missing"); err != ErrListingNotFound {
		t.Fatalf("expected ErrListingNotFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestUpdateStatus(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("UPDATE listings SET status").
		WithArgs("archived", "fr-001").
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := &ListingRepository{DB: db}
	if err := repo.UpdateStatus(context.Background(), "fr-001", "archived"); err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestPriceBoundsEmptyCategory(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT MIN\\(price\\), MAX\\(price\\) FROM listings").
		WithArgs("furniture").
		WillReturnRows(sqlmock.NewRows([]string{"min", "max"}).AddRow(nil, nil))

	repo := &ListingRepository{DB: db}
	minPrice, maxPrice, err := repo.PriceBounds(context.Background(), models.CategoryFurniture)
	if err != nil {
		t.Fatalf("PriceBounds: %v", err)
	}
	if minPrice != 0 || maxPrice != 0 {
		t.Fatalf("expected zero bounds for empty category, got %v %v", minPrice, maxPrice)
	}
}
