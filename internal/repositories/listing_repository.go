package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"emanetBack/internal/models"
)

var (
	ErrListingNotFound = errors.New("listing not found")
)

type ListingRepository struct {
	DB *sql.DB
}

const listingColumns = `
	l.id, l.category, l.title, l.description, l.price,
	l.city, l.district, l.latitude, l.longitude,
	l.user_id, u.name, u.id_verified, u.student_verified, u.phone_verified, u.rating, u.reviews_count, u.avatar_path,
	l.featured, l.escrow, l.status, l.created_at, l.updated_at,
	l.room_type, l.available_from, l.pref_gender, l.pref_smoking, l.pref_pets, l.pref_students,
	l.pet_type, l.breed, l.age, l.pet_gender, l.vaccinated, l.neutered,
	l.furniture_type, l.condition, l.dimensions`

func (r *ListingRepository) CreateListing(ctx context.Context, l models.Listing) (models.Listing, error) {
	query := `
		INSERT INTO listings
			(id, category, title, description, price, city, district, latitude, longitude,
			 user_id, featured, escrow, status,
			 room_type, available_from, pref_gender, pref_smoking, pref_pets, pref_students,
			 pet_type, breed, age, pet_gender, vaccinated, neutered,
			 furniture_type, ` + "`condition`" + `, dimensions, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, NOW())
	`
	var roomType, prefGender, petType, breed, age, petGender, furnitureType, condition, dims *string
	var prefSmoking, prefPets, prefStud, vaccinated, neutered *bool
	var availableFrom *time.Time
	switch l.Category {
	case models.CategoryRoommate:
		if l.Roommate != nil {
			roomType = &l.Roommate.RoomType
			availableFrom = l.Roommate.AvailableFrom
			prefGender = &l.Roommate.Gender
			prefSmoking = &l.Roommate.Smoking
			prefPets = &l.Roommate.Pets
			prefStud = &l.Roommate.Students
		}
	case models.CategoryPet:
		if l.Pet != nil {
			petType = &l.Pet.PetType
			breed = &l.Pet.Breed
			age = &l.Pet.Age
			petGender = &l.Pet.Gender
			vaccinated = &l.Pet.Vaccinated
			neutered = &l.Pet.Neutered
		}
	case models.CategoryFurniture:
		if l.Furniture != nil {
			furnitureType = &l.Furniture.FurnitureType
			condition = &l.Furniture.Condition
			dims = l.Furniture.Dimensions
		}
	}

	_, err := r.DB.ExecContext(ctx, query,
		l.ID, l.Category, l.Title, l.Description, l.Price,
		l.Location.City, l.Location.District, l.Location.Latitude, l.Location.Longitude,
		l.UserID, l.Featured, l.Escrow, l.Status,
		roomType, availableFrom, prefGender, prefSmoking, prefPets, prefStud,
		petType, breed, age, petGender, vaccinated, neutered,
		furnitureType, condition, dims,
	)
	if err != nil {
		return models.Listing{}, err
	}

	for _, img := range l.Images {
		_, err := r.DB.ExecContext(ctx,
			`INSERT INTO listing_images (listing_id, name, path, type) VALUES (?, ?, ?, ?)`,
			l.ID, img.Name, img.Path, img.Type,
		)
		if err != nil {
			return models.Listing{}, err
		}
	}
	return l, nil
}

func (r *ListingRepository) GetListingByID(ctx context.Context, id string) (models.Listing, error) {
	query := `
		SELECT ` + listingColumns + `
		FROM listings l
		JOIN users u ON l.user_id = u.id
		WHERE l.id = ?
	`
	row := r.DB.QueryRowContext(ctx, query, id)
	l, err := scanListing(row)
	if err == sql.ErrNoRows {
		return models.Listing{}, ErrListingNotFound
	}
	if err != nil {
		return models.Listing{}, err
	}

	images, err := r.loadImages(ctx, id)
	if err != nil {
		return models.Listing{}, err
	}
	l.Images = images
	return l, nil
}

// FetchByCategory loads the active snapshot of one category for the query
// engine. Filtering and ordering happen in-process, not in SQL, so the
// snapshot is loaded whole.
func (r *ListingRepository) FetchByCategory(ctx context.Context, category models.Category) ([]models.Listing, error) {
	query := `
		SELECT ` + listingColumns + `
		FROM listings l
		JOIN users u ON l.user_id = u.id
		WHERE l.category = ? AND l.status = 'active'
		ORDER BY l.created_at DESC
	`
	rows, err := r.DB.QueryContext(ctx, query, category)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var listings []models.Listing
	for rows.Next() {
		l, err := scanListing(rows)
		if err != nil {
			return nil, err
		}
		listings = append(listings, l)
	}
	return listings, rows.Err()
}

func (r *ListingRepository) FetchByUserID(ctx context.Context, userID string) ([]models.Listing, error) {
	query := `
		SELECT ` + listingColumns + `
		FROM listings l
		JOIN users u ON l.user_id = u.id
		WHERE l.user_id = ?
		ORDER BY l.created_at DESC
	`
	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var listings []models.Listing
	for rows.Next() {
		l, err := scanListing(rows)
		if err != nil {
			return nil, err
		}
		listings = append(listings, l)
	}
	return listings, rows.Err()
}

func (r *ListingRepository) UpdateListing(ctx context.Context, l models.Listing) (models.Listing, error) {
	query := `
		UPDATE listings
		SET title = ?, description = ?, price = ?, city = ?, district = ?, featured = ?, escrow = ?, updated_at = NOW()
		WHERE id = ?
	`
	result, err := r.DB.ExecContext(ctx, query,
		l.Title, l.Description, l.Price, l.Location.City, l.Location.District, l.Featured, l.Escrow, l.ID,
	)
	if err != nil {
		return models.Listing{}, err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return models.Listing{}, err
	}
	if rowsAffected == 0 {
		return models.Listing{}, ErrListingNotFound
	}
	return r.GetListingByID(ctx, l.ID)
}

func (r *ListingRepository) UpdateStatus(ctx context.Context, id string, status string) error {
	result, err := r.DB.ExecContext(ctx, `UPDATE listings SET status = ?, updated_at = NOW() WHERE id = ?`, status, id)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrListingNotFound
	}
	return nil
}

func (r *ListingRepository) DeleteListing(ctx context.Context, id string) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM listings WHERE id = ?`, id)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrListingNotFound
	}
	return nil
}

// PriceBounds returns the min/max price of one category, shown by the client
// next to the range slider.
func (r *ListingRepository) PriceBounds(ctx context.Context, category models.Category) (float64, float64, error) {
	var minPrice, maxPrice sql.NullFloat64
	err := r.DB.QueryRowContext(ctx,
		`SELECT MIN(price), MAX(price) FROM listings WHERE category = ? AND status = 'active'`, category,
	).Scan(&minPrice, &maxPrice)
	if err != nil {
		return 0, 0, err
	}
	return minPrice.Float64, maxPrice.Float64, nil
}

func (r *ListingRepository) loadImages(ctx context.Context, listingID string) ([]models.Image, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT name, path, type FROM listing_images WHERE listing_id = ?`, listingID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var images []models.Image
	for rows.Next() {
		var img models.Image
		if err := rows.Scan(&img.Name, &img.Path, &img.Type); err != nil {
			return nil, err
		}
		images = append(images, img)
	}
	return images, rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanListing(row rowScanner) (models.Listing, error) {
	var (
		l          models.Listing
		avatarPath sql.NullString

		roomType, prefGender sql.NullString
		availableFrom        sql.NullTime
		prefSmoking          sql.NullBool
		prefPets             sql.NullBool
		prefStudents         sql.NullBool

		petType, breed, age, petGender sql.NullString
		vaccinated, neutered           sql.NullBool

		furnitureType, condition, dimensions sql.NullString
	)

	err := row.Scan(
		&l.ID, &l.Category, &l.Title, &l.Description, &l.Price,
		&l.Location.City, &l.Location.District, &l.Location.Latitude, &l.Location.Longitude,
		&l.UserID, &l.User.Name,
		&l.User.Verifications.ID, &l.User.Verifications.Student, &l.User.Verifications.Phone,
		&l.User.Rating, &l.User.ReviewsCount, &avatarPath,
		&l.Featured, &l.Escrow, &l.Status, &l.CreatedAt, &l.UpdatedAt,
		&roomType, &availableFrom, &prefGender, &prefSmoking, &prefPets, &prefStudents,
		&petType, &breed, &age, &petGender, &vaccinated, &neutered,
		&furnitureType, &condition, &dimensions,
	)
	if err != nil {
		return models.Listing{}, err
	}

	l.User.ID = l.UserID
	if avatarPath.Valid {
		l.User.AvatarPath = &avatarPath.String
	}

	switch l.Category {
	case models.CategoryRoommate:
		details := &models.RoommateDetails{
			RoomType: roomType.String,
			Gender:   prefGender.String,
			Smoking:  prefSmoking.Bool,
			Pets:     prefPets.Bool,
			Students: prefStudents.Bool,
		}
		if availableFrom.Valid {
			details.AvailableFrom = &availableFrom.Time
		}
		l.Roommate = details
	case models.CategoryPet:
		l.Pet = &models.PetDetails{
			PetType:    petType.String,
			Breed:      breed.String,
			Age:        age.String,
			Gender:     petGender.String,
			Vaccinated: vaccinated.Bool,
			Neutered:   neutered.Bool,
		}
	case models.CategoryFurniture:
		details := &models.FurnitureDetails{
			FurnitureType: furnitureType.String,
			Condition:     condition.String,
		}
		if dimensions.Valid {
			details.Dimensions = &dimensions.String
		}
		l.Furniture = details
	}
	return l, nil
}
