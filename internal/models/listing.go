package models

import (
	"time"
)

type Category string

const (
	CategoryRoommate  Category = "roommate"
	CategoryPet       Category = "pet"
	CategoryFurniture Category = "furniture"
)

type Location struct {
	City      string  `json:"city"`
	District  string  `json:"district"`
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lng"`
}

type Verifications struct {
	ID      bool `json:"id"`
	Student bool `json:"student"`
	Phone   bool `json:"phone"`
}

type Owner struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	Verifications Verifications `json:"verifications"`
	Rating        float64       `json:"rating"`
	ReviewsCount  int           `json:"reviews_count"`
	AvatarPath    *string       `json:"avatar_path,omitempty"`
}

type Image struct {
	Name string `json:"name"`
	Path string `json:"path"`
	Type string `json:"type"`
}

// Listing is a tagged union over Category: exactly one of Roommate, Pet or
// Furniture is non-nil for a well-formed row, matching the category tag.
type Listing struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Price       float64    `json:"price"`
	Location    Location   `json:"location"`
	UserID      string     `json:"user_id"`
	User        Owner      `json:"user"`
	Category    Category   `json:"category"`
	Images      []Image    `json:"images,omitempty"`
	Featured    bool       `json:"featured"`
	Escrow      bool       `json:"escrow"`
	Status      string     `json:"status,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`

	Roommate  *RoommateDetails  `json:"roommate,omitempty"`
	Pet       *PetDetails       `json:"pet,omitempty"`
	Furniture *FurnitureDetails `json:"furniture,omitempty"`
}

type RoommateDetails struct {
	RoomType      string     `json:"room_type"` // single | shared | studio
	AvailableFrom *time.Time `json:"available_from,omitempty"`
	Gender        string     `json:"gender,omitempty"` // male | female | any
	Smoking       bool       `json:"smoking"`
	Pets          bool       `json:"pets"`
	Students      bool       `json:"students"`
}

type PetDetails struct {
	PetType    string `json:"pet_type"` // dog | cat | bird | rabbit | other
	Breed      string `json:"breed"`
	Age        string `json:"age"`
	Gender     string `json:"gender"` // male | female
	Vaccinated bool   `json:"vaccinated"`
	Neutered   bool   `json:"neutered"`
}

type FurnitureDetails struct {
	FurnitureType string  `json:"furniture_type"` // sofa | table | chair | bed | storage | decoration | other
	Condition     string  `json:"condition"`      // new | excellent | good | fair
	Dimensions    *string `json:"dimensions,omitempty"`
}

// ListingQuery carries one render's worth of filter state, rebuilt by the
// client on every control change. Nil pointers and empty sets mean
// "unconstrained".
type ListingQuery struct {
	Category     Category            `json:"category"`
	QuickFilter  string              `json:"quick_filter"`
	Search       string              `json:"search"`
	PriceFrom    *float64            `json:"price_from,omitempty"`
	PriceTo      *float64            `json:"price_to,omitempty"`
	Facets       map[string][]string `json:"facets,omitempty"`
	Tristates    map[string]*bool    `json:"tristates,omitempty"`
	Location     string              `json:"location,omitempty"`
	SmartFilters []string            `json:"smart_filters,omitempty"`
	SortKey      string              `json:"sort"`
}

type ListingFilterRequest struct {
	Query ListingQuery `json:"query"`
	Page  int          `json:"page"`
	Limit int          `json:"limit"`
}

type ListingListResponse struct {
	Listings         []Listing `json:"listings"`
	Total            int       `json:"total"`
	MinPrice         float64   `json:"min_price"`
	MaxPrice         float64   `json:"max_price"`
	HasActiveFilters bool      `json:"has_active_filters"`
}
