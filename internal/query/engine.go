// Package query evaluates listing filter state against an in-memory
// snapshot of listings. It is a pure function layer: no I/O, no mutation
// of its inputs, so callers can re-run it on every control change.
package query

import (
	"sort"
	"strings"

	"emanetBack/internal/models"
)

const (
	SortNewest     = "newest"
	SortPriceAsc   = "price-asc"
	SortPriceDesc  = "price-desc"
	SortNearest    = "nearest"
	SortTrustScore = "trust-score"
)

const (
	SmartAffordable = "affordable"
	SmartClean      = "clean"
	SmartNearby     = "nearby"
)

const affordableCeiling = 3000

// Defaults is the neutral filter state of one category: the full slider
// range and the smart-filter set the client starts with.
type Defaults struct {
	PriceFrom    float64
	PriceTo      float64
	SmartFilters []string
	SortKey      string
}

var categoryDefaults = map[models.Category]Defaults{
	models.CategoryRoommate:  {PriceFrom: 1000, PriceTo: 8000, SmartFilters: []string{SmartNearby}, SortKey: SortNewest},
	models.CategoryPet:       {PriceFrom: 0, PriceTo: 5000, SmartFilters: []string{SmartNearby}, SortKey: SortNewest},
	models.CategoryFurniture: {PriceFrom: 500, PriceTo: 15000, SmartFilters: []string{SmartNearby}, SortKey: SortNewest},
}

// quickFacet names the facet a category's quick-filter pills select on.
var quickFacet = map[models.Category]string{
	models.CategoryRoommate:  "room_type",
	models.CategoryPet:       "pet_type",
	models.CategoryFurniture: "furniture_type",
}

// facetFields maps category -> facet name -> accessor. A missing entry or
// a false second return means the facet cannot be read for the listing, in
// which case membership checks fail closed.
var facetFields = map[models.Category]map[string]func(models.Listing) (string, bool){
	models.CategoryRoommate: {
		"room_type": func(l models.Listing) (string, bool) {
			if l.Roommate == nil {
				return "", false
			}
			return l.Roommate.RoomType, true
		},
		"gender": func(l models.Listing) (string, bool) {
			if l.Roommate == nil {
				return "", false
			}
			return l.Roommate.Gender, true
		},
	},
	models.CategoryPet: {
		"pet_type": func(l models.Listing) (string, bool) {
			if l.Pet == nil {
				return "", false
			}
			return l.Pet.PetType, true
		},
		"gender": func(l models.Listing) (string, bool) {
			if l.Pet == nil {
				return "", false
			}
			return l.Pet.Gender, true
		},
	},
	models.CategoryFurniture: {
		"furniture_type": func(l models.Listing) (string, bool) {
			if l.Furniture == nil {
				return "", false
			}
			return l.Furniture.FurnitureType, true
		},
		"condition": func(l models.Listing) (string, bool) {
			if l.Furniture == nil {
				return "", false
			}
			return l.Furniture.Condition, true
		},
	},
}

// boolFields are the tri-state facets. "microchipped" and "child_friendly"
// have no backing column anywhere; they are documented heuristics over the
// owner rating and the featured flag, kept here so replacing them with real
// fields later is a one-line change.
var boolFields = map[models.Category]map[string]func(models.Listing) (bool, bool){
	models.CategoryRoommate: {
		"smoking": func(l models.Listing) (bool, bool) {
			if l.Roommate == nil {
				return false, false
			}
			return l.Roommate.Smoking, true
		},
		"pets": func(l models.Listing) (bool, bool) {
			if l.Roommate == nil {
				return false, false
			}
			return l.Roommate.Pets, true
		},
		"students": func(l models.Listing) (bool, bool) {
			if l.Roommate == nil {
				return false, false
			}
			return l.Roommate.Students, true
		},
	},
	models.CategoryPet: {
		"vaccinated": func(l models.Listing) (bool, bool) {
			if l.Pet == nil {
				return false, false
			}
			return l.Pet.Vaccinated, true
		},
		"neutered": func(l models.Listing) (bool, bool) {
			if l.Pet == nil {
				return false, false
			}
			return l.Pet.Neutered, true
		},
		"microchipped": func(l models.Listing) (bool, bool) {
			return l.User.Rating > 4.5, true
		},
		"child_friendly": func(l models.Listing) (bool, bool) {
			return l.Featured, true
		},
	},
	models.CategoryFurniture: {},
}

// smartFilters are named derived predicates, AND-combined with everything
// else. "nearby" must stay an explicit pass-through until distance ranking
// exists; dropping it from the table would make it fail closed instead.
var smartFilters = map[string]func(models.Listing) bool{
	SmartAffordable: func(l models.Listing) bool {
		return l.Price <= affordableCeiling
	},
	SmartClean: func(l models.Listing) bool {
		if l.Furniture == nil {
			return false
		}
		return l.Furniture.Condition == "new" || l.Furniture.Condition == "excellent"
	},
	SmartNearby: func(l models.Listing) bool {
		return true
	},
}

// DefaultQuery returns the neutral query for a category: everything it
// filters on is at the value the client starts with.
func DefaultQuery(c models.Category) models.ListingQuery {
	q := models.ListingQuery{
		Category:    c,
		QuickFilter: "all",
		SortKey:     SortNewest,
	}
	def, ok := categoryDefaults[c]
	if !ok {
		return q
	}
	from, to := def.PriceFrom, def.PriceTo
	q.PriceFrom = &from
	q.PriceTo = &to
	q.SmartFilters = append([]string(nil), def.SmartFilters...)
	q.SortKey = def.SortKey
	return q
}

// Normalize fills the optional query fields a client may omit with the
// category defaults.
func Normalize(q models.ListingQuery) models.ListingQuery {
	if q.QuickFilter == "" {
		q.QuickFilter = "all"
	}
	if q.SortKey == "" {
		q.SortKey = SortNewest
	}
	def, ok := categoryDefaults[q.Category]
	if !ok {
		return q
	}
	if q.PriceFrom == nil {
		from := def.PriceFrom
		q.PriceFrom = &from
	}
	if q.PriceTo == nil {
		to := def.PriceTo
		q.PriceTo = &to
	}
	if q.SmartFilters == nil {
		q.SmartFilters = append([]string(nil), def.SmartFilters...)
	}
	return q
}

// Apply filters and orders a snapshot of listings. The input slice is never
// mutated or aliased by the result; two calls with the same arguments
// return the same order.
func Apply(listings []models.Listing, q models.ListingQuery) []models.Listing {
	out := make([]models.Listing, 0, len(listings))
	for _, l := range listings {
		if matches(l, q) {
			out = append(out, l)
		}
	}
	sortListings(out, q.SortKey)
	return out
}

func matches(l models.Listing, q models.ListingQuery) bool {
	if q.Category != "" && l.Category != q.Category {
		return false
	}
	if q.QuickFilter != "" && q.QuickFilter != "all" {
		v, ok := facetValue(l, quickFacet[l.Category])
		if !ok || v != q.QuickFilter {
			return false
		}
	}
	if !matchesSearch(l, q.Search) {
		return false
	}
	if q.PriceFrom != nil && l.Price < *q.PriceFrom {
		return false
	}
	if q.PriceTo != nil && l.Price > *q.PriceTo {
		return false
	}
	for name, allowed := range q.Facets {
		if len(allowed) == 0 {
			continue
		}
		v, ok := facetValue(l, name)
		if !ok || !containsString(allowed, v) {
			return false
		}
	}
	for name, want := range q.Tristates {
		if want == nil {
			continue
		}
		v, ok := boolValue(l, name)
		if !ok || v != *want {
			return false
		}
	}
	if q.Location != "" && !matchesLocation(l, q.Location) {
		return false
	}
	for _, tag := range q.SmartFilters {
		pred, ok := smartFilters[tag]
		if !ok {
			// unrecognized tags never match
			return false
		}
		if !pred(l) {
			return false
		}
	}
	return true
}

func matchesSearch(l models.Listing, term string) bool {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return true
	}
	if strings.Contains(strings.ToLower(l.Title), term) {
		return true
	}
	if l.Category == models.CategoryPet && l.Pet != nil {
		return strings.Contains(strings.ToLower(l.Pet.Breed), term)
	}
	return false
}

func matchesLocation(l models.Listing, loc string) bool {
	loc = strings.ToLower(strings.TrimSpace(loc))
	return strings.ToLower(l.Location.City) == loc || strings.ToLower(l.Location.District) == loc
}

func facetValue(l models.Listing, name string) (string, bool) {
	fields, ok := facetFields[l.Category]
	if !ok {
		return "", false
	}
	get, ok := fields[name]
	if !ok {
		return "", false
	}
	return get(l)
}

func boolValue(l models.Listing, name string) (bool, bool) {
	fields, ok := boolFields[l.Category]
	if !ok {
		return false, false
	}
	get, ok := fields[name]
	if !ok {
		return false, false
	}
	return get(l)
}

func containsString(ss []string, s string) bool {
	for _, v := range ss {
		if v == s {
			return true
		}
	}
	return false
}

func sortListings(out []models.Listing, key string) {
	switch key {
	case SortNewest:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		})
	case SortPriceAsc:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Price < out[j].Price
		})
	case SortPriceDesc:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Price > out[j].Price
		})
	case SortTrustScore:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].User.Rating > out[j].User.Rating
		})
	case SortNearest:
		// distance ranking is not computed yet; keep the filtered order
	default:
		// unknown keys keep the filtered order
	}
}

// HasActiveFilters reports whether any control deviates from the category
// defaults. The client uses it for the "clear filters" affordance.
func HasActiveFilters(q models.ListingQuery) bool {
	if q.QuickFilter != "" && q.QuickFilter != "all" {
		return true
	}
	if strings.TrimSpace(q.Search) != "" {
		return true
	}
	if q.Location != "" {
		return true
	}
	for _, vals := range q.Facets {
		if len(vals) > 0 {
			return true
		}
	}
	for _, v := range q.Tristates {
		if v != nil {
			return true
		}
	}
	def, ok := categoryDefaults[q.Category]
	if !ok {
		return q.PriceFrom != nil || q.PriceTo != nil || len(q.SmartFilters) > 0
	}
	if q.PriceFrom != nil && *q.PriceFrom != def.PriceFrom {
		return true
	}
	if q.PriceTo != nil && *q.PriceTo != def.PriceTo {
		return true
	}
	if q.SmartFilters != nil && !sameTagSet(q.SmartFilters, def.SmartFilters) {
		return true
	}
	return false
}

func sameTagSet(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for _, tag := range a {
		if !containsString(b, tag) {
			return false
		}
	}
	return true
}
