package query

import (
	"reflect"
	"testing"
	"time"

	"emanetBack/internal/models"
)

func furnitureListing(id, furnitureType string, price float64, condition string) models.Listing {
	return models.Listing{
		ID:       id,
		Title:    "Eşya " + id,
		Price:    price,
		Category: models.CategoryFurniture,
		Location: models.Location{City: "İstanbul", District: "Kadıköy"},
		Furniture: &models.FurnitureDetails{
			FurnitureType: furnitureType,
			Condition:     condition,
		},
	}
}

func roommateListing(id string, price float64) models.Listing {
	return models.Listing{
		ID:       id,
		Title:    "Oda " + id,
		Price:    price,
		Category: models.CategoryRoommate,
		Location: models.Location{City: "İstanbul", District: "Beşiktaş"},
		Roommate: &models.RoommateDetails{RoomType: "single", Gender: "any"},
	}
}

func petListing(id, petType, breed string, vaccinated bool) models.Listing {
	return models.Listing{
		ID:       id,
		Title:    "Pati " + id,
		Category: models.CategoryPet,
		Location: models.Location{City: "Ankara", District: "Çankaya"},
		Pet: &models.PetDetails{
			PetType:    petType,
			Breed:      breed,
			Gender:     "male",
			Vaccinated: vaccinated,
		},
	}
}

func ids(listings []models.Listing) []string {
	out := make([]string, 0, len(listings))
	for _, l := range listings {
		out = append(out, l.ID)
	}
	return out
}

func boolPtr(v bool) *bool { return &v }

func TestApplyEmptyInput(t *testing.T) {
	got := Apply(nil, DefaultQuery(models.CategoryFurniture))
	if len(got) != 0 {
		t.Fatalf("expected empty result, got %d listings", len(got))
	}
}

func TestApplyPureAndIdempotent(t *testing.T) {
	input := []models.Listing{
		furnitureListing("1", "sofa", 4500, "excellent"),
		furnitureListing("2", "table", 2200, "good"),
		furnitureListing("3", "chair", 800, "fair"),
	}
	before := ids(input)

	q := DefaultQuery(models.CategoryFurniture)
	q.SortKey = SortPriceAsc

	first := Apply(input, q)
	second := Apply(input, q)

	if !reflect.DeepEqual(ids(first), ids(second)) {
		t.Fatalf("two identical calls disagree: %v vs %v", ids(first), ids(second))
	}
	if !reflect.DeepEqual(ids(input), before) {
		t.Fatalf("input order mutated: %v", ids(input))
	}
	if len(first) > 0 {
		first[0].Title = "mutated"
		if input[0].Title == "mutated" || input[1].Title == "mutated" || input[2].Title == "mutated" {
			t.Fatal("result aliases input elements")
		}
	}
}

func TestDefaultQueryKeepsEverything(t *testing.T) {
	input := []models.Listing{
		furnitureListing("1", "sofa", 4500, "excellent"),
		furnitureListing("2", "table", 2200, "good"),
		furnitureListing("3", "bed", 15000, "new"),
	}
	got := Apply(input, DefaultQuery(models.CategoryFurniture))
	if len(got) != len(input) {
		t.Fatalf("default query dropped listings: kept %d of %d", len(got), len(input))
	}
}

func TestAndSemantics(t *testing.T) {
	input := []models.Listing{
		furnitureListing("both", "sofa", 2000, "new"),        // passes quick filter and clean
		furnitureListing("onlyQuick", "sofa", 2000, "fair"),  // fails clean only
		furnitureListing("onlyClean", "table", 2000, "new"),  // fails quick filter only
		furnitureListing("neither", "table", 2000, "fair"),
	}

	quickOnly := DefaultQuery(models.CategoryFurniture)
	quickOnly.QuickFilter = "sofa"

	cleanOnly := DefaultQuery(models.CategoryFurniture)
	cleanOnly.SmartFilters = []string{SmartClean}

	both := DefaultQuery(models.CategoryFurniture)
	both.QuickFilter = "sofa"
	both.SmartFilters = []string{SmartClean}

	nQuick := len(Apply(input, quickOnly))
	nClean := len(Apply(input, cleanOnly))
	nBoth := len(Apply(input, both))

	if nBoth > nQuick || nBoth > nClean {
		t.Fatalf("AND result larger than a single filter: both=%d quick=%d clean=%d", nBoth, nQuick, nClean)
	}
	got := ids(Apply(input, both))
	if !reflect.DeepEqual(got, []string{"both"}) {
		t.Fatalf("expected only the listing passing every filter, got %v", got)
	}
}

func TestQuickFilterScenario(t *testing.T) {
	// Furniture with quick filter "sofa", price [0,5000] and "clean" active:
	// a fair sofa and a table must both be excluded.
	input := []models.Listing{
		furnitureListing("1", "sofa", 4500, "excellent"),
		furnitureListing("2", "sofa", 4500, "fair"),
		furnitureListing("3", "table", 2200, "good"),
	}
	from, to := 0.0, 5000.0
	q := models.ListingQuery{
		Category:     models.CategoryFurniture,
		QuickFilter:  "sofa",
		PriceFrom:    &from,
		PriceTo:      &to,
		SmartFilters: []string{SmartClean},
	}
	got := ids(Apply(input, q))
	if !reflect.DeepEqual(got, []string{"1"}) {
		t.Fatalf("expected [1], got %v", got)
	}
}

func TestPriceRangeInclusive(t *testing.T) {
	input := []models.Listing{
		furnitureListing("low", "chair", 500, "good"),
		furnitureListing("mid", "chair", 900, "good"),
		furnitureListing("high", "chair", 1500, "good"),
	}
	from, to := 500.0, 900.0
	q := models.ListingQuery{Category: models.CategoryFurniture, PriceFrom: &from, PriceTo: &to}
	got := ids(Apply(input, q))
	if !reflect.DeepEqual(got, []string{"low", "mid"}) {
		t.Fatalf("range bounds must be inclusive, got %v", got)
	}
}

func TestSearchCaseInsensitive(t *testing.T) {
	sofa := furnitureListing("1", "sofa", 2000, "good")
	sofa.Title = "Çekyat Koltuk Takımı"
	table := furnitureListing("2", "table", 2000, "good")
	table.Title = "Yemek Masası"

	q := models.ListingQuery{Category: models.CategoryFurniture, Search: "KOLTUK"}
	got := ids(Apply([]models.Listing{sofa, table}, q))
	if !reflect.DeepEqual(got, []string{"1"}) {
		t.Fatalf("expected [1], got %v", got)
	}
}

func TestSearchMatchesPetBreed(t *testing.T) {
	input := []models.Listing{
		petListing("1", "dog", "Golden Retriever", true),
		petListing("2", "dog", "Kangal", true),
	}
	q := models.ListingQuery{Category: models.CategoryPet, Search: "golden"}
	got := ids(Apply(input, q))
	if !reflect.DeepEqual(got, []string{"1"}) {
		t.Fatalf("expected breed match [1], got %v", got)
	}
}

func TestUnknownFacetValueFailsClosed(t *testing.T) {
	input := []models.Listing{
		furnitureListing("1", "sofa", 2000, "good"),
		furnitureListing("2", "table", 2000, "new"),
	}
	cases := []struct {
		name   string
		facets map[string][]string
	}{
		{"unknown value", map[string][]string{"condition": {"penthouse"}}},
		{"unknown facet name", map[string][]string{"horsepower": {"good"}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			q := models.ListingQuery{Category: models.CategoryFurniture, Facets: tc.facets}
			if got := Apply(input, q); len(got) != 0 {
				t.Fatalf("expected zero matches, got %v", ids(got))
			}
		})
	}
}

func TestEmptyFacetSetIsUnconstrained(t *testing.T) {
	input := []models.Listing{
		furnitureListing("1", "sofa", 2000, "good"),
		furnitureListing("2", "table", 2000, "new"),
	}
	q := models.ListingQuery{
		Category: models.CategoryFurniture,
		Facets:   map[string][]string{"condition": {}},
	}
	if got := Apply(input, q); len(got) != 2 {
		t.Fatalf("empty facet set must not constrain, got %v", ids(got))
	}
}

func TestUnknownSmartFilterFailsClosed(t *testing.T) {
	input := []models.Listing{furnitureListing("1", "sofa", 2000, "good")}
	q := models.ListingQuery{Category: models.CategoryFurniture, SmartFilters: []string{"teleport"}}
	if got := Apply(input, q); len(got) != 0 {
		t.Fatalf("unknown smart filter must never match, got %v", ids(got))
	}
}

func TestNearbySmartFilterPassesEverything(t *testing.T) {
	input := []models.Listing{
		furnitureListing("1", "sofa", 2000, "good"),
		furnitureListing("2", "table", 9000, "fair"),
	}
	q := models.ListingQuery{Category: models.CategoryFurniture, SmartFilters: []string{SmartNearby}}
	if got := Apply(input, q); len(got) != 2 {
		t.Fatalf("nearby is a pass-through, got %v", ids(got))
	}
}

func TestTristates(t *testing.T) {
	trusted := petListing("trusted", "cat", "Tekir", true)
	trusted.User.Rating = 4.8
	trusted.Featured = true
	plain := petListing("plain", "cat", "Tekir", false)
	plain.User.Rating = 4.0
	input := []models.Listing{trusted, plain}

	cases := []struct {
		name      string
		tristates map[string]*bool
		want      []string
	}{
		{"unset passes all", map[string]*bool{"vaccinated": nil}, []string{"trusted", "plain"}},
		{"vaccinated true", map[string]*bool{"vaccinated": boolPtr(true)}, []string{"trusted"}},
		{"vaccinated false", map[string]*bool{"vaccinated": boolPtr(false)}, []string{"plain"}},
		{"microchipped proxy", map[string]*bool{"microchipped": boolPtr(true)}, []string{"trusted"}},
		{"child friendly proxy", map[string]*bool{"child_friendly": boolPtr(true)}, []string{"trusted"}},
		{"unknown name fails closed", map[string]*bool{"house_trained": boolPtr(true)}, []string{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			q := models.ListingQuery{Category: models.CategoryPet, Tristates: tc.tristates}
			got := ids(Apply(input, q))
			if len(got) == 0 && len(tc.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestLocationFilter(t *testing.T) {
	istanbul := roommateListing("ist", 3000)
	ankara := roommateListing("ank", 3000)
	ankara.Location = models.Location{City: "Ankara", District: "Çankaya"}
	input := []models.Listing{istanbul, ankara}

	q := models.ListingQuery{Category: models.CategoryRoommate, Location: "ankara"}
	got := ids(Apply(input, q))
	if !reflect.DeepEqual(got, []string{"ank"}) {
		t.Fatalf("expected [ank], got %v", got)
	}
}

func TestMissingDetailsFailClosed(t *testing.T) {
	// A roommate row whose details never loaded must not panic and must not
	// match roommate-specific filters.
	broken := models.Listing{ID: "x", Category: models.CategoryRoommate, Price: 3000}
	q := models.ListingQuery{
		Category: models.CategoryRoommate,
		Facets:   map[string][]string{"room_type": {"single"}},
	}
	if got := Apply([]models.Listing{broken}, q); len(got) != 0 {
		t.Fatalf("nil details must fail closed, got %v", ids(got))
	}
}

func TestSortNewest(t *testing.T) {
	base := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	a := roommateListing("d1", 3000)
	a.CreatedAt = base
	b := roommateListing("d2", 3000)
	b.CreatedAt = base.AddDate(0, 0, 1)
	c := roommateListing("d3", 3000)
	c.CreatedAt = base.AddDate(0, 0, 2)

	q := DefaultQuery(models.CategoryRoommate)
	got := ids(Apply([]models.Listing{a, b, c}, q))
	if !reflect.DeepEqual(got, []string{"d3", "d2", "d1"}) {
		t.Fatalf("expected [d3 d2 d1], got %v", got)
	}
}

func TestSortPriceAsc(t *testing.T) {
	input := []models.Listing{
		roommateListing("a", 3500),
		roommateListing("b", 2800),
		roommateListing("c", 4200),
	}
	q := DefaultQuery(models.CategoryRoommate)
	q.SortKey = SortPriceAsc
	got := ids(Apply(input, q))
	if !reflect.DeepEqual(got, []string{"b", "a", "c"}) {
		t.Fatalf("expected [b a c], got %v", got)
	}
}

func TestSortStableOnTies(t *testing.T) {
	input := []models.Listing{
		roommateListing("first", 3000),
		roommateListing("second", 3000),
		roommateListing("cheap", 2000),
	}
	q := DefaultQuery(models.CategoryRoommate)
	q.SortKey = SortPriceAsc
	got := ids(Apply(input, q))
	if !reflect.DeepEqual(got, []string{"cheap", "first", "second"}) {
		t.Fatalf("tied prices must keep input order, got %v", got)
	}
}

func TestSortTrustScore(t *testing.T) {
	low := roommateListing("low", 3000)
	low.User.Rating = 3.9
	high := roommateListing("high", 3000)
	high.User.Rating = 4.9
	q := DefaultQuery(models.CategoryRoommate)
	q.SortKey = SortTrustScore
	got := ids(Apply([]models.Listing{low, high}, q))
	if !reflect.DeepEqual(got, []string{"high", "low"}) {
		t.Fatalf("expected [high low], got %v", got)
	}
}

func TestSortNearestKeepsOrder(t *testing.T) {
	input := []models.Listing{
		roommateListing("a", 3500),
		roommateListing("b", 2800),
		roommateListing("c", 4200),
	}
	q := DefaultQuery(models.CategoryRoommate)
	q.SortKey = SortNearest
	got := ids(Apply(input, q))
	if !reflect.DeepEqual(got, []string{"a", "b", "c"}) {
		t.Fatalf("nearest must keep filtered order, got %v", got)
	}
}

func TestHasActiveFilters(t *testing.T) {
	withSearch := DefaultQuery(models.CategoryFurniture)
	withSearch.Search = "koltuk"

	withQuick := DefaultQuery(models.CategoryFurniture)
	withQuick.QuickFilter = "sofa"

	withRange := DefaultQuery(models.CategoryFurniture)
	to := 4000.0
	withRange.PriceTo = &to

	withFacet := DefaultQuery(models.CategoryFurniture)
	withFacet.Facets = map[string][]string{"condition": {"new"}}

	withTristate := DefaultQuery(models.CategoryPet)
	withTristate.Tristates = map[string]*bool{"vaccinated": boolPtr(true)}

	withSmart := DefaultQuery(models.CategoryFurniture)
	withSmart.SmartFilters = []string{SmartNearby, SmartAffordable}

	withLocation := DefaultQuery(models.CategoryRoommate)
	withLocation.Location = "Kadıköy"

	cases := []struct {
		name string
		q    models.ListingQuery
		want bool
	}{
		{"default furniture", DefaultQuery(models.CategoryFurniture), false},
		{"default roommate", DefaultQuery(models.CategoryRoommate), false},
		{"default pet", DefaultQuery(models.CategoryPet), false},
		{"search", withSearch, true},
		{"quick filter", withQuick, true},
		{"price range", withRange, true},
		{"facet set", withFacet, true},
		{"tristate", withTristate, true},
		{"smart filters", withSmart, true},
		{"location", withLocation, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := HasActiveFilters(tc.q); got != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestNormalizeFillsDefaults(t *testing.T) {
	q := Normalize(models.ListingQuery{Category: models.CategoryRoommate})
	if q.QuickFilter != "all" {
		t.Fatalf("expected quick filter all, got %q", q.QuickFilter)
	}
	if q.PriceFrom == nil || *q.PriceFrom != 1000 {
		t.Fatalf("expected default price floor 1000, got %v", q.PriceFrom)
	}
	if q.PriceTo == nil || *q.PriceTo != 8000 {
		t.Fatalf("expected default price ceiling 8000, got %v", q.PriceTo)
	}
	if q.SortKey != SortNewest {
		t.Fatalf("expected newest sort, got %q", q.SortKey)
	}
	if HasActiveFilters(q) {
		t.Fatal("normalized empty query must count as inactive")
	}
}
