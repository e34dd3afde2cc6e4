// Package mockdata bundles the demo dataset served when no database is
// configured. The entries mirror the kind of posts the product targets:
// roommate rooms, pet adoption and second-hand furniture in Turkish cities.
package mockdata

import (
	"time"

	"emanetBack/internal/models"
)

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 12, 0, 0, 0, time.UTC)
}

func owner(id, name string, rating float64, reviews int, idOK, studentOK, phoneOK bool) models.Owner {
	return models.Owner{
		ID:   id,
		Name: name,
		Verifications: models.Verifications{
			ID:      idOK,
			Student: studentOK,
			Phone:   phoneOK,
		},
		Rating:       rating,
		ReviewsCount: reviews,
	}
}

// Listings returns a fresh copy of the demo dataset so callers can filter
// and sort without touching the package-level state.
func Listings() []models.Listing {
	available := date(2025, 9, 1)
	dims := "220x90x85 cm"

	src := []models.Listing{
		{
			ID:          "rm-001",
			Title:       "Kadıköy'de güneşli tek kişilik oda",
			Description: "Metroya 5 dakika, ev arkadaşı aranıyor.",
			Price:       6500,
			Location:    models.Location{City: "İstanbul", District: "Kadıköy", Latitude: 40.9901, Longitude: 29.0254},
			User:        owner("u-ayse", "Ayşe K.", 4.8, 23, true, true, true),
			Category:    models.CategoryRoommate,
			Featured:    true,
			Escrow:      true,
			Status:      "active",
			CreatedAt:   date(2025, 8, 20),
			Roommate: &models.RoommateDetails{
				RoomType:      "single",
				AvailableFrom: &available,
				Gender:        "female",
				Smoking:       false,
				Pets:          true,
				Students:      true,
			},
		},
		{
			ID:          "rm-002",
			Title:       "Beşiktaş'ta paylaşımlı oda",
			Description: "Kampüse yürüme mesafesi.",
			Price:       3800,
			Location:    models.Location{City: "İstanbul", District: "Beşiktaş", Latitude: 41.0430, Longitude: 29.0061},
			User:        owner("u-mert", "Mert D.", 4.2, 11, true, false, true),
			Category:    models.CategoryRoommate,
			Status:      "active",
			CreatedAt:   date(2025, 8, 14),
			Roommate: &models.RoommateDetails{
				RoomType: "shared",
				Gender:   "any",
				Smoking:  true,
				Pets:     false,
				Students: true,
			},
		},
		{
			ID:          "rm-003",
			Title:       "Çankaya'da stüdyo daire",
			Description: "Eşyalı, faturalar dahil.",
			Price:       7900,
			Location:    models.Location{City: "Ankara", District: "Çankaya", Latitude: 39.9180, Longitude: 32.8624},
			User:        owner("u-zeynep", "Zeynep A.", 4.6, 37, true, false, true),
			Category:    models.CategoryRoommate,
			Escrow:      true,
			Status:      "active",
			CreatedAt:   date(2025, 8, 27),
			Roommate: &models.RoommateDetails{
				RoomType: "studio",
				Gender:   "any",
				Smoking:  false,
				Pets:     false,
				Students: false,
			},
		},
		{
			ID:          "pt-001",
			Title:       "Golden Retriever yavrusu yuva arıyor",
			Description: "Aşıları tam, çok uysal.",
			Price:       0,
			Location:    models.Location{City: "İstanbul", District: "Üsküdar", Latitude: 41.0214, Longitude: 29.0161},
			User:        owner("u-elif", "Elif S.", 4.9, 52, true, false, true),
			Category:    models.CategoryPet,
			Featured:    true,
			Status:      "active",
			CreatedAt:   date(2025, 8, 25),
			Pet: &models.PetDetails{
				PetType:    "dog",
				Breed:      "Golden Retriever",
				Age:        "4 aylık",
				Gender:     "male",
				Vaccinated: true,
				Neutered:   false,
			},
		},
		{
			ID:          "pt-002",
			Title:       "Tekir kedi sahiplendirme",
			Description: "Kısırlaştırıldı, kuma alışkın.",
			Price:       0,
			Location:    models.Location{City: "İzmir", District: "Karşıyaka", Latitude: 38.4613, Longitude: 27.1296},
			User:        owner("u-baran", "Baran T.", 4.1, 8, false, true, true),
			Category:    models.CategoryPet,
			Status:      "active",
			CreatedAt:   date(2025, 8, 10),
			Pet: &models.PetDetails{
				PetType:    "cat",
				Breed:      "Tekir",
				Age:        "2 yaşında",
				Gender:     "female",
				Vaccinated: true,
				Neutered:   true,
			},
		},
		{
			ID:          "pt-003",
			Title:       "Muhabbet kuşu, kafesiyle birlikte",
			Description: "Elle beslendi.",
			Price:       450,
			Location:    models.Location{City: "Ankara", District: "Keçiören", Latitude: 39.9798, Longitude: 32.8672},
			User:        owner("u-selin", "Selin Y.", 3.9, 4, false, false, true),
			Category:    models.CategoryPet,
			Status:      "active",
			CreatedAt:   date(2025, 8, 22),
			Pet: &models.PetDetails{
				PetType:    "bird",
				Breed:      "Muhabbet",
				Age:        "1 yaşında",
				Gender:     "male",
				Vaccinated: false,
				Neutered:   false,
			},
		},
		{
			ID:          "fr-001",
			Title:       "3'lü çekyat koltuk takımı",
			Description: "Az kullanıldı, sigara içilmeyen evden.",
			Price:       4500,
			Location:    models.Location{City: "İstanbul", District: "Maltepe", Latitude: 40.9357, Longitude: 29.1310},
			User:        owner("u-kerem", "Kerem B.", 4.7, 19, true, false, true),
			Category:    models.CategoryFurniture,
			Escrow:      true,
			Status:      "active",
			CreatedAt:   date(2025, 8, 18),
			Furniture: &models.FurnitureDetails{
				FurnitureType: "sofa",
				Condition:     "excellent",
				Dimensions:    &dims,
			},
		},
		{
			ID:          "fr-002",
			Title:       "Ahşap yemek masası, 6 sandalye",
			Description: "Taşınma nedeniyle satılık.",
			Price:       2200,
			Location:    models.Location{City: "Bursa", District: "Nilüfer", Latitude: 40.2139, Longitude: 28.9594},
			User:        owner("u-deniz", "Deniz Ö.", 4.3, 14, true, false, false),
			Category:    models.CategoryFurniture,
			Status:      "active",
			CreatedAt:   date(2025, 8, 5),
			Furniture: &models.FurnitureDetails{
				FurnitureType: "table",
				Condition:     "good",
			},
		},
		{
			ID:          "fr-003",
			Title:       "Sıfır baza yatak, ambalajında",
			Description: "Hiç açılmadı, fatura mevcut.",
			Price:       8900,
			Location:    models.Location{City: "İstanbul", District: "Bakırköy", Latitude: 40.9819, Longitude: 28.8772},
			User:        owner("u-nazli", "Nazlı E.", 5.0, 61, true, false, true),
			Category:    models.CategoryFurniture,
			Featured:    true,
			Escrow:      true,
			Status:      "active",
			CreatedAt:   date(2025, 8, 29),
			Furniture: &models.FurnitureDetails{
				FurnitureType: "bed",
				Condition:     "new",
			},
		},
	}

	out := make([]models.Listing, len(src))
	copy(out, src)
	return out
}

// ByCategory filters the demo dataset to one category.
func ByCategory(c models.Category) []models.Listing {
	var out []models.Listing
	for _, l := range Listings() {
		if l.Category == c {
			out = append(out, l)
		}
	}
	return out
}
