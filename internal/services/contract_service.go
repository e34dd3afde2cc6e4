package services

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/phpdave11/gofpdf"

	"emanetBack/internal/models"
	"emanetBack/internal/repositories"
)

// ContractService renders the agreement PDF the parties sign when a deal
// is made: a room-share agreement for roommate posts, an adoption form for
// pets and a sales agreement for furniture.
type ContractService struct {
	ListingRepo *repositories.ListingRepository
	UserRepo    *repositories.UserRepository
}

func (s *ContractService) Generate(ctx context.Context, listingID, buyerID string) ([]byte, string, error) {
	if s.ListingRepo == nil || s.UserRepo == nil {
		return nil, "", ErrNoDatabase
	}
	listing, err := s.ListingRepo.GetListingByID(ctx, listingID)
	if err != nil {
		return nil, "", err
	}
	buyer, err := s.UserRepo.GetUserByID(ctx, buyerID)
	if err != nil {
		return nil, "", err
	}
	pdfBytes, err := buildContractPDF(listing, buyer)
	if err != nil {
		return nil, "", err
	}
	filename := fmt.Sprintf("contract_%s.pdf", listing.ID)
	return pdfBytes, filename, nil
}

func contractTitle(category models.Category) string {
	switch category {
	case models.CategoryRoommate:
		return "Oda Arkadaşlığı ve Kira Sözleşmesi"
	case models.CategoryPet:
		return "Hayvan Sahiplendirme Sözleşmesi"
	case models.CategoryFurniture:
		return "İkinci El Eşya Satış Sözleşmesi"
	}
	return "Sözleşme"
}

func buildContractPDF(listing models.Listing, buyer models.User) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("cp1254")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 12, tr(contractTitle(listing.Category)), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Arial", "", 11)
	rows := [][2]string{
		{"İlan", listing.Title},
		{"İlan No", listing.ID},
		{"Satıcı", listing.User.Name},
		{"Alıcı", buyer.Name},
		{"Şehir", fmt.Sprintf("%s / %s", listing.Location.City, listing.Location.District)},
		{"Bedel", fmt.Sprintf("%.0f TL", listing.Price)},
		{"Tarih", time.Now().Format("02.01.2006")},
	}
	for _, row := range rows {
		pdf.SetFont("Arial", "B", 11)
		pdf.CellFormat(40, 8, tr(row[0]), "", 0, "L", false, 0, "")
		pdf.SetFont("Arial", "", 11)
		pdf.CellFormat(0, 8, tr(row[1]), "", 1, "L", false, 0, "")
	}
	pdf.Ln(6)

	pdf.SetFont("Arial", "", 10)
	terms := "Taraflar yukarıda bilgileri verilen ilan için anlaşmıştır. " +
		"Bedel, taraflarca aksi kararlaştırılmadıkça teslimde ödenir."
	if listing.Escrow {
		terms += " Ödeme, güvenli ödeme (emanet) hesabı üzerinden yapılır ve " +
			"teslim onayına kadar emanette tutulur."
	}
	pdf.MultiCell(0, 6, tr(terms), "", "L", false)
	pdf.Ln(16)

	pdf.CellFormat(95, 8, tr("Satıcı İmza"), "", 0, "L", false, 0, "")
	pdf.CellFormat(95, 8, tr("Alıcı İmza"), "", 1, "L", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
