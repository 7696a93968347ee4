package app

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/Wealthy-grace/house-Property-service/internal/models"
	"github.com/Wealthy-grace/house-Property-service/internal/repositories"
)

// SeedDemoProperties inserts a handful of demo listings. Re-running against
// a seeded database is fine: rows that already exist are skipped via the
// unique indexes.
func SeedDemoProperties(ctx context.Context, repo repositories.PropertyRepository, log *logrus.Logger) error {
	for _, p := range demoProperties() {
		property := p
		if err := repo.Save(ctx, &property); err != nil {
			if _, ok := repositories.UniqueViolationField(err); ok {
				log.Debugf("Demo property %q already present; skipping.", property.Title)
				continue
			}
			return fmt.Errorf("seed demo property %q: %w", property.Title, err)
		}
		log.Infof("Seeded demo property %q (id=%d)", property.Title, property.ID)
	}
	log.Info("Demo property seeding completed.")
	return nil
}

func demoProperties() []models.Property {
	return []models.Property{
		{
			Title:           "Modern studio near Tilburg University",
			Description:     "Bright furnished studio within walking distance of the campus and the central station.",
			Quantity:        2,
			RentAmount:      decimal.NewFromInt(850),
			SecurityDeposit: decimal.NewFromInt(850),
			Address:         "Professor Cobbenhagenlaan 12",
			RentalCondition: "Minimum stay 6 months, no smoking",
			PostalCode:      "5037DA",
			LocationType:    models.LocationTilburg,
			HouseType:       models.HouseTypeStudio,
			AvailableDate:   "2026-10-01",
			Bedrooms:        1,
			Interior:        "Furnished",
			SurfaceArea:     "32 m2",
			Image:           "https://images.example.com/properties/tilburg-studio-1.jpg",
			Image2:          "https://images.example.com/properties/tilburg-studio-2.jpg",
			Image3:          "https://images.example.com/properties/tilburg-studio-3.jpg",
			Image4:          "https://images.example.com/properties/tilburg-studio-4.jpg",
		},
		{
			Title:           "Spacious family house in Eindhoven",
			Description:     "Renovated residential house with a garden, close to the High Tech Campus.",
			Quantity:        1,
			RentAmount:      decimal.NewFromInt(1950),
			SecurityDeposit: decimal.NewFromInt(2000),
			Address:         "Leenderweg 87",
			RentalCondition: "Minimum stay 12 months, pets allowed",
			PostalCode:      "5643AB",
			LocationType:    models.LocationEindhoven,
			HouseType:       models.HouseTypeResidentialHouse,
			AvailableDate:   "2026-11-15",
			Bedrooms:        4,
			Interior:        "Upholstered",
			SurfaceArea:     "140 m2",
			Image:           "https://images.example.com/properties/eindhoven-house-1.jpg",
			Image2:          "https://images.example.com/properties/eindhoven-house-2.jpg",
			Image3:          "https://images.example.com/properties/eindhoven-house-3.jpg",
			Image4:          "https://images.example.com/properties/eindhoven-house-4.jpg",
		},
		{
			Title:           "City-centre apartment in Amsterdam",
			Description:     "Two-bedroom apartment on the third floor overlooking a quiet canal.",
			Quantity:        1,
			RentAmount:      decimal.NewFromInt(2400),
			SecurityDeposit: decimal.NewFromInt(2400),
			Address:         "Prinsengracht 301-2",
			RentalCondition: "Minimum stay 12 months, registration possible",
			PostalCode:      "1016GX",
			LocationType:    models.LocationAmsterdam,
			HouseType:       models.HouseTypeApartment,
			AvailableDate:   "2026-09-15",
			Bedrooms:        2,
			Interior:        "Shell",
			SurfaceArea:     "68 m2",
			Image:           "https://images.example.com/properties/amsterdam-apartment-1.jpg",
			Image2:          "https://images.example.com/properties/amsterdam-apartment-2.jpg",
			Image3:          "https://images.example.com/properties/amsterdam-apartment-3.jpg",
			Image4:          "https://images.example.com/properties/amsterdam-apartment-4.jpg",
		},
	}
}
