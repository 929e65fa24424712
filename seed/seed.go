// Package seed bootstraps the development database with the admin account
// and the gummy catalog.
package seed

import (
	"errors"
	"log"
	"os"

	"github.com/marodi-mykhailo/pan-zelek/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func floatPtr(f float64) *float64 { return &f }

var products = []models.Product{
	{
		Name:          "Sour Worms",
		NamePl:        "Kwaśne Robaczki",
		Description:   "Delicious sour gummy worms",
		DescriptionPl: "Pyszne kwaśne żelki w kształcie robaków",
		Category:      "sour",
		PricePer100g:  9.0,
		InStock:       true,
		StockWeight:   floatPtr(5000),
		Image:         "🐛",
	},
	{
		Name:          "Golden Bears",
		NamePl:        "Misie Mix",
		Description:   "Classic gummy bears",
		DescriptionPl: "Klasyczne żelki misie",
		Category:      "sweet",
		PricePer100g:  8.0,
		InStock:       true,
		StockWeight:   floatPtr(5000),
		Image:         "🐻",
	},
	{
		Name:          "Cola Bottles",
		NamePl:        "Cola Bottles",
		Description:   "Cola flavored gummy bottles",
		DescriptionPl: "Żelki w kształcie butelek o smaku coli",
		Category:      "classic",
		PricePer100g:  9.0,
		InStock:       true,
		StockWeight:   floatPtr(5000),
		Image:         "🥤",
	},
	{
		Name:          "Forest Berries",
		NamePl:        "Jagodowy Wybuch",
		Description:   "Mixed berry gummies",
		DescriptionPl: "Mieszanka żelków o smaku jagód",
		Category:      "fruit",
		PricePer100g:  10.0,
		InStock:       true,
		StockWeight:   floatPtr(5000),
		Image:         "🫐",
	},
	{
		Name:          "Ocean Sharks",
		NamePl:        "Rekiny Blue",
		Description:   "Blue shark shaped gummies",
		DescriptionPl: "Niebieskie żelki w kształcie rekinów",
		Category:      "sweet",
		PricePer100g:  9.0,
		InStock:       true,
		StockWeight:   floatPtr(5000),
		Image:         "🦈",
	},
	{
		Name:          "Rainbow Strips",
		NamePl:        "Kwaśna Tęcza",
		Description:   "Sour rainbow strips",
		DescriptionPl: "Kwaśne paski w kolorach tęczy",
		Category:      "sour",
		PricePer100g:  8.0,
		InStock:       true,
		StockWeight:   floatPtr(5000),
		Image:         "🌈",
	},
}

// Run creates the admin user if missing and replaces the catalog.
func Run(db *gorm.DB) error {
	log.Println("🌱 Seeding database...")

	adminEmail := "admin@panzelek.pl"
	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminPassword == "" {
		adminPassword = "admin123"
	}

	var admin models.User
	err := db.Where("email = ?", adminEmail).First(&admin).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		hashed, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		admin = models.User{
			Email:    adminEmail,
			Password: string(hashed),
			Name:     "Admin User",
			Phone:    "+48 123 456 789",
			Role:     models.RoleAdmin,
		}
		if err := db.Create(&admin).Error; err != nil {
			return err
		}
		log.Printf("✅ Admin user created: %s", adminEmail)
	case err != nil:
		return err
	default:
		if !admin.IsAdmin() {
			if err := db.Model(&admin).Update("role", models.RoleAdmin).Error; err != nil {
				return err
			}
		}
		log.Println("✅ Admin user updated")
	}

	if err := db.Where("1 = 1").Delete(&models.Product{}).Error; err != nil {
		return err
	}
	for i := range products {
		product := products[i]
		product.ID = ""
		if err := db.Create(&product).Error; err != nil {
			return err
		}
	}

	log.Println("✅ Database seeded successfully!")
	return nil
}
