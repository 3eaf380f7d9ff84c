// Package seed provides database seeding utilities for development and testing.
package seed

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"time"

	"cortado/internal/models"
	"cortado/internal/repository"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumUsers     int
	ProfilesEach int
	BlogsEach    int
	ShouldClean  bool
	DemoPassword string
}

var coffeeBrands = []string{
	"Lavazza", "Illy", "Segafredo", "Kimbo", "Pellini",
	"Julius Meinl", "Vergnano", "Danesi", "Mokaflor", "Musetti",
}

var coffeeProducts = []string{
	"Qualita Oro", "Qualita Rossa", "Crema e Gusto", "Super Crema",
	"Gran Espresso", "Classico", "Decaffeinato", "Intenso", "Armonico",
}

// Seed populates the database with demo users, profiles and blog posts.
func Seed(db *gorm.DB, opts Options) error {
	gofakeit.Seed(time.Now().UnixNano())

	log.Printf("Seeding %d users with %d profiles and %d blogs each...",
		opts.NumUsers, opts.ProfilesEach, opts.BlogsEach)

	if opts.ShouldClean {
		if err := clearData(db); err != nil {
			return fmt.Errorf("failed to clear existing data: %w", err)
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(opts.DemoPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash demo password: %w", err)
	}

	for i := 0; i < opts.NumUsers; i++ {
		user := models.User{
			Username: fmt.Sprintf("%s%d", gofakeit.Username(), i),
			Password: string(hash),
		}
		if err := db.Create(&user).Error; err != nil {
			return fmt.Errorf("failed to create user: %w", err)
		}

		for j := 0; j < opts.ProfilesEach; j++ {
			profile := buildProfile(user.ID)
			if err := db.Create(profile).Error; err != nil {
				return fmt.Errorf("failed to create profile: %w", err)
			}
		}

		for j := 0; j < opts.BlogsEach; j++ {
			blog := models.Blog{
				Title:     gofakeit.Sentence(4),
				Content:   gofakeit.Paragraph(2, 4, 8, "\n"),
				Published: rand.Intn(2) == 0,
				UserID:    user.ID,
			}
			if err := db.Create(&blog).Error; err != nil {
				return fmt.Errorf("failed to create blog: %w", err)
			}
		}
	}

	log.Printf("Seeding complete: %d users", opts.NumUsers)
	return nil
}

func buildProfile(userID uint) *models.Profile {
	grinder := 1 + rand.Intn(16)
	amount := 1 + float64(rand.Intn(100))
	grams := float64(rand.Intn(26))
	rating := 1 + float64(rand.Intn(9))/2.0

	profile := &models.Profile{
		Brand:            coffeeBrands[rand.Intn(len(coffeeBrands))],
		Product:          coffeeProducts[rand.Intn(len(coffeeProducts))],
		Roast:            models.RoastOptions[rand.Intn(len(models.RoastOptions))],
		GrinderSetting:   &grinder,
		GrindAmount:      &amount,
		GrindAmountGrams: &grams,
		Rating:           &rating,
		UserID:           userID,
		CreatedAt:        pastTime(90),
	}

	// Roughly a third of demo profiles carry the full tasting block.
	if rand.Intn(3) == 0 {
		profile.AdvancedFeedback = true
		profile.Appearance = pick(models.AppearanceOptions)
		profile.Aroma = pick(models.AromaOptions)
		profile.Taste = pick(models.TasteOptions)
		profile.Body = pick(models.BodyOptions)
		profile.Aftertaste = pick(models.AftertasteOptions)
		profile.ExtractionTime = pick(models.ExtractionTimeOptions)
	}

	return profile
}

func pick(options []string) *string {
	v := options[rand.Intn(len(options))]
	return &v
}

func pastTime(maxDays int) time.Time {
	return time.Now().Add(-time.Duration(rand.Intn(maxDays*24)) * time.Hour)
}

// clearData truncates every seeded table except settings; the singleton
// settings row is left alone.
func clearData(db *gorm.DB) error {
	for _, m := range []interface{}{
		&models.Session{}, &models.Profile{}, &models.Blog{}, &models.User{},
	} {
		if err := db.Where("1 = 1").Delete(m).Error; err != nil {
			return err
		}
	}
	return nil
}

// EnsureDemoUser creates a stable login for local development.
func EnsureDemoUser(db *gorm.DB, username, password string) error {
	repo := repository.NewUserRepository(db)

	existing, err := repo.GetByUsername(context.Background(), username)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return db.Create(&models.User{Username: username, Password: string(hash)}).Error
}
