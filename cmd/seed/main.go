package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"tourbook/internal/database"
	"tourbook/internal/domain"
)

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "tourbook.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running migrations...")
	if err := database.Migrate(db); err != nil {
		log.Fatal("migration failed:", err)
	}

	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM feedbacks")
	db.Exec("DELETE FROM bookings")
	db.Exec("DELETE FROM tour_dates")
	db.Exec("DELETE FROM tours")
	db.Exec("DELETE FROM agency_profiles")
	db.Exec("DELETE FROM users")

	log.Println("Creating users...")

	agencyHash, _ := bcrypt.GenerateFromPassword([]byte("agency123"), bcrypt.DefaultCost)
	agency := domain.User{
		ID:           uuid.New().String(),
		Email:        "agency@tourbook.io",
		PasswordHash: string(agencyHash),
		Name:         "Sunrise Travel",
		Role:         domain.RoleAgency,
		CreatedAt:    time.Now(),
	}
	db.Create(&agency)
	log.Println("Agency created: agency@tourbook.io / agency123")

	tourists := []domain.User{}
	for i := 1; i <= 3; i++ {
		hash, _ := bcrypt.GenerateFromPassword([]byte("tourist123"), bcrypt.DefaultCost)
		t := domain.User{
			ID:           uuid.New().String(),
			Email:        fmt.Sprintf("tourist%d@mail.com", i),
			PasswordHash: string(hash),
			Name:         fmt.Sprintf("Tourist %d", i),
			Role:         domain.RoleTourist,
			CreatedAt:    time.Now(),
		}
		db.Create(&t)
		tourists = append(tourists, t)
	}

	db.Create(&domain.AgencyProfile{
		AgencyUserID:    agency.ID,
		AgencyName:      "Sunrise Travel",
		Description:     "Small-group adventure tours.",
		ServicesOffered: "Guided tours, transfers, accommodation",
		ContactEmail:    "hello@sunrise.travel",
		CreatedAt:       time.Now(),
	})

	log.Println("Creating tours...")

	tours := []domain.Tour{
		{
			Name:         "Alpine Lakes Trek",
			Description:  "Five days across three mountain lakes.",
			Price:        decimal.NewFromInt(450),
			MaxGroupSize: 8,
			DurationDays: 5,
			AgencyUserID: agency.ID,
		},
		{
			Name:         "Old Town Walking Tour",
			Description:  "A day in the historic center.",
			Price:        decimal.NewFromInt(60),
			MaxGroupSize: 15,
			DurationDays: 1,
			AgencyUserID: agency.ID,
		},
	}
	for i := range tours {
		db.Create(&tours[i])
		for d := 0; d < 3; d++ {
			db.Create(&domain.TourDate{
				TourID: tours[i].ID,
				Date:   time.Now().AddDate(0, 1, d*7).Truncate(24 * time.Hour),
			})
		}
	}

	log.Println("Creating bookings...")

	var dates []domain.TourDate
	db.Where("tour_id = ?", tours[0].ID).Find(&dates)

	booking := domain.Booking{
		TourID:            tours[0].ID,
		TouristID:         tourists[0].ID,
		TouristName:       tourists[0].Name,
		TouristEmail:      tourists[0].Email,
		ParticipantsCount: 2,
		TourDate:          dates[0].Date,
		CreatedAt:         time.Now(),
		Status:            domain.BookingConfirmed,
		PaymentStatus:     domain.PaymentPaid,
	}
	db.Create(&booking)

	db.Create(&domain.Booking{
		TourID:            tours[1].ID,
		TouristID:         tourists[1].ID,
		TouristName:       tourists[1].Name,
		TouristEmail:      tourists[1].Email,
		ParticipantsCount: 4,
		TourDate:          dates[0].Date,
		CreatedAt:         time.Now(),
		Status:            domain.BookingPending,
		PaymentStatus:     domain.PaymentUnpaid,
	})

	db.Create(&domain.Feedback{
		TouristID:    tourists[0].ID,
		BookingID:    booking.ID,
		TourID:       tours[0].ID,
		AgencyUserID: agency.ID,
		Rating:       5,
		Comment:      "Fantastic guides and scenery.",
		CreatedAt:    time.Now(),
	})

	log.Println("Seed complete.")
}
