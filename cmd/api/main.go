package main

import (
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"tourbook/internal/database"
	"tourbook/internal/middleware"
	"tourbook/internal/modules/auth"
	"tourbook/internal/modules/booking"
	"tourbook/internal/modules/feedback"
	"tourbook/internal/modules/profile"
	"tourbook/internal/modules/report"
	"tourbook/internal/modules/tour"
	jwtsvc "tourbook/internal/pkg/jwt"
	"tourbook/internal/repository"
)

func main() {
	_ = godotenv.Load()

	logrus.SetFormatter(&logrus.JSONFormatter{})

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		logrus.Fatal("DATABASE_URL is empty")
	}
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		logrus.Fatal("JWT_SECRET is empty")
	}
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		logrus.WithError(err).Fatal("database connection failed")
	}
	if err := database.Migrate(db); err != nil {
		logrus.WithError(err).Fatal("migration failed")
	}

	userRepo := repository.NewUserRepository(db)
	tourRepo := repository.NewTourRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	feedbackRepo := repository.NewFeedbackRepository(db)
	profileRepo := repository.NewAgencyProfileRepository(db)

	j := jwtsvc.New(secret, 24*time.Hour)

	authHandler := auth.NewHandler(auth.NewService(userRepo, j))
	tourHandler := tour.NewHandler(tour.NewService(tourRepo, bookingRepo, profileRepo))
	bookingHandler := booking.NewHandler(booking.NewService(bookingRepo, tourRepo, feedbackRepo))
	feedbackHandler := feedback.NewHandler(feedback.NewService(feedbackRepo, bookingRepo))
	reportHandler := report.NewHandler(report.NewService(bookingRepo))
	profileHandler := profile.NewHandler(profile.NewService(profileRepo))

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())

	v1 := r.Group("/api/v1")
	{
		authHandler.RegisterRoutes(v1)

		protected := v1.Group("/")
		protected.Use(middleware.JWTAuth(j))
		{
			tourHandler.RegisterRoutes(protected)
			bookingHandler.RegisterRoutes(protected)
			feedbackHandler.RegisterRoutes(protected)
			reportHandler.RegisterRoutes(protected)
			profileHandler.RegisterRoutes(protected)
		}
	}

	logrus.WithField("port", port).Info("starting api")
	if err := r.Run(":" + port); err != nil {
		logrus.WithError(err).Fatal("server stopped")
	}
}
