package main

import (
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"

	"malaeb/internal/database"
	"malaeb/internal/domain"
)

func main() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "malaeb.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running migrations...")
	if err := database.Migrate(db); err != nil {
		log.Fatal("Migrate failed:", err)
	}

	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM notifications")
	db.Exec("DELETE FROM payments")
	db.Exec("DELETE FROM reservations")
	db.Exec("DELETE FROM stadiums")
	db.Exec("DELETE FROM users")

	log.Println("Creating users...")
	adminHash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	admin := domain.User{
		Email:           "admin@malaeb.local",
		PasswordHash:    string(adminHash),
		Name:            "Platform Admin",
		Role:            domain.RoleAdmin,
		PreferredLocale: domain.LocaleEN,
		EmailVerified:   true,
		IsActive:        true,
	}
	db.Create(&admin)
	log.Println("Admin created: admin@malaeb.local / admin123")

	clubHash, _ := bcrypt.GenerateFromPassword([]byte("club123"), bcrypt.DefaultCost)
	club := domain.User{
		Email:           "club@malaeb.local",
		PasswordHash:    string(clubHash),
		Name:            "Club Manager",
		Role:            domain.RoleClub,
		PreferredLocale: domain.LocaleFR,
		EmailVerified:   true,
		IsActive:        true,
	}
	db.Create(&club)

	userHash, _ := bcrypt.GenerateFromPassword([]byte("user123"), bcrypt.DefaultCost)
	user := domain.User{
		Email:           "amine@malaeb.local",
		PasswordHash:    string(userHash),
		Name:            "Amine",
		Role:            domain.RoleUser,
		PreferredLocale: domain.LocaleAR,
		EmailVerified:   true,
		IsActive:        true,
	}
	db.Create(&user)

	log.Println("Creating stadiums...")
	stadiums := []domain.Stadium{
		{
			NameEn: "Municipal Stadium North", NameFr: "Stade Municipal Nord", NameAr: "الملعب البلدي الشمالي",
			DescriptionEn: "Full-size grass pitch with floodlights",
			DescriptionFr: "Terrain en gazon naturel avec éclairage",
			DescriptionAr: "ملعب عشب طبيعي بحجم كامل مع إنارة",
			City:          "Casablanca", Address: "12 Avenue des Sports",
			Surface: domain.SurfaceGrass, Capacity: 2000, HourlyPrice: 600,
			ManagerID: &club.ID, IsActive: true,
		},
		{
			NameEn: "City Arena", NameFr: "Arène de la Ville", NameAr: "قاعة المدينة",
			DescriptionEn: "Indoor five-a-side hall",
			DescriptionFr: "Salle couverte de foot à cinq",
			DescriptionAr: "قاعة مغطاة لكرة القدم الخماسية",
			City:          "Rabat", Address: "3 Rue du Stade",
			Surface: domain.SurfaceIndoor, Capacity: 300, HourlyPrice: 400,
			IsActive: true,
		},
		{
			NameEn: "Riverside Field", NameFr: "Terrain du Fleuve", NameAr: "ملعب ضفة النهر",
			DescriptionEn: "Artificial turf, open all year",
			DescriptionFr: "Gazon synthétique, ouvert toute l'année",
			DescriptionAr: "عشب اصطناعي، مفتوح طوال السنة",
			City:          "Casablanca", Address: "45 Boulevard du Fleuve",
			Surface: domain.SurfaceArtificial, Capacity: 800, HourlyPrice: 350,
			IsActive: true,
		},
	}
	for i := range stadiums {
		db.Create(&stadiums[i])
	}

	log.Println("Seed complete.")
}
