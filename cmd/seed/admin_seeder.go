package main

import (
	"log"
	"os"

	"bloom-be/internal/model"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedAdminUser creates the initial reviewer account. Credentials come from
// ADMIN_EMAIL / ADMIN_PASSWORD; nothing is created when they are unset.
func SeedAdminUser(db *gorm.DB) {
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		log.Println("Info: ADMIN_EMAIL / ADMIN_PASSWORD not set, skipping admin seed")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("Error hashing admin password: %v", err)
		return
	}

	hash := string(hashed)
	admin := model.User{
		Email:        email,
		PasswordHash: &hash,
		FullName:     "Bloom Admin",
		Role:         "admin",
		Status:       "active",
	}

	if err := db.Where("email = ?", email).FirstOrCreate(&admin).Error; err != nil {
		log.Printf("Error seeding admin user: %v", err)
		return
	}
	log.Println("✅ Admin user seeded successfully.")
}
