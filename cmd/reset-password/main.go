package main

import (
	"flag"
	"log"

	"go-pos-api/internal/repository"
	"go-pos-api/pkg/database"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	username := flag.String("username", "admin", "username of the account to reset")
	newPassword := flag.String("password", "admin123", "new password to set")
	flag.Parse()

	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, relying on system env")
	}

	// 2. Setup Database
	db := database.ConnectDB()
	userRepo := repository.NewUserRepo(db)

	// 3. Find the user
	user, err := userRepo.FindByUsername(*username)
	if err != nil {
		log.Fatalf("User %s not found in database: %v", *username, err)
	}

	// 4. Hash new password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(*newPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	// 5. Update
	if err := userRepo.UpdatePassword(user.ID, string(hashedPassword)); err != nil {
		log.Fatalf("Failed to update password in DB: %v", err)
	}

	log.Printf("Success! Password for %s has been reset", *username)
}
