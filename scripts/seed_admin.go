// Seed an administrator account.
//
// Intended for first deployment, before any user exists. Safe to re-run:
// the script exits without writing if the email is already registered.
//
// Usage: go run scripts/seed_admin.go admin@example.com <password>

package main

import (
	"log"
	"os"

	"campus_link_backend/internal/config"
	"campus_link_backend/internal/model"
	"campus_link_backend/pkg/database"
	"campus_link_backend/pkg/logger"

	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
)

func main() {
	if len(os.Args) != 3 {
		log.Fatal("usage: go run scripts/seed_admin.go <email> <password>")
	}
	email, password := os.Args[1], os.Args[2]

	data, err := os.ReadFile("configs/config.yaml")
	if err != nil {
		log.Fatalf("failed to read config file: %v", err)
	}

	var cfg config.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		log.Fatalf("failed to parse config file: %v", err)
	}

	logger.InitLogger(&cfg)

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	var count int64
	db.Model(&model.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		log.Printf("user %s already exists, nothing to do", email)
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	admin := model.User{
		Name:     "Administrator",
		Username: "admin",
		Email:    email,
		Password: string(hashed),
		Role:     model.Admin,
		Status:   model.StatusActive,
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Fatalf("failed to create admin user: %v", err)
	}

	log.Printf("admin user %s created", email)
}
