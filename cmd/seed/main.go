package main

import (
	"context"
	"log"
	"time"

	"github.com/meetsum/meeting-summarizer/internal/adapter/repository"
	"github.com/meetsum/meeting-summarizer/internal/domain/entities"
	"github.com/meetsum/meeting-summarizer/internal/infrastructure/database"
	"github.com/meetsum/meeting-summarizer/pkg/config"
	pkgjwt "github.com/meetsum/meeting-summarizer/pkg/jwt"
)

// Seeds a handful of dev users and prints a ready-to-use access token for
// each, so the API can be exercised without going through dev-login.
func main() {
	log.Println("🚀 Seeding dev users...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.CloseDB(db)

	jwtManager := pkgjwt.NewManager(cfg.JWT.Secret, cfg.JWT.AccessExpiry)
	userRepo := repository.NewUserRepository(db)

	seedUsers := []struct {
		Email string
		Name  string
	}{
		{Email: "alice@test.local", Name: "Alice"},
		{Email: "bob@test.local", Name: "Bob"},
		{Email: "charlie@test.local", Name: "Charlie"},
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	for _, su := range seedUsers {
		user := &entities.User{
			ID:        entities.UserIDFromEmail(su.Email),
			Email:     su.Email,
			Name:      su.Name,
			CreatedAt: time.Now().UTC(),
		}

		if err := userRepo.Upsert(ctx, user); err != nil {
			log.Printf("❌ Failed to seed user %s: %v", su.Email, err)
			continue
		}

		token, err := jwtManager.GenerateAccessToken(user.ID, user.Email, user.Name)
		if err != nil {
			log.Printf("❌ Failed to generate token for %s: %v", su.Email, err)
			continue
		}

		log.Printf("✅ %s (%s)\n   token: %s", su.Name, su.Email, token)
	}

	log.Println("✅ Done")
}
