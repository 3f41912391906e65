package main

import (
	"context"
	"log"

	"golang.org/x/crypto/bcrypt"

	"mediashare/internal/config"
	"mediashare/internal/database"
	"mediashare/internal/domain"
	"mediashare/internal/repository"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using environment")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := repository.AutoMigrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	// Cleanup old data (in safe order to avoid foreign key errors)
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM media_item_tags")
	db.Exec("DELETE FROM tags")
	db.Exec("DELETE FROM comments")
	db.Exec("DELETE FROM media_items")
	db.Exec("DELETE FROM users")

	ctx := context.Background()

	userRepo := repository.NewUserRepository(db)
	mediaRepo := repository.NewMediaRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	tagRepo := repository.NewTagRepository(db)

	log.Println("Creating users...")

	seedUsers := []struct {
		username string
		email    string
		password string
	}{
		{"alice", "alice@example.com", "alice-pass-1"},
		{"bob", "bob@example.com", "bob-pass-123"},
		{"carol", "carol@example.com", "carol-pass-1"},
	}

	users := make(map[string]*domain.User)
	for _, su := range seedUsers {
		hash, _ := bcrypt.GenerateFromPassword([]byte(su.password), bcrypt.DefaultCost)
		u := &domain.User{
			Username:     su.username,
			Email:        su.email,
			PasswordHash: string(hash),
			Level:        domain.LevelUser,
		}
		if err := userRepo.Create(ctx, u); err != nil {
			log.Fatal("user create failed:", err)
		}
		users[su.username] = u
		log.Printf("User created: %s / %s", su.username, su.password)
	}

	log.Println("Creating media items...")

	sunset := &domain.MediaItem{
		OwnerID:     users["alice"].ID,
		Title:       "Sunset over the bay",
		Description: "Shot from the pier at golden hour",
		Filename:    "seed-sunset.jpg",
		Filesize:    524288,
		MediaType:   "image/jpeg",
	}
	if err := mediaRepo.Create(ctx, sunset); err != nil {
		log.Fatal("media create failed:", err)
	}

	timelapse := &domain.MediaItem{
		OwnerID:     users["bob"].ID,
		Title:       "City timelapse",
		Description: "24 hours in 30 seconds",
		Filename:    "seed-timelapse.mp4",
		Filesize:    8388608,
		MediaType:   "video/mp4",
	}
	if err := mediaRepo.Create(ctx, timelapse); err != nil {
		log.Fatal("media create failed:", err)
	}

	log.Println("Creating comments...")

	seedComments := []*domain.Comment{
		{AuthorID: users["bob"].ID, MediaID: sunset.ID, Text: "Great colours!"},
		{AuthorID: users["carol"].ID, MediaID: sunset.ID, Text: "Which pier is this?"},
		{AuthorID: users["alice"].ID, MediaID: timelapse.ID, Text: "Smooth transitions."},
	}
	for _, c := range seedComments {
		if err := commentRepo.Create(ctx, c); err != nil {
			log.Fatal("comment create failed:", err)
		}
	}

	log.Println("Creating tags...")

	for item, names := range map[*domain.MediaItem][]string{
		sunset:    {"nature", "sunset"},
		timelapse: {"city", "timelapse"},
	} {
		for _, name := range names {
			tag, err := tagRepo.GetOrCreate(ctx, name)
			if err != nil {
				log.Fatal("tag create failed:", err)
			}
			if err := tagRepo.Link(ctx, item.ID, tag.ID); err != nil {
				log.Fatal("tag link failed:", err)
			}
		}
	}

	log.Println("Seed complete.")
}
