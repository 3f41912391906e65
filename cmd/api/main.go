package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"mediashare/internal/config"
	"mediashare/internal/database"
	"mediashare/internal/middleware"
	"mediashare/internal/modules/auth"
	"mediashare/internal/modules/comments"
	"mediashare/internal/modules/media"
	"mediashare/internal/modules/users"
	jwtsvc "mediashare/internal/pkg/jwt"
	"mediashare/internal/repository"
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
		log.Fatal(err)
	}

	if err := repository.AutoMigrate(db); err != nil {
		log.Fatal(err)
	}

	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	mediaRepo := repository.NewMediaRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	tagRepo := repository.NewTagRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)

	authService := auth.NewService(userRepo, j)
	authHandler := auth.NewHandler(authService)

	usersService := users.NewService(userRepo)
	usersHandler := users.NewHandler(usersService)

	mediaService := media.NewService(mediaRepo, tagRepo)
	mediaHandler := media.NewHandler(mediaService, cfg.UploadDir, cfg.MaxUploadMB)

	commentsService := comments.NewService(commentRepo, mediaRepo)
	commentsHandler := comments.NewHandler(commentsService)

	if cfg.AppEnv != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS())

	r.Static("/uploads", cfg.UploadDir)

	api := r.Group("/api")
	{
		authHandler.RegisterPublicRoutes(api)

		protected := api.Group("")
		protected.Use(middleware.JWTAuth(j))

		authHandler.RegisterProtectedRoutes(protected)
		usersHandler.RegisterRoutes(api, protected)
		mediaHandler.RegisterRoutes(api, protected)
		commentsHandler.RegisterRoutes(api, protected)
	}

	log.Printf("listening addr=%s env=%s", cfg.Addr, cfg.AppEnv)
	if err := r.Run(cfg.Addr); err != nil {
		log.Fatal(err)
	}
}
