package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/iliyamo/hackathon-manager/internal/config"
	"github.com/iliyamo/hackathon-manager/internal/database"
	"github.com/iliyamo/hackathon-manager/internal/handler"
	"github.com/iliyamo/hackathon-manager/internal/middleware"
	"github.com/iliyamo/hackathon-manager/internal/queue"
	"github.com/iliyamo/hackathon-manager/internal/repository"
	"github.com/iliyamo/hackathon-manager/internal/router"
)

func main() {
	// .env is a dev convenience; in production the variables come from the
	// environment and the file is absent.
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}

	cfg := config.Load()

	db, err := database.Open(cfg)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Println("redis unavailable: rate limiting and caching disabled, check-in dedup falls back to database")
	}

	users := repository.NewUserRepo(db)
	tokens := repository.NewTokenRepo(db)
	hackathons := repository.NewHackathonRepo(db)
	mentors := repository.NewMentorRepo(db)
	submissions := repository.NewSubmissionRepo(db)
	rooms := repository.NewRoomRepo(db)
	teams := repository.NewTeamRepo(db)
	registrations := repository.NewRegistrationRepo(db)

	authHandler := handler.NewAuthHandler(cfg, users, tokens)
	organizer := handler.NewOrganizerHandler(
		hackathons, mentors, submissions, rooms, teams, registrations,
		rdb, config.LoadCheckinConfig(),
	)
	participant := handler.NewParticipantHandler(hackathons, registrations)
	public := handler.NewPublicHandler(hackathons)

	e := echo.New()
	e.Use(echomw.Recover())
	e.Use(echomw.Logger())
	e.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))

	router.RegisterRoutes(e)
	router.RegisterAuth(e, authHandler, cfg.JWTSecret)
	router.RegisterOrganizer(e, organizer, cfg.JWTSecret)
	router.RegisterParticipant(e, participant, cfg.JWTSecret)
	router.RegisterPublic(e, public, middleware.NewRedisCache(config.LoadCacheConfig(), rdb))

	// Background audit trail for confirmed check-ins.
	go func() {
		if err := queue.StartCheckinConsumer(); err != nil {
			log.Printf("checkin consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
