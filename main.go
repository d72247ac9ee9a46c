// file: main.go
package main

import (
	"log"

	"PracticeCTF/config"
	"PracticeCTF/controllers"
	"PracticeCTF/database"
	"PracticeCTF/repositories"
	"PracticeCTF/routes"
	"PracticeCTF/services"
	"PracticeCTF/utils"
)

func main() {
	cfg := config.Load()

	db := database.Connect(cfg.MySQLDSN)
	database.MigrateTables(db)
	database.SeedChallenges(db)

	rdb := database.InitRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)

	userRepo := repositories.NewGormUserRepository(db)
	challengeRepo := repositories.NewGormChallengeRepository(db)
	sessionRepo := repositories.NewRedisSessionRepository(rdb)
	cache := repositories.NewRedisCache(rdb)

	tokens := utils.NewTokenManager(cfg.JWTSecret, cfg.SessionTTL)
	sessions := services.NewSessionService(sessionRepo, tokens, cfg.SessionTTL)
	auth := services.NewAuthService(userRepo)
	catalog := services.NewChallengeService(challengeRepo)
	submitter := services.NewSubmissionService(db, cache)
	leaderboard := services.NewLeaderboardService(userRepo, cache)

	cookieTTL := int(cfg.SessionTTL.Seconds())
	ctls := routes.Controllers{
		Page:        controllers.NewPageController(),
		User:        controllers.NewUserController(auth, sessions, cfg.CookieName, cookieTTL),
		Challenge:   controllers.NewChallengeController(catalog, auth, submitter),
		Leaderboard: controllers.NewLeaderboardController(leaderboard),
	}

	r := routes.SetupRouter(ctls, sessions, cfg.CookieName, cfg.TemplateGlob)

	log.Printf("Starting server on %s", cfg.ListenAddr)
	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
