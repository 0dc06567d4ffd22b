// @title GalacticX Engagement API
// @description Wallet sign-in, weekly streak claims and leaderboard for the GalacticX fan app
// @BasePath /api/v1
// @schemes http
package main

import (
	"log"
	"strconv"

	"github.com/galacticx/engagement/internal/api"
	"github.com/galacticx/engagement/internal/repository"
	"github.com/galacticx/engagement/internal/service"
	"github.com/galacticx/engagement/internal/worker"
	"github.com/galacticx/engagement/pkg/cleanup"
	"github.com/galacticx/engagement/pkg/config"
	jwtservice "github.com/galacticx/engagement/pkg/jwt_service"
)

func init() {
	service.InitValidator()
}

func main() {
	cfg := config.New()
	dbCfg := repository.PGCfg{
		Address:  cfg.GetString("POSTGRES_DB_ADDRESS"),
		Username: cfg.GetString("POSTGRES_USER"),
		Password: cfg.GetString("POSTGRES_PASSWORD"),
		DB:       cfg.GetString("POSTGRES_DB"),
	}
	redisPort, err := strconv.Atoi(cfg.GetString("REDIS_PORT"))
	if err != nil {
		redisPort = 6379
	}
	redisDB, err := strconv.Atoi(cfg.GetString("REDIS_DB"))
	if err != nil {
		redisDB = 0
	}
	redisClient := repository.NewRedisClient(&repository.RedisCfg{
		Host:     cfg.GetString("REDIS_HOST"),
		Port:     redisPort,
		Password: cfg.GetString("REDIS_PASSWORD"),
		DB:       redisDB,
	})

	usersRepo := repository.NewUsersRepo(&dbCfg)
	streaksRepo := repository.NewWeekStreaksRepo(&dbCfg)
	nonceStore := repository.NewNonceStore(redisClient)
	leaderboardRepo := repository.NewLeaderboardRepo(redisClient)

	rollover := worker.NewRolloverWorker(streaksRepo, leaderboardRepo)
	if err := rollover.Start(); err != nil {
		log.Fatal("starting rollover worker error: " + err.Error())
	}

	serv := api.New(&api.ServicesList{
		AuthService:        service.NewAuthService(usersRepo, nonceStore),
		UserService:        service.NewUserService(usersRepo),
		StreakService:      service.NewStreakService(streaksRepo, leaderboardRepo),
		LeaderboardService: service.NewLeaderboardService(leaderboardRepo, usersRepo),
		JwtService:         jwtservice.New(cfg.GetString("JWT_SECRET")),
	})
	err = serv.Run(cfg.GetString("API_ADDRESS"))
	if err != nil {
		log.Println("Server error: " + err.Error())
	}
	cleanup.CleanUp()
}
