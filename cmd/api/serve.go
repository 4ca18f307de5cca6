package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/limbo/accountability/internal/api"
	"github.com/limbo/accountability/internal/repository"
	"github.com/limbo/accountability/internal/service"
	"github.com/limbo/accountability/pkg/calendar"
	"github.com/limbo/accountability/pkg/cleanup"
	"github.com/limbo/accountability/pkg/config"
	jwtservice "github.com/limbo/accountability/pkg/jwt_service"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run HTTP API",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.New(configFile)
		secret := cfg.GetString("JWT_SECRET")
		if secret == "" {
			return errors.New("JWT_SECRET is not set")
		}
		clock, err := calendar.New(cfg.GetString("TIMEZONE"))
		if err != nil {
			return errors.New("loading timezone error: " + err.Error())
		}

		pool := repository.NewPool(dbConfig(cfg))
		challengesRepo := repository.NewChallengesRepo(pool)
		checkInsRepo := repository.NewCheckInsRepo(pool)
		serv := api.New(&api.ServicesList{
			UserService: service.NewUserService(repository.NewUsersRepo(pool)),
			ChallengesService: service.NewChallengesService(challengesRepo, repository.NewPresolutionsRepo(pool),
				checkInsRepo, clock),
			CheckInsService: service.NewCheckInsService(challengesRepo, checkInsRepo, repository.NewEmergencyRepo(pool), clock),
			JwtService:      jwtservice.New(secret, cfg.GetDuration("TOKEN_TTL")),
			RequestTimeout:  cfg.GetDuration("REQUEST_TIMEOUT"),
		})

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		err = serv.Run(ctx, cfg.GetString("API_ADDRESS"))
		cleanup.CleanUp()
		return err
	},
}
