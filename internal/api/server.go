package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/limbo/accountability/internal/service"
)

const (
	defaultRequestTimeout = 10 * time.Second
	shutdownTimeout       = 10 * time.Second
)

type Server struct {
	mx                *chi.Mux
	userService       service.UserServiceI
	challengesService service.ChallengesServiceI
	checkInsService   service.CheckInsServiceI
	jwtService        JWTServiceI
	requestTimeout    time.Duration
}

type ServicesList struct {
	UserService       service.UserServiceI
	ChallengesService service.ChallengesServiceI
	CheckInsService   service.CheckInsServiceI
	JwtService        JWTServiceI
	// Deadline for service calls of one request, 10s if not set
	RequestTimeout time.Duration
}

func New(servicesOptions *ServicesList) *Server {
	timeout := servicesOptions.RequestTimeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}
	s := &Server{
		mx:                chi.NewMux(),
		userService:       servicesOptions.UserService,
		challengesService: servicesOptions.ChallengesService,
		checkInsService:   servicesOptions.CheckInsService,
		jwtService:        servicesOptions.JwtService,
		requestTimeout:    timeout,
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.mx.Use(s.RequestIDMiddleware, s.SettingUpLoggerMiddleware)
	s.mx.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/register", s.Register)
		r.Post("/auth/login", s.Login)
		r.Group(func(r chi.Router) {
			r.Use(s.AuthMiddleware, s.LoggerExtensionMiddleware, s.TimezoneMiddleware)
			r.Post("/challenges", s.CreateChallenge)
			r.Get("/challenges/active", s.GetActiveChallenge)
			r.Route("/challenges/{id}", func(r chi.Router) {
				r.Get("/", s.GetChallenge)
				r.Get("/presolutions", s.GetPresolutions)
				r.Get("/progress", s.GetProgress)
				r.Get("/checkins", s.GetCheckIns)
				r.Get("/checkins/today", s.GetTodayCheckIn)
				r.Put("/checkins/today", s.UpdateTodayCheckIn)
				r.Post("/emergency", s.UseEmergencyProtocol)
			})
		})
	})
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mx.ServeHTTP(w, r)
}

// Run serves on addr until ctx is done, then shuts the server down gracefully
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.mx,
		ReadHeaderTimeout: 5 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()
	slog.Info("server started", slog.String("address", addr))
	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		slog.Info("shutting down http server")
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return errors.New("shutting down http server error: " + err.Error())
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
