package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/galacticx/engagement/internal/service"
)

type Server struct {
	mx                 *chi.Mux
	authService        service.AuthServiceI
	userService        service.UserServiceI
	streakService      service.StreakServiceI
	leaderboardService service.LeaderboardServiceI
	jwtService         JWTServiceI
	signInPerMinute    int
}

type ServicesList struct {
	AuthService        service.AuthServiceI
	UserService        service.UserServiceI
	StreakService      service.StreakServiceI
	LeaderboardService service.LeaderboardServiceI
	JwtService         JWTServiceI
	SignInPerMinute    int
}

func New(servicesOptions *ServicesList) *Server {
	perMinute := servicesOptions.SignInPerMinute
	if perMinute == 0 {
		perMinute = 10
	}
	return &Server{
		mx:                 chi.NewMux(),
		authService:        servicesOptions.AuthService,
		userService:        servicesOptions.UserService,
		streakService:      servicesOptions.StreakService,
		leaderboardService: servicesOptions.LeaderboardService,
		jwtService:         servicesOptions.JwtService,
		signInPerMinute:    perMinute,
	}
}

func (s *Server) Routes() *chi.Mux {
	s.mx.Use(s.RequestIDMiddleware, s.SettingUpLoggerMiddleware)
	s.mx.Route("/api/v1", func(r chi.Router) {
		r.With(s.RateLimitMiddleware(s.signInPerMinute)).Post("/auth/signin", s.SignIn)
		r.Get("/leaderboard", s.Leaderboard)
		r.Group(func(r chi.Router) {
			r.Use(s.AuthMiddleware)
			r.Get("/users/me", s.Me)
			r.Patch("/users/me/username", s.SetUsername)
			r.Get("/streaks/week", s.GetWeekStreak)
			r.Post("/streaks/claim", s.ClaimDay)
		})
	})
	return s.mx
}

func (s *Server) Run(address string) error {
	return http.ListenAndServe(address, s.Routes())
}
