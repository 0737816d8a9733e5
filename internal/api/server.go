package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/limbo/habitlog/internal/service"
	"github.com/limbo/habitlog/pkg/cleanup"
)

type Server struct {
	mx              *chi.Mux
	habitsService   service.HabitsServiceI
	logsService     service.HabitLogsServiceI
	insightsService service.InsightsServiceI
	authService     service.AuthServiceI
	jwtService      JWTServiceI
	displayLocation *time.Location
}

type ServicesList struct {
	HabitsService    service.HabitsServiceI
	HabitLogsService service.HabitLogsServiceI
	InsightsService  service.InsightsServiceI
	AuthService      service.AuthServiceI
	JwtService       JWTServiceI
	// Zone used for display fields of period responses. UTC when nil.
	DisplayLocation *time.Location
}

func New(servicesOptions *ServicesList) *Server {
	loc := servicesOptions.DisplayLocation
	if loc == nil {
		loc = time.UTC
	}
	s := &Server{
		mx:              chi.NewMux(),
		habitsService:   servicesOptions.HabitsService,
		logsService:     servicesOptions.HabitLogsService,
		insightsService: servicesOptions.InsightsService,
		authService:     servicesOptions.AuthService,
		jwtService:      servicesOptions.JwtService,
		displayLocation: loc,
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.mx.Use(s.RequestIDMiddleware, s.SettingUpLoggerMiddleware)
	s.mx.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/login", s.Login)
		r.Group(func(r chi.Router) {
			r.Use(s.AuthMiddleware, s.LoggerExtensionMiddleware)
			r.Get("/habits", s.ListHabits)
			r.Post("/habits", s.CreateHabit)
			r.Get("/habits/{id}", s.GetHabit)
			r.Patch("/habits/{id}", s.UpdateHabit)
			r.Delete("/habits/{id}", s.DeleteHabit)
			r.Get("/habits/{id}/logs", s.ListLogs)
			r.Post("/habits/{id}/logs", s.UpsertLog)
			r.Patch("/habits/{id}/logs/{logId}", s.UpdateLog)
			r.Delete("/habits/{id}/logs/{logId}", s.DeleteLog)
			r.Get("/habits/{id}/progress", s.GetProgress)
			r.Get("/insights", s.GetInsights)
			r.Get("/periods", s.GetPeriod)
		})
	})
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mx.ServeHTTP(w, r)
}

// Run serves until SIGINT/SIGTERM or a listener failure, then runs the
// registered cleanup jobs.
func (s *Server) Run(addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.mx,
		ReadHeaderTimeout: 5 * time.Second,
	}
	cleanup.Register(&cleanup.Job{
		Name: "http server",
		F: func() error {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return srv.Shutdown(ctx)
		},
	})
	errCh := make(chan error, 1)
	go func() {
		slog.Info("server started", slog.String("address", addr))
		errCh <- srv.ListenAndServe()
	}()
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(stop)

	var runErr error
	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			runErr = err
		}
	case sig := <-stop:
		slog.Info("shutting down", slog.String("signal", sig.String()))
	}
	cleanup.CleanUp()
	return runErr
}
