package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"slot_backend/internal/config"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 5 * time.Second

type App struct {
	ServiceProvider *ServiceProvider
}

func NewApp() *App {
	return &App{}
}

func (s *App) initServiceProvider() {
	s.ServiceProvider = newServiceProvider()
}

// Run поднимает кадровый цикл игры и HTTP сервер, останавливается по SIGINT/SIGTERM
func (s *App) Run() error {
	envErr := config.Load(".env")
	s.initServiceProvider()
	setupLogger(s.ServiceProvider.LogCfg())
	if envErr != nil {
		log.Warn().Err(envErr).Msg("error loading .env file")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := &http.Server{
		Addr:              s.ServiceProvider.HTTPCfg().Address(),
		Handler:           s.ServiceProvider.Router(ctx),
		ReadHeaderTimeout: 5 * time.Second,
	}
	slotServ := s.ServiceProvider.SlotService()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return slotServ.Run(gctx)
	})

	g.Go(func() error {
		log.Info().Str("addr", srv.Addr).Msg("starting server")
		err := srv.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		log.Info().Msg("shutting down server")
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
