package app

import (
	"context"
	"math/rand/v2"
	"net/http"
	"time"

	slotAPI "slot_backend/internal/api/slot"
	"slot_backend/internal/config"
	"slot_backend/internal/config/env"
	"slot_backend/internal/metrics"
	"slot_backend/internal/repository"
	"slot_backend/internal/repository/stats_repo"
	"slot_backend/internal/service"
	"slot_backend/internal/service/slot"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/hlog"
	"github.com/rs/zerolog/log"
)

type ServiceProvider struct {
	// Configs
	gameCfg config.GameConfig
	logCfg  config.LogConfig

	// Stats bits
	statsRepo repository.StatsRepository
	registry  *prometheus.Registry
	recorder  *metrics.Recorder

	// Slot bits
	rng      slot.Rand
	slotServ service.SlotService
	slotHand *slotAPI.Handler

	// Router and HTTP config
	httpCfg config.HTTPConfig
	router  chi.Router
}

func newServiceProvider() *ServiceProvider {
	return &ServiceProvider{}
}

func (sp *ServiceProvider) GameCfg() config.GameConfig {
	if sp.gameCfg == nil {
		cfg, err := env.NewGameConfigFromYAML(env.GameConfigPath())
		if err != nil {
			panic("failed to get game config: " + err.Error())
		}
		sp.gameCfg = cfg
	}
	return sp.gameCfg
}

func (sp *ServiceProvider) LogCfg() config.LogConfig {
	if sp.logCfg == nil {
		cfg, err := env.NewLogConfig()
		if err != nil {
			panic("failed to get log config: " + err.Error())
		}
		sp.logCfg = cfg
	}
	return sp.logCfg
}

func (sp *ServiceProvider) HTTPCfg() config.HTTPConfig {
	if sp.httpCfg == nil {
		cfg, err := env.NewHTTPConfig()
		if err != nil {
			panic("failed to get http config: " + err.Error())
		}
		sp.httpCfg = cfg
	}
	return sp.httpCfg
}

func (sp *ServiceProvider) StatsRepository() repository.StatsRepository {
	if sp.statsRepo == nil {
		sp.statsRepo = stats_repo.NewStatsRepository(0)
	}
	return sp.statsRepo
}

func (sp *ServiceProvider) Registry() *prometheus.Registry {
	if sp.registry == nil {
		reg := prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		sp.registry = reg
	}
	return sp.registry
}

func (sp *ServiceProvider) Recorder() *metrics.Recorder {
	if sp.recorder == nil {
		sp.recorder = metrics.NewRecorder(sp.Registry())
	}
	return sp.recorder
}

func (sp *ServiceProvider) Rand() slot.Rand {
	if sp.rng == nil {
		sp.rng = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), rand.Uint64()))
	}
	return sp.rng
}

func (sp *ServiceProvider) SlotService() service.SlotService {
	if sp.slotServ == nil {
		sp.slotServ = slot.NewSlotService(
			sp.GameCfg(),
			sp.StatsRepository(),
			sp.Recorder(),
			sp.Rand(),
			log.Logger.With().Str("component", "slot").Logger(),
		)
	}
	return sp.slotServ
}

func (sp *ServiceProvider) SlotHandler() *slotAPI.Handler {
	if sp.slotHand == nil {
		sp.slotHand = slotAPI.NewHandler(slotAPI.HandlerDeps{
			Serv: sp.SlotService(),
		})
	}
	return sp.slotHand
}

func (sp *ServiceProvider) Router(_ context.Context) chi.Router {
	if sp.router == nil {
		r := chi.NewRouter()

		r.Use(middleware.RequestID)
		r.Use(middleware.RealIP)
		r.Use(hlog.NewHandler(log.Logger))
		r.Use(hlog.AccessHandler(func(r *http.Request, status, size int, duration time.Duration) {
			hlog.FromRequest(r).Debug().
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", status).
				Int("size", size).
				Dur("duration", duration).
				Msg("request")
		}))
		r.Use(middleware.Recoverer)

		// CORS middleware
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Content-Type"},
			AllowCredentials: false,
			MaxAge:           60 * 15,
		}))

		r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json; charset=utf-8")
			_, _ = w.Write([]byte(`{"ok":true}`))
		})
		r.Handle("/metrics", promhttp.HandlerFor(sp.Registry(), promhttp.HandlerOpts{}))

		// Slot endpoints
		slotHandler := sp.SlotHandler()
		r.Route("/slot", func(rr chi.Router) {
			rr.Get("/state", slotHandler.State)
			rr.Post("/spin", slotHandler.Spin)
			rr.Post("/auto", slotHandler.ToggleAuto)
			rr.Post("/bet", slotHandler.Bet)
			rr.Get("/result", slotHandler.LastResult)
			rr.Get("/stats", slotHandler.Stats)
		})

		sp.router = r
	}

	return sp.router
}
