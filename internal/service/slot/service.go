package slot

import (
	"sync"

	"slot_backend/internal/config"
	"slot_backend/internal/model"
	"slot_backend/internal/repository"
	"slot_backend/internal/service"

	"github.com/rs/zerolog"
)

// Recorder получатель событий раунда для метрик
type Recorder interface {
	RoundSettled(result model.RoundResult, stats model.Stats)
	BalanceChanged(balance int)
}

// serv владеет единственной игрой; кадровый цикл и HTTP обращаются к ней под mtx
type serv struct {
	mtx       sync.Mutex
	cfg       config.GameConfig
	game      *Game
	statsRepo repository.StatsRepository
	recorder  Recorder
	log       zerolog.Logger
}

// NewSlotService Создать игру 3x3 с пятью линиями
func NewSlotService(
	cfg config.GameConfig,
	statsRepo repository.StatsRepository,
	recorder Recorder,
	rng Rand,
	logger zerolog.Logger,
) service.SlotService {
	s := &serv{
		cfg:       cfg,
		game:      NewGame(cfg, rng, logger),
		statsRepo: statsRepo,
		recorder:  recorder,
		log:       logger,
	}
	s.game.OnSettled(s.roundSettled)
	s.recorder.BalanceChanged(s.game.Balance())
	return s
}

// roundSettled вызывается из Tick под s.mtx
func (s *serv) roundSettled(result model.RoundResult) {
	s.statsRepo.UpdateState(float64(result.Bet), float64(result.TotalPayout))
	s.recorder.RoundSettled(result, s.statsRepo.SlotState())
}
