package stats_repo

import (
	"sync"

	"slot_backend/internal/model"
	repoModel "slot_backend/internal/repository/stats_repo/model"
)

// defaultWindowSize размер окна последних спинов
const defaultWindowSize = 500

// Реализация репозитория для хранения статистики раундов
type StateRepo struct {
	mtx   sync.RWMutex
	state repoModel.SlotState
}

// NewStatsRepository Конструктор репозитория с пустой статистикой.
// windowSize <= 0 означает размер окна по умолчанию.
func NewStatsRepository(windowSize int) *StateRepo {
	if windowSize <= 0 {
		windowSize = defaultWindowSize
	}
	return &StateRepo{
		state: repoModel.SlotState{
			SpinWindow: make([]repoModel.SpinResult, 0, windowSize),
			WindowSize: windowSize,
		},
	}
}

// SlotState Возвращает копию текущей статистики
func (r *StateRepo) SlotState() model.Stats {
	r.mtx.RLock()
	defer r.mtx.RUnlock()
	return model.Stats{
		TotalSpins:   r.state.TotalSpins,
		WinningSpins: r.state.WinningSpins,
		TotalBet:     r.state.TotalBet,
		TotalPayout:  r.state.TotalPayout,
		CurrentRTP:   r.state.CurrentRTP,
		WindowRTP:    r.state.WindowRTP,
		WindowSize:   r.state.WindowSize,
	}
}

// UpdateState Обновление статистики после раунда.
// Окно режется срезом [1:]: старый элемент отбрасывается, массив переиспользуется
// до следующего роста append.
func (r *StateRepo) UpdateState(bet, payout float64) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.state.TotalSpins++
	if payout > 0 {
		r.state.WinningSpins++
	}
	r.state.TotalBet += bet
	r.state.TotalPayout += payout
	if r.state.TotalBet > 0 {
		r.state.CurrentRTP = r.state.TotalPayout / r.state.TotalBet * 100
	}

	// Добавляем спин в окно
	r.state.SpinWindow = append(r.state.SpinWindow, repoModel.SpinResult{
		Bet:    bet,
		Payout: payout,
	})

	// Поддерживаем размер окна
	if len(r.state.SpinWindow) > r.state.WindowSize {
		r.state.SpinWindow = r.state.SpinWindow[1:]
	}

	var windowBet, windowPayout float64
	for _, spin := range r.state.SpinWindow {
		windowBet += spin.Bet
		windowPayout += spin.Payout
	}

	if windowBet > 0 {
		r.state.WindowRTP = windowPayout / windowBet * 100
	} else {
		r.state.WindowRTP = 0
	}
}
