package slot

import (
	"time"

	"slot_backend/internal/config"
	"slot_backend/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Барабанов на поле
const reelCount = 3

// stopTimer отложенная остановка барабана внутри раунда
type stopTimer struct {
	round string
	reel  int
	due   time.Duration
}

// Game три барабана, баланс и ставка.
// Цикл раунда: IDLE -> SPINNING -> RESULT -> IDLE, время идёт только через Tick.
type Game struct {
	cfg config.GameConfig
	rng Rand
	log zerolog.Logger

	reels  []*Reel
	banner *banner

	state     model.RoundState
	balance   int
	betValues []int
	betIndex  int
	betPayout int
	autoSpin  bool

	roundID  string
	roundBet int
	clock    time.Duration
	timers   []stopTimer

	last      *model.RoundResult
	onSettled func(model.RoundResult)
	newID     func() string
}

func NewGame(cfg config.GameConfig, rng Rand, logger zerolog.Logger) *Game {
	g := &Game{
		cfg:       cfg,
		rng:       rng,
		log:       logger,
		banner:    newBanner(cfg.Banner()),
		state:     model.StateIdle,
		balance:   cfg.StartingBalance(),
		betValues: cfg.BetValues(),
		newID:     uuid.NewString,
	}
	for i := 0; i < reelCount; i++ {
		g.reels = append(g.reels, NewReel(cfg.Reel(), cfg.SymbolCount(), rng))
	}
	return g
}

// OnSettled вызывается один раз на каждый завершённый раунд
func (g *Game) OnSettled(fn func(model.RoundResult)) {
	g.onSettled = fn
}

func (g *Game) State() model.RoundState {
	return g.state
}

func (g *Game) Balance() int {
	return g.balance
}

func (g *Game) AutoSpin() bool {
	return g.autoSpin
}

func (g *Game) CurrentBet() int {
	return g.betValues[g.betIndex]
}

func (g *Game) CanSpin() bool {
	return g.state == model.StateIdle && g.balance >= g.CurrentBet()
}

func (g *Game) Spin() error {
	if g.state != model.StateIdle {
		return model.ErrRoundInProgress
	}
	if g.balance < g.CurrentBet() {
		return model.ErrInsufficientBalance
	}
	g.startSpin()
	return nil
}

// ToggleAuto переключает автоспин, при включении сразу запускает раунд если можно
func (g *Game) ToggleAuto() bool {
	g.autoSpin = !g.autoSpin
	if g.autoSpin && g.CanSpin() {
		g.startSpin()
	}
	return g.autoSpin
}

// CycleBet следующая ставка по кругу, только между раундами
func (g *Game) CycleBet() error {
	if g.state != model.StateIdle {
		return model.ErrRoundInProgress
	}
	g.betIndex = (g.betIndex + 1) % len(g.betValues)
	return nil
}

func (g *Game) SetBetTier(tier int) error {
	if g.state != model.StateIdle {
		return model.ErrRoundInProgress
	}
	if tier < 0 || tier >= len(g.betValues) {
		return model.ErrInvalidBetTier
	}
	g.betIndex = tier
	return nil
}

// Tick один кадр; delta в кадрах (1 = один кадр при frame_rate)
func (g *Game) Tick(delta float64) {
	if delta <= 0 {
		return
	}
	if maxDelta := g.cfg.MaxDelta(); delta > maxDelta {
		delta = maxDelta
	}

	elapsed := time.Duration(delta * float64(time.Second) / g.cfg.FrameRate())
	g.clock += elapsed
	g.fireTimers()

	for _, r := range g.reels {
		r.Update(delta)
	}
	g.banner.Update(delta, elapsed)

	if g.state == model.StateSpinning && g.allStopped() {
		g.state = model.StateResult
		g.evaluateWin()
	}
}

func (g *Game) LastResult() (model.RoundResult, error) {
	if g.last == nil {
		return model.RoundResult{}, model.ErrNoResult
	}
	return *g.last, nil
}

func (g *Game) Snapshot() model.HUD {
	reels := make([]model.ReelView, len(g.reels))
	for i, r := range g.reels {
		views := r.VisibleViews()
		cells := make([]model.Cell, len(views))
		for j, v := range views {
			cells[j] = v.Cell()
		}
		reels[i] = model.ReelView{
			Cells:   cells,
			Stopped: r.IsStopped(),
		}
	}

	betValues := make([]int, len(g.betValues))
	copy(betValues, g.betValues)

	return model.HUD{
		RoundID:    g.roundID,
		State:      g.state,
		Balance:    g.balance,
		Bet:        g.CurrentBet(),
		BetTier:    g.betIndex,
		BetValues:  betValues,
		AutoSpin:   g.autoSpin,
		LastPayout: g.betPayout,
		Banner:     g.banner.View(),
		Reels:      reels,
	}
}

func (g *Game) startSpin() {
	g.state = model.StateSpinning
	g.roundBet = g.CurrentBet()
	g.balance -= g.roundBet
	g.betPayout = 0
	g.roundID = g.newID()

	for _, r := range g.reels {
		r.ClearHighlights()
		r.StartSpin()
	}

	for i := range g.reels {
		g.timers = append(g.timers, stopTimer{
			round: g.roundID,
			reel:  i,
			due:   g.clock + g.cfg.StopDelay() + time.Duration(i)*g.cfg.StopStagger(),
		})
	}

	g.log.Debug().
		Str("round", g.roundID).
		Int("bet", g.roundBet).
		Int("balance", g.balance).
		Msg("spin started")
}

// fireTimers останавливает барабаны, чьё время пришло.
// Таймеры чужого раунда просто выбрасываются.
func (g *Game) fireTimers() {
	pending := g.timers[:0]
	for _, t := range g.timers {
		if t.due > g.clock {
			pending = append(pending, t)
			continue
		}
		if t.round != g.roundID || g.state != model.StateSpinning {
			g.log.Debug().Str("round", t.round).Int("reel", t.reel).Msg("stale stop timer ignored")
			continue
		}
		g.reels[t.reel].StopSpin(g.randomResult())
	}
	g.timers = pending
}

func (g *Game) randomResult() [visibleSymbols]model.Symbol {
	var res [visibleSymbols]model.Symbol
	for i := range res {
		res[i] = model.Symbol(g.rng.IntN(g.cfg.SymbolCount()))
	}
	return res
}

func (g *Game) allStopped() bool {
	for _, r := range g.reels {
		if !r.IsStopped() {
			return false
		}
	}
	return true
}

func (g *Game) sampleGrid() model.Grid {
	var grid model.Grid
	for c, r := range g.reels {
		for row, sym := range r.VisibleSymbols() {
			grid[c][row] = sym
		}
	}
	return grid
}

// evaluateWin считает линии по видимому полю и начисляет выплату один раз
func (g *Game) evaluateWin() {
	grid := g.sampleGrid()
	wins := EvaluateLines(grid, g.roundBet)

	g.betPayout = TotalPayout(wins)
	if g.betPayout > 0 {
		g.balance += g.betPayout
		g.banner.Show(g.betPayout)
	}

	mask := WinningCells(wins)
	for c, r := range g.reels {
		for row, v := range r.VisibleViews() {
			v.SetHighlight(mask[c][row])
		}
	}

	g.state = model.StateIdle

	result := model.RoundResult{
		RoundID:     g.roundID,
		Bet:         g.roundBet,
		Grid:        grid,
		LineWins:    wins,
		TotalPayout: g.betPayout,
		Balance:     g.balance,
	}
	g.last = &result

	g.log.Debug().
		Str("round", g.roundID).
		Int("bet", g.roundBet).
		Int("payout", g.betPayout).
		Int("balance", g.balance).
		Int("lines", len(wins)).
		Msg("round settled")

	if g.onSettled != nil {
		g.onSettled(result)
	}

	// После выигрыша автоспин ждёт игрока
	if g.autoSpin && g.betPayout == 0 {
		if g.CanSpin() {
			g.startSpin()
			return
		}
		g.log.Info().
			Int("balance", g.balance).
			Int("bet", g.CurrentBet()).
			Msg("auto spin halted: not enough balance")
	}
}
