package slot

import (
	"testing"

	"slot_backend/internal/config"
	"slot_backend/internal/config/env"
	"slot_backend/internal/model"
)

// constRand всегда отдаёт один и тот же символ
type constRand struct {
	v int
}

func (r constRand) IntN(n int) int {
	return r.v % n
}

// seqRand отдаёт значения по кругу
type seqRand struct {
	vals []int
	i    int
}

func (r *seqRand) IntN(n int) int {
	v := r.vals[r.i%len(r.vals)]
	r.i++
	return v % n
}

func defaultConfig(t *testing.T) config.GameConfig {
	t.Helper()
	return env.DefaultGameConfig()
}

func mustParseConfig(t *testing.T, data string) config.GameConfig {
	t.Helper()
	cfg, err := env.ParseGameConfig([]byte(data))
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	return cfg
}

// forceStopped ставит барабаны на место с заданным видимым полем
func forceStopped(g *Game, grid model.Grid) {
	for c, r := range g.reels {
		r.speed, r.stopping, r.offset = 0, false, 0
		for row := 0; row < visibleSymbols; row++ {
			r.cells[r.cfg.Buffer()+row].SetID(grid[c][row])
		}
	}
}

func tickUntilIdle(t *testing.T, g *Game, maxFrames int) int {
	t.Helper()
	for i := 1; i <= maxFrames; i++ {
		g.Tick(1)
		if g.State() == model.StateIdle {
			return i
		}
	}
	t.Fatalf("round did not settle in %d frames", maxFrames)
	return 0
}

// Поле без единой выигрышной линии
var losingGrid = model.Grid{
	{0, 1, 2},
	{1, 2, 3},
	{3, 4, 0},
}
