package slot

import (
	"context"
	"errors"
	"testing"
	"time"

	"slot_backend/internal/model"
	"slot_backend/internal/repository/stats_repo"

	"github.com/rs/zerolog"
)

type fakeRecorder struct {
	rounds   []model.RoundResult
	stats    []model.Stats
	balances []int
}

func (f *fakeRecorder) RoundSettled(result model.RoundResult, stats model.Stats) {
	f.rounds = append(f.rounds, result)
	f.stats = append(f.stats, stats)
}

func (f *fakeRecorder) BalanceChanged(balance int) {
	f.balances = append(f.balances, balance)
}

func newTestService(t *testing.T, rng Rand) (*serv, *fakeRecorder) {
	t.Helper()
	rec := &fakeRecorder{}
	s := NewSlotService(defaultConfig(t), stats_repo.NewStatsRepository(0), rec, rng, zerolog.Nop())
	return s.(*serv), rec
}

func TestServiceSpinAndSettle(t *testing.T) {
	s, rec := newTestService(t, constRand{v: 2})
	ctx := context.Background()

	if len(rec.balances) != 1 || rec.balances[0] != 10000 {
		t.Fatalf("expected initial balance reported, got %v", rec.balances)
	}

	hud, err := s.Spin(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if hud.State != model.StateSpinning || hud.Balance != 9999 {
		t.Fatalf("unexpected hud %+v", hud)
	}

	if _, err := s.Spin(ctx); !errors.Is(err, model.ErrRoundInProgress) {
		t.Errorf("expected ErrRoundInProgress, got %v", err)
	}
	if _, err := s.LastResult(ctx); !errors.Is(err, model.ErrNoResult) {
		t.Errorf("expected ErrNoResult, got %v", err)
	}

	for i := 0; i < 1000 && s.game.State() != model.StateIdle; i++ {
		s.tick(1)
	}

	res, err := s.LastResult(ctx)
	if err != nil {
		t.Fatal(err)
	}
	// символ 2 на всех линиях: 5 * 3 * 1
	if res.TotalPayout != 15 || res.Balance != 10014 {
		t.Fatalf("unexpected result %+v", res)
	}

	stats, err := s.Stats(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if stats.TotalSpins != 1 || stats.WinningSpins != 1 || stats.TotalBet != 1 || stats.TotalPayout != 15 {
		t.Errorf("unexpected stats %+v", stats)
	}

	if len(rec.rounds) != 1 || rec.stats[0].TotalSpins != 1 {
		t.Errorf("round must be recorded once, got %d", len(rec.rounds))
	}
	if last := rec.balances[len(rec.balances)-1]; last != 10014 {
		t.Errorf("expected last reported balance 10014, got %d", last)
	}
}

func TestServiceChangeBet(t *testing.T) {
	s, _ := newTestService(t, constRand{})
	ctx := context.Background()

	hud, err := s.ChangeBet(ctx, model.BetChange{})
	if err != nil {
		t.Fatal(err)
	}
	if hud.Bet != 5 || hud.BetTier != 1 {
		t.Errorf("expected cycled bet 5, got %d (tier %d)", hud.Bet, hud.BetTier)
	}

	tier := 6
	hud, err = s.ChangeBet(ctx, model.BetChange{Tier: &tier})
	if err != nil {
		t.Fatal(err)
	}
	if hud.Bet != 1000 {
		t.Errorf("expected bet 1000, got %d", hud.Bet)
	}

	bad := 9
	if _, err := s.ChangeBet(ctx, model.BetChange{Tier: &bad}); !errors.Is(err, model.ErrInvalidBetTier) {
		t.Errorf("expected ErrInvalidBetTier, got %v", err)
	}

	if _, err := s.Spin(ctx); err != nil {
		t.Fatal(err)
	}
	if _, err := s.ChangeBet(ctx, model.BetChange{}); !errors.Is(err, model.ErrRoundInProgress) {
		t.Errorf("expected ErrRoundInProgress, got %v", err)
	}
}

func TestServiceToggleAuto(t *testing.T) {
	s, rec := newTestService(t, constRand{})
	ctx := context.Background()

	hud, err := s.ToggleAuto(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if !hud.AutoSpin || hud.State != model.StateSpinning {
		t.Fatalf("unexpected hud %+v", hud)
	}
	if last := rec.balances[len(rec.balances)-1]; last != 9999 {
		t.Errorf("expected debited balance reported, got %d", last)
	}

	hud, err = s.State(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if !hud.AutoSpin {
		t.Error("state must report auto on")
	}
}

func TestServiceRunStopsOnCancel(t *testing.T) {
	s, _ := newTestService(t, constRand{})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- s.Run(ctx)
	}()

	if _, err := s.Spin(context.Background()); err != nil {
		t.Fatal(err)
	}
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("run returned %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("run did not stop after cancel")
	}
}

func TestFrameDelta(t *testing.T) {
	tests := []struct {
		elapsed time.Duration
		rate    float64
		want    float64
	}{
		{elapsed: time.Second / 60, rate: 60, want: 1},
		{elapsed: time.Second / 30, rate: 60, want: 2},
		{elapsed: 50 * time.Millisecond, rate: 20, want: 1},
		{elapsed: 0, rate: 60, want: 0},
	}

	for _, tt := range tests {
		got := FrameDelta(tt.elapsed, tt.rate)
		if diff := got - tt.want; diff > 1e-6 || diff < -1e-6 {
			t.Errorf("FrameDelta(%v, %v) = %v, want %v", tt.elapsed, tt.rate, got, tt.want)
		}
	}
}
