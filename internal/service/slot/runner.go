package slot

import (
	"context"
	"time"
)

// Run тикает игру с частотой frame_rate, пока ctx не отменён
func (s *serv) Run(ctx context.Context) error {
	rate := s.cfg.FrameRate()
	ticker := time.NewTicker(time.Duration(float64(time.Second) / rate))
	defer ticker.Stop()

	s.log.Info().Float64("fps", rate).Msg("frame loop started")

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			s.log.Info().Msg("frame loop stopped")
			return nil
		case now := <-ticker.C:
			delta := FrameDelta(now.Sub(last), rate)
			last = now
			s.tick(delta)
		}
	}
}

// FrameDelta прошедшее время в кадрах
func FrameDelta(elapsed time.Duration, frameRate float64) float64 {
	return elapsed.Seconds() * frameRate
}

func (s *serv) tick(delta float64) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	before := s.game.Balance()
	s.game.Tick(delta)
	// выплата и автоспин меняют баланс внутри кадра
	if after := s.game.Balance(); after != before {
		s.recorder.BalanceChanged(after)
	}
}
