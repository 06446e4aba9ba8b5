package slot

import (
	"context"

	"slot_backend/internal/model"
)

// Spin запускает раунд: списывает ставку и раскручивает барабаны
func (s *serv) Spin(_ context.Context) (*model.HUD, error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if err := s.game.Spin(); err != nil {
		return nil, err
	}
	s.recorder.BalanceChanged(s.game.Balance())

	hud := s.game.Snapshot()
	return &hud, nil
}

func (s *serv) ToggleAuto(_ context.Context) (*model.HUD, error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	before := s.game.State()
	on := s.game.ToggleAuto()
	s.log.Info().Bool("auto", on).Msg("auto spin toggled")
	if before != s.game.State() {
		s.recorder.BalanceChanged(s.game.Balance())
	}

	hud := s.game.Snapshot()
	return &hud, nil
}

// ChangeBet без tier переключает ставку по кругу, с tier выбирает её
func (s *serv) ChangeBet(_ context.Context, req model.BetChange) (*model.HUD, error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	var err error
	if req.Tier == nil {
		err = s.game.CycleBet()
	} else {
		err = s.game.SetBetTier(*req.Tier)
	}
	if err != nil {
		return nil, err
	}

	hud := s.game.Snapshot()
	return &hud, nil
}

func (s *serv) State(_ context.Context) (*model.HUD, error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	hud := s.game.Snapshot()
	return &hud, nil
}

func (s *serv) LastResult(_ context.Context) (*model.RoundResult, error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	res, err := s.game.LastResult()
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (s *serv) Stats(_ context.Context) (*model.Stats, error) {
	st := s.statsRepo.SlotState()
	return &st, nil
}
