package service

import (
	"context"

	"slot_backend/internal/model"
)

type SlotService interface {
	Spin(ctx context.Context) (*model.HUD, error)
	ToggleAuto(ctx context.Context) (*model.HUD, error)
	ChangeBet(ctx context.Context, req model.BetChange) (*model.HUD, error)
	State(ctx context.Context) (*model.HUD, error)
	LastResult(ctx context.Context) (*model.RoundResult, error)
	Stats(ctx context.Context) (*model.Stats, error)

	// Run крутит кадровый цикл до отмены ctx
	Run(ctx context.Context) error
}
