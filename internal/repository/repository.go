package repository

import "slot_backend/internal/model"

type StatsRepository interface {
	UpdateState(bet, payout float64)
	SlotState() model.Stats
}
