package converter

import (
	"slot_backend/internal/api/dto/slot"
	"slot_backend/internal/model"
)

func ToBetChange(req slot.BetRequest) model.BetChange {
	return model.BetChange{
		Tier: req.Tier,
	}
}

func ToStateResponse(hud model.HUD) slot.StateResponse {
	betValues := hud.BetValues
	if betValues == nil {
		betValues = []int{}
	}
	return slot.StateResponse{
		RoundID:    hud.RoundID,
		State:      string(hud.State),
		Balance:    hud.Balance,
		Bet:        hud.Bet,
		BetTier:    hud.BetTier,
		BetValues:  betValues,
		AutoSpin:   hud.AutoSpin,
		LastPayout: hud.LastPayout,
		Banner: slot.Banner{
			Text:  hud.Banner.Text,
			Alpha: hud.Banner.Alpha,
		},
		Reels: toReels(hud.Reels),
	}
}

func toReels(reels []model.ReelView) []slot.Reel {
	result := make([]slot.Reel, len(reels))
	for i, r := range reels {
		cells := make([]slot.Cell, len(r.Cells))
		for j, c := range r.Cells {
			cells[j] = slot.Cell{
				ID:          int(c.ID),
				Value:       c.Value,
				Color:       c.Color,
				Highlighted: c.Highlighted,
			}
		}
		result[i] = slot.Reel{
			Cells:   cells,
			Stopped: r.Stopped,
		}
	}
	return result
}

func ToResultResponse(res model.RoundResult) slot.ResultResponse {
	var grid [3][3]int
	for c := range res.Grid {
		for r := range res.Grid[c] {
			grid[c][r] = int(res.Grid[c][r])
		}
	}
	return slot.ResultResponse{
		RoundID:     res.RoundID,
		Bet:         res.Bet,
		Grid:        grid,
		LineWins:    toLineWins(res.LineWins),
		TotalPayout: res.TotalPayout,
		Balance:     res.Balance,
	}
}

func toLineWins(lineWins []model.LineWin) []slot.LineWin {
	result := make([]slot.LineWin, len(lineWins))
	for i, l := range lineWins {
		result[i] = slot.LineWin{
			Line:   l.Line,
			Symbol: int(l.Symbol),
			Payout: l.Payout,
		}
	}
	return result
}

func ToStatsResponse(st model.Stats) slot.StatsResponse {
	return slot.StatsResponse{
		TotalSpins:   st.TotalSpins,
		WinningSpins: st.WinningSpins,
		TotalBet:     st.TotalBet,
		TotalPayout:  st.TotalPayout,
		RTP:          st.CurrentRTP,
		WindowRTP:    st.WindowRTP,
		WindowSize:   st.WindowSize,
	}
}
