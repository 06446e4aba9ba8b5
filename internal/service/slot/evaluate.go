package slot

import "slot_backend/internal/model"

// Позиция на поле: барабан и строка
type position struct {
	reel int
	row  int
}

// WinLines три строки и две диагонали
var WinLines = [5][3]position{
	{{0, 0}, {1, 0}, {2, 0}},
	{{0, 1}, {1, 1}, {2, 1}},
	{{0, 2}, {1, 2}, {2, 2}},
	{{0, 0}, {1, 1}, {2, 2}},
	{{0, 2}, {1, 1}, {2, 0}},
}

// EvaluateLines выигрышные линии: все три символа линии равны,
// выплата (символ+1) * ставка
func EvaluateLines(grid model.Grid, bet int) []model.LineWin {
	var wins []model.LineWin

	for i, line := range WinLines {
		first := grid[line[0].reel][line[0].row]

		matched := true
		for _, p := range line[1:] {
			if grid[p.reel][p.row] != first {
				matched = false
				break
			}
		}
		if !matched {
			continue
		}

		wins = append(wins, model.LineWin{
			Line:   i + 1,
			Symbol: first,
			Payout: first.Value() * bet,
		})
	}
	return wins
}

func TotalPayout(wins []model.LineWin) int {
	var total int
	for _, w := range wins {
		total += w.Payout
	}
	return total
}

// WinningCells маска ячеек, входящих хотя бы в одну выигрышную линию
func WinningCells(wins []model.LineWin) [3][3]bool {
	var mask [3][3]bool
	for _, w := range wins {
		for _, p := range WinLines[w.Line-1] {
			mask[p.reel][p.row] = true
		}
	}
	return mask
}
