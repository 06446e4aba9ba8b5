package model

// Symbol лицевое значение ячейки барабана, 0..4
type Symbol int

// Value вес символа в выплате
func (s Symbol) Value() int {
	return int(s) + 1
}

// Grid видимые символы трёх барабанов, grid[reel][row]
type Grid [3][3]Symbol

type RoundState string

const (
	StateIdle     RoundState = "IDLE"
	StateSpinning RoundState = "SPINNING"
	StateResult   RoundState = "RESULT"
)

type LineWin struct {
	Line   int // 1-5
	Symbol Symbol
	Payout int
}

type RoundResult struct {
	RoundID     string
	Bet         int
	Grid        Grid
	LineWins    []LineWin
	TotalPayout int
	Balance     int
}

type Cell struct {
	ID          Symbol
	Value       int
	Color       string
	Highlighted bool
}

type ReelView struct {
	Cells   []Cell
	Stopped bool
}

type Banner struct {
	Text  string
	Alpha float64
}

// HUD снимок состояния игры для клиента
type HUD struct {
	RoundID    string
	State      RoundState
	Balance    int
	Bet        int
	BetTier    int
	BetValues  []int
	AutoSpin   bool
	LastPayout int
	Banner     Banner
	Reels      []ReelView
}

type BetChange struct {
	Tier *int
}

type Stats struct {
	TotalSpins   int
	WinningSpins int
	TotalBet     float64
	TotalPayout  float64
	CurrentRTP   float64
	WindowRTP    float64
	WindowSize   int
}
