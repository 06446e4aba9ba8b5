package slot

type BetRequest struct {
	Tier *int `json:"tier,omitempty"` // Индекс ставки; без него ставка переключается по кругу
}

type StateResponse struct {
	RoundID    string `json:"round_id,omitempty"` // Текущий или последний раунд
	State      string `json:"state"`              // IDLE | SPINNING | RESULT
	Balance    int    `json:"balance"`            // Баланс
	Bet        int    `json:"bet"`                // Текущая ставка
	BetTier    int    `json:"bet_tier"`           // Индекс ставки
	BetValues  []int  `json:"bet_values"`         // Доступные ставки
	AutoSpin   bool   `json:"auto_spin"`          // Автоспин включён
	LastPayout int    `json:"last_payout"`        // Выплата последнего раунда
	Banner     Banner `json:"banner"`             // Надпись о выигрыше
	Reels      []Reel `json:"reels"`              // Окна барабанов
}

type Banner struct {
	Text  string  `json:"text"`
	Alpha float64 `json:"alpha"` // 0..1
}

type Reel struct {
	Cells   []Cell `json:"cells"`   // Сверху вниз
	Stopped bool   `json:"stopped"` // Барабан стоит
}

type Cell struct {
	ID          int    `json:"id"`    // 0-4
	Value       int    `json:"value"` // id+1
	Color       string `json:"color"`
	Highlighted bool   `json:"highlighted"`
}

type ResultResponse struct {
	RoundID     string    `json:"round_id"`
	Bet         int       `json:"bet"`
	Grid        [3][3]int `json:"grid"` // grid[reel][row]
	LineWins    []LineWin `json:"line_wins"`
	TotalPayout int       `json:"total_payout"`
	Balance     int       `json:"balance"` // Баланс после выплаты
}

type LineWin struct {
	Line   int `json:"line"`   // 1-5
	Symbol int `json:"symbol"` // ID символа
	Payout int `json:"payout"`
}

type StatsResponse struct {
	TotalSpins   int     `json:"total_spins"`
	WinningSpins int     `json:"winning_spins"`
	TotalBet     float64 `json:"total_bet"`
	TotalPayout  float64 `json:"total_payout"`
	RTP          float64 `json:"rtp"`
	WindowRTP    float64 `json:"window_rtp"`
	WindowSize   int     `json:"window_size"`
}
