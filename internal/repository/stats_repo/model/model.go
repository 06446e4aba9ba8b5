package model

// Состояние игровой сессии
type SlotState struct {
	TotalSpins   int     // Сколько всего спинов сделано
	WinningSpins int     // Спинов с ненулевой выплатой
	TotalBet     float64 // Сумма всех ставок
	TotalPayout  float64 // Сумма всех выплат

	CurrentRTP float64 // Текущий RTP = (TotalPayout/TotalBet)*100

	SpinWindow []SpinResult // Окно последних спинов для анализа
	WindowRTP  float64      // RTP в окне последних спинов
	WindowSize int          // Размер окна для анализа RTP
}

// Результат спина для окна
type SpinResult struct {
	Bet    float64
	Payout float64
}
