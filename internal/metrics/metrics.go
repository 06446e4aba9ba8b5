package metrics

import (
	"strconv"

	"slot_backend/internal/model"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const labelLine = "line"

// Recorder зеркалит раунды и статистику в коллекторы Prometheus.
// Имена метрик: slot_<name>.
type Recorder struct {
	spins        prometheus.Counter
	winningSpins prometheus.Counter
	betTotal     prometheus.Counter
	payoutTotal  prometheus.Counter
	lineWins     *prometheus.CounterVec

	balance   prometheus.Gauge
	rtpPct    prometheus.Gauge
	windowRTP prometheus.Gauge
}

func NewRecorder(reg prometheus.Registerer) *Recorder {
	f := promauto.With(reg)
	return &Recorder{
		spins:        f.NewCounter(prometheus.CounterOpts{Name: "slot_spins_total", Help: "Завершённые раунды"}),
		winningSpins: f.NewCounter(prometheus.CounterOpts{Name: "slot_winning_spins_total", Help: "Раунды с выплатой"}),
		betTotal:     f.NewCounter(prometheus.CounterOpts{Name: "slot_bet_total", Help: "Сумма ставок"}),
		payoutTotal:  f.NewCounter(prometheus.CounterOpts{Name: "slot_payout_total", Help: "Сумма выплат"}),
		lineWins: f.NewCounterVec(prometheus.CounterOpts{
			Name: "slot_line_wins_total",
			Help: "Срабатывания выигрышных линий",
		}, []string{labelLine}),
		balance:   f.NewGauge(prometheus.GaugeOpts{Name: "slot_balance", Help: "Текущий баланс"}),
		rtpPct:    f.NewGauge(prometheus.GaugeOpts{Name: "slot_rtp_pct", Help: "RTP %"}),
		windowRTP: f.NewGauge(prometheus.GaugeOpts{Name: "slot_window_rtp_pct", Help: "RTP % в окне последних раундов"}),
	}
}

func (r *Recorder) RoundSettled(result model.RoundResult, stats model.Stats) {
	r.spins.Inc()
	if result.TotalPayout > 0 {
		r.winningSpins.Inc()
	}
	r.betTotal.Add(float64(result.Bet))
	r.payoutTotal.Add(float64(result.TotalPayout))
	for _, w := range result.LineWins {
		r.lineWins.WithLabelValues(strconv.Itoa(w.Line)).Inc()
	}

	r.balance.Set(float64(result.Balance))
	r.rtpPct.Set(stats.CurrentRTP)
	r.windowRTP.Set(stats.WindowRTP)
}

func (r *Recorder) BalanceChanged(balance int) {
	r.balance.Set(float64(balance))
}
