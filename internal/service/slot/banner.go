package slot

import (
	"fmt"
	"time"

	"slot_backend/internal/config"
	"slot_backend/internal/model"
)

// banner надпись о выигрыше: держится hold, затем гаснет по fadeRate*delta за кадр
type banner struct {
	cfg      config.BannerConfig
	text     string
	alpha    float64
	holdLeft time.Duration
	fading   bool
}

func newBanner(cfg config.BannerConfig) *banner {
	return &banner{cfg: cfg}
}

func (b *banner) Show(payout int) {
	b.text = fmt.Sprintf("You Win $%d!", payout)
	b.alpha = 1
	b.holdLeft = b.cfg.Hold()
	b.fading = false
}

func (b *banner) Update(delta float64, elapsed time.Duration) {
	if b.alpha <= 0 {
		return
	}

	if !b.fading {
		b.holdLeft -= elapsed
		if b.holdLeft <= 0 {
			b.fading = true
		}
		return
	}

	b.alpha -= b.cfg.FadeRate() * delta
	if b.alpha <= 0 {
		b.alpha = 0
		b.fading = false
	}
}

func (b *banner) View() model.Banner {
	return model.Banner{
		Text:  b.text,
		Alpha: b.alpha,
	}
}
