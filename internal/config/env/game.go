package env

import (
	"errors"
	"fmt"
	"os"
	"time"

	"slot_backend/internal/config"

	"gopkg.in/yaml.v3"
)

const gameConfigEnvName = "GAME_CONFIG"

// GameConfigPath путь к yaml с настройками игры
func GameConfigPath() string {
	if p := os.Getenv(gameConfigEnvName); len(p) != 0 {
		return p
	}
	return "config.yaml"
}

type gameFile struct {
	GameSection   gameSection   `yaml:"game"`
	ReelSection   reelSection   `yaml:"reel"`
	BannerSection bannerSection `yaml:"banner"`
}

type gameSection struct {
	StartingBalance int           `yaml:"starting_balance"`
	BetValues       []int         `yaml:"bet_values"`
	FrameRate       float64       `yaml:"frame_rate"`
	MaxDelta        float64       `yaml:"max_delta"`
	StopDelay       time.Duration `yaml:"stop_delay"`
	StopStagger     time.Duration `yaml:"stop_stagger"`
	SymbolCount     int           `yaml:"symbol_count"`
}

type reelSection struct {
	Size    float64 `yaml:"symbol_size"`
	Cells   int     `yaml:"buffer"`
	Speed   float64 `yaml:"max_speed"`
	Decel   float64 `yaml:"deceleration"`
	Snap    float64 `yaml:"snap_factor"`
	StopEps float64 `yaml:"stop_epsilon"`
	SnapEps float64 `yaml:"snap_epsilon"`
}

type bannerSection struct {
	HoldFor time.Duration `yaml:"hold"`
	Fade    float64       `yaml:"fade_rate"`
}

func defaultGameFile() gameFile {
	return gameFile{
		GameSection: gameSection{
			StartingBalance: 10000,
			BetValues:       []int{1, 5, 10, 50, 100, 500, 1000},
			FrameRate:       60,
			// тикер не отдаёт delta больше 6 кадров (минимум 10 fps)
			MaxDelta:    6,
			StopDelay:   1000 * time.Millisecond,
			StopStagger: 400 * time.Millisecond,
			SymbolCount: 5,
		},
		ReelSection: reelSection{
			Size:    140,
			Cells:   2,
			Speed:   30,
			Decel:   0.92,
			Snap:    0.2,
			StopEps: 0.5,
			SnapEps: 0.5,
		},
		BannerSection: bannerSection{
			HoldFor: 1500 * time.Millisecond,
			Fade:    0.05,
		},
	}
}

// DefaultGameConfig настройки исходной игры без файла
func DefaultGameConfig() config.GameConfig {
	f := defaultGameFile()
	return &f
}

// NewGameConfigFromYAML читает настройки игры из файла.
// Отсутствующие поля берутся из значений по умолчанию.
func NewGameConfigFromYAML(path string) (config.GameConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read game config: %w", err)
	}
	return ParseGameConfig(data)
}

func ParseGameConfig(data []byte) (config.GameConfig, error) {
	f := defaultGameFile()
	// yaml.v3 перезаписывает слайс только если ключ есть в файле
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse game config: %w", err)
	}
	if err := f.validate(); err != nil {
		return nil, fmt.Errorf("invalid game config: %w", err)
	}
	return &f, nil
}

func (f *gameFile) validate() error {
	g, r, b := f.GameSection, f.ReelSection, f.BannerSection

	if g.StartingBalance < 0 {
		return errors.New("starting_balance must not be negative")
	}
	if len(g.BetValues) == 0 {
		return errors.New("bet_values must not be empty")
	}
	for _, v := range g.BetValues {
		if v <= 0 {
			return fmt.Errorf("bet value %d must be positive", v)
		}
	}
	if g.FrameRate <= 0 {
		return errors.New("frame_rate must be positive")
	}
	if g.MaxDelta <= 0 {
		return errors.New("max_delta must be positive")
	}
	if g.StopDelay < 0 || g.StopStagger < 0 {
		return errors.New("stop_delay and stop_stagger must not be negative")
	}
	if g.SymbolCount < 1 {
		return errors.New("symbol_count must be at least 1")
	}

	if r.Size <= 0 {
		return errors.New("reel.symbol_size must be positive")
	}
	if r.Cells < 1 {
		return errors.New("reel.buffer must be at least 1")
	}
	if r.Speed <= 0 {
		return errors.New("reel.max_speed must be positive")
	}
	if r.Decel <= 0 || r.Decel >= 1 {
		return errors.New("reel.deceleration must be in (0, 1)")
	}
	if r.Snap <= 0 || r.Snap > 1 {
		return errors.New("reel.snap_factor must be in (0, 1]")
	}
	if r.StopEps <= 0 || r.SnapEps <= 0 {
		return errors.New("reel epsilons must be positive")
	}

	if b.HoldFor < 0 {
		return errors.New("banner.hold must not be negative")
	}
	if b.Fade <= 0 {
		return errors.New("banner.fade_rate must be positive")
	}
	return nil
}

func (f *gameFile) StartingBalance() int {
	return f.GameSection.StartingBalance
}

func (f *gameFile) BetValues() []int {
	out := make([]int, len(f.GameSection.BetValues))
	copy(out, f.GameSection.BetValues)
	return out
}

func (f *gameFile) FrameRate() float64 {
	return f.GameSection.FrameRate
}

func (f *gameFile) MaxDelta() float64 {
	return f.GameSection.MaxDelta
}

func (f *gameFile) StopDelay() time.Duration {
	return f.GameSection.StopDelay
}

func (f *gameFile) StopStagger() time.Duration {
	return f.GameSection.StopStagger
}

func (f *gameFile) SymbolCount() int {
	return f.GameSection.SymbolCount
}

func (f *gameFile) Reel() config.ReelConfig {
	return &f.ReelSection
}

func (f *gameFile) Banner() config.BannerConfig {
	return &f.BannerSection
}

func (r *reelSection) SymbolSize() float64   { return r.Size }
func (r *reelSection) Buffer() int           { return r.Cells }
func (r *reelSection) MaxSpeed() float64     { return r.Speed }
func (r *reelSection) Deceleration() float64 { return r.Decel }
func (r *reelSection) SnapFactor() float64   { return r.Snap }
func (r *reelSection) StopEpsilon() float64  { return r.StopEps }
func (r *reelSection) SnapEpsilon() float64  { return r.SnapEps }

func (b *bannerSection) Hold() time.Duration { return b.HoldFor }
func (b *bannerSection) FadeRate() float64   { return b.Fade }
