package config

import (
	"time"

	"github.com/joho/godotenv"
)

func Load(path string) error {
	err := godotenv.Load(path)
	if err != nil {
		return err
	}
	return nil
}

type GameConfig interface {
	StartingBalance() int
	BetValues() []int
	FrameRate() float64
	MaxDelta() float64
	StopDelay() time.Duration
	StopStagger() time.Duration
	SymbolCount() int
	Reel() ReelConfig
	Banner() BannerConfig
}

type ReelConfig interface {
	SymbolSize() float64
	Buffer() int
	MaxSpeed() float64
	Deceleration() float64
	SnapFactor() float64
	StopEpsilon() float64
	SnapEpsilon() float64
}

type BannerConfig interface {
	Hold() time.Duration
	FadeRate() float64
}

type HTTPConfig interface {
	Address() string
}

type LogConfig interface {
	Level() string
	Pretty() bool
}
