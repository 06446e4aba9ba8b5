package env

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDefaultGameConfig(t *testing.T) {
	cfg := DefaultGameConfig()

	if cfg.StartingBalance() != 10000 {
		t.Errorf("expected balance 10000, got %d", cfg.StartingBalance())
	}
	if got := cfg.BetValues(); len(got) != 7 || got[0] != 1 || got[6] != 1000 {
		t.Errorf("unexpected bet values %v", got)
	}
	if cfg.StopDelay() != time.Second || cfg.StopStagger() != 400*time.Millisecond {
		t.Errorf("unexpected stop timing %v / %v", cfg.StopDelay(), cfg.StopStagger())
	}
	r := cfg.Reel()
	if r.SymbolSize() != 140 || r.Buffer() != 2 || r.MaxSpeed() != 30 || r.Deceleration() != 0.92 {
		t.Errorf("unexpected reel config %+v", r)
	}
	if cfg.Banner().Hold() != 1500*time.Millisecond || cfg.Banner().FadeRate() != 0.05 {
		t.Errorf("unexpected banner config %+v", cfg.Banner())
	}
}

func TestParseGameConfigOverrides(t *testing.T) {
	data := `
game:
  starting_balance: 500
  bet_values: [2, 4]
  stop_delay: 2s
reel:
  max_speed: 45
banner:
  hold: 250ms
`
	cfg, err := ParseGameConfig([]byte(data))
	if err != nil {
		t.Fatal(err)
	}

	if cfg.StartingBalance() != 500 {
		t.Errorf("expected balance 500, got %d", cfg.StartingBalance())
	}
	if got := cfg.BetValues(); len(got) != 2 || got[1] != 4 {
		t.Errorf("unexpected bet values %v", got)
	}
	if cfg.StopDelay() != 2*time.Second {
		t.Errorf("expected stop delay 2s, got %v", cfg.StopDelay())
	}
	if cfg.StopStagger() != 400*time.Millisecond {
		t.Errorf("missing stop_stagger must keep default, got %v", cfg.StopStagger())
	}
	if cfg.Reel().MaxSpeed() != 45 || cfg.Reel().SymbolSize() != 140 {
		t.Errorf("unexpected reel config %v / %v", cfg.Reel().MaxSpeed(), cfg.Reel().SymbolSize())
	}
	if cfg.Banner().Hold() != 250*time.Millisecond {
		t.Errorf("expected hold 250ms, got %v", cfg.Banner().Hold())
	}
}

func TestParseGameConfigInvalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "negative balance", data: "game:\n  starting_balance: -1\n"},
		{name: "empty bets", data: "game:\n  bet_values: []\n"},
		{name: "zero bet", data: "game:\n  bet_values: [1, 0]\n"},
		{name: "zero frame rate", data: "game:\n  frame_rate: 0\n"},
		{name: "no symbols", data: "game:\n  symbol_count: 0\n"},
		{name: "deceleration too high", data: "reel:\n  deceleration: 1\n"},
		{name: "no buffer", data: "reel:\n  buffer: 0\n"},
		{name: "zero fade", data: "banner:\n  fade_rate: 0\n"},
		{name: "bad duration", data: "game:\n  stop_delay: soon\n"},
		{name: "not yaml", data: "game: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseGameConfig([]byte(tt.data)); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestNewGameConfigFromYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.yaml")
	if err := os.WriteFile(path, []byte("game:\n  starting_balance: 77\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := NewGameConfigFromYAML(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.StartingBalance() != 77 {
		t.Errorf("expected balance 77, got %d", cfg.StartingBalance())
	}

	if _, err := NewGameConfigFromYAML(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestGameConfigPath(t *testing.T) {
	t.Setenv(gameConfigEnvName, "")
	if p := GameConfigPath(); p != "config.yaml" {
		t.Errorf("expected default path, got %q", p)
	}

	t.Setenv(gameConfigEnvName, "/etc/slot.yaml")
	if p := GameConfigPath(); p != "/etc/slot.yaml" {
		t.Errorf("expected env path, got %q", p)
	}
}

func TestNewHTTPConfig(t *testing.T) {
	t.Setenv(httpHostEnvName, "")
	t.Setenv(httpPortEnvName, "")
	cfg, err := NewHTTPConfig()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Address() != "0.0.0.0:8080" {
		t.Errorf("unexpected address %q", cfg.Address())
	}

	t.Setenv(httpHostEnvName, "127.0.0.1")
	t.Setenv(httpPortEnvName, "9090")
	cfg, err = NewHTTPConfig()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Address() != "127.0.0.1:9090" {
		t.Errorf("unexpected address %q", cfg.Address())
	}

	for _, port := range []string{"http", "0", "70000"} {
		t.Setenv(httpPortEnvName, port)
		if _, err := NewHTTPConfig(); err == nil || !strings.Contains(err.Error(), port) {
			t.Errorf("port %q: expected error, got %v", port, err)
		}
	}
}

func TestNewLogConfig(t *testing.T) {
	t.Setenv(logLevelEnvName, "")
	t.Setenv(logPrettyEnvName, "")
	cfg, err := NewLogConfig()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Level() != "info" || cfg.Pretty() {
		t.Errorf("unexpected defaults %q / %v", cfg.Level(), cfg.Pretty())
	}

	t.Setenv(logLevelEnvName, "DEBUG")
	t.Setenv(logPrettyEnvName, "true")
	cfg, err = NewLogConfig()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Level() != "debug" || !cfg.Pretty() {
		t.Errorf("unexpected config %q / %v", cfg.Level(), cfg.Pretty())
	}

	t.Setenv(logLevelEnvName, "loud")
	if _, err := NewLogConfig(); err == nil {
		t.Error("expected error for unknown level")
	}
}
