package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"convertall/internal/config"
)

func TestSetupNoFile(t *testing.T) {
	cfg := config.Default()
	cfg.NoColor = true
	c, err := Setup(cfg)
	if err != nil {
		t.Fatal(err)
	}
	defer c.Close()
	log.Info().Msg("test message")
}

func TestSetupWithFile(t *testing.T) {
	cfg := config.Default()
	cfg.NoColor = true
	cfg.LogFile = filepath.Join(t.TempDir(), "logs", "convertall.log")
	c, err := Setup(cfg)
	if err != nil {
		t.Fatal(err)
	}
	log.Info().Str("input", "x.png").Msg("to file")
	if err := c.Close(); err != nil {
		t.Fatal(err)
	}
	b, _ := os.ReadFile(cfg.LogFile)
	if !bytes.Contains(b, []byte(`"level":"info"`)) || !bytes.Contains(b, []byte("to file")) {
		t.Errorf("log file content: %s", string(b))
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]zerolog.Level{
		"debug": zerolog.DebugLevel,
		"INFO":  zerolog.InfoLevel,
		"":      zerolog.InfoLevel,
		"warn":  zerolog.WarnLevel,
		"error": zerolog.ErrorLevel,
	}
	for in, want := range cases {
		got, err := ParseLevel(in)
		if err != nil || got != want {
			t.Errorf("ParseLevel(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := ParseLevel("loud"); err == nil {
		t.Errorf("expected error for unknown level")
	}
}
