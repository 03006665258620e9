package config

import (
	"flag"
	"os"
	"testing"
)

// resetFlagSet создаёт новый FlagSet перед каждым вызовом NewConfig,
// чтобы избежать повторной регистрации одних и тех же флагов между тестами.
func resetFlagSet(t *testing.T) {
	t.Helper()
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	flag.CommandLine.SetOutput(os.Stderr)
}

func TestNewConfig_DefaultsWhenEnvEmpty(t *testing.T) {
	t.Setenv("MSG_FILE", "")
	t.Setenv("AES_KEY", "")
	t.Setenv("AES_IV", "")
	t.Setenv("TAKE_COUNT", "")
	t.Setenv("HISTORY_DB_PATH", "")

	resetFlagSet(t)
	cfg := NewConfig()

	if cfg.InputFile != "msg.txt" {
		t.Fatalf("InputFile default expected 'msg.txt', got %q", cfg.InputFile)
	}
	if cfg.Key != "73E5602B54FE63A5" {
		t.Fatalf("Key default mismatch: %q", cfg.Key)
	}
	if cfg.IV != "B435AE462FBAA662" {
		t.Fatalf("IV default mismatch: %q", cfg.IV)
	}
	if cfg.Take != 3 {
		t.Fatalf("Take default expected 3, got %d", cfg.Take)
	}
	if cfg.HistoryDBPath != "" {
		t.Fatalf("history must be disabled by default, got %q", cfg.HistoryDBPath)
	}
}

func TestNewConfig_EnvOverrides(t *testing.T) {
	t.Setenv("MSG_FILE", "other.txt")
	t.Setenv("AES_KEY", "0123456789abcdef0123456789abcdef")
	t.Setenv("AES_IV", "AAAABBBBCCCCDDDD")
	t.Setenv("TAKE_COUNT", "5")
	t.Setenv("HISTORY_DB_PATH", "/tmp/h.sqlite")

	resetFlagSet(t)
	cfg := NewConfig()

	if cfg.InputFile != "other.txt" {
		t.Fatalf("InputFile: %q", cfg.InputFile)
	}
	if len(cfg.Key) != 32 {
		t.Fatalf("Key len: %d", len(cfg.Key))
	}
	if cfg.Take != 5 {
		t.Fatalf("Take: %d", cfg.Take)
	}
	if cfg.HistoryDBPath != "/tmp/h.sqlite" {
		t.Fatalf("HistoryDBPath: %q", cfg.HistoryDBPath)
	}
}

func TestNewConfig_NonPositiveTakeFallsBack(t *testing.T) {
	t.Setenv("MSG_FILE", "")
	t.Setenv("AES_KEY", "")
	t.Setenv("AES_IV", "")
	t.Setenv("TAKE_COUNT", "-1")
	t.Setenv("HISTORY_DB_PATH", "")

	resetFlagSet(t)
	cfg := NewConfig()
	if cfg.Take != 3 {
		t.Fatalf("Take expected fallback 3, got %d", cfg.Take)
	}
}
