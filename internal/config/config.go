package config

import (
	"flag"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// Значения по умолчанию повторяют исходную утилиту: фиксированный файл,
// фиксированные ключ и IV (ASCII‑строки по 16 байт), первые три записи.
const (
	DefaultInputFile = "msg.txt"
	DefaultKey       = "73E5602B54FE63A5"
	DefaultIV        = "B435AE462FBAA662"
	DefaultTake      = 3
)

type Config struct {
	// Decryptor settings
	InputFile string `env:"MSG_FILE"`
	Key       string `env:"AES_KEY"`
	IV        string `env:"AES_IV"`
	Take      int    `env:"TAKE_COUNT"`

	// Optional local history DB (empty = disabled)
	HistoryDBPath string `env:"HISTORY_DB_PATH"`

	Version bool `env:"-"` // show version and exit (flag only)
}

func NewConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{}
	_ = env.Parse(cfg)

	// flags работают ТОЛЬКО если переменные из env не заданы
	flag.StringVar(&cfg.InputFile, "f", cfg.InputFile, "файл с шифртекстами (hex, по одному на строку)")
	flag.StringVar(&cfg.Key, "key", cfg.Key, "ключ AES (16/24/32 байта)")
	flag.StringVar(&cfg.IV, "iv", cfg.IV, "вектор инициализации (16 байт)")
	flag.IntVar(&cfg.Take, "n", cfg.Take, "сколько первых записей расшифровать")
	flag.StringVar(&cfg.HistoryDBPath, "history-db", cfg.HistoryDBPath, "путь к SQLite с историей (пусто = выключено)")
	flag.BoolVar(&cfg.Version, "version", cfg.Version, "Show version and exit")

	flag.Parse()

	// Defaults
	if cfg.InputFile == "" {
		cfg.InputFile = DefaultInputFile
	}
	if cfg.Key == "" {
		cfg.Key = DefaultKey
	}
	if cfg.IV == "" {
		cfg.IV = DefaultIV
	}
	if cfg.Take <= 0 {
		cfg.Take = DefaultTake
	}

	return cfg
}
