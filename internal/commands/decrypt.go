package commands

import (
	"context"

	"CipherDump/internal/batch"
	"CipherDump/internal/config"
	"CipherDump/internal/repo/sqlite"
)

// decryptCmd — команда по умолчанию: расшифровать и напечатать первые N записей.
type decryptCmd struct{}

func init() { RegisterCmd(decryptCmd{}) }

func (decryptCmd) Name() string        { return "decrypt" }
func (decryptCmd) Description() string { return "decrypt the first N ciphertexts and print them" }
func (decryptCmd) Usage() string       { return "decrypt" }

func (decryptCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}

	r := batch.NewRunner(cfg, log)
	r.Out = Out

	if cfg.HistoryDBPath != "" {
		store, err := sqlite.Open(cfg.HistoryDBPath)
		if err != nil {
			return err
		}
		defer store.Close()
		if err := store.Migrate(); err != nil {
			return err
		}
		r.Rec = store
		log.Infow("history enabled", "db", cfg.HistoryDBPath)
	}

	return r.Run(ctx)
}
