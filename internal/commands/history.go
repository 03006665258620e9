package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"CipherDump/internal/config"
	"CipherDump/internal/repo/sqlite"
)

// historyCmd печатает ранее расшифрованные записи из локальной БД.
type historyCmd struct{}

func init() { RegisterCmd(historyCmd{}) }

func (historyCmd) Name() string        { return "history" }
func (historyCmd) Description() string { return "list previously decrypted entries" }
func (historyCmd) Usage() string       { return "history" }

func (historyCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	if cfg.HistoryDBPath == "" {
		return errors.New("history is disabled: set HISTORY_DB_PATH or -history-db")
	}

	store, err := sqlite.Open(cfg.HistoryDBPath)
	if err != nil {
		return err
	}
	defer store.Close()
	if err := store.Migrate(); err != nil {
		return err
	}

	entries, err := store.List()
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Fprintln(Out, "history is empty")
		return nil
	}
	for _, e := range entries {
		at := time.Unix(e.RunAt, 0).Format(time.RFC3339)
		fmt.Fprintf(Out, "%s run=%s [%d] ciphertext=%s plaintext=%s\n",
			at, e.RunID, e.Idx, e.CiphertextHex, e.PlaintextHex)
	}
	return nil
}
