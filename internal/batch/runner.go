package batch

import (
	"context"
	"encoding/hex"
	"fmt"
	"io"
	"os"

	"CipherDump/internal/config"
	"CipherDump/internal/crypto"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Recorder сохраняет расшифрованные записи во внешнее хранилище (история).
// nil — история выключена.
type Recorder interface {
	Record(runID string, idx int, ciphertextHex, plaintextHex string) error
}

// Runner — пакетный дешифратор: загружает шифртексты и печатает первые N
// расшифрованных записей.
type Runner struct {
	cfg *config.Config
	log *zap.SugaredLogger

	// Out — writer для результатов. По умолчанию os.Stdout, в тестах переназначается.
	Out io.Writer

	// Rec — необязательное хранилище истории.
	Rec Recorder
}

func NewRunner(cfg *config.Config, log *zap.SugaredLogger) *Runner {
	return &Runner{cfg: cfg, log: log, Out: os.Stdout}
}

// Run загружает шифртексты из настроенного файла, печатает их количество и для
// первых cfg.Take записей выводит: шифртекст (hex), открытый текст (байты) и
// открытый текст (hex). Набивка не удаляется и печатается как есть.
func (r *Runner) Run(ctx context.Context) error {
	entries, err := Load(r.cfg.InputFile)
	if err != nil {
		return fmt.Errorf("load %s: %w", r.cfg.InputFile, err)
	}
	r.log.Infow("ciphertexts loaded", "file", r.cfg.InputFile, "count", len(entries))
	fmt.Fprintf(r.Out, "read %d ciphertexts from %s\n", len(entries), r.cfg.InputFile)

	if len(entries) < r.cfg.Take {
		return fmt.Errorf("need at least %d ciphertexts, file has %d", r.cfg.Take, len(entries))
	}

	key := []byte(r.cfg.Key)
	iv := []byte(r.cfg.IV)

	runID := ""
	if r.Rec != nil {
		runID = uuid.NewString()
	}

	for i := 0; i < r.cfg.Take; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		plain, err := crypto.DecryptCBC(entries[i], key, iv)
		if err != nil {
			return fmt.Errorf("entry %d: %w", i, err)
		}
		ctHex := hex.EncodeToString(entries[i])
		ptHex := hex.EncodeToString(plain)
		fmt.Fprintf(r.Out, "[%d] ciphertext: %s\n", i, ctHex)
		fmt.Fprintf(r.Out, "[%d] plaintext:  %q\n", i, plain)
		fmt.Fprintf(r.Out, "[%d] plaintext (hex): %s\n", i, ptHex)
		r.log.Infow("entry decrypted", "index", i, "bytes", len(plain))

		if r.Rec != nil {
			if err := r.Rec.Record(runID, i, ctHex, ptHex); err != nil {
				return fmt.Errorf("record entry %d: %w", i, err)
			}
		}
	}
	return nil
}
