package sqlite

import (
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"time"

	"CipherDump/internal/batch"

	_ "modernc.org/sqlite"
)

// HistoryStore — локальная БД SQLite с историей расшифрованных записей.
type HistoryStore struct {
	db *sql.DB
}

var _ batch.Recorder = (*HistoryStore)(nil)

// Entry — одна расшифрованная запись истории.
type Entry struct {
	RunID         string
	RunAt         int64
	Idx           int
	CiphertextHex string
	PlaintextHex  string
}

// Open открывает (и создаёт при необходимости) файл БД по указанному пути.
func Open(path string) (*HistoryStore, error) {
	if path == "" {
		return nil, errors.New("empty history db path")
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, err
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	return &HistoryStore{db: db}, nil
}

// Close закрывает соединение с БД.
func (s *HistoryStore) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Migrate гарантирует наличие необходимых таблиц/индексов.
func (s *HistoryStore) Migrate() error {
	_, err := s.db.Exec(initialDDL())
	return err
}

// Record добавляет одну расшифрованную запись в историю.
func (s *HistoryStore) Record(runID string, idx int, ciphertextHex, plaintextHex string) error {
	if runID == "" {
		return errors.New("empty run id")
	}
	_, err := s.db.Exec(`INSERT INTO history(run_id, run_at, idx, ciphertext_hex, plaintext_hex)
        VALUES(?, ?, ?, ?, ?)`,
		runID, time.Now().Unix(), idx, ciphertextHex, plaintextHex,
	)
	return err
}

// List возвращает все записи истории: свежие запуски первыми, внутри запуска —
// в порядке индексов.
func (s *HistoryStore) List() ([]Entry, error) {
	rows, err := s.db.Query(`SELECT run_id, run_at, idx, ciphertext_hex, plaintext_hex
        FROM history ORDER BY run_at DESC, idx ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var res []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.RunID, &e.RunAt, &e.Idx, &e.CiphertextHex, &e.PlaintextHex); err != nil {
			return nil, err
		}
		res = append(res, e)
	}
	return res, rows.Err()
}
