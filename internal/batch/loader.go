package batch

import (
	"bufio"
	"encoding/hex"
	"fmt"
	"os"
	"strings"
)

// Load читает файл с hex‑строками (по одной на строку), пропускает пустые
// строки и возвращает байтовые последовательности в порядке файла.
// Невалидный hex — ошибка с номером строки.
func Load(path string) ([][]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out [][]byte
	sc := bufio.NewScanner(f)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		b, err := hex.DecodeString(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: decode hex: %w", lineNo, err)
		}
		out = append(out, b)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
