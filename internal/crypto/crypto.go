package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"errors"
	"fmt"
)

// BlockSize — размер блока AES (в байтах).
const BlockSize = aes.BlockSize

// checkKeyIV проверяет длины ключа и вектора инициализации.
func checkKeyIV(key, iv []byte) error {
	switch len(key) {
	case 16, 24, 32:
	default:
		return fmt.Errorf("invalid key length %d (want 16, 24 or 32)", len(key))
	}
	if len(iv) != BlockSize {
		return fmt.Errorf("invalid iv length %d (want %d)", len(iv), BlockSize)
	}
	return nil
}

// DecryptCBC расшифровывает шифртекст в режиме AES‑CBC с заданными ключом и IV.
// Набивка (padding) из результата не удаляется — вызывающий видит байты как есть.
func DecryptCBC(ciphertext, key, iv []byte) ([]byte, error) {
	if err := checkKeyIV(key, iv); err != nil {
		return nil, err
	}
	if len(ciphertext) == 0 {
		return nil, errors.New("empty ciphertext")
	}
	if len(ciphertext)%BlockSize != 0 {
		return nil, fmt.Errorf("ciphertext length %d is not a multiple of %d", len(ciphertext), BlockSize)
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	plain := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(plain, ciphertext)
	return plain, nil
}

// EncryptCBC шифрует данные в режиме AES‑CBC. Длина plain должна быть кратна
// размеру блока; набивку выполняет вызывающий (см. PadZero).
func EncryptCBC(plain, key, iv []byte) ([]byte, error) {
	if err := checkKeyIV(key, iv); err != nil {
		return nil, err
	}
	if len(plain) == 0 {
		return nil, errors.New("empty plaintext")
	}
	if len(plain)%BlockSize != 0 {
		return nil, fmt.Errorf("plaintext length %d is not a multiple of %d", len(plain), BlockSize)
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	out := make([]byte, len(plain))
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(out, plain)
	return out, nil
}

// PadZero дополняет срез нулевыми байтами до ближайшей границы блока.
// Исходный срез не изменяется.
func PadZero(b []byte) []byte {
	rem := len(b) % BlockSize
	if rem == 0 && len(b) > 0 {
		out := make([]byte, len(b))
		copy(out, b)
		return out
	}
	out := make([]byte, len(b)+BlockSize-rem)
	copy(out, b)
	return out
}
