package crypto

import "testing"

func TestDecryptCBC_Errors(t *testing.T) {
	key := []byte("73E5602B54FE63A5")
	iv := []byte("B435AE462FBAA662")

	// шифртекст не кратен размеру блока
	if _, err := DecryptCBC(make([]byte, 15), key, iv); err == nil {
		t.Fatalf("ciphertext of 15 bytes must fail")
	}
	if _, err := DecryptCBC(make([]byte, 17), key, iv); err == nil {
		t.Fatalf("ciphertext of 17 bytes must fail")
	}
	// пустой шифртекст
	if _, err := DecryptCBC(nil, key, iv); err == nil {
		t.Fatalf("empty ciphertext must fail")
	}
	// неверная длина ключа
	if _, err := DecryptCBC(make([]byte, 16), []byte("short"), iv); err == nil {
		t.Fatalf("bad key length must fail")
	}
	// неверная длина IV
	if _, err := DecryptCBC(make([]byte, 16), key, []byte("short")); err == nil {
		t.Fatalf("bad iv length must fail")
	}
}

func TestEncryptCBC_Errors(t *testing.T) {
	key := []byte("73E5602B54FE63A5")
	iv := []byte("B435AE462FBAA662")

	if _, err := EncryptCBC([]byte("hello"), key, iv); err == nil {
		t.Fatalf("unpadded plaintext must fail")
	}
	if _, err := EncryptCBC(nil, key, iv); err == nil {
		t.Fatalf("empty plaintext must fail")
	}
	if _, err := EncryptCBC(make([]byte, 16), make([]byte, 20), iv); err == nil {
		t.Fatalf("20-byte key must fail")
	}
}

func TestKeySizes(t *testing.T) {
	iv := []byte("B435AE462FBAA662")
	for _, n := range []int{16, 24, 32} {
		key := make([]byte, n)
		ct, err := EncryptCBC(make([]byte, 16), key, iv)
		if err != nil {
			t.Fatalf("key len %d encrypt: %v", n, err)
		}
		if _, err := DecryptCBC(ct, key, iv); err != nil {
			t.Fatalf("key len %d decrypt: %v", n, err)
		}
	}
}
