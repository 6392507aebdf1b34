package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strings"

	"agency_ops/internal/usecase/interfaces"

	"golang.org/x/crypto/hkdf"
)

var (
	ErrEmptyKey      = errors.New("vault encryption key is empty")
	ErrMalformedSeal = errors.New("sealed vault is malformed")
)

const (
	sealVersion = "v1"
	hkdfInfo    = "agency-ops technical vault"
)

// VaultCipher seals technical vault contents with AES-256-GCM.
//
// Sealed values look like "v1:<base64 nonce||ciphertext>".
type VaultCipher struct {
	aead cipher.AEAD
}

var _ interfaces.IVaultCipher = (*VaultCipher)(nil)

// NewVaultCipher accepts a 64 character hex key as-is; any other secret is
// stretched to 32 bytes with HKDF-SHA256.
func NewVaultCipher(secret string) (*VaultCipher, error) {
	secret = strings.TrimSpace(secret)
	if secret == "" {
		return nil, ErrEmptyKey
	}

	key, err := hex.DecodeString(secret)
	if err != nil || len(key) != 32 {
		key = make([]byte, 32)
		if _, err := io.ReadFull(hkdf.New(sha256.New, []byte(secret), nil, []byte(hkdfInfo)), key); err != nil {
			return nil, fmt.Errorf("derive vault key: %w", err)
		}
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}
	return &VaultCipher{aead: aead}, nil
}

func (c *VaultCipher) Seal(plaintext string) (string, error) {
	nonce := make([]byte, c.aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return "", fmt.Errorf("vault nonce: %w", err)
	}
	sealed := c.aead.Seal(nonce, nonce, []byte(plaintext), []byte(sealVersion))
	return sealVersion + ":" + base64.StdEncoding.EncodeToString(sealed), nil
}

func (c *VaultCipher) Open(sealed string) (string, error) {
	version, payload, ok := strings.Cut(sealed, ":")
	if !ok || version != sealVersion {
		return "", ErrMalformedSeal
	}
	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrMalformedSeal, err)
	}
	ns := c.aead.NonceSize()
	if len(raw) < ns+c.aead.Overhead() {
		return "", ErrMalformedSeal
	}
	plain, err := c.aead.Open(nil, raw[:ns], raw[ns:], []byte(sealVersion))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrMalformedSeal, err)
	}
	return string(plain), nil
}
