// Package encryption encrypts identity numbers at rest with AES-256-GCM. Each
// value gets a fresh 16 byte IV; the GCM tag is appended to the ciphertext and
// both parts are stored base64 encoded.
package encryption

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"idverify/pkg/domain"
	"io"

	"github.com/go-faster/errors"
)

const (
	// KeySize is the AES-256 key length in bytes.
	KeySize = 32
	// IVSize is the GCM nonce length in bytes.
	IVSize = 16
)

// ErrInvalidKey is returned for keys that are not 64 hex characters.
var ErrInvalidKey = errors.New("encryption key must be 32 bytes (64 hex characters)")

// Cipher encrypts and decrypts identity values. It is safe for concurrent use.
type Cipher struct {
	aead cipher.AEAD
	rand io.Reader
}

// New builds a Cipher from a hex encoded 32 byte key.
func New(keyHex string) (*Cipher, error) {
	key, err := hex.DecodeString(keyHex)
	if err != nil {
		return nil, errors.Wrap(ErrInvalidKey, err.Error())
	}
	if len(key) != KeySize {
		return nil, ErrInvalidKey
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, errors.Wrap(err, "could not create cipher")
	}
	aead, err := cipher.NewGCMWithNonceSize(block, IVSize)
	if err != nil {
		return nil, errors.Wrap(err, "could not create GCM")
	}

	return &Cipher{aead: aead, rand: rand.Reader}, nil
}

// GenerateKey returns a random hex encoded key suitable for New.
func GenerateKey() (string, error) {
	key := make([]byte, KeySize)
	if _, err := io.ReadFull(rand.Reader, key); err != nil {
		return "", errors.Wrap(err, "could not read random key")
	}

	return hex.EncodeToString(key), nil
}

// Encrypt seals plaintext under a fresh IV.
func (c *Cipher) Encrypt(plaintext string) (domain.EncryptedValue, error) {
	if plaintext == "" {
		return domain.EncryptedValue{}, errors.New("plaintext must be a non-empty string")
	}

	iv := make([]byte, IVSize)
	if _, err := io.ReadFull(c.rand, iv); err != nil {
		return domain.EncryptedValue{}, errors.Wrap(err, "could not generate iv")
	}
	sealed := c.aead.Seal(nil, iv, []byte(plaintext), nil)

	return domain.EncryptedValue{
		Encrypted: base64.StdEncoding.EncodeToString(sealed),
		IV:        base64.StdEncoding.EncodeToString(iv),
	}, nil
}

// Decrypt opens a base64 ciphertext (tag appended) with its base64 IV.
func (c *Cipher) Decrypt(ciphertext, iv string) (string, error) {
	sealed, err := base64.StdEncoding.DecodeString(ciphertext)
	if err != nil {
		return "", errors.Wrap(err, "could not decode ciphertext")
	}
	nonce, err := base64.StdEncoding.DecodeString(iv)
	if err != nil {
		return "", errors.Wrap(err, "could not decode iv")
	}
	if len(nonce) != IVSize {
		return "", errors.Errorf("iv must be %d bytes, got %d", IVSize, len(nonce))
	}
	if len(sealed) < c.aead.Overhead() {
		return "", errors.New("ciphertext is shorter than the authentication tag")
	}

	plain, err := c.aead.Open(nil, nonce, sealed, nil)
	if err != nil {
		return "", errors.Wrap(err, "could not decrypt")
	}

	return string(plain), nil
}

// IsEncrypted reports whether v is an encrypted container with both parts set.
func (c *Cipher) IsEncrypted(v domain.IdentityValue) bool {
	return v.Encrypted != nil && v.Encrypted.Encrypted != "" && v.Encrypted.IV != ""
}

// Reveal returns the plaintext of v, decrypting it when needed.
func (c *Cipher) Reveal(v domain.IdentityValue) (string, error) {
	if !c.IsEncrypted(v) {
		return v.Plain, nil
	}

	return c.Decrypt(v.Encrypted.Encrypted, v.Encrypted.IV)
}

// Seal encrypts a plaintext identity value; encrypted values are returned as is.
func (c *Cipher) Seal(v domain.IdentityValue) (domain.IdentityValue, error) {
	if c.IsEncrypted(v) || v.Plain == "" {
		return v, nil
	}
	ev, err := c.Encrypt(v.Plain)
	if err != nil {
		return domain.IdentityValue{}, err
	}

	return domain.EncryptedIdentity(ev), nil
}
