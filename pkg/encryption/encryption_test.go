package encryption_test

import (
	"encoding/base64"
	"idverify/pkg/domain"
	"idverify/pkg/encryption"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const testKey = "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f"

func newCipher(t *testing.T) *encryption.Cipher {
	t.Helper()
	c, err := encryption.New(testKey)
	require.NoError(t, err)

	return c
}

func TestNew_invalidKey(t *testing.T) {
	for _, key := range []string{"", "zz", strings.Repeat("ab", 16), strings.Repeat("ab", 33)} {
		_, err := encryption.New(key)
		require.ErrorIs(t, err, encryption.ErrInvalidKey, "key %q", key)
	}
}

func TestGenerateKey(t *testing.T) {
	key, err := encryption.GenerateKey()
	require.NoError(t, err)
	require.Len(t, key, 64)
	_, err = encryption.New(key)
	require.NoError(t, err)
}

func TestEncryptDecrypt(t *testing.T) {
	c := newCipher(t)

	a, err := c.Encrypt("12345678901")
	require.NoError(t, err)
	b, err := c.Encrypt("12345678901")
	require.NoError(t, err)
	require.NotEqual(t, a.Encrypted, b.Encrypted, "fresh IV per value")
	require.NotEqual(t, a.IV, b.IV)

	iv, err := base64.StdEncoding.DecodeString(a.IV)
	require.NoError(t, err)
	require.Len(t, iv, encryption.IVSize)

	for _, ev := range []domain.EncryptedValue{a, b} {
		plain, err := c.Decrypt(ev.Encrypted, ev.IV)
		require.NoError(t, err)
		require.Equal(t, "12345678901", plain)
	}

	_, err = c.Encrypt("")
	require.Error(t, err)
}

func TestDecrypt_failures(t *testing.T) {
	c := newCipher(t)
	ev, err := c.Encrypt("RC123456")
	require.NoError(t, err)

	other, err := encryption.New(strings.Repeat("11", 32))
	require.NoError(t, err)
	_, err = other.Decrypt(ev.Encrypted, ev.IV)
	require.Error(t, err, "wrong key")

	_, err = c.Decrypt("%%%", ev.IV)
	require.Error(t, err)
	_, err = c.Decrypt(ev.Encrypted, base64.StdEncoding.EncodeToString([]byte("short")))
	require.Error(t, err)
	_, err = c.Decrypt(base64.StdEncoding.EncodeToString([]byte("x")), ev.IV)
	require.Error(t, err)

	raw, _ := base64.StdEncoding.DecodeString(ev.Encrypted)
	raw[0] ^= 0xff
	_, err = c.Decrypt(base64.StdEncoding.EncodeToString(raw), ev.IV)
	require.Error(t, err, "tampered ciphertext")
}

func TestSealReveal(t *testing.T) {
	c := newCipher(t)

	sealed, err := c.Seal(domain.PlainValue("12345678901"))
	require.NoError(t, err)
	require.True(t, c.IsEncrypted(sealed))
	require.False(t, c.IsEncrypted(domain.PlainValue("12345678901")))
	require.False(t, c.IsEncrypted(domain.IdentityValue{Encrypted: &domain.EncryptedValue{Encrypted: "abc"}}))

	again, err := c.Seal(sealed)
	require.NoError(t, err)
	require.Equal(t, sealed, again)

	plain, err := c.Reveal(sealed)
	require.NoError(t, err)
	require.Equal(t, "12345678901", plain)

	plain, err = c.Reveal(domain.PlainValue("RC1"))
	require.NoError(t, err)
	require.Equal(t, "RC1", plain)
}
