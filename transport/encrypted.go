package transport

import (
	"crypto/aes"
	"crypto/cipher"
	"io"

	"github.com/mc-wire/protocol/crypto"
	"github.com/mc-wire/protocol/wire"
)

// Encrypted wraps a raw stream with a pair of AES-128-CFB8 stream ciphers,
// one per direction, both keyed and IV'd from the same 16-byte shared
// secret negotiated during login. Encryption is byte-for-byte: an N-byte
// plaintext always produces N bytes of ciphertext, and each direction's
// cipher carries its own running state across calls.
type Encrypted struct {
	rw      io.ReadWriteCloser
	encrypt cipher.Stream
	decrypt cipher.Stream
	closed  bool
}

// newEncrypted builds the cipher pair from sharedSecret, which doubles as
// the AES key and the CFB8 IV for both directions per spec.
func newEncrypted(rw io.ReadWriteCloser, sharedSecret []byte) (*Encrypted, error) {
	block, err := aes.NewCipher(sharedSecret)
	if err != nil {
		return nil, wire.NewCryptoError("failed to create AES cipher: %s", err)
	}
	return &Encrypted{
		rw:      rw,
		encrypt: crypto.NewEncryptStream(block, sharedSecret),
		decrypt: crypto.NewDecryptStream(block, sharedSecret),
	}, nil
}

func (t *Encrypted) Recv(buf []byte) (int, error) {
	n, err := t.rw.Read(buf)
	if err != nil {
		return n, wire.NewTransportError(err)
	}
	t.decrypt.XORKeyStream(buf[:n], buf[:n])
	return n, nil
}

func (t *Encrypted) Send(frame []byte) error {
	ciphertext := make([]byte, len(frame))
	t.encrypt.XORKeyStream(ciphertext, frame)
	_, err := t.rw.Write(ciphertext)
	return wire.NewTransportError(err)
}

func (t *Encrypted) Close() error {
	if t.closed {
		return nil
	}
	t.closed = true
	return t.rw.Close()
}
