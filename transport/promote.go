package transport

import "github.com/mc-wire/protocol/wire"

// Promote consumes an Unencrypted transport and returns an Encrypted one
// wrapping the same underlying stream, keyed from sharedSecret (the
// 16-byte AES key/IV decrypted from the client's EncryptionResponse).
//
// This is a one-way transition: the *Unencrypted value must not be used
// again after Promote returns, since the returned Encrypted transport owns
// the same underlying io.ReadWriteCloser. Any plaintext bytes already
// buffered in the connection's receive buffer at the moment of promotion
// still belong to the unencrypted stream and must be drained (parsed as
// plaintext) before the encrypted transport reads anything new — Promote
// itself does not touch a receive buffer; that is connection.MapTransport's
// job.
func Promote(t *Unencrypted, sharedSecret []byte) (*Encrypted, error) {
	if len(sharedSecret) != 16 {
		return nil, wire.NewCryptoError("shared secret must be 16 bytes, got %d", len(sharedSecret))
	}
	return newEncrypted(t.rw, sharedSecret)
}
