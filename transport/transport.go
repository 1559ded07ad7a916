// Package transport abstracts the byte stream underneath a connection: an
// unencrypted variant reading/writing a net.Conn directly, and an encrypted
// variant wrapping the same stream with a pair of AES-128-CFB8 cipher
// contexts. Promotion from one to the other is one-way and consumes the
// unencrypted wrapper, so a connection can never accidentally read
// plaintext bytes as if they were already decrypted.
package transport

import (
	"io"

	"github.com/mc-wire/protocol/wire"
)

// Transport exposes the two operations a connection's receive loop needs.
// recv returning 0 bytes with a nil error never happens; io.EOF (wrapped as
// a *wire.TransportError) signals the terminal end of stream.
type Transport interface {
	// Recv reads into buf and returns the number of bytes read. Zero bytes
	// with a non-nil error means EOF or failure; the error is always a
	// *wire.TransportError.
	Recv(buf []byte) (int, error)
	// Send writes the full frame to the underlying stream.
	Send(frame []byte) error
	// Close releases the underlying stream.
	Close() error
}

// Unencrypted reads and writes a raw byte stream (typically a net.Conn)
// with no transformation.
type Unencrypted struct {
	rw     io.ReadWriteCloser
	closed bool
}

// NewUnencrypted wraps rw as an unencrypted Transport.
func NewUnencrypted(rw io.ReadWriteCloser) *Unencrypted {
	return &Unencrypted{rw: rw}
}

func (t *Unencrypted) Recv(buf []byte) (int, error) {
	n, err := t.rw.Read(buf)
	if err != nil {
		return n, wire.NewTransportError(err)
	}
	return n, nil
}

func (t *Unencrypted) Send(frame []byte) error {
	_, err := t.rw.Write(frame)
	return wire.NewTransportError(err)
}

func (t *Unencrypted) Close() error {
	if t.closed {
		return nil
	}
	t.closed = true
	return t.rw.Close()
}
