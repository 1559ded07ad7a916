// Package connection owns a transport and its receive buffer, and drives
// the incremental framing loop: try to parse a frame from whatever is
// already buffered; if that's not enough, pull more bytes from the
// transport and retry. Nothing here knows about packet payload layouts —
// that is the protocol package's job.
package connection

import (
	"errors"

	"github.com/mc-wire/protocol/framing"
	"github.com/mc-wire/protocol/transport"
	"github.com/mc-wire/protocol/wire"
)

// errZeroRead guards against a Transport that returns (0, nil) from Recv,
// which would otherwise spin this loop forever; io.Reader implementations
// are expected to report EOF instead, but the interface doesn't enforce it.
var errZeroRead = errors.New("transport: zero bytes read with no error")

// recvChunk is how many bytes each underlying transport.Recv call asks for.
// Oversized relative to a typical packet so most frames complete in one
// read; the receive buffer grows to fit anything larger.
const recvChunk = 4096

// Connection owns a Transport and the partially-consumed bytes read from
// it. It is not safe for concurrent use: reads and writes on one
// connection never overlap, per spec.md's single-threaded-per-connection
// scheduling model.
type Connection struct {
	transport transport.Transport
	recvBuf   []byte
}

// New wraps t as a fresh Connection with an empty receive buffer.
func New(t transport.Transport) *Connection {
	return &Connection{transport: t}
}

// RecvRaw reads the next frame off the wire as a RawPacket, without
// interpreting its payload. Blocks (suspends on transport.Recv) until a
// full frame is buffered or the transport errors.
func (c *Connection) RecvRaw() (framing.RawPacket, error) {
	for {
		raw, consumed, err := framing.ParseRawFrame(c.recvBuf)
		if err == nil {
			c.advance(consumed)
			return raw, nil
		}
		if !wire.IsIncomplete(err) {
			return framing.RawPacket{}, err
		}
		if err := c.fill(); err != nil {
			return framing.RawPacket{}, err
		}
	}
}

// RecvTyped reads the next frame and hands its id+payload to parse, which
// is expected to fully consume the payload and return a decoded value (or
// wire.ErrIncomplete-free error on structural failure — parse operates on
// an already-length-bounded payload, so it must not itself signal
// Incomplete; a short payload there is malformed, not incomplete).
func (c *Connection) RecvTyped(parse func(id wire.VarInt, payload []byte) (any, error)) (any, error) {
	for {
		frame, err := framing.ParseFrame(c.recvBuf)
		if err == nil {
			v, perr := parse(frame.ID, frame.Payload)
			if perr != nil {
				if wire.IsIncomplete(perr) {
					return nil, wire.NewMalformedFrameError("packet id 0x%02X payload too short: %v", int32(frame.ID), perr)
				}
				return nil, perr
			}
			c.advance(frame.Consumed)
			return v, nil
		}
		if !wire.IsIncomplete(err) {
			return nil, err
		}
		if err := c.fill(); err != nil {
			return nil, err
		}
	}
}

// RecvLegacy reports whether the connection's next byte is the 0xFE legacy
// ping marker. It peeks without consuming: if framing.LegacyPing is
// reported, the caller handles the legacy path directly on the transport;
// otherwise normal framing proceeds untouched.
func (c *Connection) RecvLegacy() (bool, error) {
	for {
		if len(c.recvBuf) > 0 {
			return c.recvBuf[0] == 0xFE, nil
		}
		if err := c.fill(); err != nil {
			return false, err
		}
	}
}

// Send serializes id+payload into a frame and writes it to the transport.
func (c *Connection) Send(id wire.VarInt, payload []byte) error {
	frame, err := framing.EncodeFrame(id, payload)
	if err != nil {
		return err
	}
	return c.transport.Send(frame)
}

// SendRaw writes a RawPacket back out unchanged.
func (c *Connection) SendRaw(p framing.RawPacket) error {
	frame, err := framing.EncodeRawFrame(p)
	if err != nil {
		return err
	}
	return c.transport.Send(frame)
}

// MapTransport rebuilds the connection around f(current transport),
// preserving whatever is left in the receive buffer. Used to install
// encryption: f wraps the unencrypted transport.Promote call, and any
// plaintext bytes already buffered (read before the promotion point) are
// carried over and parsed as plaintext before anything new is read through
// the encrypted transport.
func (c *Connection) MapTransport(f func(transport.Transport) (transport.Transport, error)) error {
	next, err := f(c.transport)
	if err != nil {
		return err
	}
	c.transport = next
	return nil
}

// Close releases the underlying transport.
func (c *Connection) Close() error {
	return c.transport.Close()
}

// fill reads one chunk from the transport and appends it to recvBuf.
// Returns an error (always a *wire.TransportError) on EOF or failure.
func (c *Connection) fill() error {
	chunk := make([]byte, recvChunk)
	n, err := c.transport.Recv(chunk)
	if n == 0 && err == nil {
		return wire.NewTransportError(errZeroRead)
	}
	c.recvBuf = append(c.recvBuf, chunk[:n]...)
	if err != nil {
		return err
	}
	return nil
}

// advance drops the first n bytes of recvBuf, the space a successfully
// parsed frame occupied.
func (c *Connection) advance(n int) {
	c.recvBuf = c.recvBuf[n:]
}
