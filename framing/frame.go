// Package framing implements the length-prefixed packet frame codec:
// `[length:VarInt][id:VarInt][payload]`. Parsing follows the
// Incomplete/Error/Ok discipline so a connection can retry a short read
// without losing the partial prefix it already has.
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets#Packet_format
package framing

import (
	"github.com/mc-wire/protocol/wire"
)

// maxPacketLength is 2^21 - 1, the largest value a 3-byte VarInt can hold
// and the protocol's hard cap on a single packet's declared length.
const maxPacketLength = 1<<21 - 1

// lengthFieldBytes is the fixed width every outgoing frame's length prefix
// is padded to, so the frame can be built into a preallocated buffer before
// the final payload size is known to fit in fewer bytes.
const lengthFieldBytes = 3

// idFieldBytes is the fixed width the id VarInt is padded to when encoding
// a typed packet, for the same preallocation reason as lengthFieldBytes.
// Decoding never requires this: a padded VarInt and its minimal-form
// encoding decode to the identical value, so ParseFrame accepts either.
const idFieldBytes = 5

// RawPacket is an (id, payload) pair captured verbatim for pass-through
// forwarding, without interpreting the payload.
type RawPacket struct {
	ID      wire.VarInt
	Payload []byte
}

// Frame is the result of a successful ParseFrame call: the decoded id and
// the payload slice positioned immediately after it, plus how many bytes of
// the input buffer the whole frame occupied.
type Frame struct {
	ID       wire.VarInt
	Payload  []byte
	Consumed int
}

// LegacyPing is returned by ParseFrame when the first byte of a fresh
// stream is 0xFE, the pre-1.7 "legacy ping" marker. The connection is not a
// modern framed stream and must not be parsed further.
var LegacyPing = &wire.NotImplementedError{Feature: "legacy 1.6 server list ping"}

// ParseFrame attempts to decode one frame from the head of buf.
//
//   - wire.ErrIncomplete: not enough bytes yet; buf is unchanged and should
//     be retried after more bytes are appended.
//   - LegacyPing: buf starts with the legacy ping marker.
//   - any other error: malformed frame, terminal for the connection.
//
// On success, Frame.Consumed bytes should be dropped from the front of buf.
func ParseFrame(buf []byte) (Frame, error) {
	if len(buf) > 0 && buf[0] == 0xFE {
		return Frame{}, LegacyPing
	}

	var length wire.VarInt
	lengthBytes, err := length.FromBytes(wire.ByteArray(buf))
	if err != nil {
		return Frame{}, err
	}

	if length < 0 {
		return Frame{}, wire.NewMalformedFrameError("negative frame length: %d", int32(length))
	}
	if length > maxPacketLength {
		return Frame{}, wire.NewMalformedFrameError("frame length %d exceeds maximum %d", int32(length), maxPacketLength)
	}

	frameEnd := lengthBytes + int(length)
	if len(buf) < frameEnd {
		return Frame{}, wire.ErrIncomplete
	}

	body := buf[lengthBytes:frameEnd]

	var id wire.VarInt
	idBytes, err := id.FromBytes(wire.ByteArray(body))
	if err != nil {
		if wire.IsIncomplete(err) {
			// The declared length already bounds the body; running out of
			// bytes while decoding the id inside that bound is malformed,
			// not a signal to wait for more input.
			return Frame{}, wire.NewMalformedFrameError("frame declares length %d but id is truncated", int32(length))
		}
		return Frame{}, err
	}

	return Frame{
		ID:       id,
		Payload:  body[idBytes:],
		Consumed: frameEnd,
	}, nil
}

// ParseRawFrame is ParseFrame's pass-through counterpart: it never attempts
// to interpret the payload beyond splitting off the id, so it never returns
// anything but Incomplete, LegacyPing, or a genuinely malformed frame.
func ParseRawFrame(buf []byte) (RawPacket, int, error) {
	frame, err := ParseFrame(buf)
	if err != nil {
		return RawPacket{}, 0, err
	}
	payload := make([]byte, len(frame.Payload))
	copy(payload, frame.Payload)
	return RawPacket{ID: frame.ID, Payload: payload}, frame.Consumed, nil
}

// EncodeFrame serializes id+payload into a complete frame: a 3-byte padded
// VarInt length, followed by a 5-byte padded VarInt id, followed by payload.
func EncodeFrame(id wire.VarInt, payload []byte) ([]byte, error) {
	idBytes, err := id.ToBytesPadded(idFieldBytes)
	if err != nil {
		return nil, err
	}
	return buildFrame(idBytes, payload)
}

// EncodeRawFrame serializes a RawPacket back onto the wire. Unlike
// EncodeFrame it gives the id its minimal VarInt width rather than padding
// it to idFieldBytes: spec.md §4.3 reserves id padding for serialization of
// a typed packet, and §8 scenario 6 requires a re-serialized RawPacket to be
// bit-identical to the originally received frame modulo length-field
// padding only, so a captured frame's (almost always 1-byte) id must come
// back out the same width it went in.
func EncodeRawFrame(p RawPacket) ([]byte, error) {
	idBytes, err := p.ID.ToBytes()
	if err != nil {
		return nil, err
	}
	return buildFrame(idBytes, p.Payload)
}

// buildFrame assembles a 3-byte padded VarInt length prefix around an
// already-encoded id and payload.
func buildFrame(idBytes []byte, payload []byte) ([]byte, error) {
	bodyLength := len(idBytes) + len(payload)
	if bodyLength > maxPacketLength {
		return nil, wire.NewMalformedFrameError("frame body length %d exceeds maximum %d", bodyLength, maxPacketLength)
	}

	lengthBytes, err := wire.VarInt(bodyLength).ToBytesPadded(lengthFieldBytes)
	if err != nil {
		return nil, err
	}

	out := make([]byte, 0, len(lengthBytes)+bodyLength)
	out = append(out, lengthBytes...)
	out = append(out, idBytes...)
	out = append(out, payload...)
	return out, nil
}
