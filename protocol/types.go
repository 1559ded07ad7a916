// Package protocol defines the packet catalogue's common types (State,
// Bound, the Packet interface) and the reflection-based codec that turns a
// tagged Go struct into wire bytes and back.
package protocol

import "github.com/mc-wire/protocol/wire"

// State is the phase a connection is in. It is never sent over the wire;
// server and client transition it implicitly from specific packets
// (Handshake's next_state field, Login Acknowledged, Finish Configuration).
type State uint8

const (
	StateHandshake State = iota
	StateStatus
	StateLogin
	StateConfiguration
	StatePlay
)

func (s State) String() string {
	switch s {
	case StateHandshake:
		return "Handshake"
	case StateStatus:
		return "Status"
	case StateLogin:
		return "Login"
	case StateConfiguration:
		return "Configuration"
	case StatePlay:
		return "Play"
	default:
		return "Unknown"
	}
}

// Bound is the direction a packet travels.
type Bound uint8

const (
	// C2S is serverbound: client -> server.
	C2S Bound = iota
	// S2C is clientbound: server -> client.
	S2C
)

func (b Bound) String() string {
	if b == S2C {
		return "S2C"
	}
	return "C2S"
}

// Packet is satisfied by every typed payload in the catalogue. ID/State/Bound
// identify the packet kind; Read/Write (de)serialize the payload only — the
// surrounding frame (length, id) is the framing package's concern.
type Packet interface {
	ID() wire.VarInt
	State() State
	Bound() Bound
	Read(payload []byte) (int, error)
	Write() (wire.ByteArray, error)
}

// Trailer reports whether a packet kind appends a trailing 0x01 byte
// (the PACKETTRAIL flag wiki.vg documents for a handful of Login packets),
// included in the frame's declared length. Packet kinds that don't need it
// simply don't implement this interface.
type Trailer interface {
	PacketTrail() bool
}
