// Package packets is the packet catalogue: one typed payload definition per
// (state, direction, id) triple, each a plain struct implementing
// protocol.Packet via protocol.MarshalFields/UnmarshalFields.
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets
package packets

import (
	"github.com/mc-wire/protocol/protocol"
	"github.com/mc-wire/protocol/wire"
)

// Handshake intents, the value of Intention.NextState.
const (
	IntentStatus wire.VarInt = iota + 1
	IntentLogin
	IntentTransfer
)

// Intention (serverbound/handshake, id 0x00) is the first packet on any
// connection. It carries the client's declared protocol version and which
// state it wants to transition into next.
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets#Handshake
type Intention struct {
	ProtocolVersion wire.VarInt
	ServerAddress   wire.String
	ServerPort      wire.UnsignedShort
	NextState       wire.VarInt
}

func (p *Intention) ID() wire.VarInt       { return 0x00 }
func (p *Intention) State() protocol.State { return protocol.StateHandshake }
func (p *Intention) Bound() protocol.Bound { return protocol.C2S }

func (p *Intention) Read(payload []byte) (int, error) {
	return protocol.UnmarshalFields(payload, p)
}

func (p *Intention) Write() (wire.ByteArray, error) {
	return protocol.MarshalFields(p)
}
