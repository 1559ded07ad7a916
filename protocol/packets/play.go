package packets

import (
	"github.com/mc-wire/protocol/protocol"
	"github.com/mc-wire/protocol/wire"
)

// TeleportConfirm (serverbound/play, id 0x00) acknowledges a clientbound
// SynchronizePlayerPosition by echoing its teleport id.
type TeleportConfirm struct {
	TeleportID wire.VarInt
}

func (p *TeleportConfirm) ID() wire.VarInt       { return 0x00 }
func (p *TeleportConfirm) State() protocol.State { return protocol.StatePlay }
func (p *TeleportConfirm) Bound() protocol.Bound { return protocol.C2S }
func (p *TeleportConfirm) Read(payload []byte) (int, error) {
	return protocol.UnmarshalFields(payload, p)
}
func (p *TeleportConfirm) Write() (wire.ByteArray, error) { return protocol.MarshalFields(p) }

// ServerboundPluginMessagePlay (serverbound/play, id 0x02). Data runs to the
// end of the packet, like its configuration-state counterpart.
type ServerboundPluginMessagePlay struct {
	Channel wire.Identifier
	Data    wire.ByteArray
}

func (p *ServerboundPluginMessagePlay) ID() wire.VarInt       { return 0x02 }
func (p *ServerboundPluginMessagePlay) State() protocol.State { return protocol.StatePlay }
func (p *ServerboundPluginMessagePlay) Bound() protocol.Bound { return protocol.C2S }
func (p *ServerboundPluginMessagePlay) Read(payload []byte) (int, error) {
	return protocol.UnmarshalFields(payload, p)
}
func (p *ServerboundPluginMessagePlay) Write() (wire.ByteArray, error) {
	return protocol.MarshalFields(p)
}

// ChatMessage (serverbound/play, id 0x03) is a plain (unsigned) chat
// message; the signed-message fields real vanilla clients attach for
// chat-report verification are outside this core (see spec.md Non-goals).
type ChatMessage struct {
	Message   wire.String
	Timestamp wire.Long
	Salt      wire.Long
}

func (p *ChatMessage) ID() wire.VarInt       { return 0x03 }
func (p *ChatMessage) State() protocol.State { return protocol.StatePlay }
func (p *ChatMessage) Bound() protocol.Bound { return protocol.C2S }
func (p *ChatMessage) Read(payload []byte) (int, error) {
	return protocol.UnmarshalFields(payload, p)
}
func (p *ChatMessage) Write() (wire.ByteArray, error) { return protocol.MarshalFields(p) }

// PingResponsePlay (serverbound/play, id 0x18) echoes PingPlay's payload.
type PingResponsePlay struct {
	Payload wire.Long
}

func (p *PingResponsePlay) ID() wire.VarInt       { return 0x18 }
func (p *PingResponsePlay) State() protocol.State { return protocol.StatePlay }
func (p *PingResponsePlay) Bound() protocol.Bound { return protocol.C2S }
func (p *PingResponsePlay) Read(payload []byte) (int, error) {
	return protocol.UnmarshalFields(payload, p)
}
func (p *PingResponsePlay) Write() (wire.ByteArray, error) { return protocol.MarshalFields(p) }

// ServerboundKeepAlivePlay (serverbound/play, id 0x1b) echoes the id the
// server last sent in ClientboundKeepAlivePlay.
type ServerboundKeepAlivePlay struct {
	KeepAliveID wire.Long
}

func (p *ServerboundKeepAlivePlay) ID() wire.VarInt       { return 0x1b }
func (p *ServerboundKeepAlivePlay) State() protocol.State { return protocol.StatePlay }
func (p *ServerboundKeepAlivePlay) Bound() protocol.Bound { return protocol.C2S }
func (p *ServerboundKeepAlivePlay) Read(payload []byte) (int, error) {
	return protocol.UnmarshalFields(payload, p)
}
func (p *ServerboundKeepAlivePlay) Write() (wire.ByteArray, error) {
	return protocol.MarshalFields(p)
}

// SetPlayerPosition (serverbound/play, id 0x1d) reports the client's
// position after movement.
type SetPlayerPosition struct {
	X        wire.Double
	Y        wire.Double
	Z        wire.Double
	OnGround wire.Boolean
}

func (p *SetPlayerPosition) ID() wire.VarInt       { return 0x1d }
func (p *SetPlayerPosition) State() protocol.State { return protocol.StatePlay }
func (p *SetPlayerPosition) Bound() protocol.Bound { return protocol.C2S }
func (p *SetPlayerPosition) Read(payload []byte) (int, error) {
	return protocol.UnmarshalFields(payload, p)
}
func (p *SetPlayerPosition) Write() (wire.ByteArray, error) { return protocol.MarshalFields(p) }

// SetPlayerPositionAndRotation (serverbound/play, id 0x1e).
type SetPlayerPositionAndRotation struct {
	X        wire.Double
	Y        wire.Double
	Z        wire.Double
	Yaw      wire.Float
	Pitch    wire.Float
	OnGround wire.Boolean
}

func (p *SetPlayerPositionAndRotation) ID() wire.VarInt       { return 0x1e }
func (p *SetPlayerPositionAndRotation) State() protocol.State { return protocol.StatePlay }
func (p *SetPlayerPositionAndRotation) Bound() protocol.Bound { return protocol.C2S }
func (p *SetPlayerPositionAndRotation) Read(payload []byte) (int, error) {
	return protocol.UnmarshalFields(payload, p)
}
func (p *SetPlayerPositionAndRotation) Write() (wire.ByteArray, error) {
	return protocol.MarshalFields(p)
}

// ClientboundKeepAlivePlay (clientbound/play, id 0x26).
type ClientboundKeepAlivePlay struct {
	KeepAliveID wire.Long
}

func (p *ClientboundKeepAlivePlay) ID() wire.VarInt       { return 0x26 }
func (p *ClientboundKeepAlivePlay) State() protocol.State { return protocol.StatePlay }
func (p *ClientboundKeepAlivePlay) Bound() protocol.Bound { return protocol.S2C }
func (p *ClientboundKeepAlivePlay) Read(payload []byte) (int, error) {
	return protocol.UnmarshalFields(payload, p)
}
func (p *ClientboundKeepAlivePlay) Write() (wire.ByteArray, error) {
	return protocol.MarshalFields(p)
}

// SynchronizePlayerPosition (clientbound/play, id 0x40) forces the client's
// position; TeleportID must be echoed back in TeleportConfirm.
type SynchronizePlayerPosition struct {
	X          wire.Double
	Y          wire.Double
	Z          wire.Double
	Yaw        wire.Float
	Pitch      wire.Float
	Flags      wire.Byte
	TeleportID wire.VarInt
}

func (p *SynchronizePlayerPosition) ID() wire.VarInt       { return 0x40 }
func (p *SynchronizePlayerPosition) State() protocol.State { return protocol.StatePlay }
func (p *SynchronizePlayerPosition) Bound() protocol.Bound { return protocol.S2C }
func (p *SynchronizePlayerPosition) Read(payload []byte) (int, error) {
	return protocol.UnmarshalFields(payload, p)
}
func (p *SynchronizePlayerPosition) Write() (wire.ByteArray, error) {
	return protocol.MarshalFields(p)
}

// PingPlay (clientbound/play, id 0x33 in this build's id table) carries an
// opaque payload the client must echo in PingResponsePlay.
type PingPlay struct {
	ID_ wire.Int
}

func (p *PingPlay) ID() wire.VarInt       { return 0x33 }
func (p *PingPlay) State() protocol.State { return protocol.StatePlay }
func (p *PingPlay) Bound() protocol.Bound { return protocol.S2C }
func (p *PingPlay) Read(payload []byte) (int, error) {
	return protocol.UnmarshalFields(payload, p)
}
func (p *PingPlay) Write() (wire.ByteArray, error) { return protocol.MarshalFields(p) }

// SystemChatMessage (clientbound/play, id 0x62) delivers a server-generated
// chat message (command feedback, join/leave notices) as an NBT text
// component; Overlay selects the action-bar rendering path.
type SystemChatMessage struct {
	Content wire.NBT
	Overlay wire.Boolean
}

func (p *SystemChatMessage) ID() wire.VarInt       { return 0x62 }
func (p *SystemChatMessage) State() protocol.State { return protocol.StatePlay }
func (p *SystemChatMessage) Bound() protocol.Bound { return protocol.S2C }
func (p *SystemChatMessage) Read(payload []byte) (int, error) {
	return protocol.UnmarshalFields(payload, p)
}
func (p *SystemChatMessage) Write() (wire.ByteArray, error) { return protocol.MarshalFields(p) }

// Disconnect (clientbound/play, id 0x1d) ends the connection with a reason
// shown to the player.
type Disconnect struct {
	Reason wire.NBT
}

func (p *Disconnect) ID() wire.VarInt       { return 0x1d }
func (p *Disconnect) State() protocol.State { return protocol.StatePlay }
func (p *Disconnect) Bound() protocol.Bound { return protocol.S2C }
func (p *Disconnect) Read(payload []byte) (int, error) {
	return protocol.UnmarshalFields(payload, p)
}
func (p *Disconnect) Write() (wire.ByteArray, error) { return protocol.MarshalFields(p) }
