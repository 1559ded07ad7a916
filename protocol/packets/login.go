package packets

import (
	"github.com/mc-wire/protocol/protocol"
	"github.com/mc-wire/protocol/wire"
)

// LoginStart (serverbound/login, id 0x00) opens the authentication
// subroutine with the player's claimed name and client-generated UUID (the
// server ignores the latter in online mode).
type LoginStart struct {
	Name       wire.String
	PlayerUUID wire.UUID
}

func (p *LoginStart) ID() wire.VarInt       { return 0x00 }
func (p *LoginStart) State() protocol.State { return protocol.StateLogin }
func (p *LoginStart) Bound() protocol.Bound { return protocol.C2S }
func (p *LoginStart) Read(payload []byte) (int, error) {
	return protocol.UnmarshalFields(payload, p)
}
func (p *LoginStart) Write() (wire.ByteArray, error) { return protocol.MarshalFields(p) }

// EncryptionResponse (serverbound/login, id 0x01) answers
// EncryptionRequest: both fields are RSA-PKCS#1v1.5-encrypted under the
// public key the server sent.
type EncryptionResponse struct {
	SharedSecret wire.PrefixedByteArray
	VerifyToken  wire.PrefixedByteArray
}

func (p *EncryptionResponse) ID() wire.VarInt       { return 0x01 }
func (p *EncryptionResponse) State() protocol.State { return protocol.StateLogin }
func (p *EncryptionResponse) Bound() protocol.Bound { return protocol.C2S }
func (p *EncryptionResponse) Read(payload []byte) (int, error) {
	return protocol.UnmarshalFields(payload, p)
}
func (p *EncryptionResponse) Write() (wire.ByteArray, error) { return protocol.MarshalFields(p) }

// LoginAcknowledged (serverbound/login, id 0x03) has no fields. It switches
// the connection state to Configuration.
type LoginAcknowledged struct{}

func (p *LoginAcknowledged) ID() wire.VarInt       { return 0x03 }
func (p *LoginAcknowledged) State() protocol.State { return protocol.StateLogin }
func (p *LoginAcknowledged) Bound() protocol.Bound { return protocol.C2S }
func (p *LoginAcknowledged) Read(payload []byte) (int, error) {
	return len(payload), nil
}
func (p *LoginAcknowledged) Write() (wire.ByteArray, error) { return wire.ByteArray{}, nil }

// EncryptionRequest (clientbound/login, id 0x01) carries the server's
// per-session RSA public key (ASN.1 SubjectPublicKeyInfo DER) and a random
// verify token the client must echo back encrypted. Carries the
// PACKETTRAIL trailing 0x01 byte wiki.vg documents for this packet.
type EncryptionRequest struct {
	ServerID    wire.String
	PublicKey   wire.PrefixedByteArray
	VerifyToken wire.PrefixedByteArray
}

func (p *EncryptionRequest) ID() wire.VarInt        { return 0x01 }
func (p *EncryptionRequest) State() protocol.State  { return protocol.StateLogin }
func (p *EncryptionRequest) Bound() protocol.Bound  { return protocol.S2C }
func (p *EncryptionRequest) PacketTrail() bool       { return true }
func (p *EncryptionRequest) Read(payload []byte) (int, error) {
	return protocol.UnmarshalFields(payload, p)
}
func (p *EncryptionRequest) Write() (wire.ByteArray, error) { return protocol.MarshalFields(p) }

// Property is a single signed profile property (most commonly "textures")
// as returned by the session server and echoed back in LoginSuccess.
type Property struct {
	Name      wire.String
	Value     wire.String
	Signature wire.PrefixedOptional[wire.String]
}

// LoginSuccess (clientbound/login, id 0x02) finalizes the authentication
// subroutine with the profile the session server returned. Carries the
// PACKETTRAIL trailing 0x01 byte wiki.vg documents for this packet.
type LoginSuccess struct {
	UUID       wire.UUID
	Username   wire.String
	Properties []Property
}

func (p *LoginSuccess) ID() wire.VarInt       { return 0x02 }
func (p *LoginSuccess) State() protocol.State { return protocol.StateLogin }
func (p *LoginSuccess) Bound() protocol.Bound { return protocol.S2C }
func (p *LoginSuccess) PacketTrail() bool     { return true }
func (p *LoginSuccess) Read(payload []byte) (int, error) {
	return protocol.UnmarshalFields(payload, p)
}
func (p *LoginSuccess) Write() (wire.ByteArray, error) { return protocol.MarshalFields(p) }

// SetCompression (clientbound/login, id 0x03) would negotiate a packet
// compression threshold; compression is a Non-goal of this core (see
// spec.md §1), so this type exists only to let the catalogue recognize the
// id and report wire.NotImplementedError instead of UnknownPacketID.
type SetCompression struct {
	Threshold wire.VarInt
}

func (p *SetCompression) ID() wire.VarInt       { return 0x03 }
func (p *SetCompression) State() protocol.State { return protocol.StateLogin }
func (p *SetCompression) Bound() protocol.Bound { return protocol.S2C }
func (p *SetCompression) Read(payload []byte) (int, error) {
	return 0, wire.NewNotImplementedError("packet compression (Set Compression)")
}
func (p *SetCompression) Write() (wire.ByteArray, error) {
	return nil, wire.NewNotImplementedError("packet compression (Set Compression)")
}
