package packets

import (
	"github.com/mc-wire/protocol/protocol"
	"github.com/mc-wire/protocol/wire"
)

// ChatMode is the value of ClientInformation.ChatMode.
type ChatMode wire.VarInt

const (
	ChatModeEnabled ChatMode = iota
	ChatModeCommandsOnly
	ChatModeHidden
)

// MainHand is the value of ClientInformation.MainHand.
type MainHand wire.VarInt

const (
	MainHandLeft MainHand = iota
	MainHandRight
)

// ParticleStatus is the value of ClientInformation.ParticleStatus.
type ParticleStatus wire.VarInt

const (
	ParticleStatusAll ParticleStatus = iota
	ParticleStatusDecreased
	ParticleStatusMinimal
)

// ClientInformation (serverbound/configuration, id 0x00) is sent when the
// player connects or changes settings.
type ClientInformation struct {
	Locale              wire.String
	ViewDistance         wire.Byte
	ChatMode             wire.VarInt
	ChatColors           wire.Boolean
	DisplayedSkinParts   wire.UnsignedByte
	MainHand             wire.VarInt
	EnableTextFiltering  wire.Boolean
	AllowServerListings  wire.Boolean
	ParticleStatus       wire.VarInt
}

func (p *ClientInformation) ID() wire.VarInt       { return 0x00 }
func (p *ClientInformation) State() protocol.State { return protocol.StateConfiguration }
func (p *ClientInformation) Bound() protocol.Bound { return protocol.C2S }
func (p *ClientInformation) Read(payload []byte) (int, error) {
	return protocol.UnmarshalFields(payload, p)
}
func (p *ClientInformation) Write() (wire.ByteArray, error) { return protocol.MarshalFields(p) }

// ServerboundPluginMessageConfiguration (serverbound/configuration, id 0x02).
// The payload length is inferred from the surrounding frame, not
// self-delimited, so Data consumes whatever is left in the packet.
type ServerboundPluginMessageConfiguration struct {
	Channel wire.Identifier
	Data    wire.ByteArray
}

func (p *ServerboundPluginMessageConfiguration) ID() wire.VarInt       { return 0x02 }
func (p *ServerboundPluginMessageConfiguration) State() protocol.State { return protocol.StateConfiguration }
func (p *ServerboundPluginMessageConfiguration) Bound() protocol.Bound { return protocol.C2S }
func (p *ServerboundPluginMessageConfiguration) Read(payload []byte) (int, error) {
	return protocol.UnmarshalFields(payload, p)
}
func (p *ServerboundPluginMessageConfiguration) Write() (wire.ByteArray, error) {
	return protocol.MarshalFields(p)
}

// FinishConfigurationAck (serverbound/configuration, id 0x03) has no fields.
// It is the client's acknowledgement that switches the state to Play.
type FinishConfigurationAck struct{}

func (p *FinishConfigurationAck) ID() wire.VarInt       { return 0x03 }
func (p *FinishConfigurationAck) State() protocol.State { return protocol.StateConfiguration }
func (p *FinishConfigurationAck) Bound() protocol.Bound { return protocol.C2S }
func (p *FinishConfigurationAck) Read(payload []byte) (int, error) {
	return len(payload), nil
}
func (p *FinishConfigurationAck) Write() (wire.ByteArray, error) { return wire.ByteArray{}, nil }

// ServerboundKeepAliveConfiguration (serverbound/configuration, id 0x04)
// echoes the id the server last sent in ClientboundKeepAliveConfiguration.
type ServerboundKeepAliveConfiguration struct {
	KeepAliveID wire.Long
}

func (p *ServerboundKeepAliveConfiguration) ID() wire.VarInt       { return 0x04 }
func (p *ServerboundKeepAliveConfiguration) State() protocol.State { return protocol.StateConfiguration }
func (p *ServerboundKeepAliveConfiguration) Bound() protocol.Bound { return protocol.C2S }
func (p *ServerboundKeepAliveConfiguration) Read(payload []byte) (int, error) {
	return protocol.UnmarshalFields(payload, p)
}
func (p *ServerboundKeepAliveConfiguration) Write() (wire.ByteArray, error) {
	return protocol.MarshalFields(p)
}

// PongConfiguration (serverbound/configuration, id 0x05) answers
// ClientboundPingConfiguration with the same id.
type PongConfiguration struct {
	ID_ wire.Int
}

func (p *PongConfiguration) ID() wire.VarInt       { return 0x05 }
func (p *PongConfiguration) State() protocol.State { return protocol.StateConfiguration }
func (p *PongConfiguration) Bound() protocol.Bound { return protocol.C2S }
func (p *PongConfiguration) Read(payload []byte) (int, error) {
	return protocol.UnmarshalFields(payload, p)
}
func (p *PongConfiguration) Write() (wire.ByteArray, error) { return protocol.MarshalFields(p) }

// ResourcePackStatus is the value of ResourcePackResponseConfiguration.Result.
type ResourcePackStatus wire.VarInt

const (
	ResourcePackStatusSuccessfullyDownloaded ResourcePackStatus = iota
	ResourcePackStatusDeclined
	ResourcePackStatusFailedToDownload
	ResourcePackStatusAccepted
	ResourcePackStatusDownloaded
	ResourcePackStatusInvalidURL
	ResourcePackStatusFailedToReload
	ResourcePackStatusDiscarded
)

// ResourcePackResponseConfiguration (serverbound/configuration, id 0x06)
// reports how the client handled a resource pack push.
type ResourcePackResponseConfiguration struct {
	UUID   wire.UUID
	Result wire.VarInt
}

func (p *ResourcePackResponseConfiguration) ID() wire.VarInt       { return 0x06 }
func (p *ResourcePackResponseConfiguration) State() protocol.State { return protocol.StateConfiguration }
func (p *ResourcePackResponseConfiguration) Bound() protocol.Bound { return protocol.C2S }
func (p *ResourcePackResponseConfiguration) Read(payload []byte) (int, error) {
	return protocol.UnmarshalFields(payload, p)
}
func (p *ResourcePackResponseConfiguration) Write() (wire.ByteArray, error) {
	return protocol.MarshalFields(p)
}

// KnownPack identifies a data pack by namespace/id/version.
type KnownPack struct {
	Namespace wire.String
	ID        wire.String
	Version   wire.String
}

// SelectKnownPacks (serverbound/configuration, id 0x07) tells the server
// which data packs the client already has, so the server can omit their
// contents from RegistryData.
type SelectKnownPacks struct {
	KnownPacks []KnownPack
}

func (p *SelectKnownPacks) ID() wire.VarInt       { return 0x07 }
func (p *SelectKnownPacks) State() protocol.State { return protocol.StateConfiguration }
func (p *SelectKnownPacks) Bound() protocol.Bound { return protocol.C2S }
func (p *SelectKnownPacks) Read(payload []byte) (int, error) {
	return protocol.UnmarshalFields(payload, p)
}
func (p *SelectKnownPacks) Write() (wire.ByteArray, error) { return protocol.MarshalFields(p) }

// RegistryEntry is one element of RegistryData.Entries: an identifier plus
// optional NBT override data.
type RegistryEntry struct {
	ID   wire.String
	Data wire.PrefixedOptional[wire.NBT]
}

// RegistryData (clientbound/configuration, id 0x07) pushes one registry's
// entries to the client.
type RegistryData struct {
	ID      wire.String
	Entries []RegistryEntry
}

func (p *RegistryData) ID() wire.VarInt        { return 0x07 }
func (p *RegistryData) State() protocol.State { return protocol.StateConfiguration }
func (p *RegistryData) Bound() protocol.Bound { return protocol.S2C }
func (p *RegistryData) Read(payload []byte) (int, error) {
	return protocol.UnmarshalFields(payload, p)
}
func (p *RegistryData) Write() (wire.ByteArray, error) { return protocol.MarshalFields(p) }

// FinishConfiguration (clientbound/configuration, id 0x03) has no fields.
type FinishConfiguration struct{}

func (p *FinishConfiguration) ID() wire.VarInt       { return 0x03 }
func (p *FinishConfiguration) State() protocol.State { return protocol.StateConfiguration }
func (p *FinishConfiguration) Bound() protocol.Bound { return protocol.S2C }
func (p *FinishConfiguration) Read(payload []byte) (int, error) {
	return len(payload), nil
}
func (p *FinishConfiguration) Write() (wire.ByteArray, error) { return wire.ByteArray{}, nil }

// ClientboundKeepAliveConfiguration (clientbound/configuration, id 0x04).
type ClientboundKeepAliveConfiguration struct {
	KeepAliveID wire.Long
}

func (p *ClientboundKeepAliveConfiguration) ID() wire.VarInt       { return 0x04 }
func (p *ClientboundKeepAliveConfiguration) State() protocol.State { return protocol.StateConfiguration }
func (p *ClientboundKeepAliveConfiguration) Bound() protocol.Bound { return protocol.S2C }
func (p *ClientboundKeepAliveConfiguration) Read(payload []byte) (int, error) {
	return protocol.UnmarshalFields(payload, p)
}
func (p *ClientboundKeepAliveConfiguration) Write() (wire.ByteArray, error) {
	return protocol.MarshalFields(p)
}

// ClientboundPingConfiguration (clientbound/configuration, id 0x05).
type ClientboundPingConfiguration struct {
	ID_ wire.Int
}

func (p *ClientboundPingConfiguration) ID() wire.VarInt       { return 0x05 }
func (p *ClientboundPingConfiguration) State() protocol.State { return protocol.StateConfiguration }
func (p *ClientboundPingConfiguration) Bound() protocol.Bound { return protocol.S2C }
func (p *ClientboundPingConfiguration) Read(payload []byte) (int, error) {
	return protocol.UnmarshalFields(payload, p)
}
func (p *ClientboundPingConfiguration) Write() (wire.ByteArray, error) {
	return protocol.MarshalFields(p)
}

// KnownPacks (clientbound/configuration, id 0x0e) tells the client which
// data packs the server already has loaded.
type KnownPacks struct {
	KnownPacks []KnownPack
}

func (p *KnownPacks) ID() wire.VarInt       { return 0x0e }
func (p *KnownPacks) State() protocol.State { return protocol.StateConfiguration }
func (p *KnownPacks) Bound() protocol.Bound { return protocol.S2C }
func (p *KnownPacks) Read(payload []byte) (int, error) {
	return protocol.UnmarshalFields(payload, p)
}
func (p *KnownPacks) Write() (wire.ByteArray, error) { return protocol.MarshalFields(p) }
