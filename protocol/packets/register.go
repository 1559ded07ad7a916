package packets

import "github.com/mc-wire/protocol/protocol"

// NewRegistry builds the packet catalogue used by connection drivers to
// decode raw frames into typed packets. There is no teacher analog for this
// file: the teacher's packets/*.go relied on a jp.NewPacket dispatch helper
// that was never defined anywhere in that snapshot, so every (state, bound,
// id) triple is registered here explicitly instead.
func NewRegistry() *protocol.Registry {
	r := protocol.NewRegistry()

	r.Register(protocol.StateHandshake, protocol.C2S, 0x00, func() protocol.Packet { return &Intention{} })

	r.Register(protocol.StateStatus, protocol.C2S, 0x00, func() protocol.Packet { return &StatusRequest{} })
	r.Register(protocol.StateStatus, protocol.C2S, 0x01, func() protocol.Packet { return &PingRequestStatus{} })
	r.Register(protocol.StateStatus, protocol.S2C, 0x00, func() protocol.Packet { return &StatusResponse{} })
	r.Register(protocol.StateStatus, protocol.S2C, 0x01, func() protocol.Packet { return &PongResponseStatus{} })

	r.Register(protocol.StateLogin, protocol.C2S, 0x00, func() protocol.Packet { return &LoginStart{} })
	r.Register(protocol.StateLogin, protocol.C2S, 0x01, func() protocol.Packet { return &EncryptionResponse{} })
	r.Register(protocol.StateLogin, protocol.C2S, 0x03, func() protocol.Packet { return &LoginAcknowledged{} })
	r.Register(protocol.StateLogin, protocol.S2C, 0x01, func() protocol.Packet { return &EncryptionRequest{} })
	r.Register(protocol.StateLogin, protocol.S2C, 0x02, func() protocol.Packet { return &LoginSuccess{} })
	r.Register(protocol.StateLogin, protocol.S2C, 0x03, func() protocol.Packet { return &SetCompression{} })

	r.Register(protocol.StateConfiguration, protocol.C2S, 0x00, func() protocol.Packet { return &ClientInformation{} })
	r.Register(protocol.StateConfiguration, protocol.C2S, 0x02, func() protocol.Packet { return &ServerboundPluginMessageConfiguration{} })
	r.Register(protocol.StateConfiguration, protocol.C2S, 0x03, func() protocol.Packet { return &FinishConfigurationAck{} })
	r.Register(protocol.StateConfiguration, protocol.C2S, 0x04, func() protocol.Packet { return &ServerboundKeepAliveConfiguration{} })
	r.Register(protocol.StateConfiguration, protocol.C2S, 0x05, func() protocol.Packet { return &PongConfiguration{} })
	r.Register(protocol.StateConfiguration, protocol.C2S, 0x06, func() protocol.Packet { return &ResourcePackResponseConfiguration{} })
	r.Register(protocol.StateConfiguration, protocol.C2S, 0x07, func() protocol.Packet { return &SelectKnownPacks{} })
	r.Register(protocol.StateConfiguration, protocol.S2C, 0x03, func() protocol.Packet { return &FinishConfiguration{} })
	r.Register(protocol.StateConfiguration, protocol.S2C, 0x04, func() protocol.Packet { return &ClientboundKeepAliveConfiguration{} })
	r.Register(protocol.StateConfiguration, protocol.S2C, 0x05, func() protocol.Packet { return &ClientboundPingConfiguration{} })
	r.Register(protocol.StateConfiguration, protocol.S2C, 0x07, func() protocol.Packet { return &RegistryData{} })
	r.Register(protocol.StateConfiguration, protocol.S2C, 0x0e, func() protocol.Packet { return &KnownPacks{} })

	r.Register(protocol.StatePlay, protocol.C2S, 0x00, func() protocol.Packet { return &TeleportConfirm{} })
	r.Register(protocol.StatePlay, protocol.C2S, 0x02, func() protocol.Packet { return &ServerboundPluginMessagePlay{} })
	r.Register(protocol.StatePlay, protocol.C2S, 0x03, func() protocol.Packet { return &ChatMessage{} })
	r.Register(protocol.StatePlay, protocol.C2S, 0x18, func() protocol.Packet { return &PingResponsePlay{} })
	r.Register(protocol.StatePlay, protocol.C2S, 0x1b, func() protocol.Packet { return &ServerboundKeepAlivePlay{} })
	r.Register(protocol.StatePlay, protocol.C2S, 0x1d, func() protocol.Packet { return &SetPlayerPosition{} })
	r.Register(protocol.StatePlay, protocol.C2S, 0x1e, func() protocol.Packet { return &SetPlayerPositionAndRotation{} })
	r.Register(protocol.StatePlay, protocol.S2C, 0x1d, func() protocol.Packet { return &Disconnect{} })
	r.Register(protocol.StatePlay, protocol.S2C, 0x26, func() protocol.Packet { return &ClientboundKeepAlivePlay{} })
	r.Register(protocol.StatePlay, protocol.S2C, 0x33, func() protocol.Packet { return &PingPlay{} })
	r.Register(protocol.StatePlay, protocol.S2C, 0x40, func() protocol.Packet { return &SynchronizePlayerPosition{} })
	r.Register(protocol.StatePlay, protocol.S2C, 0x62, func() protocol.Packet { return &SystemChatMessage{} })

	return r
}
