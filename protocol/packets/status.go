package packets

import (
	"github.com/mc-wire/protocol/protocol"
	"github.com/mc-wire/protocol/wire"
)

// StatusRequest (serverbound/status, id 0x00) has no fields. It may only be
// sent once, immediately after the handshake, before any ping.
type StatusRequest struct{}

func (p *StatusRequest) ID() wire.VarInt       { return 0x00 }
func (p *StatusRequest) State() protocol.State { return protocol.StateStatus }
func (p *StatusRequest) Bound() protocol.Bound { return protocol.C2S }
func (p *StatusRequest) Read(payload []byte) (int, error) {
	return len(payload), nil
}
func (p *StatusRequest) Write() (wire.ByteArray, error) { return wire.ByteArray{}, nil }

// PingRequestStatus (serverbound/status, id 0x01) carries an opaque payload
// the server echoes back unchanged in PongResponseStatus.
type PingRequestStatus struct {
	Payload wire.Long
}

func (p *PingRequestStatus) ID() wire.VarInt       { return 0x01 }
func (p *PingRequestStatus) State() protocol.State { return protocol.StateStatus }
func (p *PingRequestStatus) Bound() protocol.Bound { return protocol.C2S }
func (p *PingRequestStatus) Read(payload []byte) (int, error) {
	return protocol.UnmarshalFields(payload, p)
}
func (p *PingRequestStatus) Write() (wire.ByteArray, error) { return protocol.MarshalFields(p) }

// StatusResponse (clientbound/status, id 0x00) carries the server list
// ping's JSON status document.
type StatusResponse struct {
	JSON wire.String
}

func (p *StatusResponse) ID() wire.VarInt       { return 0x00 }
func (p *StatusResponse) State() protocol.State { return protocol.StateStatus }
func (p *StatusResponse) Bound() protocol.Bound { return protocol.S2C }
func (p *StatusResponse) Read(payload []byte) (int, error) {
	return protocol.UnmarshalFields(payload, p)
}
func (p *StatusResponse) Write() (wire.ByteArray, error) { return protocol.MarshalFields(p) }

// PongResponseStatus (clientbound/status, id 0x01) echoes PingRequestStatus's payload.
type PongResponseStatus struct {
	Payload wire.Long
}

func (p *PongResponseStatus) ID() wire.VarInt       { return 0x01 }
func (p *PongResponseStatus) State() protocol.State { return protocol.StateStatus }
func (p *PongResponseStatus) Bound() protocol.Bound { return protocol.S2C }
func (p *PongResponseStatus) Read(payload []byte) (int, error) {
	return protocol.UnmarshalFields(payload, p)
}
func (p *PongResponseStatus) Write() (wire.ByteArray, error) { return protocol.MarshalFields(p) }
