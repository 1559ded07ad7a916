package packets

import (
	"testing"

	"github.com/mc-wire/protocol/protocol"
	"github.com/mc-wire/protocol/wire"
)

func TestNewRegistryRoundTripsEachState(t *testing.T) {
	r := NewRegistry()

	cases := []struct {
		name  string
		state protocol.State
		bound protocol.Bound
		id    int
		build func() protocol.Packet
	}{
		{"Intention", protocol.StateHandshake, protocol.C2S, 0x00, func() protocol.Packet {
			return &Intention{ProtocolVersion: 766, ServerAddress: "localhost", ServerPort: 25565, NextState: IntentLogin}
		}},
		{"StatusRequest", protocol.StateStatus, protocol.C2S, 0x00, func() protocol.Packet { return &StatusRequest{} }},
		{"LoginStart", protocol.StateLogin, protocol.C2S, 0x00, func() protocol.Packet {
			return &LoginStart{Name: "Notch"}
		}},
		{"ClientInformation", protocol.StateConfiguration, protocol.C2S, 0x00, func() protocol.Packet {
			return &ClientInformation{Locale: "en_US"}
		}},
		{"TeleportConfirm", protocol.StatePlay, protocol.C2S, 0x00, func() protocol.Packet {
			return &TeleportConfirm{TeleportID: 7}
		}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			want := c.build()
			payload, err := want.Write()
			if err != nil {
				t.Fatalf("Write: %v", err)
			}
			got, err := r.Decode(c.state, c.bound, wire.VarInt(c.id), payload)
			if err != nil {
				t.Fatalf("Decode: %v", err)
			}
			if got.ID() != wire.VarInt(c.id) {
				t.Errorf("ID = %d, want %d", got.ID(), c.id)
			}
		})
	}
}

func TestNewRegistryUnknownID(t *testing.T) {
	r := NewRegistry()
	if _, err := r.Lookup(protocol.StatePlay, protocol.C2S, 0x7f); err == nil {
		t.Fatal("expected error for unregistered id")
	}
}
