package protocol_test

import (
	"errors"
	"testing"

	"github.com/mc-wire/protocol/protocol"
	"github.com/mc-wire/protocol/wire"
)

type fakePacket struct {
	id      wire.VarInt
	st      protocol.State
	bd      protocol.Bound
	payload []byte
}

func (p *fakePacket) ID() wire.VarInt        { return p.id }
func (p *fakePacket) State() protocol.State  { return p.st }
func (p *fakePacket) Bound() protocol.Bound  { return p.bd }
func (p *fakePacket) Write() (wire.ByteArray, error) {
	return wire.ByteArray(p.payload), nil
}
func (p *fakePacket) Read(payload []byte) (int, error) {
	p.payload = append([]byte(nil), payload...)
	return len(payload), nil
}

func newRegistryWithFakePacket() *protocol.Registry {
	r := protocol.NewRegistry()
	r.Register(protocol.StateStatus, protocol.C2S, 0x00, func() protocol.Packet {
		return &fakePacket{id: 0x00, st: protocol.StateStatus, bd: protocol.C2S}
	})
	return r
}

func TestRegistryLookupAndDecode(t *testing.T) {
	r := newRegistryWithFakePacket()

	p, err := r.Decode(protocol.StateStatus, protocol.C2S, 0x00, []byte{1, 2, 3})
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	got, ok := p.(*fakePacket)
	if !ok {
		t.Fatalf("Decode() returned %T, want *fakePacket", p)
	}
	if string(got.payload) != "\x01\x02\x03" {
		t.Errorf("payload = %v, want [1 2 3]", got.payload)
	}
}

func TestRegistryUnknownID(t *testing.T) {
	r := newRegistryWithFakePacket()

	_, err := r.Lookup(protocol.StateStatus, protocol.C2S, 0x7F)
	var unknown *wire.UnknownPacketIDError
	if !errors.As(err, &unknown) {
		t.Fatalf("Lookup() error = %v, want *wire.UnknownPacketIDError", err)
	}
	if unknown.State != "Status" || unknown.Bound != "C2S" {
		t.Errorf("unknown = %+v, want State=Status Bound=C2S", unknown)
	}
}

func TestRegistryDistinguishesStateAndBound(t *testing.T) {
	r := newRegistryWithFakePacket()

	if _, err := r.Lookup(protocol.StateLogin, protocol.C2S, 0x00); err == nil {
		t.Error("Lookup() in a different state: want UnknownPacketIDError, got nil error")
	}
	if _, err := r.Lookup(protocol.StateStatus, protocol.S2C, 0x00); err == nil {
		t.Error("Lookup() in a different direction: want UnknownPacketIDError, got nil error")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Register() duplicate coordinates: want panic, got none")
		}
	}()
	r := newRegistryWithFakePacket()
	r.Register(protocol.StateStatus, protocol.C2S, 0x00, func() protocol.Packet {
		return &fakePacket{}
	})
}
