package protocol

import (
	"strconv"

	"github.com/mc-wire/protocol/wire"
)

// key identifies a packet kind by its three coordinates: which direction,
// which connection phase, which id. Ids are reused across states and
// directions, so all three are needed to disambiguate.
type key struct {
	state State
	bound Bound
	id    int32
}

// Factory constructs a fresh, zero-valued Packet of one kind, ready to have
// Read called on it.
type Factory func() Packet

// Registry is the compile-time packet catalogue: a dispatcher from
// (state, bound, id) to the factory that builds the matching Packet.
// Nothing here is dynamic at runtime beyond lookups; all registrations
// happen in packets.NewRegistry, which each driver calls when it is built.
type Registry struct {
	factories map[key]Factory
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[key]Factory)}
}

// Register adds f as the factory for (state, bound, id). Registering the
// same coordinates twice is a programmer error and panics immediately,
// since the catalogue is built from a fixed list in packets.NewRegistry.
func (r *Registry) Register(state State, bound Bound, id wire.VarInt, f Factory) {
	k := key{state: state, bound: bound, id: int32(id)}
	if _, exists := r.factories[k]; exists {
		panic(errDuplicateRegistration(state, bound, id))
	}
	r.factories[k] = f
}

func errDuplicateRegistration(state State, bound Bound, id wire.VarInt) string {
	return "protocol: duplicate registration for state=" + state.String() +
		" bound=" + bound.String() + " id=" + strconv.Itoa(int(id))
}

// Lookup returns a fresh Packet for (state, bound, id), or
// *wire.UnknownPacketIDError if the catalogue has no entry for it.
func (r *Registry) Lookup(state State, bound Bound, id wire.VarInt) (Packet, error) {
	k := key{state: state, bound: bound, id: int32(id)}
	f, ok := r.factories[k]
	if !ok {
		return nil, &wire.UnknownPacketIDError{
			ID:    int32(id),
			State: state.String(),
			Bound: bound.String(),
		}
	}
	return f(), nil
}

// Decode looks up and fully decodes payload into a typed Packet. Any
// residue left after Read consumes what it needs is a malformed frame per
// spec.md §7 ("non-empty residue after a typed payload parser").
func (r *Registry) Decode(state State, bound Bound, id wire.VarInt, payload []byte) (Packet, error) {
	p, err := r.Lookup(state, bound, id)
	if err != nil {
		return nil, err
	}
	n, err := p.Read(payload)
	if err != nil {
		return nil, err
	}
	if n != len(payload) {
		return nil, wire.NewMalformedFrameError(
			"packet id 0x%02X left %d unread bytes of %d", int32(id), len(payload)-n, len(payload))
	}
	return p, nil
}

