package session

import (
	"errors"
	"log/slog"
	"net"

	"github.com/mc-wire/protocol/connection"
	"github.com/mc-wire/protocol/framing"
	"github.com/mc-wire/protocol/protocol"
	"github.com/mc-wire/protocol/protocol/packets"
	"github.com/mc-wire/protocol/transport"
	"github.com/mc-wire/protocol/wire"
)

// ProxyConfig is the subset of internal/config.ProxyConfig the driver needs.
type ProxyConfig struct {
	TargetAddress string
}

// ProxyDriver forwards an accepted connection to TargetAddress. Unlike
// ServerDriver it never terminates on an unknown packet id: spec.md §4.8
// requires the proxy to log and forward the raw frame instead, since its
// job is transparent relay, not protocol enforcement.
type ProxyDriver struct {
	cfg   ProxyConfig
	log   *slog.Logger
	reg   *protocol.Registry
	state protocol.State
}

func NewProxyDriver(cfg ProxyConfig, log *slog.Logger) *ProxyDriver {
	return &ProxyDriver{cfg: cfg, log: log, reg: packets.NewRegistry()}
}

// relayEnd bundles one side's connection with the direction frames read
// from it travel in. State is a property of the session as a whole, not
// of either side individually, so it lives on ProxyDriver and both ends
// read it; relayEnd only fixes which bound a frame from that side decodes
// as.
type relayEnd struct {
	name  string
	conn  *connection.Connection
	bound protocol.Bound
}

type relayFrame struct {
	from *relayEnd
	to   *relayEnd
	raw  framing.RawPacket
	err  error
}

// Run dials upstream and relays conn<->upstream until either side closes or
// errors. Each direction runs its own recv loop (the "two-way race" of
// spec.md §5: the driver waits for whichever side produces a frame first,
// forwards it, and re-enters the race) feeding a shared channel that the
// main loop selects from.
func (d *ProxyDriver) Run(conn net.Conn) error {
	upstream, err := net.Dial("tcp", d.cfg.TargetAddress)
	if err != nil {
		return wire.NewTransportError(err)
	}

	d.state = protocol.StateHandshake

	client := &relayEnd{
		name:  "client",
		conn:  connection.New(transport.NewUnencrypted(conn)),
		bound: protocol.C2S,
	}
	server := &relayEnd{
		name:  "upstream",
		conn:  connection.New(transport.NewUnencrypted(upstream)),
		bound: protocol.S2C,
	}
	defer client.conn.Close()
	defer server.conn.Close()

	frames := make(chan relayFrame)
	done := make(chan struct{})
	defer close(done)
	go d.pump(client, server, frames, done)
	go d.pump(server, client, frames, done)

	for {
		f := <-frames
		if f.err != nil {
			if errors.Is(f.err, errPumpDone) {
				return nil
			}
			return f.err
		}
		d.forward(f)
	}
}

var errPumpDone = errors.New("session: relay side closed")

// pump reads raw frames off from.conn forever and posts them to out,
// tagged with their destination. It never decodes: decoding (and the
// state bookkeeping it requires) happens once, synchronously, in forward,
// so ProxyDriver.state is only ever touched from the single-threaded main
// loop even though two pumps run concurrently.
//
// Once a login encryption handshake succeeds between the real client and
// upstream, the bytes crossing this relay turn into AES-CFB8 ciphertext
// the proxy was never given the shared secret for (it isn't a party to
// that RSA exchange), so frame parsing on that side fails from that point
// on; ParseRawFrame errors propagate as a terminal relay error rather than
// silently corrupting the stream. Transparent online-mode relay would
// need the proxy to terminate encryption on both legs itself, which is
// out of scope for this core (spec.md's proxy is a logging relay, not a
// MITM terminator).
func (d *ProxyDriver) pump(from, to *relayEnd, out chan<- relayFrame, done <-chan struct{}) {
	for {
		raw, err := from.conn.RecvRaw()
		f := relayFrame{from: from, to: to, raw: raw}
		if err != nil {
			f = relayFrame{from: from, to: to, err: errPumpDone}
		}
		select {
		case out <- f:
		case <-done:
			return
		}
		if err != nil {
			return
		}
	}
}

// forward relays f.raw unchanged, and on a best-effort basis decodes it
// against the session's current state (d.state, as a from.bound packet) to
// advance that state and log a human-readable line. Decode failure (unknown id, or a recognized id this
// catalogue can't fully parse) never blocks the forward: it only means the
// log line falls back to the raw id.
func (d *ProxyDriver) forward(f relayFrame) {
	pkt, err := d.reg.Decode(d.state, f.from.bound, f.raw.ID, append([]byte(nil), f.raw.Payload...))
	if err != nil {
		d.log.Debug("forwarding undecoded frame", "from", f.from.name, "id", int32(f.raw.ID), "reason", err)
	} else {
		d.log.Debug("forwarding", "from", f.from.name, "state", d.state.String(), "packet", pkt)
		d.advanceState(pkt)
	}

	if err := f.to.conn.SendRaw(f.raw); err != nil {
		d.log.Warn("relay write failed", "to", f.to.name, "err", err)
	}
}

// advanceState applies the handful of packets that move the whole session
// into its next state, mirroring spec.md §4.8's transitions. Called only
// from forward, itself only ever invoked from Run's single-threaded
// select loop, so no locking is needed even though two pump goroutines
// feed that loop concurrently.
func (d *ProxyDriver) advanceState(pkt protocol.Packet) {
	switch p := pkt.(type) {
	case *packets.Intention:
		switch p.NextState {
		case packets.IntentStatus:
			d.state = protocol.StateStatus
		case packets.IntentLogin, packets.IntentTransfer:
			d.state = protocol.StateLogin
		}
	case *packets.LoginAcknowledged:
		d.state = protocol.StateConfiguration
	case *packets.FinishConfigurationAck:
		d.state = protocol.StatePlay
	}
}
