// Package session implements the two state-driver roles SPEC_FULL.md
// describes on top of connection/transport/protocol: an embryonic server
// that terminates on anything it doesn't recognize, and a proxy that
// forwards whatever it can't decode. Grounded on
// dmitrymodder-minewire/main.go's accept loop and handler.go's
// state-switch-driven processPacket, replacing its Minecraft-masquerade
// tunnel with the real Handshake→Status/Login→Configuration→Play sequence
// spec.md §4.8 describes.
package session

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"

	"github.com/mc-wire/protocol/auth"
	"github.com/mc-wire/protocol/connection"
	"github.com/mc-wire/protocol/protocol"
	"github.com/mc-wire/protocol/protocol/packets"
	"github.com/mc-wire/protocol/transport"
	"github.com/mc-wire/protocol/wire"
)

// ServerConfig is the subset of internal/config.ServerConfig the driver
// needs; kept narrow so session doesn't import internal/config.
type ServerConfig struct {
	MOTD            string
	ProtocolVersion int
	MaxPlayers      int
	OnlineMode      bool
}

// ServerDriver runs the embryonic server role against one accepted
// connection: unknown packet ids and protocol violations are terminal, per
// spec.md §4.8.
type ServerDriver struct {
	cfg ServerConfig
	log *slog.Logger
	reg *protocol.Registry
}

// NewServerDriver builds a driver for one connection.
func NewServerDriver(cfg ServerConfig, log *slog.Logger) *ServerDriver {
	return &ServerDriver{cfg: cfg, log: log, reg: packets.NewRegistry()}
}

// Run drives conn through its full lifecycle. It returns nil if the peer
// closed the connection cleanly in Status or after Play began, or once a
// Status ping has been answered; any protocol violation or unknown packet
// id returns a terminal error.
func (d *ServerDriver) Run(conn net.Conn) error {
	c := connection.New(transport.NewUnencrypted(conn))
	defer c.Close()

	next, err := d.runHandshake(c)
	if err != nil {
		return err
	}

	switch next {
	case packets.IntentStatus:
		return d.runStatus(c)
	case packets.IntentLogin:
		return d.runLogin(c)
	default:
		return wire.NewMalformedFrameError("handshake requested unsupported next_state %d", int32(next))
	}
}

func (d *ServerDriver) decode(state protocol.State, id wire.VarInt, payload []byte) (protocol.Packet, error) {
	return d.reg.Decode(state, protocol.C2S, id, payload)
}

func (d *ServerDriver) recvTyped(c *connection.Connection, state protocol.State) (protocol.Packet, error) {
	v, err := c.RecvTyped(func(id wire.VarInt, payload []byte) (any, error) {
		return d.decode(state, id, payload)
	})
	if err != nil {
		return nil, err
	}
	return v.(protocol.Packet), nil
}

// send serializes and writes p, appending the PACKETTRAIL byte to the
// payload (counted in the frame's declared length) for the handful of
// Login packets that carry one.
func (d *ServerDriver) send(c *connection.Connection, p protocol.Packet) error {
	payload, err := p.Write()
	if err != nil {
		return err
	}
	if t, ok := p.(protocol.Trailer); ok && t.PacketTrail() {
		payload = append(payload, 0x01)
	}
	return c.Send(p.ID(), payload)
}

func (d *ServerDriver) runHandshake(c *connection.Connection) (wire.VarInt, error) {
	pkt, err := d.recvTyped(c, protocol.StateHandshake)
	if err != nil {
		return 0, err
	}
	intent, ok := pkt.(*packets.Intention)
	if !ok {
		return 0, wire.NewMalformedFrameError("expected Intention in Handshake, got %T", pkt)
	}
	return intent.NextState, nil
}

func (d *ServerDriver) runStatus(c *connection.Connection) error {
	for {
		pkt, err := d.recvTyped(c, protocol.StateStatus)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		switch p := pkt.(type) {
		case *packets.StatusRequest:
			resp := &packets.StatusResponse{JSON: wire.String(d.statusJSON())}
			if err := d.send(c, resp); err != nil {
				return err
			}
		case *packets.PingRequestStatus:
			pong := &packets.PongResponseStatus{Payload: p.Payload}
			return d.send(c, pong)
		default:
			return wire.NewMalformedFrameError("unexpected packet %T in Status", pkt)
		}
	}
}

func (d *ServerDriver) statusJSON() string {
	return fmt.Sprintf(
		`{"version":{"name":"1.20.6","protocol":%d},"players":{"max":%d,"online":0},"description":{"text":%q}}`,
		d.cfg.ProtocolVersion, d.cfg.MaxPlayers, d.cfg.MOTD)
}

func (d *ServerDriver) runLogin(c *connection.Connection) error {
	pkt, err := d.recvTyped(c, protocol.StateLogin)
	if err != nil {
		return err
	}
	start, ok := pkt.(*packets.LoginStart)
	if !ok {
		return wire.NewMalformedFrameError("expected LoginStart in Login, got %T", pkt)
	}

	if !d.cfg.OnlineMode {
		if err := d.send(c, &packets.LoginSuccess{
			UUID:     start.PlayerUUID,
			Username: start.Name,
		}); err != nil {
			return err
		}
		return d.awaitLoginAck(c)
	}

	cache, err := auth.NewProfileCache()
	if err != nil {
		return err
	}
	sess, err := auth.NewSession(cache)
	if err != nil {
		return err
	}

	// server_id is always empty: this core never computes the legacy
	// server-id SHA-1 hash spec.md §4.7 explicitly omits (the "hasJoined"
	// session-check call and its signature verification are named as
	// extension points, not part of this core).
	encReq := &packets.EncryptionRequest{
		ServerID:    "",
		PublicKey:   wire.PrefixedByteArray(sess.PublicKeyDER()),
		VerifyToken: wire.PrefixedByteArray(sess.VerifyToken()),
	}
	if err := d.send(c, encReq); err != nil {
		return err
	}

	resp, err := d.recvTyped(c, protocol.StateLogin)
	if err != nil {
		return err
	}
	encResp, ok := resp.(*packets.EncryptionResponse)
	if !ok {
		return wire.NewMalformedFrameError("expected EncryptionResponse in Login, got %T", resp)
	}

	sharedSecret, err := sess.Decrypt(encResp.SharedSecret, encResp.VerifyToken)
	if err != nil {
		return err
	}

	profile, err := sess.ResolveProfile(start.PlayerUUID)
	if err != nil {
		return err
	}

	if err := c.MapTransport(func(t transport.Transport) (transport.Transport, error) {
		ut, ok := t.(*transport.Unencrypted)
		if !ok {
			return nil, wire.NewCryptoError("transport already promoted")
		}
		return transport.Promote(ut, sharedSecret)
	}); err != nil {
		return err
	}

	success := &packets.LoginSuccess{UUID: profile.UUID, Username: wire.String(profile.Name)}
	for _, p := range profile.Properties {
		success.Properties = append(success.Properties, packets.Property{
			Name:  wire.String(p.Name),
			Value: wire.String(p.Value),
			Signature: wire.PrefixedOptional[wire.String]{
				Present: p.Signature != "",
				Value:   wire.String(p.Signature),
			},
		})
	}
	if err := d.send(c, success); err != nil {
		return err
	}

	return d.awaitLoginAck(c)
}

func (d *ServerDriver) awaitLoginAck(c *connection.Connection) error {
	pkt, err := d.recvTyped(c, protocol.StateLogin)
	if err != nil {
		return err
	}
	if _, ok := pkt.(*packets.LoginAcknowledged); !ok {
		return wire.NewMalformedFrameError("expected LoginAcknowledged, got %T", pkt)
	}
	return d.runConfiguration(c)
}

func (d *ServerDriver) runConfiguration(c *connection.Connection) error {
	for {
		pkt, err := d.recvTyped(c, protocol.StateConfiguration)
		if err != nil {
			return err
		}
		switch pkt.(type) {
		case *packets.FinishConfigurationAck:
			return d.runPlay(c)
		case *packets.ClientInformation,
			*packets.ServerboundPluginMessageConfiguration,
			*packets.ServerboundKeepAliveConfiguration,
			*packets.PongConfiguration,
			*packets.ResourcePackResponseConfiguration,
			*packets.SelectKnownPacks:
			continue
		default:
			return wire.NewMalformedFrameError("unexpected packet %T in Configuration", pkt)
		}
	}
}

// runPlay is a minimal sink: this core defines the catalogue and codecs,
// not game semantics (spec.md §4.8), so it simply keeps reading until the
// connection closes, decoding anything in the catalogue and discarding
// anything recognized-but-unimplemented.
func (d *ServerDriver) runPlay(c *connection.Connection) error {
	for {
		_, err := d.recvTyped(c, protocol.StatePlay)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			var notImpl *wire.NotImplementedError
			if errors.As(err, &notImpl) {
				continue
			}
			return err
		}
	}
}
