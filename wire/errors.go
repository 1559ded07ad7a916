package wire

import (
	"errors"
	"fmt"
)

// ErrIncomplete signals that a parser needs more bytes than are currently
// available. It never escapes the framing layer: a frame decoder keeps
// buffering and retries the same parse once more bytes arrive. Every
// wire-primitive FromBytes method wraps this sentinel (via %w) instead of
// returning an ad hoc "short buffer" error so callers can distinguish
// "not enough bytes yet" from a genuinely malformed payload with errors.Is.
var ErrIncomplete = errors.New("incomplete: more bytes required")

// IsIncomplete reports whether err (or something it wraps) is ErrIncomplete.
func IsIncomplete(err error) bool {
	return errors.Is(err, ErrIncomplete)
}

// MalformedFrameError reports a structurally invalid frame or payload:
// a negative length, a VarInt that never terminates, invalid UTF-8, a
// broken NBT tree, or non-empty residue after a typed payload parser
// consumed what it expected to be the whole packet. Terminal for the
// connection it occurred on.
type MalformedFrameError struct {
	Reason string
}

func (e *MalformedFrameError) Error() string {
	return fmt.Sprintf("malformed frame: %s", e.Reason)
}

// NewMalformedFrameError builds a MalformedFrameError with a formatted reason.
func NewMalformedFrameError(format string, args ...any) error {
	return &MalformedFrameError{Reason: fmt.Sprintf(format, args...)}
}

// UnknownPacketIDError reports a packet ID the registry has no parser for,
// in the given state and direction (named as strings so this package stays
// free of a dependency on the protocol package's State/Bound types).
// Recoverable at the driver's discretion: a proxy forwards the raw bytes,
// a server closes the connection.
type UnknownPacketIDError struct {
	ID    int32
	State string
	Bound string
}

func (e *UnknownPacketIDError) Error() string {
	return fmt.Sprintf("unknown packet id 0x%02X in state %s bound %s", e.ID, e.State, e.Bound)
}

// WrongPacketIDError reports that a typed parser was invoked against a wire
// packet whose ID does not match what that parser expects. Recoverable at
// the dispatcher (try another parser, or treat as unknown); terminal if the
// dispatcher itself is what selected this parser for this ID.
type WrongPacketIDError struct {
	Expected int32
	Received int32
}

func (e *WrongPacketIDError) Error() string {
	return fmt.Sprintf("wrong packet id: expected 0x%02X, received 0x%02X", e.Expected, e.Received)
}

// NotImplementedError reports a recognized-but-unimplemented payload. The
// packet catalogue is deliberately partial; decoding an encountered packet
// outside it yields this. Recoverable for pass-through hosts, which forward
// the RawPacket bytes unchanged instead of decoding them.
type NotImplementedError struct {
	Feature string
}

func (e *NotImplementedError) Error() string {
	return fmt.Sprintf("not implemented: %s", e.Feature)
}

// NewNotImplementedError builds a NotImplementedError naming the feature.
func NewNotImplementedError(feature string) error {
	return &NotImplementedError{Feature: feature}
}

// CryptoError reports an RSA decrypt failure or verify-token mismatch during
// the login encryption handshake. Terminal in login.
type CryptoError struct {
	Reason string
}

func (e *CryptoError) Error() string {
	return fmt.Sprintf("crypto error: %s", e.Reason)
}

// NewCryptoError builds a CryptoError with a formatted reason.
func NewCryptoError(format string, args ...any) error {
	return &CryptoError{Reason: fmt.Sprintf(format, args...)}
}

// TransportError wraps an underlying I/O failure, including EOF mid-frame.
// Terminal: the connection is unusable once this occurs.
type TransportError struct {
	Cause error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport error: %s", e.Cause)
}

func (e *TransportError) Unwrap() error {
	return e.Cause
}

// NewTransportError wraps cause as a TransportError. Returns nil if cause is nil.
func NewTransportError(cause error) error {
	if cause == nil {
		return nil
	}
	return &TransportError{Cause: cause}
}
