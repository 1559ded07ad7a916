// Package auth implements the server-side half of the online-mode
// authentication subroutine: generate a per-login RSA keypair, verify the
// client's Encryption Response, and resolve the player's profile against
// Mojang's session server.
//
// https://minecraft.wiki/w/Protocol_encryption
package auth

import (
	"bytes"
	"crypto/rand"
	"crypto/rsa"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	lru "github.com/hashicorp/golang-lru"

	"github.com/mc-wire/protocol/crypto"
	"github.com/mc-wire/protocol/wire"
)

const profileCacheSize = 256

const sessionServerBaseURL = "https://sessionserver.mojang.com"

// Profile is the player identity a session-server lookup resolves to.
type Profile struct {
	UUID       wire.UUID
	Name       string
	Properties []ProfileProperty
}

// ProfileProperty mirrors the wire Property type without importing the
// packet catalogue, so auth stays independent of protocol/packets.
type ProfileProperty struct {
	Name      string
	Value     string
	Signature string
}

// profileResponse is the session server's JSON shape for
// GET /session/minecraft/profile/{uuid}.
type profileResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Properties []struct {
		Name      string `json:"name"`
		Value     string `json:"value"`
		Signature string `json:"signature,omitempty"`
	} `json:"properties"`
}

// Session drives one login's authentication subroutine: a fresh RSA
// keypair, a verify token, and a cache of recently resolved profiles shared
// across logins handled by the same server.
type Session struct {
	privateKey  *rsa.PrivateKey
	publicKey   []byte // ASN.1 SubjectPublicKeyInfo DER
	verifyToken []byte

	httpClient *http.Client
	baseURL    string
	cache      *lru.Cache
}

// NewSession generates a fresh 1024-bit RSA keypair and a random 4-byte
// verify token for one login. cache is shared across logins so repeat
// connects from the same player skip the session-server round trip.
func NewSession(cache *lru.Cache) (*Session, error) {
	key, err := crypto.GenerateLoginKeyPair()
	if err != nil {
		return nil, wire.NewCryptoError("generating login key pair: %v", err)
	}

	pub, err := crypto.ConvertPublicKeyToSPKI(&key.PublicKey)
	if err != nil {
		return nil, wire.NewCryptoError("encoding public key: %v", err)
	}

	token := make([]byte, 4)
	if _, err := io.ReadFull(rand.Reader, token); err != nil {
		return nil, wire.NewCryptoError("generating verify token: %v", err)
	}

	return &Session{
		privateKey:  key,
		publicKey:   pub,
		verifyToken: token,
		httpClient:  &http.Client{Timeout: 10 * time.Second},
		baseURL:     sessionServerBaseURL,
		cache:       cache,
	}, nil
}

// NewProfileCache builds the LRU profile cache shared across Sessions.
func NewProfileCache() (*lru.Cache, error) {
	c, err := lru.New(profileCacheSize)
	if err != nil {
		return nil, fmt.Errorf("auth: building profile cache: %w", err)
	}
	return c, nil
}

// PublicKeyDER is the ASN.1 SubjectPublicKeyInfo DER encoding to send in
// EncryptionRequest.
func (s *Session) PublicKeyDER() []byte { return s.publicKey }

// VerifyToken is the random token to send in EncryptionRequest.
func (s *Session) VerifyToken() []byte { return s.verifyToken }

// Decrypt verifies and unwraps an EncryptionResponse: encryptedSharedSecret
// and encryptedVerifyToken are the raw fields off the wire, PKCS#1-v1.5
// encrypted under this session's public key. It returns the 16-byte shared
// secret, or a *wire.CryptoError if decryption fails or the verify token
// doesn't match what this session sent.
func (s *Session) Decrypt(encryptedSharedSecret, encryptedVerifyToken []byte) ([]byte, error) {
	sharedSecret, err := crypto.DecryptWithPrivateKey(s.privateKey, encryptedSharedSecret)
	if err != nil {
		return nil, wire.NewCryptoError("decrypting shared secret: %v", err)
	}
	token, err := crypto.DecryptWithPrivateKey(s.privateKey, encryptedVerifyToken)
	if err != nil {
		return nil, wire.NewCryptoError("decrypting verify token: %v", err)
	}
	if !bytes.Equal(token, s.verifyToken) {
		return nil, wire.NewCryptoError("verify token mismatch")
	}
	if len(sharedSecret) != 16 {
		return nil, wire.NewCryptoError("shared secret must be 16 bytes, got %d", len(sharedSecret))
	}
	return sharedSecret, nil
}

// ResolveProfile looks up the profile for playerUUID via the unsigned
// session-server endpoint, consulting the shared cache first. playerUUID
// is the UUID the client sent in LoginStart.
func (s *Session) ResolveProfile(playerUUID wire.UUID) (Profile, error) {
	key := playerUUID.StringNoDashes()
	if s.cache != nil {
		if v, ok := s.cache.Get(key); ok {
			return v.(Profile), nil
		}
	}

	url := fmt.Sprintf("%s/session/minecraft/profile/%s?unsigned=false", s.baseURL, key)
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return Profile{}, wire.NewTransportError(err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return Profile{}, wire.NewTransportError(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Profile{}, wire.NewTransportError(err)
	}
	if resp.StatusCode != http.StatusOK {
		return Profile{}, fmt.Errorf("auth: session server returned %d: %s", resp.StatusCode, body)
	}

	var parsed profileResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return Profile{}, fmt.Errorf("auth: decoding profile response: %w", err)
	}

	uuid, err := wire.NewUUID(parsed.ID)
	if err != nil {
		return Profile{}, fmt.Errorf("auth: profile response has malformed id %q: %w", parsed.ID, err)
	}

	profile := Profile{UUID: uuid, Name: parsed.Name}
	for _, p := range parsed.Properties {
		profile.Properties = append(profile.Properties, ProfileProperty{
			Name: p.Name, Value: p.Value, Signature: p.Signature,
		})
	}

	if s.cache != nil {
		s.cache.Add(key, profile)
	}
	return profile, nil
}
