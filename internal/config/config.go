// Package config loads the host configuration a server or proxy binary
// needs (listen address, motd, target address): everything SPEC_FULL.md
// treats as an external collaborator rather than protocol state.
//
// Grounded on dmitrymodder-minewire/main.go's server.yaml loading.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ServerConfig is the configuration for the embryonic-server role
// (session/server_driver.go).
type ServerConfig struct {
	ListenAddress   string `yaml:"listen_address"`
	MOTD            string `yaml:"motd"`
	ProtocolVersion int    `yaml:"protocol_version"`
	MaxPlayers      int    `yaml:"max_players"`
	OnlineMode      bool   `yaml:"online_mode"`
}

// ProxyConfig is the configuration for the proxy role
// (session/proxy_driver.go).
type ProxyConfig struct {
	ListenAddress string `yaml:"listen_address"`
	TargetAddress string `yaml:"target_address"`
}

const defaultProtocolVersion = 766 // 1.20.6

// LoadServerConfig reads and validates a ServerConfig from path, applying
// the same kind of post-decode defaulting dmitrymodder-minewire/main.go
// does for its Config.ProtocolID/MaxPlayers.
func LoadServerConfig(path string) (ServerConfig, error) {
	var cfg ServerConfig
	f, err := os.Open(path)
	if err != nil {
		return cfg, fmt.Errorf("config: opening %s: %w", path, err)
	}
	defer f.Close()

	if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("config: parsing %s: %w", path, err)
	}

	if cfg.ListenAddress == "" {
		cfg.ListenAddress = "0.0.0.0:25565"
	}
	if cfg.ProtocolVersion == 0 {
		cfg.ProtocolVersion = defaultProtocolVersion
	}
	if cfg.MaxPlayers == 0 {
		cfg.MaxPlayers = 20
	}
	if cfg.MOTD == "" {
		cfg.MOTD = "A Minecraft Server"
	}
	return cfg, nil
}

// LoadProxyConfig reads and validates a ProxyConfig from path.
func LoadProxyConfig(path string) (ProxyConfig, error) {
	var cfg ProxyConfig
	f, err := os.Open(path)
	if err != nil {
		return cfg, fmt.Errorf("config: opening %s: %w", path, err)
	}
	defer f.Close()

	if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("config: parsing %s: %w", path, err)
	}

	if cfg.ListenAddress == "" {
		cfg.ListenAddress = "0.0.0.0:25565"
	}
	if cfg.TargetAddress == "" {
		return cfg, fmt.Errorf("config: %s: target_address is required", path)
	}
	return cfg, nil
}
