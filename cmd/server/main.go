// Command server runs the embryonic server role: it accepts connections,
// drives each through Handshake/Status/Login/Configuration/Play, and
// terminates on anything outside the catalogue (spec.md §4.8).
//
// Grounded on kryptco-kr/ctl/ctl.go's urfave/cli App/Command scaffold and
// dmitrymodder-minewire/main.go's accept loop.
package main

import (
	"fmt"
	"log/slog"
	"net"
	"os"

	"github.com/urfave/cli"

	"github.com/mc-wire/protocol/internal/config"
	"github.com/mc-wire/protocol/internal/logx"
	"github.com/mc-wire/protocol/session"
)

func main() {
	app := cli.NewApp()
	app.Name = "mc-wire-server"
	app.Usage = "embryonic Minecraft Java Edition server (protocol 766)"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "config",
			Value: "server.yaml",
			Usage: "path to server configuration",
		},
	}
	app.Action = run

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	log := logx.New()

	cfg, err := config.LoadServerConfig(c.String("config"))
	if err != nil {
		return err
	}

	listener, err := net.Listen("tcp", cfg.ListenAddress)
	if err != nil {
		return err
	}
	defer listener.Close()

	log.Info(logx.Colorize(slog.LevelInfo, "listening"), "address", cfg.ListenAddress, "protocol_version", cfg.ProtocolVersion, "online_mode", cfg.OnlineMode)

	driverCfg := session.ServerConfig{
		MOTD:            cfg.MOTD,
		ProtocolVersion: cfg.ProtocolVersion,
		MaxPlayers:      cfg.MaxPlayers,
		OnlineMode:      cfg.OnlineMode,
	}

	for {
		conn, err := listener.Accept()
		if err != nil {
			log.Error(logx.Colorize(slog.LevelError, "accept failed"), "err", err)
			continue
		}
		go handle(conn, driverCfg, log)
	}
}

func handle(conn net.Conn, cfg session.ServerConfig, log *slog.Logger) {
	defer conn.Close()
	remote := conn.RemoteAddr().String()
	log.Info(logx.Colorize(slog.LevelInfo, "connection accepted"), "remote", remote)

	driver := session.NewServerDriver(cfg, log)
	if err := driver.Run(conn); err != nil {
		log.Warn(logx.Colorize(slog.LevelWarn, "connection closed"), "remote", remote, "err", err)
		return
	}
	log.Info(logx.Colorize(slog.LevelInfo, "connection closed"), "remote", remote)
}
