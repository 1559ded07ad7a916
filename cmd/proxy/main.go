// Command proxy runs the intercepting proxy role: it accepts a client,
// dials the configured upstream, and relays frames between them, decoding
// a best-effort copy of each for logging without ever blocking the
// forward on a decode failure (spec.md §4.8).
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
	app.Name = "mc-wire-proxy"
	app.Usage = "intercepting proxy for the Minecraft Java Edition wire protocol (766)"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "config",
			Value: "proxy.yaml",
			Usage: "path to proxy configuration",
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

	cfg, err := config.LoadProxyConfig(c.String("config"))
	if err != nil {
		return err
	}

	listener, err := net.Listen("tcp", cfg.ListenAddress)
	if err != nil {
		return err
	}
	defer listener.Close()

	log.Info(logx.Colorize(slog.LevelInfo, "listening"), "address", cfg.ListenAddress, "upstream", cfg.TargetAddress)

	driverCfg := session.ProxyConfig{TargetAddress: cfg.TargetAddress}

	for {
		conn, err := listener.Accept()
		if err != nil {
			log.Error(logx.Colorize(slog.LevelError, "accept failed"), "err", err)
			continue
		}
		go handle(conn, driverCfg, log)
	}
}

func handle(conn net.Conn, cfg session.ProxyConfig, log *slog.Logger) {
	defer conn.Close()
	remote := conn.RemoteAddr().String()
	log.Info(logx.Colorize(slog.LevelInfo, "connection accepted"), "remote", remote, "upstream", cfg.TargetAddress)

	driver := session.NewProxyDriver(cfg, log)
	if err := driver.Run(conn); err != nil {
		log.Warn(logx.Colorize(slog.LevelWarn, "relay closed"), "remote", remote, "err", err)
		return
	}
	log.Info(logx.Colorize(slog.LevelInfo, "relay closed"), "remote", remote)
}
