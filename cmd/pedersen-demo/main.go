// Copyright (c) 2018 Fredrik Kuivinen, frekui@gmail.com
//
// Use of this source code is governed by the BSD-style license that can be
// found in the LICENSE file.
//
// pedersen-demo runs the Pedersen commitment protocol between two
// processes over a plain TCP connection, one role per subcommand.
package main

import (
	"fmt"
	"log"
	"math/big"
	"net"
	"os"

	"github.com/google/uuid"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/nkcrypto/dlogproto"
	"github.com/nkcrypto/dlogproto/internal/config"
)

func main() {
	app := &cli.App{
		Name:  "pedersen-demo",
		Usage: "run the Pedersen commitment protocol over TCP",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "path to a TOML config file"},
		},
		Commands: []*cli.Command{
			{
				Name:   "receiver",
				Usage:  "listen and run the receiver role",
				Action: runReceiver,
			},
			{
				Name:   "committer",
				Usage:  "dial and run the committer role",
				Action: runCommitter,
			},
		},
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func loadGroup(cfg config.Config) (dlogproto.Group, error) {
	switch cfg.Group {
	case config.GroupKyberEdwards25519:
		return dlogproto.NewKyberEdwards25519Group(), nil
	case config.GroupModP2048, "":
		return dlogproto.RFC3526Group2048(), nil
	default:
		return nil, fmt.Errorf("unknown group backend %q", cfg.Group)
	}
}

func runReceiver(c *cli.Context) error {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return err
	}
	group, err := loadGroup(cfg)
	if err != nil {
		return err
	}
	logger, _ := zap.NewDevelopment()
	defer logger.Sync()
	runID := uuid.New()
	logger = logger.With(zap.String("run", runID.String()), zap.String("role", "receiver"))

	ln, err := net.Listen("tcp", cfg.Addr)
	if err != nil {
		return err
	}
	defer ln.Close()
	logger.Info("listening", zap.String("addr", cfg.Addr))

	conn, err := ln.Accept()
	if err != nil {
		return err
	}
	defer conn.Close()

	ch := dlogproto.NewChannel(conn)
	recv, err := dlogproto.NewPedersenReceiver(group, ch, logger)
	if err != nil {
		return err
	}

	out, err := recv.ReceiveCommitment()
	if err != nil {
		return err
	}
	x, ok, err := recv.ReceiveDecommitment(out.ID)
	if err != nil {
		return err
	}
	if !ok {
		logger.Warn("decommitment rejected", zap.Int64("id", out.ID))
		return nil
	}
	logger.Info("decommitment accepted", zap.Int64("id", out.ID), zap.String("x", x.String()))
	return nil
}

func runCommitter(c *cli.Context) error {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return err
	}
	group, err := loadGroup(cfg)
	if err != nil {
		return err
	}
	logger, _ := zap.NewDevelopment()
	defer logger.Sync()
	runID := uuid.New()
	logger = logger.With(zap.String("run", runID.String()), zap.String("role", "committer"))

	conn, err := net.Dial("tcp", cfg.Addr)
	if err != nil {
		return err
	}
	defer conn.Close()

	ch := dlogproto.NewChannel(conn)
	committer, err := dlogproto.NewPedersenCommitter(group, ch, logger)
	if err != nil {
		return err
	}

	const id = int64(42)
	if err := committer.GenerateCommitment(big.NewInt(7), id); err != nil {
		return err
	}
	if err := committer.GenerateDecommitment(id); err != nil {
		return err
	}
	logger.Info("committed and decommitted", zap.Int64("id", id))
	return nil
}
