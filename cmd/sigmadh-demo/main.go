// Copyright (c) 2018 Fredrik Kuivinen, frekui@gmail.com
//
// Use of this source code is governed by the BSD-style license that can be
// found in the LICENSE file.
//
// sigmadh-demo runs the sigma protocol for the Diffie-Hellman relation
// between two processes over a plain TCP connection.
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
		Name:  "sigmadh-demo",
		Usage: "run the sigma protocol for the DH relation over TCP",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "path to a TOML config file"},
		},
		Commands: []*cli.Command{
			{
				Name:   "verifier",
				Usage:  "listen and run the verifier role",
				Action: runVerifier,
			},
			{
				Name:   "prover",
				Usage:  "dial and run the prover role, using w as witness",
				Action: runProver,
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

// witness is a fixed demo secret; a real caller supplies its own.
var witness = big.NewInt(1234567891)

func runVerifier(c *cli.Context) error {
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
	logger = logger.With(zap.String("run", runID.String()), zap.String("role", "verifier"))

	verifier, err := dlogproto.NewSigmaDHVerifier(group, cfg.Soundness, logger)
	if err != nil {
		return err
	}

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

	g := group.Generator()
	h := group.Exponentiate(g, big.NewInt(7))
	u := group.Exponentiate(g, witness)
	v := group.Exponentiate(h, witness)

	firstMsg, err := readFrame(ch)
	if err != nil {
		return err
	}
	challenge, err := verifier.SampleChallenge()
	if err != nil {
		return err
	}
	if err := writeFrame(ch, challenge); err != nil {
		return err
	}
	z, err := readFrame(ch)
	if err != nil {
		return err
	}
	if verifier.Verify(h, u, v, firstMsg, z) {
		logger.Info("proof accepted")
	} else {
		logger.Warn("proof rejected")
	}
	return nil
}

func runProver(c *cli.Context) error {
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
	logger = logger.With(zap.String("run", runID.String()), zap.String("role", "prover"))

	prover, err := dlogproto.NewSigmaDHProver(group, cfg.Soundness, logger)
	if err != nil {
		return err
	}

	conn, err := net.Dial("tcp", cfg.Addr)
	if err != nil {
		return err
	}
	defer conn.Close()
	ch := dlogproto.NewChannel(conn)

	g := group.Generator()
	h := group.Exponentiate(g, big.NewInt(7))

	firstMsg, err := prover.ComputeFirstMsg(h, witness)
	if err != nil {
		return err
	}
	if err := writeFrame(ch, firstMsg); err != nil {
		return err
	}
	challenge, err := readFrame(ch)
	if err != nil {
		return err
	}
	z, err := prover.ComputeSecondMsg(challenge)
	if err != nil {
		return err
	}
	if err := writeFrame(ch, z); err != nil {
		return err
	}
	logger.Info("proof sent")
	return nil
}

func writeFrame(ch dlogproto.Channel, data []byte) error {
	return ch.WriteWithSize(data)
}

func readFrame(ch dlogproto.Channel) ([]byte, error) {
	var buf []byte
	return buf, ch.ReadWithSizeInto(&buf)
}
