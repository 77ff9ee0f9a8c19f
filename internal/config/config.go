// Copyright (c) 2018 Fredrik Kuivinen, frekui@gmail.com
//
// Use of this source code is governed by the BSD-style license that can be
// found in the LICENSE file.
//
// Package config loads the TOML configuration shared by the demo binaries
// under cmd/, using the config format the corpus's drand repository uses.
package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// GroupBackend names which Group implementation a demo binary should
// construct.
type GroupBackend string

const (
	GroupModP2048          GroupBackend = "modp2048"
	GroupKyberEdwards25519 GroupBackend = "kyber-edwards25519"
)

// Config is the on-disk shape of a demo binary's TOML config file.
type Config struct {
	// Addr is the TCP address to listen on (receiver/verifier) or dial
	// (committer/prover), e.g. "localhost:7443".
	Addr string `toml:"addr"`

	// Group selects which Group implementation to use.
	Group GroupBackend `toml:"group"`

	// Soundness is the SigmaDH soundness parameter t, in bits. Ignored by
	// the Pedersen demo.
	Soundness int `toml:"soundness"`
}

// Default returns a Config with reasonable defaults for local testing.
func Default() Config {
	return Config{
		Addr:      "localhost:7443",
		Group:     GroupModP2048,
		Soundness: 64,
	}
}

// Load decodes a TOML file at path into a Config seeded with Default.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: decoding %s: %w", path, err)
	}
	return cfg, nil
}
