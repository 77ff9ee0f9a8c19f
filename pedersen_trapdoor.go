// Copyright (c) 2018 Fredrik Kuivinen, frekui@gmail.com
//
// Use of this source code is governed by the BSD-style license that can be
// found in the LICENSE file.
//
// The trapdoor extension pairs a receiver variant that exposes the trapdoor
// it holds with a committer-side validator that checks a candidate
// trapdoor against a known h. This is what a simulator needs to equivocate
// a Pedersen commitment in a security proof: with log_g(h) in hand it can
// open a commitment it made to any value.
package dlogproto

import (
	"math/big"

	"go.uber.org/zap"
)

// TrapdoorReceiver wraps a PedersenReceiver and additionally exposes the
// trapdoor sampled during preprocessing.
type TrapdoorReceiver struct {
	*PedersenReceiver
}

// NewTrapdoorReceiver constructs a receiver whose trapdoor is retrievable
// via Trapdoor.
func NewTrapdoorReceiver(dlog Group, ch Channel, logger *zap.Logger) (*TrapdoorReceiver, error) {
	base, err := NewPedersenReceiver(dlog, ch, logger)
	if err != nil {
		return nil, err
	}
	return &TrapdoorReceiver{PedersenReceiver: base}, nil
}

// Trapdoor returns a copy of the secret trapdoor this receiver sampled at
// construction. Outside of this trapdoor variant, the value never leaves
// the receiver.
func (t *TrapdoorReceiver) Trapdoor() *big.Int {
	return new(big.Int).Set(t.trapdoor)
}

// TrapdoorCommitter wraps a PedersenCommitter with the ability to validate
// a candidate trapdoor against the h it received during preprocessing.
type TrapdoorCommitter struct {
	*PedersenCommitter
}

// NewTrapdoorCommitter constructs a committer that can later Validate a
// candidate trapdoor against the h it reads during preprocessing.
func NewTrapdoorCommitter(dlog Group, ch Channel, logger *zap.Logger) (*TrapdoorCommitter, error) {
	base, err := NewPedersenCommitter(dlog, ch, logger)
	if err != nil {
		return nil, err
	}
	return &TrapdoorCommitter{PedersenCommitter: base}, nil
}

// Validate reports whether g^tau == h, i.e. whether tau is the discrete log
// of h, the trapdoor the paired receiver sampled to compute h.
func (t *TrapdoorCommitter) Validate(tau *big.Int) bool {
	candidate := t.dlog.Exponentiate(t.dlog.Generator(), tau)
	return candidate.Equal(t.h)
}
