// Copyright (c) 2018 Fredrik Kuivinen, frekui@gmail.com
//
// Use of this source code is governed by the BSD-style license that can be
// found in the LICENSE file.

package dlogproto

import (
	"fmt"
	"math/big"

	"go.uber.org/zap"
)

type pedersenState int

const (
	statePreprocessed pedersenState = iota
	stateAborted
)

// PedersenReceiver is the receiver side of the Pedersen commitment scheme.
// Preprocessing runs at construction: it samples a trapdoor, publishes
// h = g^trapdoor, and the session is then ready to receive commit/decommit
// messages. A session is owned by a single goroutine for its whole
// lifetime.
type PedersenReceiver struct {
	dlog    Group
	channel Channel
	log     *zap.Logger

	state       pedersenState
	trapdoor    *big.Int
	h           Element
	commitments map[int64][]byte // id -> serialized commitment element
}

// NewPedersenReceiver constructs a receiver, samples its trapdoor, computes
// h = g^trapdoor, and sends h to the peer over ch. logger may be nil.
func NewPedersenReceiver(dlog Group, ch Channel, logger *zap.Logger) (*PedersenReceiver, error) {
	log := orNop(logger)
	if !dlog.SecurityLevelIsDDH() {
		return nil, ErrSecurityLevel
	}
	if !dlog.ValidateGroup() {
		return nil, ErrInvalidGroup
	}
	trapdoor, err := randomZq(randr, dlog.Order())
	if err != nil {
		return nil, fmt.Errorf("dlogproto: sampling trapdoor: %w", err)
	}
	h := dlog.Exponentiate(dlog.Generator(), trapdoor)
	if err := writeMessage(ch, "preprocess", h.Sendable()); err != nil {
		return nil, err
	}
	log.Debug("pedersen receiver preprocessed")
	return &PedersenReceiver{
		dlog:        dlog,
		channel:     ch,
		log:         log,
		state:       statePreprocessed,
		trapdoor:    trapdoor,
		h:           h,
		commitments: make(map[int64][]byte),
	}, nil
}

// CommitOutput is returned by ReceiveCommitment.
type CommitOutput struct {
	ID int64
}

// ReceiveCommitment reads one commitment message from the channel and
// records it. Sending the same id twice overwrites the previous entry.
func (r *PedersenReceiver) ReceiveCommitment() (*CommitOutput, error) {
	if r.state == stateAborted {
		return nil, ErrSessionAborted
	}
	data, err := readMessage(r.channel, "receiveCommitment")
	if err != nil {
		r.state = stateAborted
		return nil, err
	}
	id, c, err := decodeCommitMsg(data)
	if err != nil {
		r.state = stateAborted
		return nil, err
	}
	r.commitments[id] = append([]byte(nil), c...)
	r.log.Debug("received commitment", zap.Int64("id", id))
	return &CommitOutput{ID: id}, nil
}

// ReceiveDecommitment reads one decommitment message for id from the
// channel and verifies it. It returns (x, true, nil) on an accepted
// opening, (nil, false, nil) on a rejected one, and a non-nil error only
// for protocol violations: unknown id, malformed message, or channel
// failure.
func (r *PedersenReceiver) ReceiveDecommitment(id int64) (*big.Int, bool, error) {
	if r.state == stateAborted {
		return nil, false, ErrSessionAborted
	}
	data, err := readMessage(r.channel, "receiveDecommitment")
	if err != nil {
		r.state = stateAborted
		return nil, false, err
	}
	x, rnd, err := decodeDecommitMsg(data)
	if err != nil {
		r.state = stateAborted
		return nil, false, err
	}

	cBytes, ok := r.commitments[id]
	if !ok {
		r.state = stateAborted
		return nil, false, fmt.Errorf("%w: id %d", ErrUnknownID, id)
	}

	c, err := r.dlog.Reconstruct(cBytes, true)
	if err != nil {
		r.state = stateAborted
		return nil, false, err
	}

	q := r.dlog.Order()
	// x == q is accepted alongside the rest of [0, q): Exponentiate reduces
	// the exponent mod q anyway, so q behaves identically to 0 here.
	if x.Sign() < 0 || x.Cmp(q) > 0 {
		r.log.Warn("decommitment rejected: x out of range", zap.Int64("id", id))
		return nil, false, nil
	}

	gToR := r.dlog.Exponentiate(r.dlog.Generator(), rnd)
	hToX := r.dlog.Exponentiate(r.h, x)
	cPrime := r.dlog.Multiply(gToR, hToX)
	if !cPrime.Equal(c) {
		r.log.Warn("decommitment rejected: opening does not match commitment", zap.Int64("id", id))
		return nil, false, nil
	}
	r.log.Debug("decommitment accepted", zap.Int64("id", id))
	return x, true, nil
}
