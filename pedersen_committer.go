// Copyright (c) 2018 Fredrik Kuivinen, frekui@gmail.com
//
// Use of this source code is governed by the BSD-style license that can be
// found in the LICENSE file.

package dlogproto

import (
	"math/big"

	"go.uber.org/zap"
)

type opening struct {
	x *big.Int
	r *big.Int
	c Element
}

// PedersenCommitter is the committer side of the Pedersen commitment
// scheme. Preprocessing runs at construction: it reads h from the peer and
// rejects it immediately if h is not a member of the group.
type PedersenCommitter struct {
	dlog    Group
	channel Channel
	log     *zap.Logger

	state    pedersenState
	h        Element
	openings map[int64]opening
}

// NewPedersenCommitter constructs a committer, reads h from ch, and
// validates it. logger may be nil.
func NewPedersenCommitter(dlog Group, ch Channel, logger *zap.Logger) (*PedersenCommitter, error) {
	log := orNop(logger)
	if !dlog.SecurityLevelIsDDH() {
		return nil, ErrSecurityLevel
	}
	if !dlog.ValidateGroup() {
		return nil, ErrInvalidGroup
	}
	data, err := readMessage(ch, "preprocess")
	if err != nil {
		return nil, err
	}
	h, err := dlog.Reconstruct(data, false)
	if err != nil {
		return nil, err
	}
	if !dlog.IsMember(h) {
		return nil, newCheatAttempt("h element is not a member of the current group")
	}
	log.Debug("pedersen committer preprocessed")
	return &PedersenCommitter{
		dlog:     dlog,
		channel:  ch,
		log:      log,
		state:    statePreprocessed,
		h:        h,
		openings: make(map[int64]opening),
	}, nil
}

// GenerateCommitment computes c = g^r * h^x for a fresh random r, stores
// (x, r, c) under id, and sends the commitment message over the channel.
// Only an error is returned; the commitment message itself is not handed
// back to the caller. x must satisfy 0 <= x <= q; q itself is accepted since
// Exponentiate reduces the exponent mod q anyway.
func (c *PedersenCommitter) GenerateCommitment(x *big.Int, id int64) error {
	if c.state == stateAborted {
		return ErrSessionAborted
	}
	q := c.dlog.Order()
	if x.Sign() < 0 || x.Cmp(q) > 0 {
		return ErrInvalidInput
	}
	r, err := randomZq(randr, q)
	if err != nil {
		return err
	}
	gToR := c.dlog.Exponentiate(c.dlog.Generator(), r)
	hToX := c.dlog.Exponentiate(c.h, x)
	commitment := c.dlog.Multiply(gToR, hToX)

	c.openings[id] = opening{x: x, r: r, c: commitment}

	if err := writeMessage(c.channel, "generateCommitment", encodeCommitMsg(id, commitment.Sendable())); err != nil {
		c.state = stateAborted
		return err
	}
	c.log.Debug("generated commitment", zap.Int64("id", id))
	return nil
}

// GenerateDecommitment looks up the opening stored for id, sends it over
// the channel, and releases the entry.
func (c *PedersenCommitter) GenerateDecommitment(id int64) error {
	if c.state == stateAborted {
		return ErrSessionAborted
	}
	o, ok := c.openings[id]
	if !ok {
		return ErrUnknownID
	}
	if err := writeMessage(c.channel, "generateDecommitment", encodeDecommitMsg(o.x, o.r)); err != nil {
		c.state = stateAborted
		return err
	}
	delete(c.openings, id)
	c.log.Debug("generated decommitment", zap.Int64("id", id))
	return nil
}
