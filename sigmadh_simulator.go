// Copyright (c) 2018 Fredrik Kuivinen, frekui@gmail.com
//
// Use of this source code is governed by the BSD-style license that can be
// found in the LICENSE file.

package dlogproto

import (
	"io"
	"math/big"

	"go.uber.org/zap"
)

// SigmaDHSimulator produces transcripts that are, for a fixed challenge,
// distributed identically to a real prover/verifier interaction. It is
// used only in proofs of security, never in an honest protocol run.
type SigmaDHSimulator struct {
	dlog Group
	t    int
	log  *zap.Logger
}

// NewSigmaDHSimulator constructs a simulator with soundness parameter t
// bits. It fails with ErrInvalidSoundness unless t > 0 and 2^t < q.
func NewSigmaDHSimulator(dlog Group, t int, logger *zap.Logger) (*SigmaDHSimulator, error) {
	if !checkSoundnessParam(dlog, t) {
		return nil, ErrInvalidSoundness
	}
	return &SigmaDHSimulator{dlog: dlog, t: t, log: orNop(logger)}, nil
}

// SimulateRandom samples a fresh t-bit challenge and simulates a
// transcript for it.
func (s *SigmaDHSimulator) SimulateRandom(h, u, v Element) (firstMsg, challenge, z []byte, err error) {
	e := make([]byte, s.t/8)
	if _, err := io.ReadFull(randr, e); err != nil {
		return nil, nil, nil, err
	}
	firstMsg, z, err = s.Simulate(h, u, v, e)
	return firstMsg, e, z, err
}

// Simulate produces a transcript ((a, b), challenge, z) for the given
// challenge without knowledge of the witness w.
func (s *SigmaDHSimulator) Simulate(h, u, v Element, challenge []byte) (firstMsg, z []byte, err error) {
	if len(challenge)*8 != s.t {
		return nil, nil, newCheatAttempt("challenge length does not match soundness parameter")
	}
	q := s.dlog.Order()
	zInt, err := randomZq(randr, q)
	if err != nil {
		return nil, nil, err
	}
	e := new(big.Int).SetBytes(challenge)
	negE := new(big.Int).Sub(q, e)
	negE.Mod(negE, q)

	gToZ := s.dlog.Exponentiate(s.dlog.Generator(), zInt)
	uToNegE := s.dlog.Exponentiate(u, negE)
	a := s.dlog.Multiply(gToZ, uToNegE)

	hToZ := s.dlog.Exponentiate(h, zInt)
	vToNegE := s.dlog.Exponentiate(v, negE)
	b := s.dlog.Multiply(hToZ, vToNegE)

	s.log.Debug("sigma-DH simulator produced transcript")
	return encodeFirstMsg(a.Sendable(), b.Sendable()), zInt.Bytes(), nil
}
