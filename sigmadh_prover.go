// Copyright (c) 2018 Fredrik Kuivinen, frekui@gmail.com
//
// Use of this source code is governed by the BSD-style license that can be
// found in the LICENSE file.

package dlogproto

import (
	"math/big"

	"go.uber.org/zap"
)

type sigmaProverState int

const (
	sigmaFresh sigmaProverState = iota
	sigmaAwaitChallenge
	sigmaDone
)

// SigmaDHProver is the prover side of the three-move sigma protocol for the
// Diffie-Hellman relation: u = g^w and v = h^w for a secret witness w. It
// is a one-shot state machine; construct a new prover for each proof.
type SigmaDHProver struct {
	dlog Group
	t    int
	log  *zap.Logger

	state sigmaProverState
	r     *big.Int
	w     *big.Int
}

// NewSigmaDHProver constructs a prover with soundness parameter t bits. It
// fails with ErrInvalidSoundness unless t > 0 and 2^t < q.
func NewSigmaDHProver(dlog Group, t int, logger *zap.Logger) (*SigmaDHProver, error) {
	if !checkSoundnessParam(dlog, t) {
		return nil, ErrInvalidSoundness
	}
	return &SigmaDHProver{dlog: dlog, t: t, log: orNop(logger), state: sigmaFresh}, nil
}

func checkSoundnessParam(dlog Group, t int) bool {
	if t <= 0 {
		return false
	}
	soundness := new(big.Int).Lsh(big.NewInt(1), uint(t))
	return soundness.Cmp(dlog.Order()) < 0
}

// ComputeFirstMsg samples r <- Zq, computes a = g^r and b = h^r, retains r,
// and returns the serialized (a, b) pair to send to the verifier.
func (p *SigmaDHProver) ComputeFirstMsg(h Element, w *big.Int) ([]byte, error) {
	if p.state != sigmaFresh {
		return nil, ErrSessionAborted
	}
	r, err := randomZq(randr, p.dlog.Order())
	if err != nil {
		return nil, err
	}
	a := p.dlog.Exponentiate(p.dlog.Generator(), r)
	b := p.dlog.Exponentiate(h, r)

	p.r = r
	p.w = new(big.Int).Set(w)
	p.state = sigmaAwaitChallenge
	p.log.Debug("sigma-DH prover sent first message")
	return encodeFirstMsg(a.Sendable(), b.Sendable()), nil
}

// ComputeSecondMsg checks the challenge is exactly t/8 bytes, computes
// z = (r + e*w) mod q, zeroizes r, and returns z's bytes.
func (p *SigmaDHProver) ComputeSecondMsg(challenge []byte) ([]byte, error) {
	if p.state != sigmaAwaitChallenge {
		return nil, ErrSessionAborted
	}
	if len(challenge)*8 != p.t {
		return nil, newCheatAttempt("challenge length does not match soundness parameter")
	}
	q := p.dlog.Order()
	e := new(big.Int).SetBytes(challenge)
	z := new(big.Int).Mul(e, p.w)
	z.Add(z, p.r)
	z.Mod(z, q)

	zeroizeBigInt(p.r)
	p.state = sigmaDone
	p.log.Debug("sigma-DH prover sent second message")
	return z.Bytes(), nil
}
