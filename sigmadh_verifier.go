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

// SigmaDHVerifier is the verifier side of the sigma protocol for the
// Diffie-Hellman relation.
type SigmaDHVerifier struct {
	dlog Group
	t    int
	log  *zap.Logger

	challenge []byte
}

// NewSigmaDHVerifier constructs a verifier with soundness parameter t bits.
// It fails with ErrInvalidSoundness unless t > 0 and 2^t < q.
func NewSigmaDHVerifier(dlog Group, t int, logger *zap.Logger) (*SigmaDHVerifier, error) {
	if !dlog.ValidateGroup() {
		return nil, ErrInvalidGroup
	}
	if !checkSoundnessParam(dlog, t) {
		return nil, ErrInvalidSoundness
	}
	return &SigmaDHVerifier{dlog: dlog, t: t, log: orNop(logger)}, nil
}

// SampleChallenge emits t/8 cryptographically random bytes, retains them,
// and returns them to send to the prover.
func (v *SigmaDHVerifier) SampleChallenge() ([]byte, error) {
	e := make([]byte, v.t/8)
	if _, err := io.ReadFull(randr, e); err != nil {
		return nil, err
	}
	v.challenge = e
	return e, nil
}

// Verify checks the prover's first and second messages against the common
// input (h, u, v) and the challenge retained by SampleChallenge (or set
// directly for a caller-supplied challenge, e.g. in tests). It always
// clears the retained challenge before returning, win or lose.
func (v *SigmaDHVerifier) Verify(h, u, vElem Element, firstMsg []byte, z []byte) bool {
	defer func() { zeroizeBytes(v.challenge); v.challenge = nil }()

	aBytes, bBytes, err := decodeFirstMsg(firstMsg)
	if err != nil {
		return false
	}
	a, err := v.dlog.Reconstruct(aBytes, true)
	if err != nil {
		return false
	}
	b, err := v.dlog.Reconstruct(bBytes, true)
	if err != nil {
		return false
	}

	e := new(big.Int).SetBytes(v.challenge)
	zInt := new(big.Int).SetBytes(z)

	left1 := v.dlog.Exponentiate(v.dlog.Generator(), zInt)
	right1 := v.dlog.Multiply(a, v.dlog.Exponentiate(u, e))
	check1 := left1.Equal(right1)

	left2 := v.dlog.Exponentiate(h, zInt)
	right2 := v.dlog.Multiply(b, v.dlog.Exponentiate(vElem, e))
	check2 := left2.Equal(right2)

	accepted := v.dlog.IsMember(h) && check1 && check2
	if accepted {
		v.log.Debug("sigma-DH verifier accepted")
	} else {
		v.log.Warn("sigma-DH verifier rejected")
	}
	return accepted
}

// SetChallenge overrides the retained challenge, used when the challenge
// was supplied out of band rather than sampled by SampleChallenge.
func (v *SigmaDHVerifier) SetChallenge(challenge []byte) {
	v.challenge = challenge
}
