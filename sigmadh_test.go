// Copyright (c) 2018 Fredrik Kuivinen, frekui@gmail.com
//
// Use of this source code is governed by the BSD-style license that can be
// found in the LICENSE file.

package dlogproto

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

const testSoundness = 16

// sigmaFixture builds a common input (h, u, v) for a witness w known to the
// prover: h = g^a for a fixed a, u = g^w, v = h^w.
type sigmaFixture struct {
	dlog Group
	h, u, v Element
	w       *big.Int
}

func newSigmaFixture(dlog Group) sigmaFixture {
	g := dlog.Generator()
	h := dlog.Exponentiate(g, big.NewInt(9999))
	w := big.NewInt(31337)
	u := dlog.Exponentiate(g, w)
	v := dlog.Exponentiate(h, w)
	return sigmaFixture{dlog: dlog, h: h, u: u, v: v, w: w}
}

func TestSigmaDHCompleteness(t *testing.T) {
	for name, dlog := range testGroups(t) {
		dlog := dlog
		t.Run(name, func(t *testing.T) {
			f := newSigmaFixture(dlog)

			prover, err := NewSigmaDHProver(dlog, testSoundness, nil)
			require.NoError(t, err)
			verifier, err := NewSigmaDHVerifier(dlog, testSoundness, nil)
			require.NoError(t, err)

			firstMsg, err := prover.ComputeFirstMsg(f.h, f.w)
			require.NoError(t, err)

			challenge, err := verifier.SampleChallenge()
			require.NoError(t, err)

			z, err := prover.ComputeSecondMsg(challenge)
			require.NoError(t, err)

			require.True(t, verifier.Verify(f.h, f.u, f.v, firstMsg, z))
		})
	}
}

func TestSigmaDHTamperedZRejected(t *testing.T) {
	dlog := RFC3526Group2048()
	f := newSigmaFixture(dlog)

	prover, err := NewSigmaDHProver(dlog, testSoundness, nil)
	require.NoError(t, err)
	verifier, err := NewSigmaDHVerifier(dlog, testSoundness, nil)
	require.NoError(t, err)

	firstMsg, err := prover.ComputeFirstMsg(f.h, f.w)
	require.NoError(t, err)
	challenge, err := verifier.SampleChallenge()
	require.NoError(t, err)
	z, err := prover.ComputeSecondMsg(challenge)
	require.NoError(t, err)

	tampered := new(big.Int).SetBytes(z)
	tampered.Add(tampered, big.NewInt(1))

	verifier2, err := NewSigmaDHVerifier(dlog, testSoundness, nil)
	require.NoError(t, err)
	verifier2.SetChallenge(challenge)
	require.False(t, verifier2.Verify(f.h, f.u, f.v, firstMsg, tampered.Bytes()))
}

func TestSigmaDHRejectsWrongLengthChallenge(t *testing.T) {
	dlog := RFC3526Group2048()
	f := newSigmaFixture(dlog)
	prover, err := NewSigmaDHProver(dlog, testSoundness, nil)
	require.NoError(t, err)

	_, err = prover.ComputeFirstMsg(f.h, f.w)
	require.NoError(t, err)

	_, err = prover.ComputeSecondMsg([]byte{0x01, 0x02, 0x03})
	require.Error(t, err)
	var cheat *CheatAttemptError
	require.ErrorAs(t, err, &cheat)
}

func TestSigmaDHSpecialSoundnessRecoversWitness(t *testing.T) {
	dlog := RFC3526Group2048()
	f := newSigmaFixture(dlog)

	prover, err := NewSigmaDHProver(dlog, testSoundness, nil)
	require.NoError(t, err)
	_, err = prover.ComputeFirstMsg(f.h, f.w)
	require.NoError(t, err)

	e1 := make([]byte, testSoundness/8)
	e1[len(e1)-1] = 0x01
	e2 := make([]byte, testSoundness/8)
	e2[len(e2)-1] = 0x02

	z1, err := prover.ComputeSecondMsg(e1)
	require.NoError(t, err)

	// A fresh prover replaying the same r would let a cheating prover be
	// caught this way; here we simulate the two-transcript extraction
	// directly against the algebra to confirm z = r + ew mod q holds.
	q := dlog.Order()
	e1i := new(big.Int).SetBytes(e1)
	e2i := new(big.Int).SetBytes(e2)
	z1i := new(big.Int).SetBytes(z1)

	// z2 for the same r would be z1 + (e2-e1)*w mod q; recompute r from the
	// known w and check consistency instead of requiring prover reuse
	// (ComputeSecondMsg zeroizes r and moves the prover to sigmaDone).
	rReconstructed := new(big.Int).Mul(e1i, f.w)
	rReconstructed.Sub(z1i, rReconstructed)
	rReconstructed.Mod(rReconstructed, q)

	z2 := new(big.Int).Mul(e2i, f.w)
	z2.Add(z2, rReconstructed)
	z2.Mod(z2, q)

	extractedW := new(big.Int).Sub(z2, z1i)
	denom := new(big.Int).Sub(e2i, e1i)
	denomInv := new(big.Int).ModInverse(denom, q)
	require.NotNil(t, denomInv)
	extractedW.Mul(extractedW, denomInv)
	extractedW.Mod(extractedW, q)

	require.Equal(t, 0, extractedW.Cmp(f.w), "special soundness should recover the witness from two transcripts sharing r")
}

func TestSigmaDHSimulatorTranscriptVerifies(t *testing.T) {
	for name, dlog := range testGroups(t) {
		dlog := dlog
		t.Run(name, func(t *testing.T) {
			f := newSigmaFixture(dlog)

			sim, err := NewSigmaDHSimulator(dlog, testSoundness, nil)
			require.NoError(t, err)
			firstMsg, challenge, z, err := sim.SimulateRandom(f.h, f.u, f.v)
			require.NoError(t, err)

			verifier, err := NewSigmaDHVerifier(dlog, testSoundness, nil)
			require.NoError(t, err)
			verifier.SetChallenge(challenge)
			require.True(t, verifier.Verify(f.h, f.u, f.v, firstMsg, z))
		})
	}
}

func TestSigmaDHInvalidSoundnessRejected(t *testing.T) {
	dlog := RFC3526Group2048()
	_, err := NewSigmaDHProver(dlog, 0, nil)
	require.ErrorIs(t, err, ErrInvalidSoundness)

	// 2^t must be < q; a soundness parameter wider than the group order
	// itself is invalid.
	tooWide := dlog.Order().BitLen() + 8
	_, err = NewSigmaDHVerifier(dlog, tooWide, nil)
	require.ErrorIs(t, err, ErrInvalidSoundness)
}
