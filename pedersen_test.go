// Copyright (c) 2018 Fredrik Kuivinen, frekui@gmail.com
//
// Use of this source code is governed by the BSD-style license that can be
// found in the LICENSE file.

package dlogproto

import (
	"errors"
	"math/big"
	"net"
	"testing"

	"github.com/stretchr/testify/require"
)

// pedersenPipe wires a receiver and a committer over an in-memory net.Pipe,
// running the receiver's preprocessing (which writes h) on a goroutine so
// the two blocking constructors can rendezvous.
func pedersenPipe(t *testing.T, dlog Group) (*PedersenReceiver, *PedersenCommitter) {
	t.Helper()
	serverConn, clientConn := net.Pipe()
	t.Cleanup(func() {
		serverConn.Close()
		clientConn.Close()
	})

	recvCh := make(chan *PedersenReceiver, 1)
	errCh := make(chan error, 1)
	go func() {
		r, err := NewPedersenReceiver(dlog, NewChannel(serverConn), nil)
		recvCh <- r
		errCh <- err
	}()

	committer, err := NewPedersenCommitter(dlog, NewChannel(clientConn), nil)
	require.NoError(t, err)

	receiver := <-recvCh
	require.NoError(t, <-errCh)
	return receiver, committer
}

func testGroups(t *testing.T) map[string]Group {
	return map[string]Group{
		"modp2048":           RFC3526Group2048(),
		"kyber-edwards25519": NewKyberEdwards25519Group(),
	}
}

func TestPedersenCommitDecommitAccepts(t *testing.T) {
	for name, dlog := range testGroups(t) {
		dlog := dlog
		t.Run(name, func(t *testing.T) {
			receiver, committer := pedersenPipe(t, dlog)

			const id = int64(1)
			x := big.NewInt(424242)

			done := make(chan error, 1)
			go func() { done <- committer.GenerateCommitment(x, id) }()
			out, err := receiver.ReceiveCommitment()
			require.NoError(t, err)
			require.NoError(t, <-done)
			require.Equal(t, id, out.ID)

			go func() { done <- committer.GenerateDecommitment(id) }()
			got, ok, err := receiver.ReceiveDecommitment(id)
			require.NoError(t, err)
			require.NoError(t, <-done)
			require.True(t, ok)
			require.Equal(t, 0, got.Cmp(x))
		})
	}
}

func TestPedersenTamperedDecommitmentRejected(t *testing.T) {
	dlog := RFC3526Group2048()
	receiver, committer := pedersenPipe(t, dlog)

	const id = int64(2)
	done := make(chan error, 1)
	go func() { done <- committer.GenerateCommitment(big.NewInt(10), id) }()
	_, err := receiver.ReceiveCommitment()
	require.NoError(t, err)
	require.NoError(t, <-done)

	// Craft a decommitment for a different x with a freshly sampled r and
	// send it directly, bypassing the committer's honest bookkeeping.
	q := dlog.Order()
	forgedX := big.NewInt(11)
	r, err := randomZq(randr, q)
	require.NoError(t, err)

	go func() {
		done <- writeMessage(committer.channel, "test", encodeDecommitMsg(forgedX, r))
	}()
	x, ok, err := receiver.ReceiveDecommitment(id)
	require.NoError(t, err)
	require.NoError(t, <-done)
	require.False(t, ok)
	require.Nil(t, x)
}

func TestPedersenUnknownIDDecommitmentErrors(t *testing.T) {
	dlog := RFC3526Group2048()
	receiver, committer := pedersenPipe(t, dlog)

	q := dlog.Order()
	r, err := randomZq(randr, q)
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() {
		done <- writeMessage(committer.channel, "test", encodeDecommitMsg(big.NewInt(1), r))
	}()
	_, ok, err := receiver.ReceiveDecommitment(999)
	require.NoError(t, <-done)
	require.False(t, ok)
	require.True(t, errors.Is(err, ErrUnknownID))
}

func TestPedersenTwoCommitmentsDecommittedInReverseOrder(t *testing.T) {
	dlog := RFC3526Group2048()
	receiver, committer := pedersenPipe(t, dlog)

	const idA, idB = int64(1), int64(2)
	xA, xB := big.NewInt(111), big.NewInt(222)

	done := make(chan error, 1)
	go func() { done <- committer.GenerateCommitment(xA, idA) }()
	_, err := receiver.ReceiveCommitment()
	require.NoError(t, err)
	require.NoError(t, <-done)

	go func() { done <- committer.GenerateCommitment(xB, idB) }()
	_, err = receiver.ReceiveCommitment()
	require.NoError(t, err)
	require.NoError(t, <-done)

	go func() { done <- committer.GenerateDecommitment(idB) }()
	gotB, ok, err := receiver.ReceiveDecommitment(idB)
	require.NoError(t, err)
	require.NoError(t, <-done)
	require.True(t, ok)
	require.Equal(t, 0, gotB.Cmp(xB))

	go func() { done <- committer.GenerateDecommitment(idA) }()
	gotA, ok, err := receiver.ReceiveDecommitment(idA)
	require.NoError(t, err)
	require.NoError(t, <-done)
	require.True(t, ok)
	require.Equal(t, 0, gotA.Cmp(xA))
}

func TestPedersenXEqualsQIsAccepted(t *testing.T) {
	dlog := RFC3526Group2048()
	receiver, committer := pedersenPipe(t, dlog)

	const id = int64(3)
	q := dlog.Order()

	done := make(chan error, 1)
	go func() { done <- committer.GenerateCommitment(new(big.Int).Set(q), id) }()
	_, err := receiver.ReceiveCommitment()
	require.NoError(t, err)
	require.NoError(t, <-done)

	go func() { done <- committer.GenerateDecommitment(id) }()
	got, ok, err := receiver.ReceiveDecommitment(id)
	require.NoError(t, err)
	require.NoError(t, <-done)
	require.True(t, ok, "x == q is accepted per the preserved inclusive range check")
	require.Equal(t, 0, got.Cmp(q))
}

func TestPedersenCommitterRejectsOutOfRangeX(t *testing.T) {
	dlog := RFC3526Group2048()
	_, committer := pedersenPipe(t, dlog)

	tooLarge := new(big.Int).Add(dlog.Order(), big.NewInt(1))
	err := committer.GenerateCommitment(tooLarge, 1)
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestTrapdoorValidateAcceptsMatchingTrapdoor(t *testing.T) {
	dlog := RFC3526Group2048()
	serverConn, clientConn := net.Pipe()
	defer serverConn.Close()
	defer clientConn.Close()

	recvCh := make(chan *TrapdoorReceiver, 1)
	errCh := make(chan error, 1)
	go func() {
		r, err := NewTrapdoorReceiver(dlog, NewChannel(serverConn), nil)
		recvCh <- r
		errCh <- err
	}()

	committer, err := NewTrapdoorCommitter(dlog, NewChannel(clientConn), nil)
	require.NoError(t, err)
	receiver := <-recvCh
	require.NoError(t, <-errCh)

	require.True(t, committer.Validate(receiver.Trapdoor()))
	require.False(t, committer.Validate(big.NewInt(1)))
}
