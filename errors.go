// Copyright (c) 2018 Fredrik Kuivinen, frekui@gmail.com
//
// Use of this source code is governed by the BSD-style license that can be
// found in the LICENSE file.

package dlogproto

import (
	"errors"
	"fmt"
)

// Sentinel errors for the error kinds that do not need to carry extra
// context. Wrap them with fmt.Errorf("...: %w", ErrX) at call sites that
// have more to say; callers should match with errors.Is.
var (
	// ErrSecurityLevel is returned when a Group lacks a required security
	// property, currently DDH-hardness.
	ErrSecurityLevel = errors.New("dlogproto: group does not satisfy required security level")

	// ErrInvalidGroup is returned when Group.ValidateGroup reports the
	// group's parameters are structurally unsound.
	ErrInvalidGroup = errors.New("dlogproto: group failed structural validation")

	// ErrInvalidSoundness is returned by SigmaDH constructors when the
	// soundness parameter t does not satisfy 2^t < q.
	ErrInvalidSoundness = errors.New("dlogproto: soundness parameter does not satisfy 2^t < q")

	// ErrInvalidInput is returned for out-of-range scalars and malformed wire
	// messages. A sigma-protocol challenge of the wrong length is reported
	// as a CheatAttemptError instead.
	ErrInvalidInput = errors.New("dlogproto: invalid input")

	// ErrUnknownID is returned when a decommitment or opening references a
	// commitment id the session never saw.
	ErrUnknownID = errors.New("dlogproto: unknown commitment id")

	// ErrSessionAborted is returned by every operation on a Pedersen
	// session that is in its terminal aborted state, and by a SigmaDHProver
	// method called out of its one-shot order. A PedersenReceiver enters the
	// aborted state on any failed operation; a PedersenCommitter only on a
	// failed channel write, so ErrInvalidInput and ErrUnknownID leave it
	// usable. A SigmaDHProver that rejects a challenge stays usable too.
	ErrSessionAborted = errors.New("dlogproto: session aborted")
)

// CheatAttemptError signals that a peer sent data that violates the
// protocol: an element outside the group, or a sigma-protocol challenge
// whose length does not match the soundness parameter. A decommitment that
// fails verification is not an error; PedersenReceiver reports it as a
// rejected opening.
type CheatAttemptError struct {
	Reason string
}

func (e *CheatAttemptError) Error() string {
	return fmt.Sprintf("dlogproto: cheat attempt: %s", e.Reason)
}

func newCheatAttempt(reason string) error {
	return &CheatAttemptError{Reason: reason}
}

// IoError wraps an error surfaced by a Channel read or write. The
// underlying error is unchanged and reachable via errors.Unwrap.
type IoError struct {
	Op  string
	Err error
}

func (e *IoError) Error() string {
	return fmt.Sprintf("dlogproto: channel %s: %v", e.Op, e.Err)
}

func (e *IoError) Unwrap() error {
	return e.Err
}

func newIoError(op string, err error) error {
	if err == nil {
		return nil
	}
	return &IoError{Op: op, Err: err}
}
