// Copyright (c) 2018 Fredrik Kuivinen, frekui@gmail.com
//
// Use of this source code is governed by the BSD-style license that can be
// found in the LICENSE file.

package dlogproto

import "math/big"

// Element is an opaque member of a Group. Implementations must support
// equality by value and a self-delimiting or fixed-width wire encoding
// sufficient for Group.Reconstruct to recover the element.
type Element interface {
	// Equal reports whether e and other represent the same group element.
	// Equal may panic if other was not produced by the same Group.
	Equal(other Element) bool

	// Sendable returns the wire encoding of e.
	Sendable() []byte
}

// Group is a prime-order cyclic group used by the Pedersen and SigmaDH
// protocols. Implementations are expected to be safe for concurrent read-only
// use once constructed; no method mutates the receiver.
type Group interface {
	// Order returns q, the prime order of the group.
	Order() *big.Int

	// Generator returns g, a generator of the group.
	Generator() Element

	// IsMember reports whether e is a member of the group.
	IsMember(e Element) bool

	// ValidateGroup performs a structural sanity check of the group's
	// parameters (e.g. primality of its modulus and order). Constructors
	// of protocol sessions must fail if this returns false.
	ValidateGroup() bool

	// Exponentiate returns base^exponent. Negative exponents are reduced
	// modulo q before use.
	Exponentiate(base Element, exponent *big.Int) Element

	// Multiply returns a*b.
	Multiply(a, b Element) Element

	// Reconstruct deserializes a wire-encoded element. When validate is
	// true the result must be a member of the group or Reconstruct fails
	// with an error wrapping ErrInvalidInput.
	Reconstruct(data []byte, validate bool) (Element, error)

	// SecurityLevelIsDDH reports whether the group is believed to satisfy
	// the Decisional Diffie-Hellman assumption. Constructors of protocol
	// sessions that rely on DDH must fail if this returns false.
	SecurityLevelIsDDH() bool
}
